package handlers

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/Bhavuk-Devex/AVO/domain"
	"github.com/Bhavuk-Devex/AVO/internal/http/responses"
)

// bindJSON decodes the body into req. Field presence is checked by the
// services, so an empty body decodes to zero values.
func bindJSON(c *gin.Context, writer *responses.Writer, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		writer.Error(c, domain.ErrInvalidBody)
		return false
	}
	return true
}
