package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Bhavuk-Devex/AVO/internal/logging"
)

const requestIDHeader = "X-Request-Id"

func RequestID(logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader(requestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}

		c.Header(requestIDHeader, reqID)

		if logger != nil {
			c.Request = c.Request.WithContext(logger.WithRequestID(c.Request.Context(), reqID))
		}

		c.Next()
	}
}
