package responses

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Bhavuk-Devex/AVO/domain"
	"github.com/Bhavuk-Devex/AVO/internal/logging"
)

// Envelope is the body of every API response
type Envelope struct {
	Status int `json:"status"`
	Data   any `json:"data"`
}

// Writer renders envelopes. With legacy200 every response travels with HTTP 200
// and only the embedded status carries the outcome.
type Writer struct {
	logger    *logging.Logger
	legacy200 bool
}

func NewWriter(logger *logging.Logger, legacy200 bool) *Writer {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Writer{logger: logger, legacy200: legacy200}
}

// Success writes data with status 200
func (w *Writer) Success(c *gin.Context, data gin.H) {
	w.write(c, http.StatusOK, data)
}

// Message writes a 200 response carrying only a message
func (w *Writer) Message(c *gin.Context, message string) {
	w.write(c, http.StatusOK, gin.H{"message": message})
}

// Error maps err to its status and aborts the chain
func (w *Writer) Error(c *gin.Context, err error) {
	status := StatusFor(domain.KindOf(err))
	data := gin.H{"message": domain.MessageOf(err)}

	if status == http.StatusInternalServerError {
		w.logger.Error(c.Request.Context(), "request failed", err)
		data["message"] = domain.InternalMessage
		if err != nil {
			data["error"] = err.Error()
		}
	}

	w.write(c, status, data)
	c.Abort()
}

func (w *Writer) write(c *gin.Context, status int, data gin.H) {
	code := status
	if w.legacy200 {
		code = http.StatusOK
	}
	c.JSON(code, Envelope{Status: status, Data: data})
}

// StatusFor maps an error kind to its HTTP status
func StatusFor(kind domain.Kind) int {
	switch kind {
	case domain.KindBadRequest, domain.KindInvalidCode:
		return http.StatusBadRequest
	case domain.KindConflict:
		return http.StatusConflict
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindUnauthorized:
		return http.StatusUnauthorized
	case domain.KindForbidden:
		return http.StatusForbidden
	case domain.KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
