package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/Bhavuk-Devex/AVO/domain"
	"github.com/Bhavuk-Devex/AVO/internal/http/responses"
	"github.com/Bhavuk-Devex/AVO/internal/logging"
)

// AuthMW wraps the token service for middleware
type AuthMW struct {
	tokenSvc domain.TokenService
	writer   *responses.Writer
	logger   *logging.Logger
}

// NewAuthMW creates new auth middleware wrapper
func NewAuthMW(tokenSvc domain.TokenService, writer *responses.Writer, logger *logging.Logger) *AuthMW {
	if logger == nil {
		logger = logging.Nop()
	}
	return &AuthMW{
		tokenSvc: tokenSvc,
		writer:   writer,
		logger:   logger,
	}
}

// Authenticate returns the bearer token middleware
func (mw *AuthMW) Authenticate() gin.HandlerFunc {
	return AuthMiddleware(mw.tokenSvc, mw.writer, mw.logger)
}

// IsBusinessAdmin returns the middleware that admits business admins only
func (mw *AuthMW) IsBusinessAdmin() gin.HandlerFunc {
	return RequireRole(domain.RoleBusinessAdmin, mw.writer)
}
