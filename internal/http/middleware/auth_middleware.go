package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Bhavuk-Devex/AVO/domain"
	"github.com/Bhavuk-Devex/AVO/internal/http/responses"
	"github.com/Bhavuk-Devex/AVO/internal/logging"
)

// AuthMiddleware verifies the bearer token and attaches the caller to the request
func AuthMiddleware(tokenSvc domain.TokenService, writer *responses.Writer, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if authHeader == "" {
			writer.Error(c, domain.ErrTokenMissing)
			return
		}

		scheme, token, found := strings.Cut(authHeader, " ")
		token = strings.TrimSpace(token)
		if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
			writer.Error(c, domain.ErrTokenMalformed)
			return
		}

		claims, err := tokenSvc.ValidateToken(token)
		if err != nil {
			writer.Error(c, err)
			return
		}

		actor := claims.Actor()
		setActor(c, actor)

		ctx := logger.WithActor(c.Request.Context(), actor.ID, string(actor.Role))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
