package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/Bhavuk-Devex/AVO/domain"
	"github.com/Bhavuk-Devex/AVO/internal/http/responses"
)

// RequireRole aborts unless the authenticated caller holds role
func RequireRole(role domain.Role, writer *responses.Writer) gin.HandlerFunc {
	denied := roleRequired(role)
	return func(c *gin.Context) {
		actor, ok := ActorFrom(c)
		if !ok {
			writer.Error(c, domain.ErrTokenMissing)
			return
		}
		if actor.Role != role {
			writer.Error(c, denied)
			return
		}
		c.Next()
	}
}

func roleRequired(role domain.Role) error {
	if role == domain.RoleBusinessAdmin {
		return domain.ErrBusinessAdminOnly
	}
	return domain.NewError(domain.KindForbidden, fmt.Sprintf("Access denied. Role %s required.", role))
}
