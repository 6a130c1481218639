package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/Bhavuk-Devex/AVO/domain"
)

const actorKey = "avo.actor"

func setActor(c *gin.Context, actor domain.Actor) {
	c.Set(actorKey, actor)
}

// ActorFrom returns the caller attached by Authenticate
func ActorFrom(c *gin.Context) (domain.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return domain.Actor{}, false
	}
	actor, ok := v.(domain.Actor)
	return actor, ok
}
