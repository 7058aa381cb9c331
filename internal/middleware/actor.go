// internal/middleware/actor.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// ActorHeader names the operator responsible for a request's changes.
const ActorHeader = "X-Actor"

// Actor records who is making the change. Without the header every change
// is attributed to defaultActor.
func Actor(defaultActor string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := strings.TrimSpace(c.GetHeader(ActorHeader))
		if actor == "" {
			actor = defaultActor
		}

		c.Set("actor", actor)
		c.Next()
	}
}
