package httpserver

import (
	"log"
	"strings"

	"storefront-api/internal/auth"

	"github.com/gin-gonic/gin"
)

const bearerPrefix = "Bearer "

// bearerAuth attaches a caller identity to the request context when a valid
// bearer token is presented. It never rejects: a missing, malformed or
// otherwise invalid token leaves the request anonymous and the chain
// continues. Whether anonymous callers are acceptable is the route's
// concern, not the filter's.
func bearerAuth(logger *log.Logger, verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			c.Next()
			return
		}

		identity, err := verifier.Verify(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			logger.Printf("auth: bearer token rejected: %v", err)
			c.Next()
			return
		}

		c.Request = c.Request.WithContext(auth.WithIdentity(c.Request.Context(), identity))
		c.Next()
	}
}
