package middleware

import (
	"blog-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// AdminMiddleware gates a route group to callers whose token carries the
// admin role. Runs after AuthMiddleware, which sets the role claim.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get("role")
		if r, ok := role.(string); !ok || r != "admin" {
			response.Forbidden(c, "admin role required")
			c.Abort()
			return
		}

		c.Next()
	}
}
