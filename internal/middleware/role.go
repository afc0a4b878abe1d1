package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// RequireRoles returns a gin middleware that only lets through requests
// whose authenticated role is in the allowed list. It expects Auth to have
// run first; requests without a role in context are rejected with 401,
// requests with a disallowed role with 403. The guard runs before the
// handler on every matched route, so role checks never live inside
// handlers.
func RequireRoles(allowedRoles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[strings.ToLower(strings.TrimSpace(r))] = struct{}{}
	}

	return func(c *gin.Context) {
		role := UserRole(c)
		if role == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    http.StatusUnauthorized,
				"message": "unauthorized",
				"data":    nil,
			})
			return
		}

		if _, ok := allowed[strings.ToLower(role)]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"code":    http.StatusForbidden,
				"message": "forbidden",
				"data":    nil,
			})
			return
		}

		c.Next()
	}
}
