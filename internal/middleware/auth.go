package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/lokalku/lokalku/internal/domain"
)

// Context keys set by the Auth middleware.
const (
	ContextUserID   = "user_id"
	ContextUserRole = "user_role"
)

// Auth returns a gin middleware that validates a bearer JWT and stores the
// authenticated user's id and role in the gin context. Requests without a
// valid token are rejected with 401.
func Auth(secret string) gin.HandlerFunc {
	key := []byte(secret)

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(tokenString) == "" {
			abortUnauthorized(c, "missing bearer token")
			return
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return key, nil
		})
		if err != nil || !token.Valid {
			abortUnauthorized(c, "invalid or expired token")
			return
		}

		sub, _ := claims["sub"].(string)
		role, _ := claims["role"].(string)
		if sub == "" || role == "" {
			abortUnauthorized(c, "invalid token claims")
			return
		}

		c.Set(ContextUserID, sub)
		c.Set(ContextUserRole, role)
		c.Next()
	}
}

// UserID extracts the authenticated user's id from the gin context.
// Returns an empty string for unauthenticated requests.
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}

// UserRole extracts the authenticated user's role from the gin context.
func UserRole(c *gin.Context) string {
	return c.GetString(ContextUserRole)
}

// Actor builds the acting user's identity from the gin context. Handlers pass
// it to services that enforce ownership rules.
func Actor(c *gin.Context) domain.Actor {
	return domain.Actor{ID: UserID(c), Role: UserRole(c)}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"code":    http.StatusUnauthorized,
		"message": message,
		"data":    nil,
	})
}
