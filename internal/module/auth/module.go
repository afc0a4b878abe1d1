package auth

import "github.com/gin-gonic/gin"

// AuthModule implements the app.Module interface for authentication.
type AuthModule struct {
	handler *AuthHandler
}

// NewModule creates a new AuthModule with the given handler.
// Panics if h is nil.
func NewModule(h *AuthHandler) *AuthModule {
	if h == nil {
		panic("auth.NewModule: handler must not be nil")
	}
	return &AuthModule{handler: h}
}

// RegisterRoutes registers auth routes. Login and registration are public;
// the account endpoint requires a valid token.
func (m *AuthModule) RegisterRoutes(public, authed, admin *gin.RouterGroup) {
	public.POST("/auth/login", m.handler.Login)
	public.POST("/auth/register", m.handler.Register)
	authed.GET("/auth/me", m.handler.Me)
}
