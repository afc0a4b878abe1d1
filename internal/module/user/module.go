package user

import "github.com/gin-gonic/gin"

// UserModule implements the app.Module interface for account management.
type UserModule struct {
	handler *UserHandler
}

// NewModule creates a new UserModule with the given handler.
// Panics if h is nil.
func NewModule(h *UserHandler) *UserModule {
	if h == nil {
		panic("user.NewModule: handler must not be nil")
	}
	return &UserModule{handler: h}
}

// RegisterRoutes registers account management routes, all admin-only.
func (m *UserModule) RegisterRoutes(public, authed, admin *gin.RouterGroup) {
	admin.POST("/users", m.handler.Create)
	admin.GET("/users/:id", m.handler.Get)
	admin.GET("/users", m.handler.List)
	admin.PUT("/users/:id", m.handler.Update)
	admin.DELETE("/users/:id", m.handler.Delete)
}
