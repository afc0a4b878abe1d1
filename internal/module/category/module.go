package category

import "github.com/gin-gonic/gin"

// Module implements the app.Module interface for categories.
type Module struct {
	handler *Handler
}

// NewModule creates a category module with the given handler.
// Panics if h is nil.
func NewModule(h *Handler) *Module {
	if h == nil {
		panic("category.NewModule: handler must not be nil")
	}
	return &Module{handler: h}
}

// RegisterRoutes registers category routes. Reads are public; writes are
// restricted to admins.
func (m *Module) RegisterRoutes(public, authed, admin *gin.RouterGroup) {
	public.GET("/categories", m.handler.List)
	public.GET("/categories/:id", m.handler.Get)

	admin.POST("/categories", m.handler.Create)
	admin.PUT("/categories/:id", m.handler.Update)
	admin.DELETE("/categories/:id", m.handler.Delete)
}
