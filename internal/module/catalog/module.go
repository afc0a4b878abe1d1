package catalog

import "github.com/gin-gonic/gin"

// Module implements the app.Module interface for the public catalog.
type Module struct {
	handler *Handler
}

// NewModule creates a catalog module with the given handler.
// Panics if h is nil.
func NewModule(h *Handler) *Module {
	if h == nil {
		panic("catalog.NewModule: handler must not be nil")
	}
	return &Module{handler: h}
}

// RegisterRoutes registers the public catalog routes.
func (m *Module) RegisterRoutes(public, authed, admin *gin.RouterGroup) {
	public.GET("/catalog/promoted", m.handler.Promoted)
	public.GET("/catalog/businesses/:id", m.handler.BusinessDetail)
}
