package location

import "github.com/gin-gonic/gin"

// Module implements the app.Module interface for sales locations.
type Module struct {
	handler *Handler
}

// NewModule creates a sales location module with the given handler.
// Panics if h is nil.
func NewModule(h *Handler) *Module {
	if h == nil {
		panic("location.NewModule: handler must not be nil")
	}
	return &Module{handler: h}
}

// RegisterRoutes registers sales location routes. Reads are public so the
// directory map works without an account; writes are ownership-checked in
// the service layer.
func (m *Module) RegisterRoutes(public, authed, admin *gin.RouterGroup) {
	public.GET("/locations", m.handler.List)
	public.GET("/locations/:id", m.handler.Get)

	authed.POST("/locations", m.handler.Create)
	authed.PUT("/locations/:id", m.handler.Update)
	authed.DELETE("/locations/:id", m.handler.Delete)
}
