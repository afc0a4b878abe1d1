package business

import "github.com/gin-gonic/gin"

// Module implements the app.Module interface for business profiles.
type Module struct {
	handler *Handler
}

// NewModule creates a business module with the given handler.
// Panics if h is nil.
func NewModule(h *Handler) *Module {
	if h == nil {
		panic("business.NewModule: handler must not be nil")
	}
	return &Module{handler: h}
}

// RegisterRoutes registers business routes. Directory reads are public;
// profile management requires a valid token and is ownership-checked in the
// service layer.
func (m *Module) RegisterRoutes(public, authed, admin *gin.RouterGroup) {
	public.GET("/businesses", m.handler.List)
	public.GET("/businesses/:id", m.handler.Get)

	authed.GET("/my/business", m.handler.GetMine)
	authed.POST("/businesses", m.handler.Create)
	authed.PUT("/businesses/:id", m.handler.Update)
	authed.DELETE("/businesses/:id", m.handler.Delete)
}
