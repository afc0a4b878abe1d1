package product

import "github.com/gin-gonic/gin"

// Module implements the app.Module interface for products.
type Module struct {
	handler *Handler
}

// NewModule creates a product module with the given handler.
// Panics if h is nil.
func NewModule(h *Handler) *Module {
	if h == nil {
		panic("product.NewModule: handler must not be nil")
	}
	return &Module{handler: h}
}

// RegisterRoutes registers product routes. Reads are public; owners manage
// their own catalog; promotion toggling is admin curation.
func (m *Module) RegisterRoutes(public, authed, admin *gin.RouterGroup) {
	public.GET("/products", m.handler.List)
	public.GET("/products/:id", m.handler.Get)

	authed.POST("/products", m.handler.Create)
	authed.PUT("/products/:id", m.handler.Update)
	authed.DELETE("/products/:id", m.handler.Delete)

	admin.PUT("/products/:id/promote", m.handler.Promote)
}
