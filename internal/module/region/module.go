package region

import "github.com/gin-gonic/gin"

// Module implements the app.Module interface for regions.
type Module struct {
	handler *Handler
}

// NewModule creates a region module with the given handler.
// Panics if h is nil.
func NewModule(h *Handler) *Module {
	if h == nil {
		panic("region.NewModule: handler must not be nil")
	}
	return &Module{handler: h}
}

// RegisterRoutes registers region routes. Reads are public so registration
// forms can populate region selects; writes are restricted to admins.
func (m *Module) RegisterRoutes(public, authed, admin *gin.RouterGroup) {
	public.GET("/provinces", m.handler.ListProvinces)
	public.GET("/provinces/:id", m.handler.GetProvince)
	public.GET("/cities", m.handler.ListCities)
	public.GET("/cities/:id", m.handler.GetCity)

	admin.POST("/provinces", m.handler.CreateProvince)
	admin.PUT("/provinces/:id", m.handler.UpdateProvince)
	admin.DELETE("/provinces/:id", m.handler.DeleteProvince)
	admin.POST("/cities", m.handler.CreateCity)
	admin.PUT("/cities/:id", m.handler.UpdateCity)
	admin.DELETE("/cities/:id", m.handler.DeleteCity)
}
