package report

import "github.com/gin-gonic/gin"

// Module implements the app.Module interface for sales reports.
type Module struct {
	handler *Handler
}

// NewModule creates a report module with the given handler.
// Panics if h is nil.
func NewModule(h *Handler) *Module {
	if h == nil {
		panic("report.NewModule: handler must not be nil")
	}
	return &Module{handler: h}
}

// RegisterRoutes registers report routes. Sales figures are never public;
// every route requires a valid token and the service scopes reads to the
// acting owner's business.
func (m *Module) RegisterRoutes(public, authed, admin *gin.RouterGroup) {
	authed.GET("/reports", m.handler.List)
	authed.GET("/reports/export", m.handler.Export)
	authed.GET("/reports/:id", m.handler.Get)
	authed.POST("/reports", m.handler.Create)
	authed.POST("/reports/bulk", m.handler.BulkUpsert)
	authed.PUT("/reports/:id", m.handler.Update)
	authed.DELETE("/reports/:id", m.handler.Delete)
}
