package catalog

import (
	"github.com/gin-gonic/gin"

	"github.com/lokalku/lokalku/internal/pkg"
)

// Handler handles the public catalog endpoints.
type Handler struct {
	svc Service
}

// NewHandler creates a catalog handler with the given service.
func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// Promoted handles GET /catalog/promoted.
func (h *Handler) Promoted(c *gin.Context) {
	result, err := h.svc.Promoted(c.Request.Context(), pkg.ParseQuery(c), c.Query("category_id"))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.List(c, result)
}

// BusinessDetail handles GET /catalog/businesses/:id.
func (h *Handler) BusinessDetail(c *gin.Context) {
	detail, err := h.svc.BusinessDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, detail)
}
