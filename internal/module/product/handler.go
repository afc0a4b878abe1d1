package product

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lokalku/lokalku/internal/middleware"
	"github.com/lokalku/lokalku/internal/pkg"
)

// Handler handles REST API requests for products.
type Handler struct {
	svc Service
}

// NewHandler creates a product handler with the given service.
func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// List handles GET /products. Optional business_id, category_id, and
// promoted query parameters narrow the list.
func (h *Handler) List(c *gin.Context) {
	f := Filter{
		BusinessID:   c.Query("business_id"),
		CategoryID:   c.Query("category_id"),
		PromotedOnly: c.Query("promoted") == "true",
	}

	result, err := h.svc.List(c.Request.Context(), pkg.ParseQuery(c), f)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.List(c, result)
}

// Get handles GET /products/:id.
func (h *Handler) Get(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, p)
}

// Create handles POST /products.
func (h *Handler) Create(c *gin.Context) {
	var req Request
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	p, err := h.svc.Create(c.Request.Context(), middleware.Actor(c), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "success",
		Data:    p,
	})
}

// Update handles PUT /products/:id.
func (h *Handler) Update(c *gin.Context) {
	var req Request
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	p, err := h.svc.Update(c.Request.Context(), middleware.Actor(c), c.Param("id"), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, p)
}

// Delete handles DELETE /products/:id.
func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), middleware.Actor(c), c.Param("id")); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, nil)
}

// Promote handles PUT /products/:id/promote.
func (h *Handler) Promote(c *gin.Context) {
	var req PromoteRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	p, err := h.svc.SetPromoted(c.Request.Context(), c.Param("id"), *req.Promoted)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, p)
}
