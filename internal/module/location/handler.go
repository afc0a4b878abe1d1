package location

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lokalku/lokalku/internal/middleware"
	"github.com/lokalku/lokalku/internal/pkg"
)

// Handler handles REST API requests for sales locations.
type Handler struct {
	svc Service
}

// NewHandler creates a sales location handler with the given service.
func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// List handles GET /locations. The optional business_id query parameter
// narrows the list to one business.
func (h *Handler) List(c *gin.Context) {
	result, err := h.svc.List(c.Request.Context(), pkg.ParseQuery(c), c.Query("business_id"))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.List(c, result)
}

// Get handles GET /locations/:id.
func (h *Handler) Get(c *gin.Context) {
	loc, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, loc)
}

// Create handles POST /locations.
func (h *Handler) Create(c *gin.Context) {
	var req Request
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	loc, err := h.svc.Create(c.Request.Context(), middleware.Actor(c), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "success",
		Data:    loc,
	})
}

// Update handles PUT /locations/:id.
func (h *Handler) Update(c *gin.Context) {
	var req Request
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	loc, err := h.svc.Update(c.Request.Context(), middleware.Actor(c), c.Param("id"), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, loc)
}

// Delete handles DELETE /locations/:id.
func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), middleware.Actor(c), c.Param("id")); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, nil)
}
