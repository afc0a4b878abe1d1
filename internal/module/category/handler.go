package category

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lokalku/lokalku/internal/pkg"
)

// Handler handles REST API requests for categories.
type Handler struct {
	svc Service
}

// NewHandler creates a category handler with the given service.
func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// List handles GET /categories.
func (h *Handler) List(c *gin.Context) {
	result, err := h.svc.List(c.Request.Context(), pkg.ParseQuery(c))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.List(c, result)
}

// Get handles GET /categories/:id.
func (h *Handler) Get(c *gin.Context) {
	category, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, category)
}

// Create handles POST /categories.
func (h *Handler) Create(c *gin.Context) {
	var req Request
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	category, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "success",
		Data:    category,
	})
}

// Update handles PUT /categories/:id.
func (h *Handler) Update(c *gin.Context) {
	var req Request
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	category, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, category)
}

// Delete handles DELETE /categories/:id.
func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, nil)
}
