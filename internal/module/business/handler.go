package business

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lokalku/lokalku/internal/middleware"
	"github.com/lokalku/lokalku/internal/pkg"
)

// Handler handles REST API requests for business profiles.
type Handler struct {
	svc Service
}

// NewHandler creates a business handler with the given service.
func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// List handles GET /businesses.
func (h *Handler) List(c *gin.Context) {
	result, err := h.svc.List(c.Request.Context(), pkg.ParseQuery(c))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.List(c, result)
}

// Get handles GET /businesses/:id.
func (h *Handler) Get(c *gin.Context) {
	b, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, b)
}

// GetMine handles GET /my/business, returning the acting owner's profile.
func (h *Handler) GetMine(c *gin.Context) {
	b, err := h.svc.GetMine(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, b)
}

// Create handles POST /businesses.
func (h *Handler) Create(c *gin.Context) {
	var req Request
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	b, err := h.svc.Create(c.Request.Context(), middleware.Actor(c), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "success",
		Data:    b,
	})
}

// Update handles PUT /businesses/:id.
func (h *Handler) Update(c *gin.Context) {
	var req Request
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	b, err := h.svc.Update(c.Request.Context(), middleware.Actor(c), c.Param("id"), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, b)
}

// Delete handles DELETE /businesses/:id.
func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), middleware.Actor(c), c.Param("id")); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, nil)
}
