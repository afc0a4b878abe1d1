package report

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lokalku/lokalku/internal/middleware"
	"github.com/lokalku/lokalku/internal/pkg"
)

// Handler handles REST API requests for sales reports.
type Handler struct {
	svc Service
}

// NewHandler creates a report handler with the given service.
func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// List handles GET /reports. Admins may pass business_id to inspect one
// business; owners always get their own.
func (h *Handler) List(c *gin.Context) {
	result, err := h.svc.List(c.Request.Context(), middleware.Actor(c), pkg.ParseQuery(c), c.Query("business_id"))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.List(c, result)
}

// Get handles GET /reports/:id.
func (h *Handler) Get(c *gin.Context) {
	rep, err := h.svc.Get(c.Request.Context(), middleware.Actor(c), c.Param("id"))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, rep)
}

// Create handles POST /reports.
func (h *Handler) Create(c *gin.Context) {
	var req Request
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	rep, err := h.svc.Create(c.Request.Context(), middleware.Actor(c), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "success",
		Data:    rep,
	})
}

// Update handles PUT /reports/:id.
func (h *Handler) Update(c *gin.Context) {
	var req Request
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	rep, err := h.svc.Update(c.Request.Context(), middleware.Actor(c), c.Param("id"), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, rep)
}

// Delete handles DELETE /reports/:id.
func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), middleware.Actor(c), c.Param("id")); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, nil)
}

// BulkUpsert handles POST /reports/bulk.
func (h *Handler) BulkUpsert(c *gin.Context) {
	var req BulkRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	reports, err := h.svc.BulkUpsert(c.Request.Context(), middleware.Actor(c), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, reports)
}

// Export handles GET /reports/export, streaming the sales summary as a PDF
// download.
func (h *Handler) Export(c *gin.Context) {
	summary, err := h.svc.Export(c.Request.Context(), middleware.Actor(c), c.Query("business_id"))
	if err != nil {
		pkg.Error(c, err)
		return
	}

	doc, filename, err := RenderPDF(summary)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", doc)
}
