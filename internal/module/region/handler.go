package region

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lokalku/lokalku/internal/pkg"
)

// Handler handles REST API requests for provinces and cities.
type Handler struct {
	svc Service
}

// NewHandler creates a region handler with the given service.
func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// ListProvinces handles GET /provinces.
func (h *Handler) ListProvinces(c *gin.Context) {
	result, err := h.svc.ListProvinces(c.Request.Context(), pkg.ParseQuery(c))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.List(c, result)
}

// GetProvince handles GET /provinces/:id.
func (h *Handler) GetProvince(c *gin.Context) {
	province, err := h.svc.GetProvince(c.Request.Context(), c.Param("id"))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, province)
}

// CreateProvince handles POST /provinces.
func (h *Handler) CreateProvince(c *gin.Context) {
	var req ProvinceRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	province, err := h.svc.CreateProvince(c.Request.Context(), req.Name)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "success",
		Data:    province,
	})
}

// UpdateProvince handles PUT /provinces/:id.
func (h *Handler) UpdateProvince(c *gin.Context) {
	var req ProvinceRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	province, err := h.svc.UpdateProvince(c.Request.Context(), c.Param("id"), req.Name)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, province)
}

// DeleteProvince handles DELETE /provinces/:id.
func (h *Handler) DeleteProvince(c *gin.Context) {
	if err := h.svc.DeleteProvince(c.Request.Context(), c.Param("id")); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, nil)
}

// ListCities handles GET /cities. The optional province_id query parameter
// narrows the list to one province.
func (h *Handler) ListCities(c *gin.Context) {
	result, err := h.svc.ListCities(c.Request.Context(), pkg.ParseQuery(c), c.Query("province_id"))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.List(c, result)
}

// GetCity handles GET /cities/:id.
func (h *Handler) GetCity(c *gin.Context) {
	city, err := h.svc.GetCity(c.Request.Context(), c.Param("id"))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, city)
}

// CreateCity handles POST /cities.
func (h *Handler) CreateCity(c *gin.Context) {
	var req CityRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	city, err := h.svc.CreateCity(c.Request.Context(), req.ProvinceID, req.Name)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "success",
		Data:    city,
	})
}

// UpdateCity handles PUT /cities/:id.
func (h *Handler) UpdateCity(c *gin.Context) {
	var req CityRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	city, err := h.svc.UpdateCity(c.Request.Context(), c.Param("id"), req.ProvinceID, req.Name)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, city)
}

// DeleteCity handles DELETE /cities/:id.
func (h *Handler) DeleteCity(c *gin.Context) {
	if err := h.svc.DeleteCity(c.Request.Context(), c.Param("id")); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, nil)
}
