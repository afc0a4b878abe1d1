package region

// ProvinceRequest is the input for creating or updating a province.
type ProvinceRequest struct {
	Name string `json:"name" form:"name" binding:"required,min=2,max=100"`
}

// CityRequest is the input for creating or updating a city.
type CityRequest struct {
	ProvinceID string `json:"province_id" form:"province_id" binding:"required,uuid4"`
	Name       string `json:"name" form:"name" binding:"required,min=2,max=100"`
}
