package business

// Request is the input for creating or updating a business profile.
type Request struct {
	Name        string `json:"name" form:"name" binding:"required,min=2,max=150"`
	Description string `json:"description" form:"description" binding:"max=1000"`
	Address     string `json:"address" form:"address" binding:"max=500"`
	Phone       string `json:"phone" form:"phone" binding:"omitempty,min=6,max=30"`
	LogoURL     string `json:"logo_url" form:"logo_url" binding:"omitempty,url,max=500"`
	ProvinceID  string `json:"province_id" form:"province_id" binding:"omitempty,uuid4"`
	CityID      string `json:"city_id" form:"city_id" binding:"omitempty,uuid4"`
}
