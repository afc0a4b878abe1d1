package product

// Request is the input for creating or updating a product.
type Request struct {
	CategoryID  string  `json:"category_id" form:"category_id" binding:"omitempty,uuid4"`
	Name        string  `json:"name" form:"name" binding:"required,min=2,max=150"`
	Description string  `json:"description" form:"description" binding:"max=1000"`
	Price       float64 `json:"price" form:"price" binding:"required,gt=0"`
	ImageURL    string  `json:"image_url" form:"image_url" binding:"omitempty,url,max=500"`
}

// PromoteRequest toggles a product's promotion flag.
type PromoteRequest struct {
	Promoted *bool `json:"promoted" form:"promoted" binding:"required"`
}
