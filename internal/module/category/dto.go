package category

// Request is the input for creating or updating a category.
type Request struct {
	Name        string `json:"name" form:"name" binding:"required,min=2,max=100"`
	Description string `json:"description" form:"description" binding:"max=500"`
}
