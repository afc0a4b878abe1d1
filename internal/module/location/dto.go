package location

// Request is the input for creating or updating a sales location.
type Request struct {
	Name      string   `json:"name" form:"name" binding:"required,min=2,max=150"`
	Address   string   `json:"address" form:"address" binding:"max=500"`
	Latitude  *float64 `json:"latitude" form:"latitude" binding:"required,min=-90,max=90"`
	Longitude *float64 `json:"longitude" form:"longitude" binding:"required,min=-180,max=180"`
}
