package user

// CreateUserRequest represents the input for creating a new account.
type CreateUserRequest struct {
	Name     string `json:"name" form:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,min=8,max=72"`
	Role     string `json:"role" form:"role" binding:"required,oneof=admin owner"`
}

// UpdateUserRequest represents the input for updating an existing account.
// An empty password means "leave the current password unchanged".
type UpdateUserRequest struct {
	Name     string `json:"name" form:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"omitempty,min=8,max=72"`
	Role     string `json:"role" form:"role" binding:"required,oneof=admin owner"`
}
