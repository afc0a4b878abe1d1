package domain

import (
	"context"

	"github.com/lokalku/lokalku/internal/crud"
)

// Account roles. Admins manage the whole directory; owners manage their own
// business profile, products, locations, and reports.
const (
	RoleAdmin = "admin"
	RoleOwner = "owner"
)

// User represents an account in the system.
type User struct {
	BaseModel
	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255" json:"-"`
	Role         string `gorm:"size:20;not null;default:owner" json:"role"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserRepository defines the data access interface for accounts. It is
// declared here because both the user module and the auth module depend
// on it.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, q crud.Query) (*crud.Page[User], error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id string) error
}
