package user

import (
	"context"

	"gorm.io/gorm"

	"github.com/lokalku/lokalku/internal/crud"
	"github.com/lokalku/lokalku/internal/domain"
	"github.com/lokalku/lokalku/internal/pkg"
)

// userRepository implements domain.UserRepository using GORM.
type userRepository struct {
	inner *pkg.Repository[domain.User]
}

// NewUserRepository creates a new UserRepository backed by the given GORM database.
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &userRepository{
		inner: pkg.NewRepository[domain.User](db, pkg.RepositoryConfig{
			SortFields:   []string{"id", "name", "email", "role", "created_at", "updated_at"},
			SearchFields: []string{"name", "email"},
		}),
	}
}

// Create inserts a new user into the database.
func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	return r.inner.Create(ctx, user)
}

// GetByID retrieves a user by its primary key.
func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.inner.GetByID(ctx, id)
}

// GetByEmail retrieves a user by email address.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	if err := r.inner.DB().WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		return nil, pkg.MapError(err)
	}
	return &user, nil
}

// List returns a paginated, sorted, and searched list of users.
func (r *userRepository) List(ctx context.Context, q crud.Query) (*crud.Page[domain.User], error) {
	return r.inner.List(ctx, q)
}

// Update saves changes to an existing user.
func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	return r.inner.Update(ctx, user)
}

// Delete removes a user by ID.
func (r *userRepository) Delete(ctx context.Context, id string) error {
	return r.inner.Delete(ctx, id)
}
