package business

import (
	"context"

	"gorm.io/gorm"

	"github.com/lokalku/lokalku/internal/crud"
	"github.com/lokalku/lokalku/internal/domain"
	"github.com/lokalku/lokalku/internal/pkg"
)

// Repository stores business profiles.
type Repository struct {
	inner *pkg.Repository[domain.Business]
}

// NewRepository creates a business repository backed by the given database.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		inner: pkg.NewRepository[domain.Business](db, pkg.RepositoryConfig{
			SortFields:   []string{"name", "created_at"},
			SearchFields: []string{"name", "description", "address"},
			Preloads:     []string{"Province", "City"},
		}),
	}
}

// List returns one page of businesses.
func (r *Repository) List(ctx context.Context, q crud.Query) (*crud.Page[domain.Business], error) {
	return r.inner.List(ctx, q)
}

// GetByID retrieves a business by ID.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Business, error) {
	return r.inner.GetByID(ctx, id)
}

// GetByOwner retrieves the business owned by the given user.
func (r *Repository) GetByOwner(ctx context.Context, ownerID string) (*domain.Business, error) {
	var b domain.Business
	query := r.inner.DB().WithContext(ctx).Preload("Province").Preload("City")
	if err := query.First(&b, "owner_id = ?", ownerID).Error; err != nil {
		return nil, pkg.MapError(err)
	}
	return &b, nil
}

// Create inserts a new business. The unique index on owner_id enforces one
// profile per owner at the database level.
func (r *Repository) Create(ctx context.Context, b *domain.Business) error {
	return r.inner.Create(ctx, b)
}

// Update saves changes to an existing business.
func (r *Repository) Update(ctx context.Context, b *domain.Business) error {
	return r.inner.Update(ctx, b)
}

// Delete removes a business by ID.
func (r *Repository) Delete(ctx context.Context, id string) error {
	return r.inner.Delete(ctx, id)
}
