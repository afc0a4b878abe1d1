package product

import (
	"context"

	"gorm.io/gorm"

	"github.com/lokalku/lokalku/internal/crud"
	"github.com/lokalku/lokalku/internal/domain"
	"github.com/lokalku/lokalku/internal/pkg"
)

// Filter narrows product lists.
type Filter struct {
	BusinessID   string
	CategoryID   string
	PromotedOnly bool
}

// Repository stores products.
type Repository struct {
	inner *pkg.Repository[domain.Product]
}

// NewRepository creates a product repository backed by the given database.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		inner: pkg.NewRepository[domain.Product](db, pkg.RepositoryConfig{
			SortFields:   []string{"name", "price", "created_at"},
			SearchFields: []string{"name", "description"},
			Preloads:     []string{"Business", "Category"},
		}),
	}
}

// List returns one page of products matching the filter.
func (r *Repository) List(ctx context.Context, q crud.Query, f Filter) (*crud.Page[domain.Product], error) {
	return r.inner.List(ctx, q, func(db *gorm.DB) *gorm.DB {
		if f.BusinessID != "" {
			db = db.Where("business_id = ?", f.BusinessID)
		}
		if f.CategoryID != "" {
			db = db.Where("category_id = ?", f.CategoryID)
		}
		if f.PromotedOnly {
			db = db.Where("promoted = ?", true)
		}
		return db
	})
}

// GetByID retrieves a product by ID.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	return r.inner.GetByID(ctx, id)
}

// Create inserts a new product.
func (r *Repository) Create(ctx context.Context, p *domain.Product) error {
	return r.inner.Create(ctx, p)
}

// Update saves changes to an existing product.
func (r *Repository) Update(ctx context.Context, p *domain.Product) error {
	return r.inner.Update(ctx, p)
}

// Delete removes a product by ID.
func (r *Repository) Delete(ctx context.Context, id string) error {
	return r.inner.Delete(ctx, id)
}
