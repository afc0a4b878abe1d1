package region

import (
	"context"

	"gorm.io/gorm"

	"github.com/lokalku/lokalku/internal/crud"
	"github.com/lokalku/lokalku/internal/domain"
	"github.com/lokalku/lokalku/internal/pkg"
)

// Repository stores provinces and cities.
type Repository struct {
	provinces *pkg.Repository[domain.Province]
	cities    *pkg.Repository[domain.City]
}

// NewRepository creates a region repository backed by the given database.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		provinces: pkg.NewRepository[domain.Province](db, pkg.RepositoryConfig{
			SortFields:   []string{"name", "created_at"},
			SearchFields: []string{"name"},
		}),
		cities: pkg.NewRepository[domain.City](db, pkg.RepositoryConfig{
			SortFields:   []string{"name", "created_at"},
			SearchFields: []string{"name"},
			Preloads:     []string{"Province"},
		}),
	}
}

// ListProvinces returns one page of provinces.
func (r *Repository) ListProvinces(ctx context.Context, q crud.Query) (*crud.Page[domain.Province], error) {
	return r.provinces.List(ctx, q)
}

// GetProvince retrieves a province by ID.
func (r *Repository) GetProvince(ctx context.Context, id string) (*domain.Province, error) {
	return r.provinces.GetByID(ctx, id)
}

// CreateProvince inserts a new province.
func (r *Repository) CreateProvince(ctx context.Context, p *domain.Province) error {
	return r.provinces.Create(ctx, p)
}

// UpdateProvince saves changes to an existing province.
func (r *Repository) UpdateProvince(ctx context.Context, p *domain.Province) error {
	return r.provinces.Update(ctx, p)
}

// DeleteProvince removes a province by ID.
func (r *Repository) DeleteProvince(ctx context.Context, id string) error {
	return r.provinces.Delete(ctx, id)
}

// ListCities returns one page of cities. A non-empty provinceID narrows the
// collection to that province before pagination.
func (r *Repository) ListCities(ctx context.Context, q crud.Query, provinceID string) (*crud.Page[domain.City], error) {
	var scopes []func(*gorm.DB) *gorm.DB
	if provinceID != "" {
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("province_id = ?", provinceID)
		})
	}
	return r.cities.List(ctx, q, scopes...)
}

// GetCity retrieves a city by ID.
func (r *Repository) GetCity(ctx context.Context, id string) (*domain.City, error) {
	return r.cities.GetByID(ctx, id)
}

// CreateCity inserts a new city.
func (r *Repository) CreateCity(ctx context.Context, city *domain.City) error {
	return r.cities.Create(ctx, city)
}

// UpdateCity saves changes to an existing city.
func (r *Repository) UpdateCity(ctx context.Context, city *domain.City) error {
	return r.cities.Update(ctx, city)
}

// DeleteCity removes a city by ID.
func (r *Repository) DeleteCity(ctx context.Context, id string) error {
	return r.cities.Delete(ctx, id)
}
