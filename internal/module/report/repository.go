package report

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/lokalku/lokalku/internal/crud"
	"github.com/lokalku/lokalku/internal/domain"
	"github.com/lokalku/lokalku/internal/pkg"
)

// Repository stores monthly sales reports.
type Repository struct {
	inner *pkg.Repository[domain.SalesReport]
}

// NewRepository creates a report repository backed by the given database.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		inner: pkg.NewRepository[domain.SalesReport](db, pkg.RepositoryConfig{
			SortFields:   []string{"period", "revenue", "units_sold", "created_at"},
			SearchFields: []string{"period", "notes"},
		}),
	}
}

// List returns one page of reports, optionally narrowed to one business.
func (r *Repository) List(ctx context.Context, q crud.Query, businessID string) (*crud.Page[domain.SalesReport], error) {
	var scopes []func(*gorm.DB) *gorm.DB
	if businessID != "" {
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("business_id = ?", businessID)
		})
	}
	return r.inner.List(ctx, q, scopes...)
}

// GetByID retrieves a report by ID.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.SalesReport, error) {
	return r.inner.GetByID(ctx, id)
}

// Create inserts a new report. The composite unique index on business and
// period rejects a second report for the same month.
func (r *Repository) Create(ctx context.Context, rep *domain.SalesReport) error {
	return r.inner.Create(ctx, rep)
}

// Update saves changes to an existing report.
func (r *Repository) Update(ctx context.Context, rep *domain.SalesReport) error {
	return r.inner.Update(ctx, rep)
}

// Delete removes a report by ID.
func (r *Repository) Delete(ctx context.Context, id string) error {
	return r.inner.Delete(ctx, id)
}

// AllForBusiness returns every report of one business ordered by period,
// for exports and bulk operations.
func (r *Repository) AllForBusiness(ctx context.Context, businessID string) ([]domain.SalesReport, error) {
	var reports []domain.SalesReport
	err := r.inner.DB().WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("period").
		Find(&reports).Error
	if err != nil {
		return nil, pkg.MapError(err)
	}
	return reports, nil
}

// BulkUpsert writes a batch of reports for one business in a single
// transaction. Existing periods are updated in place; new periods are
// inserted. A failure anywhere rolls back the whole batch.
func (r *Repository) BulkUpsert(ctx context.Context, businessID string, reports []domain.SalesReport) error {
	return pkg.WithTx(r.inner.DB().WithContext(ctx), func(tx *gorm.DB) error {
		for i := range reports {
			rep := &reports[i]
			rep.BusinessID = businessID

			var existing domain.SalesReport
			err := tx.Where("business_id = ? AND period = ?", businessID, rep.Period).
				First(&existing).Error
			switch {
			case err == nil:
				existing.Revenue = rep.Revenue
				existing.UnitsSold = rep.UnitsSold
				existing.Notes = rep.Notes
				if err := tx.Save(&existing).Error; err != nil {
					return pkg.MapError(err)
				}
				*rep = existing
			case errors.Is(err, gorm.ErrRecordNotFound):
				if err := tx.Create(rep).Error; err != nil {
					return pkg.MapError(err)
				}
			default:
				return pkg.MapError(err)
			}
		}
		return nil
	})
}
