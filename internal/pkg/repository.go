package pkg

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/lokalku/lokalku/internal/crud"
	"github.com/lokalku/lokalku/internal/domain"
)

// RepositoryConfig declares the per-entity parameters of a generic
// repository: which columns may be sorted on, which columns a search term
// matches against, and which associations are preloaded on reads.
type RepositoryConfig struct {
	SortFields   []string
	SearchFields []string
	Preloads     []string
	PerPage      int
}

// Repository is a generic GORM-backed store for one entity collection.
// It implements the list/get/create/update/delete workflow every entity
// screen needs; entity repositories wrap it with foreign-key scopes and
// entity-specific lookups.
type Repository[T any] struct {
	db  *gorm.DB
	cfg RepositoryConfig
}

// NewRepository creates a Repository over the given database handle.
func NewRepository[T any](db *gorm.DB, cfg RepositoryConfig) *Repository[T] {
	if cfg.PerPage <= 0 {
		cfg.PerPage = defaultPerPage
	}
	if cfg.PerPage > maxPerPage {
		cfg.PerPage = maxPerPage
	}
	return &Repository[T]{db: db, cfg: cfg}
}

// DB exposes the underlying handle for entity-specific queries that fall
// outside the generic workflow (aggregations, bulk operations).
func (r *Repository[T]) DB() *gorm.DB {
	return r.db
}

// List returns one paginated, searched, and sorted page of the collection.
// Extra scopes narrow the collection before pagination, e.g. a foreign-key
// or ownership filter.
func (r *Repository[T]) List(ctx context.Context, q crud.Query, scopes ...func(*gorm.DB) *gorm.DB) (*crud.Page[T], error) {
	q = q.Normalize()

	var model T
	base := r.db.WithContext(ctx).Model(&model).
		Scopes(scopes...).
		Scopes(Search(q, r.cfg.SearchFields))

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, MapError(err)
	}

	query := base.Scopes(
		Paginate(q, r.cfg.PerPage),
		Sort(q, r.cfg.SortFields),
	)
	for _, p := range r.cfg.Preloads {
		query = query.Preload(p)
	}

	var items []T
	if err := query.Find(&items).Error; err != nil {
		return nil, MapError(err)
	}

	return NewPage(items, total, q, r.cfg.PerPage), nil
}

// GetByID retrieves one record by its identity, with preloads applied.
func (r *Repository[T]) GetByID(ctx context.Context, id string) (*T, error) {
	query := r.db.WithContext(ctx)
	for _, p := range r.cfg.Preloads {
		query = query.Preload(p)
	}

	var record T
	if err := query.First(&record, "id = ?", id).Error; err != nil {
		return nil, MapError(err)
	}
	return &record, nil
}

// Create inserts a new record.
func (r *Repository[T]) Create(ctx context.Context, record *T) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return MapError(err)
	}
	return nil
}

// Update saves changes to an existing record.
func (r *Repository[T]) Update(ctx context.Context, record *T) error {
	if err := r.db.WithContext(ctx).Save(record).Error; err != nil {
		return MapError(err)
	}
	return nil
}

// Delete removes a record by identity.
func (r *Repository[T]) Delete(ctx context.Context, id string) error {
	var model T
	result := r.db.WithContext(ctx).Delete(&model, "id = ?", id)
	if result.Error != nil {
		return MapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// MapError converts GORM errors to domain errors.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicateKeyError(err) {
		return domain.NewAppError(domain.CodeAlreadyExists, "already exists", err)
	}
	return domain.NewAppError(domain.CodeInternal, "database error", err)
}

// isDuplicateKeyError detects unique constraint violations by examining the
// error message. This is needed because not all GORM dialectors translate
// driver-level errors to gorm.ErrDuplicatedKey (e.g. the pure-Go SQLite driver).
func isDuplicateKeyError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "duplicate entry")
}
