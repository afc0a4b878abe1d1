package category

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/lokalku/lokalku/internal/crud"
	"github.com/lokalku/lokalku/internal/domain"
	"github.com/lokalku/lokalku/internal/pkg"
)

// Service exposes category operations.
type Service interface {
	List(ctx context.Context, q crud.Query) (*crud.Page[domain.Category], error)
	Get(ctx context.Context, id string) (*domain.Category, error)
	Create(ctx context.Context, req Request) (*domain.Category, error)
	Update(ctx context.Context, id string, req Request) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo *pkg.Repository[domain.Category]
}

// NewService creates a category service backed by the given database.
func NewService(db *gorm.DB) Service {
	return &service{
		repo: pkg.NewRepository[domain.Category](db, pkg.RepositoryConfig{
			SortFields:   []string{"name", "created_at"},
			SearchFields: []string{"name", "description"},
		}),
	}
}

func (s *service) List(ctx context.Context, q crud.Query) (*crud.Page[domain.Category], error) {
	return s.repo.List(ctx, q)
}

func (s *service) Get(ctx context.Context, id string) (*domain.Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, req Request) (*domain.Category, error) {
	category := &domain.Category{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
	}
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *service) Update(ctx context.Context, id string, req Request) (*domain.Category, error) {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category.Name = strings.TrimSpace(req.Name)
	category.Description = strings.TrimSpace(req.Description)
	if err := s.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
