package location

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/lokalku/lokalku/internal/crud"
	"github.com/lokalku/lokalku/internal/domain"
	"github.com/lokalku/lokalku/internal/module/business"
	"github.com/lokalku/lokalku/internal/pkg"
)

// Service exposes sales location operations. Owners manage locations of
// their own business only.
type Service interface {
	List(ctx context.Context, q crud.Query, businessID string) (*crud.Page[domain.SalesLocation], error)
	Get(ctx context.Context, id string) (*domain.SalesLocation, error)
	Create(ctx context.Context, actor domain.Actor, req Request) (*domain.SalesLocation, error)
	Update(ctx context.Context, actor domain.Actor, id string, req Request) (*domain.SalesLocation, error)
	Delete(ctx context.Context, actor domain.Actor, id string) error
}

type service struct {
	repo       *pkg.Repository[domain.SalesLocation]
	businesses *business.Repository
}

// NewService creates a sales location service backed by the given database.
func NewService(db *gorm.DB, businesses *business.Repository) Service {
	return &service{
		repo: pkg.NewRepository[domain.SalesLocation](db, pkg.RepositoryConfig{
			SortFields:   []string{"name", "created_at"},
			SearchFields: []string{"name", "address"},
		}),
		businesses: businesses,
	}
}

func (s *service) List(ctx context.Context, q crud.Query, businessID string) (*crud.Page[domain.SalesLocation], error) {
	var scopes []func(*gorm.DB) *gorm.DB
	if businessID != "" {
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("business_id = ?", businessID)
		})
	}
	return s.repo.List(ctx, q, scopes...)
}

func (s *service) Get(ctx context.Context, id string) (*domain.SalesLocation, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, actor domain.Actor, req Request) (*domain.SalesLocation, error) {
	b, err := s.businesses.GetByOwner(ctx, actor.ID)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.NewAppError(domain.CodeValidation, "create a business profile first", nil)
		}
		return nil, err
	}

	loc := &domain.SalesLocation{BusinessID: b.ID}
	apply(loc, req)
	if err := s.repo.Create(ctx, loc); err != nil {
		return nil, err
	}
	return loc, nil
}

func (s *service) Update(ctx context.Context, actor domain.Actor, id string, req Request) (*domain.SalesLocation, error) {
	loc, err := s.authorize(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	apply(loc, req)
	loc.Business = nil
	if err := s.repo.Update(ctx, loc); err != nil {
		return nil, err
	}
	return loc, nil
}

func (s *service) Delete(ctx context.Context, actor domain.Actor, id string) error {
	if _, err := s.authorize(ctx, actor, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) authorize(ctx context.Context, actor domain.Actor, id string) (*domain.SalesLocation, error) {
	loc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.IsAdmin() {
		return loc, nil
	}

	b, err := s.businesses.GetByID(ctx, loc.BusinessID)
	if err != nil {
		return nil, err
	}
	if b.OwnerID != actor.ID {
		return nil, domain.ErrForbidden
	}
	return loc, nil
}

func apply(loc *domain.SalesLocation, req Request) {
	loc.Name = strings.TrimSpace(req.Name)
	loc.Address = strings.TrimSpace(req.Address)
	loc.Latitude = *req.Latitude
	loc.Longitude = *req.Longitude
}
