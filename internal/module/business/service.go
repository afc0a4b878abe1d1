package business

import (
	"context"
	"strings"

	"github.com/lokalku/lokalku/internal/crud"
	"github.com/lokalku/lokalku/internal/domain"
)

// Service exposes business profile operations. Mutations are scoped to the
// acting user: owners manage only their own profile, admins manage any.
type Service interface {
	List(ctx context.Context, q crud.Query) (*crud.Page[domain.Business], error)
	Get(ctx context.Context, id string) (*domain.Business, error)
	GetMine(ctx context.Context, actor domain.Actor) (*domain.Business, error)
	Create(ctx context.Context, actor domain.Actor, req Request) (*domain.Business, error)
	Update(ctx context.Context, actor domain.Actor, id string, req Request) (*domain.Business, error)
	Delete(ctx context.Context, actor domain.Actor, id string) error
}

type service struct {
	repo *Repository
}

// NewService creates a business service over the given repository.
func NewService(repo *Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, q crud.Query) (*crud.Page[domain.Business], error) {
	return s.repo.List(ctx, q)
}

func (s *service) Get(ctx context.Context, id string) (*domain.Business, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetMine(ctx context.Context, actor domain.Actor) (*domain.Business, error) {
	return s.repo.GetByOwner(ctx, actor.ID)
}

func (s *service) Create(ctx context.Context, actor domain.Actor, req Request) (*domain.Business, error) {
	b := &domain.Business{OwnerID: actor.ID}
	apply(b, req)

	if err := s.repo.Create(ctx, b); err != nil {
		if domain.IsAlreadyExists(err) {
			return nil, domain.NewAppError(domain.CodeAlreadyExists, "owner already has a business profile", err)
		}
		return nil, err
	}
	return b, nil
}

func (s *service) Update(ctx context.Context, actor domain.Actor, id string, req Request) (*domain.Business, error) {
	b, err := s.authorize(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	apply(b, req)
	b.Province = nil
	b.City = nil
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) Delete(ctx context.Context, actor domain.Actor, id string) error {
	if _, err := s.authorize(ctx, actor, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// authorize loads the business and checks the actor may mutate it.
func (s *service) authorize(ctx context.Context, actor domain.Actor, id string) (*domain.Business, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && b.OwnerID != actor.ID {
		return nil, domain.ErrForbidden
	}
	return b, nil
}

func apply(b *domain.Business, req Request) {
	b.Name = strings.TrimSpace(req.Name)
	b.Description = strings.TrimSpace(req.Description)
	b.Address = strings.TrimSpace(req.Address)
	b.Phone = strings.TrimSpace(req.Phone)
	b.LogoURL = strings.TrimSpace(req.LogoURL)
	b.ProvinceID = req.ProvinceID
	b.CityID = req.CityID
}
