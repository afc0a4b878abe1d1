package product

import (
	"context"
	"strings"

	"github.com/lokalku/lokalku/internal/crud"
	"github.com/lokalku/lokalku/internal/domain"
	"github.com/lokalku/lokalku/internal/module/business"
)

// Service exposes product catalog operations. Owners manage products of
// their own business only; promotion is an admin curation action.
type Service interface {
	List(ctx context.Context, q crud.Query, f Filter) (*crud.Page[domain.Product], error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, actor domain.Actor, req Request) (*domain.Product, error)
	Update(ctx context.Context, actor domain.Actor, id string, req Request) (*domain.Product, error)
	Delete(ctx context.Context, actor domain.Actor, id string) error
	SetPromoted(ctx context.Context, id string, promoted bool) (*domain.Product, error)
}

type service struct {
	repo       *Repository
	businesses *business.Repository
}

// NewService creates a product service over the given repositories.
func NewService(repo *Repository, businesses *business.Repository) Service {
	return &service{repo: repo, businesses: businesses}
}

func (s *service) List(ctx context.Context, q crud.Query, f Filter) (*crud.Page[domain.Product], error) {
	return s.repo.List(ctx, q, f)
}

func (s *service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// Create attaches the product to the acting owner's business.
func (s *service) Create(ctx context.Context, actor domain.Actor, req Request) (*domain.Product, error) {
	b, err := s.businesses.GetByOwner(ctx, actor.ID)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.NewAppError(domain.CodeValidation, "create a business profile first", nil)
		}
		return nil, err
	}

	p := &domain.Product{BusinessID: b.ID}
	apply(p, req)
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) Update(ctx context.Context, actor domain.Actor, id string, req Request) (*domain.Product, error) {
	p, err := s.authorize(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	apply(p, req)
	p.Business = nil
	p.Category = nil
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) Delete(ctx context.Context, actor domain.Actor, id string) error {
	if _, err := s.authorize(ctx, actor, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// SetPromoted flips the promotion flag. Route-level guards restrict this to
// admins.
func (s *service) SetPromoted(ctx context.Context, id string, promoted bool) (*domain.Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p.Promoted = promoted
	p.Business = nil
	p.Category = nil
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// authorize loads the product and checks the actor owns its business or is
// an admin.
func (s *service) authorize(ctx context.Context, actor domain.Actor, id string) (*domain.Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.IsAdmin() {
		return p, nil
	}

	b, err := s.businesses.GetByID(ctx, p.BusinessID)
	if err != nil {
		return nil, err
	}
	if b.OwnerID != actor.ID {
		return nil, domain.ErrForbidden
	}
	return p, nil
}

func apply(p *domain.Product, req Request) {
	p.CategoryID = req.CategoryID
	p.Name = strings.TrimSpace(req.Name)
	p.Description = strings.TrimSpace(req.Description)
	p.Price = req.Price
	p.ImageURL = strings.TrimSpace(req.ImageURL)
}
