package catalog

import (
	"context"

	"github.com/lokalku/lokalku/internal/crud"
	"github.com/lokalku/lokalku/internal/domain"
	"github.com/lokalku/lokalku/internal/module/business"
	"github.com/lokalku/lokalku/internal/module/location"
	"github.com/lokalku/lokalku/internal/module/product"
)

// BusinessDetail is the public view of one business with its catalog and
// selling points.
type BusinessDetail struct {
	Business  *domain.Business       `json:"business"`
	Products  []domain.Product       `json:"products"`
	Locations []domain.SalesLocation `json:"locations"`
}

// Service exposes the public promotion catalog. It is read-only and joins
// the product and business stores.
type Service interface {
	Promoted(ctx context.Context, q crud.Query, categoryID string) (*crud.Page[domain.Product], error)
	BusinessDetail(ctx context.Context, id string) (*BusinessDetail, error)
}

type service struct {
	products   *product.Repository
	businesses *business.Repository
	locations  location.Service
}

// NewService creates a catalog service over the given repositories.
func NewService(products *product.Repository, businesses *business.Repository, locations location.Service) Service {
	return &service{products: products, businesses: businesses, locations: locations}
}

// Promoted lists promoted products across all businesses, optionally
// narrowed to one category.
func (s *service) Promoted(ctx context.Context, q crud.Query, categoryID string) (*crud.Page[domain.Product], error) {
	return s.products.List(ctx, q, product.Filter{
		CategoryID:   categoryID,
		PromotedOnly: true,
	})
}

// BusinessDetail returns one business together with its full product list
// and selling points.
func (s *service) BusinessDetail(ctx context.Context, id string) (*BusinessDetail, error) {
	b, err := s.businesses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	page, err := s.products.List(ctx, crud.Query{Page: 1, SortField: "name", SortOrder: crud.SortAsc},
		product.Filter{BusinessID: id})
	if err != nil {
		return nil, err
	}

	locs, err := s.locations.List(ctx, crud.Query{Page: 1, SortField: "name", SortOrder: crud.SortAsc}, id)
	if err != nil {
		return nil, err
	}

	return &BusinessDetail{Business: b, Products: page.Data, Locations: locs.Data}, nil
}
