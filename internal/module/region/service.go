package region

import (
	"context"
	"strings"

	"github.com/lokalku/lokalku/internal/crud"
	"github.com/lokalku/lokalku/internal/domain"
)

// Service exposes province and city operations.
type Service interface {
	ListProvinces(ctx context.Context, q crud.Query) (*crud.Page[domain.Province], error)
	GetProvince(ctx context.Context, id string) (*domain.Province, error)
	CreateProvince(ctx context.Context, name string) (*domain.Province, error)
	UpdateProvince(ctx context.Context, id, name string) (*domain.Province, error)
	DeleteProvince(ctx context.Context, id string) error

	ListCities(ctx context.Context, q crud.Query, provinceID string) (*crud.Page[domain.City], error)
	GetCity(ctx context.Context, id string) (*domain.City, error)
	CreateCity(ctx context.Context, provinceID, name string) (*domain.City, error)
	UpdateCity(ctx context.Context, id, provinceID, name string) (*domain.City, error)
	DeleteCity(ctx context.Context, id string) error
}

type service struct {
	repo *Repository
}

// NewService creates a region service over the given repository.
func NewService(repo *Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListProvinces(ctx context.Context, q crud.Query) (*crud.Page[domain.Province], error) {
	return s.repo.ListProvinces(ctx, q)
}

func (s *service) GetProvince(ctx context.Context, id string) (*domain.Province, error) {
	return s.repo.GetProvince(ctx, id)
}

func (s *service) CreateProvince(ctx context.Context, name string) (*domain.Province, error) {
	province := &domain.Province{Name: strings.TrimSpace(name)}
	if err := s.repo.CreateProvince(ctx, province); err != nil {
		return nil, err
	}
	return province, nil
}

func (s *service) UpdateProvince(ctx context.Context, id, name string) (*domain.Province, error) {
	province, err := s.repo.GetProvince(ctx, id)
	if err != nil {
		return nil, err
	}

	province.Name = strings.TrimSpace(name)
	if err := s.repo.UpdateProvince(ctx, province); err != nil {
		return nil, err
	}
	return province, nil
}

func (s *service) DeleteProvince(ctx context.Context, id string) error {
	return s.repo.DeleteProvince(ctx, id)
}

func (s *service) ListCities(ctx context.Context, q crud.Query, provinceID string) (*crud.Page[domain.City], error) {
	return s.repo.ListCities(ctx, q, provinceID)
}

func (s *service) GetCity(ctx context.Context, id string) (*domain.City, error) {
	return s.repo.GetCity(ctx, id)
}

func (s *service) CreateCity(ctx context.Context, provinceID, name string) (*domain.City, error) {
	// The province must exist before a city can reference it.
	if _, err := s.repo.GetProvince(ctx, provinceID); err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.NewAppError(domain.CodeValidation, "province not found", nil)
		}
		return nil, err
	}

	city := &domain.City{ProvinceID: provinceID, Name: strings.TrimSpace(name)}
	if err := s.repo.CreateCity(ctx, city); err != nil {
		return nil, err
	}
	return city, nil
}

func (s *service) UpdateCity(ctx context.Context, id, provinceID, name string) (*domain.City, error) {
	city, err := s.repo.GetCity(ctx, id)
	if err != nil {
		return nil, err
	}

	if provinceID != city.ProvinceID {
		if _, err := s.repo.GetProvince(ctx, provinceID); err != nil {
			if domain.IsNotFound(err) {
				return nil, domain.NewAppError(domain.CodeValidation, "province not found", nil)
			}
			return nil, err
		}
	}

	city.ProvinceID = provinceID
	city.Name = strings.TrimSpace(name)
	city.Province = nil
	if err := s.repo.UpdateCity(ctx, city); err != nil {
		return nil, err
	}
	return city, nil
}

func (s *service) DeleteCity(ctx context.Context, id string) error {
	return s.repo.DeleteCity(ctx, id)
}
