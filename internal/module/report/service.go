package report

import (
	"context"
	"strings"
	"time"

	"github.com/lokalku/lokalku/internal/crud"
	"github.com/lokalku/lokalku/internal/domain"
	"github.com/lokalku/lokalku/internal/module/business"
)

// Service exposes monthly sales report operations. Owners report for their
// own business; admins read everything.
type Service interface {
	List(ctx context.Context, actor domain.Actor, q crud.Query, businessID string) (*crud.Page[domain.SalesReport], error)
	Get(ctx context.Context, actor domain.Actor, id string) (*domain.SalesReport, error)
	Create(ctx context.Context, actor domain.Actor, req Request) (*domain.SalesReport, error)
	Update(ctx context.Context, actor domain.Actor, id string, req Request) (*domain.SalesReport, error)
	Delete(ctx context.Context, actor domain.Actor, id string) error
	BulkUpsert(ctx context.Context, actor domain.Actor, req BulkRequest) ([]domain.SalesReport, error)
	Export(ctx context.Context, actor domain.Actor, businessID string) (*Summary, error)
}

type service struct {
	repo       *Repository
	businesses *business.Repository
}

// NewService creates a report service over the given repositories.
func NewService(repo *Repository, businesses *business.Repository) Service {
	return &service{repo: repo, businesses: businesses}
}

// parsePeriod validates the YYYY-MM form and rejects months that do not
// exist.
func parsePeriod(period string) (string, error) {
	period = strings.TrimSpace(period)
	if _, err := time.Parse("2006-01", period); err != nil {
		return "", domain.NewAppError(domain.CodeValidation, "period must use the YYYY-MM form", nil)
	}
	return period, nil
}

func (s *service) List(ctx context.Context, actor domain.Actor, q crud.Query, businessID string) (*crud.Page[domain.SalesReport], error) {
	if !actor.IsAdmin() {
		// Owners only ever see their own business's reports.
		b, err := s.businesses.GetByOwner(ctx, actor.ID)
		if err != nil {
			return nil, err
		}
		businessID = b.ID
	}
	return s.repo.List(ctx, q, businessID)
}

func (s *service) Get(ctx context.Context, actor domain.Actor, id string) (*domain.SalesReport, error) {
	return s.authorize(ctx, actor, id)
}

func (s *service) Create(ctx context.Context, actor domain.Actor, req Request) (*domain.SalesReport, error) {
	period, err := parsePeriod(req.Period)
	if err != nil {
		return nil, err
	}

	b, err := s.ownBusiness(ctx, actor)
	if err != nil {
		return nil, err
	}

	rep := &domain.SalesReport{
		BusinessID: b.ID,
		Period:     period,
		Revenue:    req.Revenue,
		UnitsSold:  req.UnitsSold,
		Notes:      strings.TrimSpace(req.Notes),
	}
	if err := s.repo.Create(ctx, rep); err != nil {
		if domain.IsAlreadyExists(err) {
			return nil, domain.NewAppError(domain.CodeAlreadyExists, "a report for this period already exists", err)
		}
		return nil, err
	}
	return rep, nil
}

func (s *service) Update(ctx context.Context, actor domain.Actor, id string, req Request) (*domain.SalesReport, error) {
	period, err := parsePeriod(req.Period)
	if err != nil {
		return nil, err
	}

	rep, err := s.authorize(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	rep.Period = period
	rep.Revenue = req.Revenue
	rep.UnitsSold = req.UnitsSold
	rep.Notes = strings.TrimSpace(req.Notes)
	rep.Business = nil
	if err := s.repo.Update(ctx, rep); err != nil {
		if domain.IsAlreadyExists(err) {
			return nil, domain.NewAppError(domain.CodeAlreadyExists, "a report for this period already exists", err)
		}
		return nil, err
	}
	return rep, nil
}

func (s *service) Delete(ctx context.Context, actor domain.Actor, id string) error {
	if _, err := s.authorize(ctx, actor, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// BulkUpsert writes a batch of monthly reports for the acting owner's
// business atomically.
func (s *service) BulkUpsert(ctx context.Context, actor domain.Actor, req BulkRequest) ([]domain.SalesReport, error) {
	b, err := s.ownBusiness(ctx, actor)
	if err != nil {
		return nil, err
	}

	reports := make([]domain.SalesReport, 0, len(req.Reports))
	for _, r := range req.Reports {
		period, err := parsePeriod(r.Period)
		if err != nil {
			return nil, err
		}
		reports = append(reports, domain.SalesReport{
			Period:    period,
			Revenue:   r.Revenue,
			UnitsSold: r.UnitsSold,
			Notes:     strings.TrimSpace(r.Notes),
		})
	}

	if err := s.repo.BulkUpsert(ctx, b.ID, reports); err != nil {
		return nil, err
	}
	return reports, nil
}

// Export gathers every report of one business into a summary for the PDF
// renderer. Owners export their own business; admins export any.
func (s *service) Export(ctx context.Context, actor domain.Actor, businessID string) (*Summary, error) {
	var b *domain.Business
	var err error
	if actor.IsAdmin() && businessID != "" {
		b, err = s.businesses.GetByID(ctx, businessID)
	} else {
		b, err = s.ownBusiness(ctx, actor)
	}
	if err != nil {
		return nil, err
	}

	reports, err := s.repo.AllForBusiness(ctx, b.ID)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		BusinessName: b.Name,
		GeneratedAt:  time.Now(),
		Reports:      reports,
	}
	for _, r := range reports {
		summary.TotalRevenue += r.Revenue
		summary.TotalUnits += r.UnitsSold
	}
	return summary, nil
}

func (s *service) ownBusiness(ctx context.Context, actor domain.Actor) (*domain.Business, error) {
	b, err := s.businesses.GetByOwner(ctx, actor.ID)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.NewAppError(domain.CodeValidation, "create a business profile first", nil)
		}
		return nil, err
	}
	return b, nil
}

func (s *service) authorize(ctx context.Context, actor domain.Actor, id string) (*domain.SalesReport, error) {
	rep, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.IsAdmin() {
		return rep, nil
	}

	b, err := s.businesses.GetByID(ctx, rep.BusinessID)
	if err != nil {
		return nil, err
	}
	if b.OwnerID != actor.ID {
		return nil, domain.ErrForbidden
	}
	return rep, nil
}
