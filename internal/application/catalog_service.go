package application

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/blinkmaid-backend/internal/domain/entity"
	repo "github.com/oksasatya/blinkmaid-backend/internal/domain/repository"
	"github.com/oksasatya/blinkmaid-backend/pkg/apperror"
)

var (
	ErrNameRequired    = apperror.Validation("name is required")
	ErrNegativePrice   = apperror.Validation("price must not be negative")
	ErrUnknownState    = apperror.Validation("state does not exist")
	ErrUnknownService  = apperror.Validation("service does not exist")
	ErrSlugTaken       = apperror.Conflict("service with this slug already exists.")
	ErrDurationMissing = apperror.Validation("duration_label is required")
)

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases s and joins its alphanumeric runs with hyphens.
func Slugify(s string) string {
	return strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(s), "-"), "-")
}

// CatalogService is the admin-managed reference data: locations, services with
// their priced options, and subscription plans.
type CatalogService struct {
	Locations repo.LocationRepository
	Catalog   repo.CatalogRepository
	Plans     repo.PlanRepository
	Logger    *logrus.Logger
}

func NewCatalogService(locations repo.LocationRepository, catalog repo.CatalogRepository, plans repo.PlanRepository, logger *logrus.Logger) *CatalogService {
	return &CatalogService{Locations: locations, Catalog: catalog, Plans: plans, Logger: logger}
}

func writeErr(err error, op string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repo.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, repo.ErrDuplicate):
		return apperror.Wrap(apperror.KindConflict, "duplicate record", err)
	}
	return apperror.Internal(op, err)
}

// States

func (s *CatalogService) ListStates(ctx context.Context) ([]entity.State, error) {
	out, err := s.Locations.ListStates(ctx)
	return out, writeErr(err, "list states")
}

func (s *CatalogService) GetState(ctx context.Context, id int64) (*entity.State, error) {
	st, err := s.Locations.GetState(ctx, id)
	return st, writeErr(err, "get state")
}

func (s *CatalogService) CreateState(ctx context.Context, st *entity.State) error {
	if st.Name = strings.TrimSpace(st.Name); st.Name == "" {
		return ErrNameRequired
	}
	return writeErr(s.Locations.CreateState(ctx, st), "create state")
}

func (s *CatalogService) UpdateState(ctx context.Context, st *entity.State) error {
	if st.Name = strings.TrimSpace(st.Name); st.Name == "" {
		return ErrNameRequired
	}
	return writeErr(s.Locations.UpdateState(ctx, st), "update state")
}

// DeleteState removes the state and, through the schema, its cities.
func (s *CatalogService) DeleteState(ctx context.Context, id int64) error {
	return writeErr(s.Locations.DeleteState(ctx, id), "delete state")
}

// Cities

func (s *CatalogService) ListCities(ctx context.Context) ([]entity.City, error) {
	out, err := s.Locations.ListCities(ctx)
	return out, writeErr(err, "list cities")
}

func (s *CatalogService) GetCity(ctx context.Context, id int64) (*entity.City, error) {
	c, err := s.Locations.GetCity(ctx, id)
	return c, writeErr(err, "get city")
}

func (s *CatalogService) validateCity(ctx context.Context, c *entity.City) error {
	if c.Name = strings.TrimSpace(c.Name); c.Name == "" {
		return ErrNameRequired
	}
	if _, err := s.Locations.GetState(ctx, c.StateID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrUnknownState
		}
		return apperror.Internal("get state", err)
	}
	return nil
}

func (s *CatalogService) CreateCity(ctx context.Context, c *entity.City) error {
	if err := s.validateCity(ctx, c); err != nil {
		return err
	}
	return writeErr(s.Locations.CreateCity(ctx, c), "create city")
}

func (s *CatalogService) UpdateCity(ctx context.Context, c *entity.City) error {
	if err := s.validateCity(ctx, c); err != nil {
		return err
	}
	return writeErr(s.Locations.UpdateCity(ctx, c), "update city")
}

func (s *CatalogService) DeleteCity(ctx context.Context, id int64) error {
	return writeErr(s.Locations.DeleteCity(ctx, id), "delete city")
}

// Services

func (s *CatalogService) ListServices(ctx context.Context) ([]entity.Service, error) {
	out, err := s.Catalog.ListServices(ctx)
	return out, writeErr(err, "list services")
}

func (s *CatalogService) GetService(ctx context.Context, id int64) (*entity.Service, error) {
	svc, err := s.Catalog.GetService(ctx, id)
	return svc, writeErr(err, "get service")
}

func prepareService(svc *entity.Service) error {
	if svc.Name = strings.TrimSpace(svc.Name); svc.Name == "" {
		return ErrNameRequired
	}
	if svc.Slug = Slugify(svc.Slug); svc.Slug == "" {
		svc.Slug = Slugify(svc.Name)
	}
	if svc.OptionalFields == nil {
		svc.OptionalFields = map[string]any{}
	}
	return nil
}

func serviceWriteErr(err error, op string) error {
	if errors.Is(err, repo.ErrDuplicate) {
		return ErrSlugTaken
	}
	return writeErr(err, op)
}

func (s *CatalogService) CreateService(ctx context.Context, svc *entity.Service) error {
	if err := prepareService(svc); err != nil {
		return err
	}
	if err := s.Catalog.CreateService(ctx, svc); err != nil {
		return serviceWriteErr(err, "create service")
	}
	if svc.Options == nil {
		svc.Options = []entity.ServiceOption{}
	}
	return nil
}

func (s *CatalogService) UpdateService(ctx context.Context, svc *entity.Service) error {
	if err := prepareService(svc); err != nil {
		return err
	}
	if err := s.Catalog.UpdateService(ctx, svc); err != nil {
		return serviceWriteErr(err, "update service")
	}
	fresh, err := s.Catalog.GetService(ctx, svc.ID)
	if err != nil {
		return writeErr(err, "get service")
	}
	*svc = *fresh
	return nil
}

// DeleteService removes the service and, through the schema, its options.
func (s *CatalogService) DeleteService(ctx context.Context, id int64) error {
	return writeErr(s.Catalog.DeleteService(ctx, id), "delete service")
}

// Service options

func (s *CatalogService) ListOptions(ctx context.Context) ([]entity.ServiceOption, error) {
	out, err := s.Catalog.ListOptions(ctx)
	return out, writeErr(err, "list service options")
}

func (s *CatalogService) GetOption(ctx context.Context, id int64) (*entity.ServiceOption, error) {
	o, err := s.Catalog.GetOption(ctx, id)
	return o, writeErr(err, "get service option")
}

func (s *CatalogService) validateOption(ctx context.Context, o *entity.ServiceOption) error {
	if o.DurationLabel = strings.TrimSpace(o.DurationLabel); o.DurationLabel == "" {
		return ErrDurationMissing
	}
	if o.Price < 0 {
		return ErrNegativePrice
	}
	if _, err := s.Catalog.GetService(ctx, o.ServiceID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrUnknownService
		}
		return apperror.Internal("get service", err)
	}
	return nil
}

func (s *CatalogService) CreateOption(ctx context.Context, o *entity.ServiceOption) error {
	if err := s.validateOption(ctx, o); err != nil {
		return err
	}
	return writeErr(s.Catalog.CreateOption(ctx, o), "create service option")
}

func (s *CatalogService) UpdateOption(ctx context.Context, o *entity.ServiceOption) error {
	if err := s.validateOption(ctx, o); err != nil {
		return err
	}
	return writeErr(s.Catalog.UpdateOption(ctx, o), "update service option")
}

func (s *CatalogService) DeleteOption(ctx context.Context, id int64) error {
	return writeErr(s.Catalog.DeleteOption(ctx, id), "delete service option")
}

// Subscription plans

func (s *CatalogService) ListPlans(ctx context.Context) ([]entity.SubscriptionPlan, error) {
	out, err := s.Plans.List(ctx)
	return out, writeErr(err, "list plans")
}

func (s *CatalogService) GetPlan(ctx context.Context, id int64) (*entity.SubscriptionPlan, error) {
	p, err := s.Plans.Get(ctx, id)
	return p, writeErr(err, "get plan")
}

func validatePlan(p *entity.SubscriptionPlan) error {
	if p.Name = strings.TrimSpace(p.Name); p.Name == "" {
		return ErrNameRequired
	}
	if p.Price < 0 {
		return ErrNegativePrice
	}
	return nil
}

func (s *CatalogService) CreatePlan(ctx context.Context, p *entity.SubscriptionPlan) error {
	if err := validatePlan(p); err != nil {
		return err
	}
	return writeErr(s.Plans.Create(ctx, p), "create plan")
}

func (s *CatalogService) UpdatePlan(ctx context.Context, p *entity.SubscriptionPlan) error {
	if err := validatePlan(p); err != nil {
		return err
	}
	return writeErr(s.Plans.Update(ctx, p), "update plan")
}

func (s *CatalogService) DeletePlan(ctx context.Context, id int64) error {
	return writeErr(s.Plans.Delete(ctx, id), "delete plan")
}
