package repository

import (
	"context"

	"github.com/oksasatya/blinkmaid-backend/internal/domain/entity"
)

type LocationRepository interface {
	ListStates(ctx context.Context) ([]entity.State, error)
	GetState(ctx context.Context, id int64) (*entity.State, error)
	CreateState(ctx context.Context, s *entity.State) error
	UpdateState(ctx context.Context, s *entity.State) error
	DeleteState(ctx context.Context, id int64) error

	ListCities(ctx context.Context) ([]entity.City, error)
	GetCity(ctx context.Context, id int64) (*entity.City, error)
	CreateCity(ctx context.Context, c *entity.City) error
	UpdateCity(ctx context.Context, c *entity.City) error
	DeleteCity(ctx context.Context, id int64) error
}

// CatalogRepository covers services and their priced options.
// Service reads include options.
type CatalogRepository interface {
	ListServices(ctx context.Context) ([]entity.Service, error)
	GetService(ctx context.Context, id int64) (*entity.Service, error)
	CreateService(ctx context.Context, s *entity.Service) error
	UpdateService(ctx context.Context, s *entity.Service) error
	DeleteService(ctx context.Context, id int64) error

	ListOptions(ctx context.Context) ([]entity.ServiceOption, error)
	GetOption(ctx context.Context, id int64) (*entity.ServiceOption, error)
	CreateOption(ctx context.Context, o *entity.ServiceOption) error
	UpdateOption(ctx context.Context, o *entity.ServiceOption) error
	DeleteOption(ctx context.Context, id int64) error
}

type PlanRepository interface {
	List(ctx context.Context) ([]entity.SubscriptionPlan, error)
	Get(ctx context.Context, id int64) (*entity.SubscriptionPlan, error)
	Create(ctx context.Context, p *entity.SubscriptionPlan) error
	Update(ctx context.Context, p *entity.SubscriptionPlan) error
	Delete(ctx context.Context, id int64) error
}

type ContactRepository interface {
	Create(ctx context.Context, m *entity.ContactMessage) error
	// List returns messages newest first.
	List(ctx context.Context) ([]entity.ContactMessage, error)
	Count(ctx context.Context) (int, error)
}
