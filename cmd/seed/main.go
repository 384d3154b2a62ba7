package main

import (
	"context"
	"errors"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/blinkmaid-backend/config"
	"github.com/oksasatya/blinkmaid-backend/internal/application"
	"github.com/oksasatya/blinkmaid-backend/internal/domain/entity"
	pginfra "github.com/oksasatya/blinkmaid-backend/internal/infrastructure/postgres"
	"github.com/oksasatya/blinkmaid-backend/pkg/helpers"
)

// seedConfig holds settings only the seed command reads.
type seedConfig struct {
	AdminEmail    string `env:"SEED_ADMIN_EMAIL" envDefault:"admin@blinkmaid.com"`
	AdminPassword string `env:"SEED_ADMIN_PASSWORD" envDefault:"password123"`
	SkipCatalog   bool   `env:"SEED_SKIP_CATALOG"`
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)
	ctx := context.Background()

	var sc seedConfig
	if err := env.Parse(&sc); err != nil {
		log.Fatalf("parse seed env: %v", err)
	}

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), 2, 1, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	users := pginfra.NewUserRepository(pool)
	userSvc := application.NewUserService(
		users,
		pginfra.NewProviderRepository(pool),
		pginfra.NewContactRepository(pool),
		helpers.NewBcryptHasher(cfg.BcryptCost),
		nil, nil, "", nil,
		logger,
		nil,
	)
	catalogSvc := application.NewCatalogService(
		pginfra.NewLocationRepository(pool),
		pginfra.NewCatalogRepository(pool),
		pginfra.NewPlanRepository(pool),
		logger,
	)

	if err := seedAdmin(ctx, userSvc, sc.AdminEmail, sc.AdminPassword, logger); err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}
	if sc.SkipCatalog {
		return
	}
	if err := seedCatalog(ctx, catalogSvc, logger); err != nil {
		log.Fatalf("failed to seed catalog: %v", err)
	}
}

func seedAdmin(ctx context.Context, svc *application.UserService, email, password string, logger *logrus.Logger) error {
	u, err := svc.Register(ctx, application.RegisterInput{
		Username:  "admin",
		Email:     email,
		Password:  password,
		Role:      string(entity.RoleAdmin),
		FirstName: "Blinkmaid",
		LastName:  "Admin",
	})
	if errors.Is(err, application.ErrEmailTaken) {
		logger.WithField("email", email).Info("admin already exists")
		return nil
	}
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{"id": u.ID, "email": email}).Info("seeded admin")
	return nil
}

func seedCatalog(ctx context.Context, svc *application.CatalogService, logger *logrus.Logger) error {
	states, err := svc.ListStates(ctx)
	if err != nil {
		return err
	}
	if len(states) > 0 {
		logger.Info("catalog already seeded")
		return nil
	}

	state := &entity.State{Name: "Karnataka", Active: true}
	if err := svc.CreateState(ctx, state); err != nil {
		return err
	}
	for _, name := range []string{"Bengaluru", "Mysuru"} {
		if err := svc.CreateCity(ctx, &entity.City{StateID: state.ID, Name: name, Active: true}); err != nil {
			return err
		}
	}

	type option struct {
		label string
		hours int
		price float64
	}
	services := []struct {
		name     string
		category string
		options  []option
	}{
		{"House Cleaning", "cleaning", []option{{"2 hours", 2, 499}, {"4 hours", 4, 899}}},
		{"Cooking", "kitchen", []option{{"Per meal", 1, 299}, {"Full day", 8, 1499}}},
		{"Baby Care", "care", []option{{"Half day", 4, 999}, {"Full day", 8, 1799}}},
	}
	for _, s := range services {
		svcEntity := &entity.Service{Name: s.name, Category: s.category, Active: true}
		if err := svc.CreateService(ctx, svcEntity); err != nil {
			return err
		}
		for _, o := range s.options {
			hours := o.hours
			opt := &entity.ServiceOption{ServiceID: svcEntity.ID, DurationLabel: o.label, DurationHours: &hours, Price: o.price}
			if err := svc.CreateOption(ctx, opt); err != nil {
				return err
			}
		}
	}

	plans := []entity.SubscriptionPlan{
		{Name: "Basic", Price: 2999, Description: "Weekly cleaning visits", Active: true},
		{Name: "Premium", Price: 7999, Description: "Daily help with cooking and cleaning", Active: true},
	}
	for i := range plans {
		if err := svc.CreatePlan(ctx, &plans[i]); err != nil {
			return err
		}
	}
	logger.WithFields(logrus.Fields{"services": len(services), "plans": len(plans)}).Info("seeded catalog")
	return nil
}
