package router

import (
	"github.com/oksasatya/blinkmaid-backend/internal/application"
	"github.com/oksasatya/blinkmaid-backend/internal/container"
	"github.com/oksasatya/blinkmaid-backend/internal/infrastructure/delivery"
	pginfra "github.com/oksasatya/blinkmaid-backend/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/blinkmaid-backend/internal/interface/http"
	"github.com/oksasatya/blinkmaid-backend/internal/router/modules"
	"github.com/oksasatya/blinkmaid-backend/pkg/helpers"
	"github.com/oksasatya/blinkmaid-backend/pkg/mailer"
)

// Handlers groups every HTTP handler built from the container.
type Handlers struct {
	OTP      *handlers.OTPHandler
	Auth     *handlers.AuthHandler
	User     *handlers.UserHandler
	Catalog  *handlers.CatalogHandler
	Provider *handlers.ProviderHandler
	Contact  *handlers.ContactHandler
}

func buildHandlers() Handlers {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	users := pginfra.NewUserRepository(pool)
	providers := pginfra.NewProviderRepository(pool)
	contacts := pginfra.NewContactRepository(pool)
	hasher := helpers.NewBcryptHasher(cfg.BcryptCost)
	index := application.NewProviderIndex(container.GetES(), cfg.ESProvidersIndex, logger)

	// interface fields must stay nil rather than hold typed nil pointers
	var queue delivery.Publisher
	if pub := container.GetRabbitPub(); pub != nil {
		queue = pub
	}
	var mail mailer.Sender
	if mg := container.GetMailgun(); mg != nil {
		mail = mg
	}
	gateway := delivery.NewGateway(cfg, queue, mail, container.GetSMS(), logger)

	ledger := application.NewOTPLedger(
		pginfra.NewOTPRepository(pool),
		helpers.NewOTPGenerator(cfg.OTPDigits),
		cfg.OTPTTL,
		nil,
	)
	resetSvc := application.NewResetService(users, ledger, hasher, gateway, logger, cfg.AppName, cfg.DeliveryTimeout)

	userSvc := application.NewUserService(
		users,
		providers,
		contacts,
		hasher,
		container.GetJWT(),
		container.GetGCS(),
		cfg.GCSBucket,
		container.GetRedis(),
		logger,
		index,
	)
	catalogSvc := application.NewCatalogService(
		pginfra.NewLocationRepository(pool),
		pginfra.NewCatalogRepository(pool),
		pginfra.NewPlanRepository(pool),
		logger,
	)
	providerSvc := application.NewProviderService(providers, users, index, logger)
	contactSvc := application.NewContactService(contacts)

	return Handlers{
		OTP:      handlers.NewOTPHandler(resetSvc, logger),
		Auth:     handlers.NewAuthHandler(userSvc, logger, cfg.CookieDomain, cfg.CookieSecure),
		User:     handlers.NewUserHandler(userSvc, logger),
		Catalog:  handlers.NewCatalogHandler(catalogSvc, logger),
		Provider: handlers.NewProviderHandler(providerSvc, logger),
		Contact:  handlers.NewContactHandler(contactSvc, logger),
	}
}

// InitModules builds all modules and registers them with the router registry.
// Call once during startup, after the container is populated.
func InitModules(r *Registry) {
	h := buildHandlers()
	jwt := container.GetJWT()
	rdb := container.GetRedis()

	r.Add(modules.NewOTPModule(h.OTP, rdb))
	r.Add(modules.NewAuthModule(h.Auth, rdb, jwt))
	r.Add(modules.NewUserModule(h.User, rdb, jwt))
	r.Add(modules.NewContactModule(h.Contact, rdb, jwt))
	r.Add(modules.NewCatalogModule(h.Catalog, rdb, jwt))
	r.Add(modules.NewProviderModule(h.Provider, rdb, jwt))
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule(rdb, jwt))
	}
}
