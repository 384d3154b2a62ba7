package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/blinkmaid-backend/internal/application"
	"github.com/oksasatya/blinkmaid-backend/internal/domain/entity"
	"github.com/oksasatya/blinkmaid-backend/internal/interface/middleware"
	"github.com/oksasatya/blinkmaid-backend/internal/testkit/fakes"
	"github.com/oksasatya/blinkmaid-backend/pkg/helpers"
	"github.com/oksasatya/blinkmaid-backend/pkg/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
	validation.Init()
}

var t0 = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

type envelope struct {
	Status  int               `json:"status"`
	Success bool              `json:"success"`
	Detail  string            `json:"detail"`
	Data    json.RawMessage   `json:"data"`
	Error   map[string]string `json:"error"`
}

type testEnv struct {
	engine    *gin.Engine
	users     *fakes.UserStore
	providers *fakes.ProviderStore
	otps      *fakes.OTPStore
	clock     *fakes.Clock
	delivery  *fakes.Delivery
	jwt       *helpers.JWTManager
	userSvc   *application.UserService
}

func newTestEnv(codes ...string) *testEnv {
	providers := fakes.NewProviderStore()
	users := fakes.NewUserStore(providers)
	contacts := fakes.NewContactStore()
	otps := fakes.NewOTPStore()
	clock := fakes.NewClock(t0)
	delivery := &fakes.Delivery{}
	jwt := helpers.NewJWTManager("access", "refresh", time.Hour, 24*time.Hour)

	ledger := application.NewOTPLedger(otps, fakes.NewCodes(codes...), 10*time.Minute, clock.Now)
	resetSvc := application.NewResetService(users, ledger, fakes.Hasher{}, delivery, nil, "Blinkmaid", time.Second)
	userSvc := application.NewUserService(users, providers, contacts, fakes.Hasher{}, jwt, nil, "", nil, nil, nil)
	catalogSvc := application.NewCatalogService(fakes.NewLocationStore(), fakes.NewCatalogStore(), fakes.NewPlanStore(), nil)
	providerSvc := application.NewProviderService(providers, users, nil, nil)
	contactSvc := application.NewContactService(contacts)

	otpH := NewOTPHandler(resetSvc, nil)
	authH := NewAuthHandler(userSvc, nil, "localhost", false)
	userH := NewUserHandler(userSvc, nil)
	catH := NewCatalogHandler(catalogSvc, nil)
	provH := NewProviderHandler(providerSvc, nil)
	contactH := NewContactHandler(contactSvc, nil)

	r := gin.New()
	r.Use(middleware.RequestID())
	api := r.Group("/api")
	api.POST("/otp/request/", otpH.RequestOTP)
	api.POST("/otp/verify-reset/", otpH.VerifyReset)
	api.POST("/auth/register/", authH.Register)
	api.POST("/auth/login/", authH.Login)
	api.POST("/auth/token/refresh/", authH.Refresh)
	api.POST("/contact/", contactH.Submit)

	authed := api.Group("/", middleware.Auth(nil, jwt))
	authed.GET("/dashboard/", userH.Dashboard)
	authed.PUT("/profile/", userH.UpdateProfile)

	admin := api.Group("/", middleware.Auth(nil, jwt), middleware.RequireRole(entity.RoleAdmin))
	states := catH.States()
	admin.GET("/states/", states.List)
	admin.POST("/states/", states.Create)
	admin.GET("/states/:id/", states.Get)
	admin.PUT("/states/:id/", states.Update)
	admin.DELETE("/states/:id/", states.Delete)
	plans := catH.Plans()
	admin.POST("/subscriptions/", plans.Create)
	admin.PUT("/subscriptions/:id/", plans.Update)
	services := catH.Services()
	admin.POST("/services/", services.Create)
	admin.GET("/services/:id/", services.Get)
	options := catH.Options()
	admin.POST("/service-options/", options.Create)
	admin.GET("/maids/", provH.List)
	admin.POST("/maids/:id/set_status/", provH.SetStatus)
	admin.GET("/admin/contact-messages/", contactH.List)

	return &testEnv{engine: r, users: users, providers: providers, otps: otps, clock: clock, delivery: delivery, jwt: jwt, userSvc: userSvc}
}

func (e *testEnv) do(t *testing.T, method, path string, body any, token string) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	var env envelope
	if w.Code != http.StatusNoContent {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode %q: %v", w.Body.String(), err)
		}
	}
	return w.Code, env
}

func (e *testEnv) token(t *testing.T, u *entity.User) string {
	t.Helper()
	tok, _, err := e.jwt.GenerateAccessToken(u.ID, string(u.Role), "sid")
	if err != nil {
		t.Fatal(err)
	}
	return tok
}

func (e *testEnv) seedUser(email string, role entity.Role) *entity.User {
	return e.users.Seed(&entity.User{Email: email, Phone: "+15550001111", Role: role, Password: "hashed:old"})
}
