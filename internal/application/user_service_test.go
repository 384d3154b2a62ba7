package application

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/oksasatya/blinkmaid-backend/internal/domain/entity"
	"github.com/oksasatya/blinkmaid-backend/internal/testkit/fakes"
	"github.com/oksasatya/blinkmaid-backend/pkg/apperror"
	"github.com/oksasatya/blinkmaid-backend/pkg/helpers"
)

type userFixture struct {
	svc       *UserService
	users     *fakes.UserStore
	providers *fakes.ProviderStore
	contacts  *fakes.ContactStore
}

func newUserFixture() *userFixture {
	providers := fakes.NewProviderStore()
	users := fakes.NewUserStore(providers)
	contacts := fakes.NewContactStore()
	jwt := helpers.NewJWTManager("access", "refresh", time.Hour, 24*time.Hour)
	svc := NewUserService(users, providers, contacts, fakes.Hasher{}, jwt, nil, "", nil, nil, nil)
	return &userFixture{svc: svc, users: users, providers: providers, contacts: contacts}
}

func TestRegisterCustomerDefaults(t *testing.T) {
	f := newUserFixture()
	u, err := f.svc.Register(context.Background(), RegisterInput{Email: "ravi@example.com", Password: "S3cret!"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.Role != entity.RoleCustomer {
		t.Fatalf("role = %q", u.Role)
	}
	if u.Username != "ravi" {
		t.Fatalf("username = %q", u.Username)
	}
	if u.Password != "hashed:S3cret!" {
		t.Fatal("password must be stored hashed")
	}
	if len(f.providers.Profiles) != 0 {
		t.Fatal("customers get no provider profile")
	}
}

func TestRegisterProviderCreatesPendingProfile(t *testing.T) {
	f := newUserFixture()
	u, err := f.svc.Register(context.Background(), RegisterInput{Email: "meena@example.com", Password: "S3cret!", Role: "maid"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.Role != entity.RoleProvider {
		t.Fatalf("role = %q", u.Role)
	}
	p, err := f.providers.GetByUserID(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if p.VerificationStatus != entity.VerificationPending {
		t.Fatalf("status = %q", p.VerificationStatus)
	}
}

func TestRegisterRejections(t *testing.T) {
	f := newUserFixture()
	ctx := context.Background()
	if _, err := f.svc.Register(ctx, RegisterInput{Email: "a@example.com", Password: "x", Role: "root"}); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("role err = %v", err)
	}
	if _, err := f.svc.Register(ctx, RegisterInput{Email: "a@example.com", Password: "x", Gender: "robot"}); !errors.Is(err, ErrInvalidGender) {
		t.Fatalf("gender err = %v", err)
	}
	if _, err := f.svc.Register(ctx, RegisterInput{Email: "a@example.com", Password: "x"}); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := f.svc.Register(ctx, RegisterInput{Email: "a@example.com", Password: "x"}); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("duplicate err = %v", err)
	}
}

func TestLoginAndRefresh(t *testing.T) {
	f := newUserFixture()
	ctx := context.Background()
	if _, err := f.svc.Register(ctx, RegisterInput{Email: "admin@example.com", Password: "Adm1n!", Role: "admin"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, _, err := f.svc.Login(ctx, "admin@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("bad password err = %v", err)
	}
	if _, _, err := f.svc.Login(ctx, "ghost@example.com", "Adm1n!"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email err = %v", err)
	}

	u, pair, err := f.svc.Login(ctx, "admin@example.com", "Adm1n!")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	claims, err := f.svc.JWT.ParseAccessToken(pair.AccessToken)
	if err != nil {
		t.Fatalf("parse access: %v", err)
	}
	if claims.UserID != u.ID || claims.Role != string(entity.RoleAdmin) {
		t.Fatalf("claims = %+v", claims)
	}

	rotated, err := f.svc.Refresh(ctx, pair.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if rotated.AccessToken == "" || rotated.RefreshToken == "" {
		t.Fatal("expected rotated tokens")
	}
	if _, err := f.svc.Refresh(ctx, pair.AccessToken); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("access token used as refresh: %v", err)
	}
	if err := f.svc.Logout(ctx, u.ID); err != nil {
		t.Fatalf("logout: %v", err)
	}
}

func TestAuthenticateStoreFailureIsInternal(t *testing.T) {
	f := newUserFixture()
	f.users.GetErr = errors.New("connection refused")

	_, err := f.svc.Authenticate(context.Background(), "admin@example.com", "Adm1n!")
	if errors.Is(err, ErrInvalidCredentials) {
		t.Fatal("store failure reported as bad credentials")
	}
	if apperror.KindOf(err) != apperror.KindInternal {
		t.Fatalf("kind = %v", apperror.KindOf(err))
	}
	if status := apperror.HTTPStatus(err); status != 500 {
		t.Fatalf("status = %d", status)
	}
}

func TestUpdateProfile(t *testing.T) {
	f := newUserFixture()
	ctx := context.Background()
	u, _ := f.svc.Register(ctx, RegisterInput{Email: "p@example.com", Password: "x", FirstName: "Old"})

	first, city, bad := "  Priya ", "Pune", "unknown"
	updated, err := f.svc.UpdateProfile(ctx, u.ID, UpdateProfileInput{FirstName: &first, City: &city})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.FirstName != "Priya" || updated.City != "Pune" {
		t.Fatalf("updated = %+v", updated)
	}
	if _, err := f.svc.UpdateProfile(ctx, u.ID, UpdateProfileInput{Gender: &bad}); !errors.Is(err, ErrInvalidGender) {
		t.Fatalf("gender err = %v", err)
	}
	if _, err := f.svc.UpdateProfile(ctx, "missing", UpdateProfileInput{}); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("missing user err = %v", err)
	}
}

func TestUploadProfileImageWithoutStorage(t *testing.T) {
	f := newUserFixture()
	u, _ := f.svc.Register(context.Background(), RegisterInput{Email: "p@example.com", Password: "x"})
	_, err := f.svc.UploadProfileImage(context.Background(), u.ID, strings.NewReader("img"), "a.png", "image/png")
	if !errors.Is(err, ErrStorageDisabled) {
		t.Fatalf("err = %v", err)
	}
}

func TestDashboardByRole(t *testing.T) {
	f := newUserFixture()
	ctx := context.Background()
	admin, _ := f.svc.Register(ctx, RegisterInput{Email: "admin@example.com", Password: "x", Role: "admin"})
	customer, _ := f.svc.Register(ctx, RegisterInput{Email: "c@example.com", Password: "x"})
	provider, _ := f.svc.Register(ctx, RegisterInput{Email: "m@example.com", Password: "x", Role: "provider"})
	_, _ = f.svc.Register(ctx, RegisterInput{Email: "m2@example.com", Password: "x", Role: "maid"})
	_ = f.contacts.Create(ctx, &entity.ContactMessage{FullName: "A", Email: "a@example.com", Message: "hi"})

	d, err := f.svc.Dashboard(ctx, admin.ID)
	if err != nil {
		t.Fatalf("admin dashboard: %v", err)
	}
	want := DashboardCounts{TotalCustomers: 1, TotalMaids: 2, PendingMaids: 2, ContactMessages: 1}
	if d.Counts == nil || *d.Counts != want {
		t.Fatalf("counts = %+v, want %+v", d.Counts, want)
	}

	d, _ = f.svc.Dashboard(ctx, provider.ID)
	if d.Profile == nil || d.Profile.UserID != provider.ID {
		t.Fatalf("provider dashboard = %+v", d)
	}

	d, _ = f.svc.Dashboard(ctx, customer.ID)
	if d.Message != "Customer dashboard summary" || d.Counts != nil || d.Profile != nil {
		t.Fatalf("customer dashboard = %+v", d)
	}
}
