package application

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/blinkmaid-backend/internal/domain/entity"
	repo "github.com/oksasatya/blinkmaid-backend/internal/domain/repository"
	"github.com/oksasatya/blinkmaid-backend/pkg/apperror"
	"github.com/oksasatya/blinkmaid-backend/pkg/helpers"
)

const sessionTTL = 24 * time.Hour

// UserService covers registration, login sessions and the profile of the signed-in user.
type UserService struct {
	Users     repo.UserRepository
	Providers repo.ProviderRepository
	Contacts  repo.ContactRepository
	Hasher    PasswordHasher
	JWT       *helpers.JWTManager
	GCS       *storage.Client
	GCSBucket string
	Redis     *redis.Client
	Logger    *logrus.Logger
	Index     *ProviderIndex
}

type TokenPair struct {
	AccessToken        string
	AccessTokenExpiry  time.Time
	RefreshToken       string
	RefreshTokenExpiry time.Time
}

type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	Role      string
	Phone     string
	FirstName string
	LastName  string
	Address   string
	City      string
	Pincode   string
	Gender    string
}

type UpdateProfileInput struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Address   *string
	City      *string
	Pincode   *string
	Gender    *string
}

// DashboardCounts is the admin overview.
type DashboardCounts struct {
	TotalCustomers  int `json:"total_customers"`
	TotalMaids      int `json:"total_maids"`
	PendingMaids    int `json:"pending_maids"`
	ContactMessages int `json:"contact_messages"`
}

// Dashboard carries exactly one of Counts, Profile or Message depending on role.
type Dashboard struct {
	User    *entity.User
	Counts  *DashboardCounts
	Profile *entity.ProviderProfile
	Message string
}

func nowRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

func NewUserService(users repo.UserRepository, providers repo.ProviderRepository, contacts repo.ContactRepository, hasher PasswordHasher, jwt *helpers.JWTManager, gcs *storage.Client, gcsBucket string, rdb *redis.Client, logger *logrus.Logger, index *ProviderIndex) *UserService {
	return &UserService{
		Users:     users,
		Providers: providers,
		Contacts:  contacts,
		Hasher:    hasher,
		JWT:       jwt,
		GCS:       gcs,
		GCSBucket: gcsBucket,
		Redis:     rdb,
		Logger:    logger,
		Index:     index,
	}
}

// Register creates the account. Providers get an empty pending profile in the same write.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	role, ok := entity.ParseRole(in.Role)
	if !ok {
		return nil, ErrInvalidRole
	}
	gender := entity.Gender(in.Gender)
	if gender != "" && !gender.Valid() {
		return nil, ErrInvalidGender
	}
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return nil, ErrMissingFields
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return nil, apperror.Internal("hash password", err)
	}
	username := strings.TrimSpace(in.Username)
	if username == "" {
		username = entity.DefaultUsername(email)
	}
	u := &entity.User{
		Username:  username,
		Email:     email,
		Phone:     strings.TrimSpace(in.Phone),
		Role:      role,
		Password:  hash,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Address:   in.Address,
		City:      in.City,
		Pincode:   in.Pincode,
		Gender:    gender,
	}
	var profile *entity.ProviderProfile
	if role == entity.RoleProvider {
		profile = entity.NewProviderProfile("")
	}
	if err := s.Users.Create(ctx, u, profile); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, apperror.Internal("create user", err)
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "role": u.Role}).Info("user registered")
	}
	if profile != nil {
		s.Index.Put(ctx, u, profile)
	}
	return u, nil
}

// Authenticate validates email/password and returns the user without issuing tokens.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if errors.Is(err, repo.ErrNotFound) || (err == nil && u == nil) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Error("lookup user by email failed")
		}
		return nil, apperror.Internal("lookup user", err)
	}
	if !s.Hasher.Compare(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// IssueTokens generates access/refresh tokens and records the session in Redis.
func (s *UserService) IssueTokens(ctx context.Context, u *entity.User) (TokenPair, error) {
	sid := uuid.NewString()
	pair, err := s.signPair(u, sid)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate tokens failed")
		}
		return TokenPair{}, apperror.Internal("generate tokens", err)
	}

	if s.Redis != nil {
		key := helpers.SessionKey(u.ID)
		pipe := s.Redis.Pipeline()
		pipe.HSet(ctx, key, map[string]any{
			"user_id":    u.ID,
			"email":      u.Email,
			"role":       string(u.Role),
			"sid":        sid,
			"logged_in":  true,
			"created_at": nowRFC3339(),
		})
		pipe.Expire(ctx, key, sessionTTL)
		if _, rErr := pipe.Exec(ctx); rErr != nil && s.Logger != nil {
			s.Logger.WithError(rErr).WithField("key", key).Warn("redis pipeline failed")
		}
	}
	return pair, nil
}

func (s *UserService) signPair(u *entity.User, sid string) (TokenPair, error) {
	access, aexp, err := s.JWT.GenerateAccessToken(u.ID, string(u.Role), sid)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, rexp, err := s.JWT.GenerateRefreshToken(u.ID, string(u.Role), sid)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, AccessTokenExpiry: aexp, RefreshToken: refresh, RefreshTokenExpiry: rexp}, nil
}

func (s *UserService) Login(ctx context.Context, email, password string) (*entity.User, TokenPair, error) {
	u, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return nil, TokenPair{}, err
	}
	pair, err := s.IssueTokens(ctx, u)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return u, pair, nil
}

// Refresh rotates the session id and both tokens. The refresh token must belong to the live session.
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	claims, err := s.JWT.ParseRefreshToken(refreshToken)
	if err != nil {
		return TokenPair{}, ErrInvalidToken
	}
	u, err := s.Users.GetByID(ctx, claims.UserID)
	if err != nil || u == nil {
		return TokenPair{}, ErrInvalidToken
	}
	key := helpers.SessionKey(u.ID)
	if s.Redis != nil {
		sid, rErr := s.Redis.HGet(ctx, key, "sid").Result()
		if rErr != nil || sid != claims.SessionID {
			return TokenPair{}, ErrInvalidToken
		}
	}

	sid := uuid.NewString()
	pair, err := s.signPair(u, sid)
	if err != nil {
		return TokenPair{}, apperror.Internal("generate tokens", err)
	}
	if s.Redis != nil {
		pipe := s.Redis.Pipeline()
		pipe.HSet(ctx, key, map[string]any{
			"sid":        sid,
			"updated_at": nowRFC3339(),
		})
		pipe.Expire(ctx, key, sessionTTL)
		_, _ = pipe.Exec(ctx)
	}
	return pair, nil
}

func (s *UserService) Logout(ctx context.Context, userID string) error {
	if s.Redis == nil {
		return nil
	}
	if err := s.Redis.Del(ctx, helpers.SessionKey(userID)).Err(); err != nil {
		return apperror.Internal("drop session", err)
	}
	return nil
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, notFoundAs(err, ErrUserNotFound, "get user")
	}
	return u, nil
}

// UpdateProfile applies the non-nil fields.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*entity.User, error) {
	u, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if in.Gender != nil {
		g := entity.Gender(*in.Gender)
		if g != "" && !g.Valid() {
			return nil, ErrInvalidGender
		}
		u.Gender = g
	}
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = strings.TrimSpace(*v)
		}
	}
	set(&u.FirstName, in.FirstName)
	set(&u.LastName, in.LastName)
	set(&u.Phone, in.Phone)
	set(&u.Address, in.Address)
	set(&u.City, in.City)
	set(&u.Pincode, in.Pincode)

	if err := s.Users.Update(ctx, u); err != nil {
		return nil, apperror.Internal("update user", err)
	}
	s.reindexProvider(ctx, u)
	return u, nil
}

// UploadProfileImage stores the image in GCS and records its public URL on the user.
func (s *UserService) UploadProfileImage(ctx context.Context, userID string, r io.Reader, filename, contentType string) (string, error) {
	u, err := s.GetProfile(ctx, userID)
	if err != nil {
		return "", err
	}
	store := helpers.ObjectStore{Client: s.GCS, Bucket: s.GCSBucket}
	if !store.Enabled() {
		return "", ErrStorageDisabled
	}
	url, err := store.Put(ctx, helpers.ObjectPath("profile_images", userID, filename), contentType, r)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", userID).Error("gcs upload failed")
		}
		return "", apperror.Internal("upload image", err)
	}
	previous := u.ProfileImage
	u.ProfileImage = url
	if err := s.Users.Update(ctx, u); err != nil {
		return "", apperror.Internal("update user", err)
	}
	if previous != "" {
		if err := store.DeleteURL(ctx, previous); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", userID).Warn("old profile image not removed")
		}
	}
	return url, nil
}

// Dashboard assembles the role specific summary for the signed-in user.
func (s *UserService) Dashboard(ctx context.Context, userID string) (*Dashboard, error) {
	u, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	d := &Dashboard{User: u}
	switch u.Role {
	case entity.RoleAdmin:
		var c DashboardCounts
		if c.TotalCustomers, err = s.Users.CountByRole(ctx, entity.RoleCustomer); err != nil {
			return nil, apperror.Internal("count customers", err)
		}
		if c.TotalMaids, err = s.Users.CountByRole(ctx, entity.RoleProvider); err != nil {
			return nil, apperror.Internal("count providers", err)
		}
		if c.PendingMaids, err = s.Providers.CountByStatus(ctx, entity.VerificationPending); err != nil {
			return nil, apperror.Internal("count pending providers", err)
		}
		if c.ContactMessages, err = s.Contacts.Count(ctx); err != nil {
			return nil, apperror.Internal("count contact messages", err)
		}
		d.Counts = &c
	case entity.RoleProvider:
		p, pErr := s.Providers.GetByUserID(ctx, u.ID)
		if pErr != nil && !errors.Is(pErr, repo.ErrNotFound) {
			return nil, apperror.Internal("get provider profile", pErr)
		}
		d.Profile = p
	default:
		d.Message = "Customer dashboard summary"
	}
	return d, nil
}

func (s *UserService) reindexProvider(ctx context.Context, u *entity.User) {
	if u.Role != entity.RoleProvider || !s.Index.Enabled() {
		return
	}
	p, err := s.Providers.GetByUserID(ctx, u.ID)
	if err != nil {
		return
	}
	s.Index.Put(ctx, u, p)
}
