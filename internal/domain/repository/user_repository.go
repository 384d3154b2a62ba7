package repository

import (
	"context"

	"github.com/oksasatya/blinkmaid-backend/internal/domain/entity"
)

// UserRepository defines the persistence operations on user identities.
type UserRepository interface {
	// Create inserts u and, when profile is non-nil, its provider profile in the same transaction.
	Create(ctx context.Context, u *entity.User, profile *entity.ProviderProfile) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByPhone(ctx context.Context, phone string) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
	UpdatePassword(ctx context.Context, id, hash string) error
	CountByRole(ctx context.Context, role entity.Role) (int, error)
}

// ProviderRepository covers provider profiles.
type ProviderRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.ProviderProfile, error)
	GetByUserID(ctx context.Context, userID string) (*entity.ProviderProfile, error)
	// List returns profiles ordered by id; an empty status means all.
	List(ctx context.Context, status entity.VerificationStatus) ([]entity.ProviderProfile, error)
	SetVerificationStatus(ctx context.Context, id int64, status entity.VerificationStatus) error
	CountByStatus(ctx context.Context, status entity.VerificationStatus) (int, error)
}
