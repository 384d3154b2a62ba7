package repository

import (
	"context"

	"github.com/oksasatya/blinkmaid-backend/internal/domain/entity"
)

// OTPRepository persists reset codes. Codes are append-only apart from the used flag.
type OTPRepository interface {
	Create(ctx context.Context, otp *entity.OTPCode) error
	// FindLatestUnused returns the newest unused code with the given value for the user,
	// regardless of channel, or ErrNotFound.
	FindLatestUnused(ctx context.Context, userID, code string) (*entity.OTPCode, error)
	MarkUsed(ctx context.Context, id int64) error
}
