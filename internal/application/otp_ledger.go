package application

import (
	"context"
	"time"

	"github.com/oksasatya/blinkmaid-backend/internal/domain/entity"
	repo "github.com/oksasatya/blinkmaid-backend/internal/domain/repository"
)

const DefaultOTPTTL = 10 * time.Minute

// OTPLedger mints and validates single-use reset codes.
// Every issuance is an independent record; a newer code never invalidates an older one.
type OTPLedger struct {
	repo  repo.OTPRepository
	codes CodeGenerator
	ttl   time.Duration
	now   func() time.Time
}

func NewOTPLedger(r repo.OTPRepository, codes CodeGenerator, ttl time.Duration, now func() time.Time) *OTPLedger {
	if ttl <= 0 {
		ttl = DefaultOTPTTL
	}
	if now == nil {
		now = time.Now
	}
	return &OTPLedger{repo: r, codes: codes, ttl: ttl, now: now}
}

// Issue creates and stores a fresh code for the user.
func (l *OTPLedger) Issue(ctx context.Context, userID string, ch entity.Channel) (*entity.OTPCode, error) {
	code, err := l.codes.Generate()
	if err != nil {
		return nil, err
	}
	now := l.now()
	otp := &entity.OTPCode{
		UserID:    userID,
		Code:      code,
		Channel:   ch,
		CreatedAt: now,
		ExpiresAt: now.Add(l.ttl),
	}
	if err := l.repo.Create(ctx, otp); err != nil {
		return nil, err
	}
	return otp, nil
}

// FindLatestUnconsumed returns the newest unused code with this value for the user.
// The channel is not considered. repository.ErrNotFound means no match.
func (l *OTPLedger) FindLatestUnconsumed(ctx context.Context, userID, code string) (*entity.OTPCode, error) {
	return l.repo.FindLatestUnused(ctx, userID, code)
}

// IsValid evaluates the code against the ledger clock at call time.
func (l *OTPLedger) IsValid(otp *entity.OTPCode) bool {
	return otp.IsValid(l.now())
}

// Consume marks the code used. Consuming an already used code is a no-op.
func (l *OTPLedger) Consume(ctx context.Context, otp *entity.OTPCode) error {
	if otp.Used {
		return nil
	}
	if err := l.repo.MarkUsed(ctx, otp.ID); err != nil {
		return err
	}
	otp.Used = true
	return nil
}
