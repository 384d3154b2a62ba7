package application

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/blinkmaid-backend/internal/domain/entity"
	repo "github.com/oksasatya/blinkmaid-backend/internal/domain/repository"
	"github.com/oksasatya/blinkmaid-backend/pkg/apperror"
)

var (
	otpIssued       = expvar.NewInt("otp_issued")
	otpDeliveryFail = expvar.NewInt("otp_delivery_failed")
	passwordResets  = expvar.NewInt("password_resets")
)

// ResetService runs the OTP based password reset. It keeps no state of its own;
// everything lives in the OTP ledger and the user store.
type ResetService struct {
	Users           repo.UserRepository
	Ledger          *OTPLedger
	Hasher          PasswordHasher
	Delivery        Delivery
	Logger          *logrus.Logger
	AppName         string
	DeliveryTimeout time.Duration
}

func NewResetService(users repo.UserRepository, ledger *OTPLedger, hasher PasswordHasher, delivery Delivery, logger *logrus.Logger, appName string, deliveryTimeout time.Duration) *ResetService {
	return &ResetService{
		Users:           users,
		Ledger:          ledger,
		Hasher:          hasher,
		Delivery:        delivery,
		Logger:          logger,
		AppName:         appName,
		DeliveryTimeout: deliveryTimeout,
	}
}

type VerifyResetInput struct {
	Identifier  string
	Via         string
	Code        string
	NewPassword string
}

func (s *ResetService) lookup(ctx context.Context, identifier string, ch entity.Channel) (*entity.User, error) {
	if ch == entity.ChannelPhone {
		return s.Users.GetByPhone(ctx, identifier)
	}
	return s.Users.GetByEmail(ctx, identifier)
}

// RequestReset issues a code for the account behind identifier and delivers it.
// Unknown identifiers yield ErrIdentifierNotFound and create nothing.
func (s *ResetService) RequestReset(ctx context.Context, identifier, via string) error {
	ch, ok := entity.ParseChannel(via)
	if !ok {
		return ErrInvalidChannel
	}
	if identifier == "" {
		return ErrIdentifierRequired
	}

	u, err := s.lookup(ctx, identifier, ch)
	if err != nil {
		return notFoundAs(err, ErrIdentifierNotFound, "lookup user")
	}

	otp, err := s.Ledger.Issue(ctx, u.ID, ch)
	if err != nil {
		return apperror.Internal("failed to issue OTP", err)
	}
	otpIssued.Add(1)
	s.logInfo("otp issued", logrus.Fields{"user_id": u.ID, "otp_id": otp.ID, "via": ch})

	if err := s.deliver(ctx, u, otp); err != nil {
		otpDeliveryFail.Add(1)
		s.logError("otp delivery failed", err, logrus.Fields{"user_id": u.ID, "otp_id": otp.ID, "via": ch})
		return apperror.Internal("failed to deliver OTP", err)
	}
	return nil
}

func (s *ResetService) deliver(ctx context.Context, u *entity.User, otp *entity.OTPCode) error {
	if s.DeliveryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.DeliveryTimeout)
		defer cancel()
	}
	if otp.Channel == entity.ChannelEmail {
		subject := fmt.Sprintf("Your %s OTP", s.AppName)
		body := fmt.Sprintf("Your OTP is %s", otp.Code)
		return s.Delivery.SendEmail(ctx, u.Email, subject, body)
	}
	return s.Delivery.DeliverOutOfBand(ctx, u.Phone, otp.Code)
}

// VerifyReset checks the code and replaces the password. The password is written
// before the code is consumed so an interrupted reset can be retried with the same code.
func (s *ResetService) VerifyReset(ctx context.Context, in VerifyResetInput) error {
	if in.Identifier == "" || in.Via == "" || in.Code == "" || in.NewPassword == "" {
		return ErrMissingFields
	}

	ch := entity.ChannelEmail
	if in.Via == string(entity.ChannelPhone) {
		ch = entity.ChannelPhone
	}
	u, err := s.lookup(ctx, in.Identifier, ch)
	if err != nil {
		return notFoundAs(err, ErrUserNotFound, "lookup user")
	}

	otp, err := s.Ledger.FindLatestUnconsumed(ctx, u.ID, in.Code)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrOTPNotFound
	}
	if err != nil {
		return apperror.Internal("lookup otp", err)
	}
	if !s.Ledger.IsValid(otp) {
		return ErrOTPExpired
	}

	hash, err := s.Hasher.Hash(in.NewPassword)
	if err != nil {
		return apperror.Internal("hash password", err)
	}
	if err := s.Users.UpdatePassword(ctx, u.ID, hash); err != nil {
		return apperror.Internal("update password", err)
	}
	if err := s.Ledger.Consume(ctx, otp); err != nil {
		s.logError("otp consume failed after password update", err, logrus.Fields{"user_id": u.ID, "otp_id": otp.ID})
		return apperror.Internal("consume otp", err)
	}
	passwordResets.Add(1)
	s.logInfo("password reset", logrus.Fields{"user_id": u.ID, "otp_id": otp.ID})
	return nil
}

func (s *ResetService) logInfo(msg string, fields logrus.Fields) {
	if s.Logger != nil {
		s.Logger.WithFields(fields).Info(msg)
	}
}

func (s *ResetService) logError(msg string, err error, fields logrus.Fields) {
	if s.Logger != nil {
		s.Logger.WithError(err).WithFields(fields).Error(msg)
	}
}
