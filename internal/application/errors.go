package application

import (
	"errors"

	"github.com/oksasatya/blinkmaid-backend/internal/domain/repository"
	"github.com/oksasatya/blinkmaid-backend/pkg/apperror"
)

var (
	ErrMissingFields      = apperror.Validation("Missing fields")
	ErrInvalidChannel     = apperror.Validation("via must be one of: phone, email")
	ErrIdentifierRequired = apperror.Validation("identifier is required")
	ErrIdentifierNotFound = apperror.NotFound("No user found with provided identifier")
	ErrUserNotFound       = apperror.NotFound("User not found")
	ErrOTPNotFound        = apperror.InvalidOTP("Invalid or used OTP")
	ErrOTPExpired         = apperror.InvalidOTP("OTP expired or invalid")

	ErrInvalidCredentials = apperror.Unauthenticated("No active account found with the given credentials")
	ErrInvalidToken       = apperror.Unauthenticated("Token is invalid or expired")
	ErrEmailTaken         = apperror.Conflict("user with this email already exists.")
	ErrInvalidRole        = apperror.Validation("invalid role")
	ErrInvalidGender      = apperror.Validation("invalid gender")
	ErrInvalidStatus      = apperror.Validation("invalid status")
	ErrNotFound           = apperror.NotFound("Not found.")
	ErrStorageDisabled    = apperror.New(apperror.KindInternal, "file storage is not configured")
)

// notFoundAs maps repository.ErrNotFound onto a client-facing error and wraps anything else.
func notFoundAs(err error, nf error, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repository.ErrNotFound) {
		return nf
	}
	return apperror.Internal(op, err)
}
