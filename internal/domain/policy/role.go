// Package policy holds authorization predicates over authenticated identities.
package policy

import (
	"github.com/oksasatya/blinkmaid-backend/internal/domain/entity"
	"github.com/oksasatya/blinkmaid-backend/pkg/apperror"
)

var (
	ErrUnauthenticated = apperror.Unauthenticated("Authentication credentials were not provided.")
	ErrForbidden       = apperror.Forbidden("You do not have permission to perform this action.")
)

// Identity is the caller as established by the auth middleware.
// The zero value is an anonymous caller.
type Identity struct {
	UserID string
	Role   entity.Role
}

func (i Identity) Authenticated() bool { return i.UserID != "" }

// IsAdmin reports whether the identity may perform administrative operations.
func IsAdmin(id Identity) bool {
	return id.Authenticated() && id.Role == entity.RoleAdmin
}

// Authorize returns nil when id holds the required role.
func Authorize(id Identity, required entity.Role) error {
	if !id.Authenticated() {
		return ErrUnauthenticated
	}
	if id.Role != required {
		return ErrForbidden
	}
	return nil
}
