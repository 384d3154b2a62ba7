package entity

import (
	"strings"
	"time"
)

// User is the aggregate root for identity.
// Password holds a bcrypt hash, never the plain value.
type User struct {
	ID           string
	Username     string
	Email        string
	Phone        string // empty when not provided
	Role         Role
	Password     string
	FirstName    string
	LastName     string
	Address      string
	City         string
	Pincode      string
	Gender       Gender
	ProfileImage string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u *User) IsAdmin() bool { return u != nil && u.Role == RoleAdmin }

// DefaultUsername derives a username from the local part of an email.
func DefaultUsername(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}
