package entity

import "strings"

// Role is the account type of a user. It is fixed at registration.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleProvider Role = "provider"
	RoleAdmin    Role = "admin"
)

// ParseRole accepts the canonical role names plus the legacy "maid" alias.
// An empty string yields the customer role.
func ParseRole(s string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(RoleCustomer):
		return RoleCustomer, true
	case string(RoleProvider), "maid":
		return RoleProvider, true
	case string(RoleAdmin):
		return RoleAdmin, true
	}
	return "", false
}

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func (g Gender) Valid() bool {
	switch g {
	case "", GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}
