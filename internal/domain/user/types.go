package user

import "errors"

var (
	ErrInvalidRole = errors.New("invalid role")
	ErrInvalidTier = errors.New("invalid membership tier")
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleStaff    Role = "staff"
	RoleAdmin    Role = "admin"
	// RoleSystem is never carried by a token; it identifies background actors such as the sweeper.
	RoleSystem Role = "system"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleStaff, RoleAdmin, RoleSystem:
		return true
	default:
		return false
	}
}

// IsStaffOrAbove covers roles allowed to operate a facility's bookings.
func (r Role) IsStaffOrAbove() bool {
	return r == RoleStaff || r == RoleAdmin
}

// NewRole parses a role from an access token. System is rejected.
func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() || role == RoleSystem {
		return "", ErrInvalidRole
	}
	return role, nil
}

type MembershipTier string

const (
	TierSilver   MembershipTier = "silver"
	TierGold     MembershipTier = "gold"
	TierPlatinum MembershipTier = "platinum"
)

func (t MembershipTier) IsValid() bool {
	switch t {
	case TierSilver, TierGold, TierPlatinum:
		return true
	default:
		return false
	}
}

func NewMembershipTier(s string) (MembershipTier, error) {
	tier := MembershipTier(s)
	if !tier.IsValid() {
		return "", ErrInvalidTier
	}
	return tier, nil
}
