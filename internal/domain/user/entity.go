package user

import (
	"time"

	"github.com/google/uuid"
)

// Member is the slice of a user record the booking core reads: role, facility assignment
// and membership. Identity data stays with the identity provider.
type Member struct {
	ID                  uuid.UUID
	Name                string
	Email               string
	Role                Role
	FacilityID          *uuid.UUID
	MembershipTier      MembershipTier
	MembershipExpiresAt *time.Time
}

// ActiveTier returns the membership tier if it is valid and unexpired at now, else "".
func (m *Member) ActiveTier(now time.Time) MembershipTier {
	if m == nil || !m.MembershipTier.IsValid() {
		return ""
	}
	if m.MembershipExpiresAt != nil && !now.Before(*m.MembershipExpiresAt) {
		return ""
	}
	return m.MembershipTier
}

// WorksAt reports whether a staff member is assigned to facilityID. Admins work everywhere.
func (m *Member) WorksAt(facilityID uuid.UUID) bool {
	if m == nil {
		return false
	}
	if m.Role == RoleAdmin {
		return true
	}
	return m.Role == RoleStaff && m.FacilityID != nil && *m.FacilityID == facilityID
}
