package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type MemberRM struct {
	ID                  uuid.UUID
	Name                string
	Email               string
	Role                string
	FacilityID          *uuid.UUID
	MembershipTier      string
	MembershipExpiresAt *time.Time
}
