package shared

import (
	"court-booking/internal/domain/user"

	"github.com/google/uuid"
)

// Actor is whoever triggered an operation: a token holder or the system itself.
type Actor struct {
	UserID uuid.UUID
	Role   user.Role
}

func SystemActor() Actor {
	return Actor{Role: user.RoleSystem}
}

func (a Actor) IsStaff() bool {
	return a.Role.IsStaffOrAbove()
}

func (a Actor) IsSystem() bool {
	return a.Role == user.RoleSystem
}

// UserIDPtr returns nil for the system actor.
func (a Actor) UserIDPtr() *uuid.UUID {
	if a.IsSystem() || a.UserID == uuid.Nil {
		return nil
	}
	id := a.UserID
	return &id
}
