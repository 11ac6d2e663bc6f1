package booking

import (
	"time"

	"court-booking/internal/domain/user"

	"github.com/google/uuid"
)

type Cancellation struct {
	ReasonCode string
	ReasonText string
	Role       user.Role
	// UserID is nil for system cancellations.
	UserID *uuid.UUID
	At     time.Time
}

func CustomerCancellation(userID uuid.UUID, text string, at time.Time) Cancellation {
	if text == "" {
		text = "Cancelled by customer"
	}
	return Cancellation{
		ReasonCode: ReasonCustomerCancel,
		ReasonText: text,
		Role:       user.RoleCustomer,
		UserID:     &userID,
		At:         at,
	}
}

func StaffCancellation(userID uuid.UUID, role user.Role, text string, at time.Time) Cancellation {
	if text == "" {
		text = "Cancelled or declined by staff"
	}
	return Cancellation{
		ReasonCode: ReasonStaffCancel,
		ReasonText: text,
		Role:       role,
		UserID:     &userID,
		At:         at,
	}
}

func TimeoutCancellation(timeout time.Duration, at time.Time) Cancellation {
	return Cancellation{
		ReasonCode: ReasonAutoPendingTimeout,
		ReasonText: "Not confirmed within " + timeout.String(),
		Role:       user.RoleSystem,
		At:         at,
	}
}

func (c Cancellation) InvoiceVoidReason() string {
	switch c.Role {
	case user.RoleCustomer:
		return InvoiceVoidCustomer
	case user.RoleSystem:
		return InvoiceVoidSystem
	default:
		return InvoiceVoidStaff
	}
}
