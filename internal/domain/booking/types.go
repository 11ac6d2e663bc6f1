package booking

import (
	"errors"
	"strings"
)

var (
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrInvalidTransition = errors.New("booking status transition not allowed")
	ErrNotCancellable    = errors.New("booking can no longer be cancelled by the customer")
	ErrNotYetEnded       = errors.New("booking has not ended yet")
	ErrNotYetStarted     = errors.New("booking has not started yet")
	ErrCourtUnavailable  = errors.New("court does not accept reservations")
	ErrCourtMismatch     = errors.New("court does not belong to facility and sport")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
	StatusNoShow    Status = "no_show"
	StatusRefunded  Status = "refunded"
)

// ActiveStatuses are the statuses that occupy a court's timeline.
var ActiveStatuses = []Status{StatusPending, StatusConfirmed, StatusCompleted}

var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled, StatusNoShow},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted, StatusNoShow, StatusRefunded:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

func (s Status) BlocksTimeline() bool {
	for _, a := range ActiveStatuses {
		if s == a {
			return true
		}
	}
	return false
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func NewStatus(raw string) (Status, error) {
	s := Status(strings.TrimSpace(strings.ToLower(raw)))
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

const (
	ReasonCustomerCancel     = "customer_cancel"
	ReasonStaffCancel        = "staff_cancel"
	ReasonAutoPendingTimeout = "auto_pending_timeout"
)

const (
	InvoiceVoidCustomer = "customer_cancelled"
	InvoiceVoidStaff    = "staff_cancelled"
	InvoiceVoidSystem   = "system_auto_timeout"
)
