package court

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus = errors.New("invalid court status")
	ErrEmptyName     = errors.New("court name cannot be empty")
)

type Status string

const (
	StatusActive      Status = "active"
	StatusMaintenance Status = "maintenance"
	StatusInactive    Status = "inactive"
	StatusDeleted     Status = "deleted"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusMaintenance, StatusInactive, StatusDeleted:
		return true
	default:
		return false
	}
}

// AcceptsReservations is true for active and maintenance courts. Inactive and deleted courts
// keep their history but take no new bookings.
func (s Status) AcceptsReservations() bool {
	return s == StatusActive || s == StatusMaintenance
}

func NewStatus(raw string) (Status, error) {
	s := Status(strings.TrimSpace(strings.ToLower(raw)))
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

type Court struct {
	id         uuid.UUID
	facilityID uuid.UUID
	sportID    uuid.UUID
	name       string
	status     Status
	updatedAt  time.Time
}

func Reconstruct(id, facilityID, sportID uuid.UUID, name string, status Status, updatedAt time.Time) *Court {
	return &Court{
		id:         id,
		facilityID: facilityID,
		sportID:    sportID,
		name:       name,
		status:     status,
		updatedAt:  updatedAt,
	}
}

func (c *Court) AcceptsReservations() bool {
	return c.status.AcceptsReservations()
}

func (c *Court) ID() uuid.UUID         { return c.id }
func (c *Court) FacilityID() uuid.UUID { return c.facilityID }
func (c *Court) SportID() uuid.UUID    { return c.sportID }
func (c *Court) Name() string          { return c.name }
func (c *Court) Status() Status        { return c.status }
func (c *Court) UpdatedAt() time.Time  { return c.updatedAt }

// Facility and Sport are reference data owned by administrative CRUD outside this service.
type Facility struct {
	ID       uuid.UUID
	Name     string
	TimeZone string
}

// Location resolves the facility's IANA zone, falling back when it is unset or unknown.
func (f *Facility) Location(fallback *time.Location) *time.Location {
	if f == nil || f.TimeZone == "" {
		return fallback
	}
	loc, err := time.LoadLocation(f.TimeZone)
	if err != nil {
		return fallback
	}
	return loc
}

type Sport struct {
	ID   uuid.UUID
	Name string
}
