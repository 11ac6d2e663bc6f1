package response

import (
	"time"

	"court-booking/internal/domain/maintenance"

	"github.com/google/uuid"
)

type MaintenanceResponse struct {
	ID               uuid.UUID  `json:"id"`
	CourtID          uuid.UUID  `json:"courtId"`
	FacilityID       uuid.UUID  `json:"facilityId"`
	Start            time.Time  `json:"start"`
	End              time.Time  `json:"end"`
	Reason           string     `json:"reason"`
	Status           string     `json:"status"`
	CreatedByStaffID uuid.UUID  `json:"createdBy"`
	StartedAt        *time.Time `json:"startedAt,omitempty"`
	CompletedAt      *time.Time `json:"completedAt,omitempty"`
	CancelledAt      *time.Time `json:"cancelledAt,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

func FromMaintenance(b *maintenance.Block) *MaintenanceResponse {
	s := b.Snapshot()
	return &MaintenanceResponse{
		ID:               s.ID,
		CourtID:          s.CourtID,
		FacilityID:       s.FacilityID,
		Start:            s.Range.Start(),
		End:              s.Range.End(),
		Reason:           s.Reason,
		Status:           string(s.Status),
		CreatedByStaffID: s.CreatedByStaffID,
		StartedAt:        s.StartedAt,
		CompletedAt:      s.CompletedAt,
		CancelledAt:      s.CancelledAt,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}
