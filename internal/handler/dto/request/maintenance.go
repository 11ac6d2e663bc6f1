package request

import (
	"strings"
	"time"

	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateMaintenanceRequest struct {
	Start  string `json:"start" binding:"required"`
	End    string `json:"end" binding:"required"`
	Reason string `json:"reason" binding:"max=500"`
}

func (r CreateMaintenanceRequest) ToInput(courtID uuid.UUID) (commands.CreateMaintenanceInput, error) {
	rng, err := ParseRange(r.Start, r.End)
	if err != nil {
		return commands.CreateMaintenanceInput{}, err
	}
	return commands.CreateMaintenanceInput{CourtID: courtID, Range: rng, Reason: r.Reason}, nil
}

// UpdateMaintenanceRequest changes only the fields that are present.
type UpdateMaintenanceRequest struct {
	Start  *string `json:"start"`
	End    *string `json:"end"`
	Reason *string `json:"reason" binding:"omitempty,max=500"`
}

func (r UpdateMaintenanceRequest) ToInput() (commands.UpdateMaintenanceInput, error) {
	var in commands.UpdateMaintenanceInput
	if r.Start != nil {
		t, err := parseInstant(*r.Start)
		if err != nil {
			return in, err
		}
		in.Start = &t
	}
	if r.End != nil {
		t, err := parseInstant(*r.End)
		if err != nil {
			return in, err
		}
		in.End = &t
	}
	in.Reason = r.Reason
	return in, nil
}

type MaintenanceActionRequest struct {
	Action string `json:"action" binding:"required"`
}

func parseInstant(raw string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, errs.Mark(errs.Wrapf(err, "invalid timestamp %q", raw), errs.ErrInvalidRange)
	}
	return t, nil
}
