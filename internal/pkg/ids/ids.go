package ids

import (
	"strings"

	"court-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// ParseResourceID is the only place raw identifiers from the outside world are coerced.
// Accepts canonical, braced and urn:uuid forms; everything else is ErrInvalidResource.
func ParseResourceID(raw string) (uuid.UUID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return uuid.Nil, errs.Wrap(errs.ErrInvalidResource, "empty id")
	}
	id, err := uuid.Parse(trimmed)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, errs.Wrapf(errs.ErrInvalidResource, "malformed id %q", trimmed)
	}
	return id, nil
}

// ParseOptionalResourceID treats an empty string as "absent".
func ParseOptionalResourceID(raw string) (*uuid.UUID, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	id, err := ParseResourceID(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
