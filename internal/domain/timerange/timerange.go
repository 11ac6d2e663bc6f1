package timerange

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

var (
	ErrInvalidRange     = errors.New("start must be before end")
	ErrInvalidTimestamp = errors.New("invalid timestamp")
)

// TimeRange is a half-open interval [start, end).
type TimeRange struct {
	start time.Time
	end   time.Time
}

func New(start, end time.Time) (TimeRange, error) {
	if start.IsZero() || end.IsZero() {
		return TimeRange{}, ErrInvalidTimestamp
	}
	if !start.Before(end) {
		return TimeRange{}, ErrInvalidRange
	}
	return TimeRange{start: start, end: end}, nil
}

// Parse accepts RFC 3339 timestamps with or without fractional seconds.
func Parse(rawStart, rawEnd string) (TimeRange, error) {
	start, err := parseTimestamp(rawStart)
	if err != nil {
		return TimeRange{}, err
	}
	end, err := parseTimestamp(rawEnd)
	if err != nil {
		return TimeRange{}, err
	}
	return New(start, end)
}

func parseTimestamp(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, ErrInvalidTimestamp
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, s)
	}
	return t, nil
}

func (r TimeRange) Start() time.Time {
	return r.start
}

func (r TimeRange) End() time.Time {
	return r.end
}

func (r TimeRange) IsZero() bool {
	return r.start.IsZero() && r.end.IsZero()
}

// Overlaps reports whether the ranges share any instant. Touching bounds do not overlap.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.start.Before(other.end) && r.end.After(other.start)
}

func (r TimeRange) Duration() time.Duration {
	return r.end.Sub(r.start)
}

func (r TimeRange) DurationMinutes() int {
	minutes := math.Round(float64(r.end.Sub(r.start).Milliseconds()) / 60000)
	if minutes < 0 {
		return 0
	}
	return int(minutes)
}

// HasEnded reports whether now is at or past the end of the range.
func (r TimeRange) HasEnded(now time.Time) bool {
	return !now.Before(r.end)
}

// In re-expresses both bounds in loc; the instants are unchanged.
func (r TimeRange) In(loc *time.Location) TimeRange {
	if loc == nil {
		return r
	}
	return TimeRange{start: r.start.In(loc), end: r.end.In(loc)}
}

func (r TimeRange) Equal(other TimeRange) bool {
	return r.start.Equal(other.start) && r.end.Equal(other.end)
}

func (r TimeRange) String() string {
	return fmt.Sprintf("[%s,%s)", r.start.Format(time.RFC3339), r.end.Format(time.RFC3339))
}
