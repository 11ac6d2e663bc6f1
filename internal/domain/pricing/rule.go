package pricing

import (
	"slices"
	"strconv"
	"strings"
	"time"
)

type RateType string

const (
	RateMultiplier RateType = "multiplier"
	RateFixed      RateType = "fixed"
)

const minutesPerDay = 24 * 60

// Rule adjusts the hourly rate for bookings that touch its weekday/time-of-day window.
// The zero Rule is the "no rule applied" value and serializes as {}.
type Rule struct {
	DaysOfWeek []int    `json:"daysOfWeek,omitempty"`
	StartTime  string   `json:"startTime,omitempty"`
	EndTime    string   `json:"endTime,omitempty"`
	RateType   RateType `json:"rateType,omitempty"`
	Value      *float64 `json:"value,omitempty"`
}

func (r Rule) IsZero() bool {
	return r.RateType == "" && r.Value == nil && r.StartTime == "" && r.EndTime == "" && len(r.DaysOfWeek) == 0
}

// AppliesOn reports whether the rule covers the given weekday. No days means every day.
func (r Rule) AppliesOn(day time.Weekday) bool {
	if len(r.DaysOfWeek) == 0 {
		return true
	}
	return slices.Contains(r.DaysOfWeek, int(day))
}

// Window returns the rule's [start, end) minute-of-day bounds, defaulting to the whole day.
// ok is false when a bound is malformed; such a rule never matches.
func (r Rule) Window() (start, end int, ok bool) {
	start, end = 0, minutesPerDay
	if r.StartTime != "" {
		m, valid := ParseClock(r.StartTime)
		if !valid {
			return 0, 0, false
		}
		start = m
	}
	if r.EndTime != "" {
		m, valid := ParseClock(r.EndTime)
		if !valid {
			return 0, 0, false
		}
		end = m
	}
	return start, end, true
}

// Matches applies the day filter and the minute-of-day overlap test.
func (r Rule) Matches(day time.Weekday, startMinute, endMinute int) bool {
	if !r.AppliesOn(day) {
		return false
	}
	ruleStart, ruleEnd, ok := r.Window()
	if !ok {
		return false
	}
	return startMinute < ruleEnd && endMinute > ruleStart
}

// HourlyRate derives the effective hourly rate from base. A missing value falls back to
// base for fixed rules and to 1 for multipliers; an unknown rate type leaves base untouched.
func (r Rule) HourlyRate(base float64) float64 {
	switch r.RateType {
	case RateMultiplier:
		if r.Value == nil {
			return base
		}
		return base * *r.Value
	case RateFixed:
		if r.Value == nil {
			return base
		}
		return *r.Value
	default:
		return base
	}
}

// ParseClock converts "HH:MM" into minutes since midnight. "24:00" is the end-of-day bound.
func ParseClock(s string) (int, bool) {
	hh, mm, found := strings.Cut(strings.TrimSpace(s), ":")
	if !found {
		return 0, false
	}
	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return 0, false
	}
	if h < 0 || m < 0 || m > 59 || h > 24 || (h == 24 && m != 0) {
		return 0, false
	}
	return h*60 + m, true
}
