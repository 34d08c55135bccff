package models

import (
	"fmt"
	"regexp"
	"strconv"
)

// MinutesPerDay bounds every interval endpoint; an interval ending at
// midnight carries End == 1440.
const MinutesPerDay = 1440

var intervalPattern = regexp.MustCompile(`^([0-9]{2}):([0-9]{2})-([0-9]{2}):([0-9]{2})$`)

// TimeInterval is a contiguous time range on one calendar date, expressed
// in minutes from midnight in the business timezone.
type TimeInterval struct {
	Date  string `bson:"date" json:"date"` // e.g., "2025-02-25"
	Start int    `bson:"start" json:"start"`
	End   int    `bson:"end" json:"end"`
}

// ParseInterval parses a strict zero-padded "HH:MM-HH:MM" literal into an
// interval on the given date. The returned error always embeds the
// offending literal.
func ParseInterval(date, text string) (TimeInterval, error) {
	m := intervalPattern.FindStringSubmatch(text)
	if m == nil {
		return TimeInterval{}, fmt.Errorf("invalid time slot format %q, expected HH:MM-HH:MM", text)
	}
	start, err := minutesFromParts(m[1], m[2])
	if err != nil {
		return TimeInterval{}, fmt.Errorf("invalid time slot %q: %w", text, err)
	}
	end, err := minutesFromParts(m[3], m[4])
	if err != nil {
		return TimeInterval{}, fmt.Errorf("invalid time slot %q: %w", text, err)
	}
	if start >= end {
		return TimeInterval{}, fmt.Errorf("invalid time slot %q: start must be before end", text)
	}
	return TimeInterval{Date: date, Start: start, End: end}, nil
}

func minutesFromParts(hh, mm string) (int, error) {
	// The pattern guarantees two digits each.
	h, _ := strconv.Atoi(hh)
	m, _ := strconv.Atoi(mm)
	if h > 24 || (h == 24 && m > 0) {
		return 0, fmt.Errorf("hour %02d out of range", h)
	}
	if m > 59 {
		return 0, fmt.Errorf("minute %02d out of range", m)
	}
	return h*60 + m, nil
}

// Valid reports whether the interval satisfies 0 <= Start < End <= 1440.
func (iv TimeInterval) Valid() bool {
	return iv.Start >= 0 && iv.Start < iv.End && iv.End <= MinutesPerDay
}

// Overlaps reports true overlap: the intervals share at least one minute.
func (iv TimeInterval) Overlaps(other TimeInterval) bool {
	return iv.Start < other.End && other.Start < iv.End
}

// Touches reports exact adjacency on the same date.
func (iv TimeInterval) Touches(other TimeInterval) bool {
	if iv.Date != other.Date {
		return false
	}
	return iv.End == other.Start || other.End == iv.Start
}

// Conflicts is the booking predicate: overlap or adjacency. Back-to-back
// slots are deliberately treated as conflicting so one job ending at 15:00
// blocks another starting at 15:00.
func (iv TimeInterval) Conflicts(other TimeInterval) bool {
	return iv.Overlaps(other) || iv.Touches(other)
}

// Label renders the interval as "HH:MM-HH:MM".
func (iv TimeInterval) Label() string {
	return fmt.Sprintf("%02d:%02d-%02d:%02d", iv.Start/60, iv.Start%60, iv.End/60, iv.End%60)
}
