package calendar

import (
	"fmt"
	"strings"
	"time"
)

const (
	// InputLayout is the "YYYY-MM-DDTHH:mm" form used by date-time inputs.
	InputLayout = "2006-01-02T15:04"

	persistLayout = "2006-01-02T15:04:05.000Z"
)

// FormatInput renders t as a local input value in loc.
func FormatInput(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(InputLayout)
}

// ParseInput reads a local input value in loc. Seconds are tolerated.
func ParseInput(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date-time value")
	}
	if t, err := time.ParseInLocation(InputLayout, s, loc); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation("2006-01-02T15:04:05", s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date-time %q: %w", s, err)
	}
	return t, nil
}

// ToPersistable converts a local input value into the string the backend
// stores: the same wall clock, labelled UTC. The backend drops the zone, so
// 09:00 local is sent as "...T09:00:00.000Z".
func ToPersistable(s string, loc *time.Location) (string, error) {
	t, err := ParseInput(s, loc)
	if err != nil {
		return "", err
	}
	return Persistable(t), nil
}

// Persistable formats t's wall clock in its own location as a UTC-labelled ISO string.
func Persistable(t time.Time) string {
	_, offset := t.Zone()
	return t.Add(time.Duration(offset) * time.Second).UTC().Format(persistLayout)
}

// AddToInput parses a local input value, shifts it by d and formats it back.
// ok is false when s does not parse.
func AddToInput(s string, d time.Duration, loc *time.Location) (string, bool) {
	t, err := ParseInput(s, loc)
	if err != nil {
		return "", false
	}
	return FormatInput(t.Add(d), loc), true
}
