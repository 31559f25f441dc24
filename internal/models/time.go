package models

import (
	"fmt"
	"strconv"
	"sync/atomic"
	"time"
)

// NaiveLayout is the zone-less timestamp format the clinic backend emits.
const NaiveLayout = "2006-01-02T15:04:05"

var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
}

var wallClock atomic.Pointer[time.Location]

// SetLocation sets the zone naive timestamps are read and written in. A nil
// loc restores time.Local.
func SetLocation(loc *time.Location) {
	wallClock.Store(loc)
}

// Location returns the zone of naive timestamps, time.Local unless set.
func Location() *time.Location {
	if loc := wallClock.Load(); loc != nil {
		return loc
	}
	return time.Local
}

// Time wraps time.Time with the backend's timestamp conventions: zoned RFC 3339
// values are taken as-is, naive values are read as wall clock in Location().
type Time struct {
	time.Time
}

// NewTime wraps t.
func NewTime(t time.Time) Time {
	return Time{Time: t}
}

// ParseTimestamp parses a backend timestamp. Strings without a zone are
// interpreted in Location().
func ParseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, s, Location()); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// UnmarshalJSON accepts null, an empty string, or any layout ParseTimestamp knows.
func (t *Time) UnmarshalJSON(b []byte) error {
	raw := string(b)
	if raw == "null" || raw == `""` {
		t.Time = time.Time{}
		return nil
	}
	s, err := strconv.Unquote(raw)
	if err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

// MarshalJSON writes the wall clock in Location() without a zone, the way the backend does.
func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(strconv.Quote(t.In(Location()).Format(NaiveLayout))), nil
}
