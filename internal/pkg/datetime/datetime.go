// Package datetime implements the wire format for timestamps: ISO-8601
// local date-time without a timezone, e.g. "2025-03-14T15:00:00".
package datetime

import (
	"fmt"
	"strings"
	"time"
)

const Layout = "2006-01-02T15:04:05"

// LocalDateTime marshals as a zone-less ISO-8601 string. Database values
// are stored as plain timestamps, so no conversion happens on either side.
type LocalDateTime struct {
	time.Time
}

// New truncates t to second precision, matching the wire format.
func New(t time.Time) LocalDateTime {
	return LocalDateTime{t.Truncate(time.Second)}
}

func (d LocalDateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(Layout) + `"`), nil
}

func (d *LocalDateTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return nil
	}
	// Tolerate fractional seconds from clients, drop them on parse.
	if i := strings.IndexByte(s, '.'); i > 0 {
		s = s[:i]
	}
	t, err := time.Parse(Layout, s)
	if err != nil {
		return fmt.Errorf("parse local date-time %q: %w", s, err)
	}
	d.Time = t
	return nil
}
