//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// apiTimeLayouts lists the timestamp shapes the inventory API emits.
// Naive datetimes (no offset) are interpreted as UTC.
//
//nolint:gochecknoglobals // read-only parse table
var apiTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	DateLayout,
}

// DateLayout is the calendar date format used by forms and the date-only API fields.
const DateLayout = "2006-01-02"

// apiTimeWireLayout is the layout written back to the API.
const apiTimeWireLayout = "2006-01-02T15:04:05"

// Timestamp wraps time.Time with the lenient JSON handling the inventory API needs.
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps t.
func NewTimestamp(t time.Time) Timestamp { return Timestamp{Time: t} }

// ParseTimestamp parses any of the accepted API layouts.
func ParseTimestamp(raw string) (Timestamp, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range apiTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return Timestamp{Time: t}, nil
		}
	}
	return Timestamp{}, fmt.Errorf("unrecognized timestamp %q", raw)
}

// UnmarshalJSON accepts null, empty strings and every layout in apiTimeLayouts.
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	if strings.TrimSpace(raw) == "" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := ParseTimestamp(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalJSON writes a naive datetime, or null for the zero value.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.UTC().Format(apiTimeWireLayout))
}

// Date returns the calendar date portion formatted for display and form inputs.
func (t Timestamp) Date() string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}
