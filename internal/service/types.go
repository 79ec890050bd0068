// Package service defines the backend-agnostic interface for store operations.
package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// timeLayout is the on-disk timestamp format: naive local time with
// microsecond precision, as written by existing item files.
const timeLayout = "2006-01-02T15:04:05.000000"

// parseLayouts are accepted when reading item files. Hand-edited files
// sometimes carry second precision or an RFC 3339 offset.
var parseLayouts = []string{
	timeLayout,
	"2006-01-02T15:04:05",
	time.RFC3339Nano,
	time.RFC3339,
}

// Timestamp is a time.Time that serializes as a naive ISO-8601 string.
type Timestamp struct {
	time.Time
}

// Now returns the current local time as a Timestamp.
func Now() Timestamp {
	return Timestamp{time.Now()}
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Format(timeLayout) + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	for _, layout := range parseLayouts {
		if parsed, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("timestamp: unrecognized format: %q", s)
}

// Item represents a single todo item.
// Field order matches the on-disk JSON object order.
type Item struct {
	Text        string     `json:"text"`
	Completed   bool       `json:"completed"`
	CreatedAt   Timestamp  `json:"created_at"`
	CompletedAt *Timestamp `json:"completed_at"`
}

// StatusIcon returns the check glyph used in display output.
func (i Item) StatusIcon() string {
	if i.Completed {
		return "✓"
	}
	return "○"
}

// String renders the item the way the CLI prints it.
func (i Item) String() string {
	return fmt.Sprintf("[%s] %s", i.StatusIcon(), i.Text)
}

// Pattern is a single prefix → expansion entry.
type Pattern struct {
	Prefix    string
	Expansion string
}

// ListFilter selects which items ListItems returns.
type ListFilter string

const (
	FilterAll       ListFilter = "all"
	FilterPending   ListFilter = "pending"
	FilterCompleted ListFilter = "completed"
)

// ParseListFilter validates a --filter value.
func ParseListFilter(s string) (ListFilter, error) {
	switch ListFilter(s) {
	case FilterAll, FilterPending, FilterCompleted:
		return ListFilter(s), nil
	}
	return "", fmt.Errorf("invalid filter: %s (choose all, pending or completed)", s)
}
