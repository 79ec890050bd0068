package service

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTimestampMarshal(t *testing.T) {
	ts := Timestamp{time.Date(2024, 3, 15, 9, 30, 0, 123456000, time.Local)}
	data, err := json.Marshal(ts)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `"2024-03-15T09:30:00.123456"`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}
}

func TestTimestampUnmarshalFormats(t *testing.T) {
	cases := []string{
		`"2024-03-15T09:30:00.123456"`,
		`"2024-03-15T09:30:00"`,
		`"2024-03-15T09:30:00Z"`,
		`"2024-03-15T09:30:00.123456789+02:00"`,
	}
	for _, raw := range cases {
		var ts Timestamp
		if err := json.Unmarshal([]byte(raw), &ts); err != nil {
			t.Errorf("unmarshal %s: %v", raw, err)
		}
		if ts.IsZero() {
			t.Errorf("unmarshal %s: zero time", raw)
		}
	}
}

func TestTimestampUnmarshalRejectsGarbage(t *testing.T) {
	var ts Timestamp
	if err := json.Unmarshal([]byte(`"yesterday"`), &ts); err == nil {
		t.Error("expected error for unparseable timestamp")
	}
}

func TestItemJSONShape(t *testing.T) {
	item := Item{
		Text:      "task",
		CreatedAt: Timestamp{time.Date(2024, 3, 15, 9, 30, 0, 0, time.Local)},
	}
	data, err := json.Marshal(item)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"text":"task","completed":false,"created_at":"2024-03-15T09:30:00.000000","completed_at":null}`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}
}

func TestItemString(t *testing.T) {
	pending := Item{Text: "write tests"}
	if got := pending.String(); got != "[○] write tests" {
		t.Errorf("pending: got %q", got)
	}
	done := Item{Text: "write tests", Completed: true}
	if got := done.String(); got != "[✓] write tests" {
		t.Errorf("completed: got %q", got)
	}
}

func TestParseListFilter(t *testing.T) {
	for _, valid := range []string{"all", "pending", "completed"} {
		if _, err := ParseListFilter(valid); err != nil {
			t.Errorf("ParseListFilter(%q): %v", valid, err)
		}
	}
	if _, err := ParseListFilter("done"); err == nil {
		t.Error("expected error for invalid filter")
	}
}
