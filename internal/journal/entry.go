package journal

import (
	"strings"
	"time"
)

// Entry is one mood+text record. Timestamp (Unix milliseconds) doubles as
// the entry's identity: deletion looks entries up by it, not by a separate id.
type Entry struct {
	Mood      string `json:"mood"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}

// NewEntry stamps an entry with the current instant.
func NewEntry(mood, text string) Entry {
	return Entry{
		Mood:      strings.TrimSpace(mood),
		Text:      strings.TrimSpace(text),
		Timestamp: time.Now().UnixMilli(),
	}
}

// Valid reports whether the entry may be submitted. Invalid submissions are
// silently discarded by callers; there is no user-facing validation error.
func (e Entry) Valid() bool {
	return strings.TrimSpace(e.Mood) != "" && strings.TrimSpace(e.Text) != ""
}

// When returns the creation instant in the given location.
func (e Entry) When(loc *time.Location) time.Time {
	return time.UnixMilli(e.Timestamp).In(loc)
}

// Day returns the calendar-day key ("2006-01-02") used for date filtering
// and calendar grouping. Day comparisons are string comparisons.
func (e Entry) Day(loc *time.Location) string {
	return e.When(loc).Format("2006-01-02")
}
