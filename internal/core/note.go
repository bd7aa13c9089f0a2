package core

import "time"

// TimeLayout is the canonical timestamp format used in tool responses:
// UTC with microsecond precision and a literal Z suffix.
const TimeLayout = "2006-01-02T15:04:05.000000Z"

// Note represents a single stored note.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FormatTime renders a timestamp in the canonical wire format.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}
