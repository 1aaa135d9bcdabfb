package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ActivityEntry is a session-only log line shown on the home screen.
type ActivityEntry struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Timestamp time.Time `json:"timestamp"`
}

// NewActivityEntry stamps a new entry with a generated id.
func NewActivityEntry(title string, now time.Time) ActivityEntry {
	return ActivityEntry{
		ID:        uuid.New(),
		Title:     title,
		Timestamp: now,
	}
}

// TimeAgo renders the entry age relative to now.
func (a ActivityEntry) TimeAgo(now time.Time) string {
	elapsed := now.Sub(a.Timestamp)
	switch {
	case elapsed < time.Minute:
		return "Just now"
	case elapsed < time.Hour:
		return fmt.Sprintf("%dm ago", int(elapsed/time.Minute))
	case elapsed < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(elapsed/time.Hour))
	default:
		return fmt.Sprintf("%dd ago", int(elapsed/(24*time.Hour)))
	}
}
