package service

import (
	"context"
	"time"
)

// ActivityEvent is published whenever an activity entry is appended to a session.
type ActivityEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	ActivityID string    `json:"activity_id"`
	UserID     string    `json:"user_id"`
	Title      string    `json:"title"`
	Timestamp  time.Time `json:"timestamp"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishActivityEvent publishes an activity event
	PublishActivityEvent(ctx context.Context, event *ActivityEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
