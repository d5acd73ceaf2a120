package service

import (
	"context"
)

// CheckInEvent represents a completed check-in to be processed by the notify worker
type CheckInEvent struct {
	RequestID   string `json:"request_id,omitempty"` // For distributed tracing
	VisitID     string `json:"visit_id"`
	HostID      string `json:"host_id"`
	VisitorName string `json:"visitor_name"`
	Purpose     string `json:"purpose"`
	CheckedInAt string `json:"checked_in_at"` // RFC 3339
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishCheckInEvent publishes a check-in event for async processing
	PublishCheckInEvent(ctx context.Context, event *CheckInEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
