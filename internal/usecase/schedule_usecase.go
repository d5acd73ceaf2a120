// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"vms/internal/domain/availability"
	"vms/internal/domain/entity"

	"github.com/google/uuid"
)

// WindowInput defines the bounds of an availability window.
type WindowInput struct {
	StartAt time.Time
	EndAt   time.Time
}

// ScheduleOutput returns a host's windows together with the first overlapping
// pair found among them, if any. Overlap can only appear in data written
// before overlap enforcement; callers surface it as a warning.
type ScheduleOutput struct {
	Windows []*entity.AvailabilityWindow `json:"windows"`
	Overlap *availability.Overlap        `json:"overlap,omitempty"`
}

// ScheduleUsecase defines the interface for availability schedule management.
type ScheduleUsecase interface {
	// CreateWindow adds an availability window for a host. The window must
	// not overlap any existing window of the same host.
	CreateWindow(ctx context.Context, hostID uuid.UUID, input WindowInput) (*entity.AvailabilityWindow, error)

	// UpdateWindow replaces the bounds of one of the host's windows.
	UpdateWindow(ctx context.Context, hostID, windowID uuid.UUID, input WindowInput) (*entity.AvailabilityWindow, error)

	// DeleteWindow removes one of the host's windows.
	DeleteWindow(ctx context.Context, hostID, windowID uuid.UUID) error

	// ListWindows retrieves a host's windows ordered by start time.
	ListWindows(ctx context.Context, hostID uuid.UUID) (*ScheduleOutput, error)

	// ResolveAvailability reports whether a host is available at an instant.
	ResolveAvailability(ctx context.Context, hostID uuid.UUID, at time.Time) (availability.Decision, error)
}
