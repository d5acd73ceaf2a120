// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"vms/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for schedule persistence.
var (
	// ErrWindowNotFound is returned when an availability window is not found.
	ErrWindowNotFound = errors.New("availability window not found")
	// ErrWindowOverlap is returned when a window would overlap an existing one for the same host.
	ErrWindowOverlap = errors.New("availability window overlaps an existing window")
)

// ScheduleRepository defines the interface for availability window persistence.
type ScheduleRepository interface {
	// CreateWindow persists a new availability window for a host.
	CreateWindow(ctx context.Context, window *entity.AvailabilityWindow) error

	// FindWindowByID retrieves an availability window by its unique ID.
	FindWindowByID(ctx context.Context, id uuid.UUID) (*entity.AvailabilityWindow, error)

	// ListWindowsByHost retrieves all windows for a host, ordered by start time ascending.
	ListWindowsByHost(ctx context.Context, hostID uuid.UUID) ([]*entity.AvailabilityWindow, error)

	// UpdateWindow replaces the start and end of an existing window.
	UpdateWindow(ctx context.Context, window *entity.AvailabilityWindow) error

	// DeleteWindow removes an availability window by its ID.
	DeleteWindow(ctx context.Context, id uuid.UUID) error

	// FindOverlapping retrieves the host's windows that overlap [start, end],
	// excluding the window with excludeID when it is non-nil. Inside a
	// transaction the matched rows are locked until commit.
	FindOverlapping(ctx context.Context, hostID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) ([]*entity.AvailabilityWindow, error)
}
