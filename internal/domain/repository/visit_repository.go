// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"vms/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrVisitNotFound is returned when a visit record is not found or already deleted.
var ErrVisitNotFound = errors.New("visit not found")

// VisitFilter narrows visit listings. Zero values are ignored.
type VisitFilter struct {
	HostID  uuid.UUID
	Status  entity.VisitStatus
	Purpose entity.VisitPurpose
	From    time.Time
	To      time.Time
	Limit   int
	Offset  int
}

// VisitStats aggregates visit counts for reporting.
type VisitStats struct {
	Total      int64                         `json:"total"`
	CheckedIn  int64                         `json:"checked_in"`
	CheckedOut int64                         `json:"checked_out"`
	ByPurpose  map[entity.VisitPurpose]int64 `json:"by_purpose"`
}

// VisitRepository defines the interface for visit record persistence.
// Deletion is a hard delete; removed records leave no tombstone.
type VisitRepository interface {
	// CreateVisit persists a new visit record.
	CreateVisit(ctx context.Context, visit *entity.VisitRecord) error

	// FindVisitByID retrieves a visit record by its unique ID.
	FindVisitByID(ctx context.Context, id uuid.UUID) (*entity.VisitRecord, error)

	// ListVisits retrieves visit records matching the filter, newest first,
	// together with the total match count before pagination.
	ListVisits(ctx context.Context, filter VisitFilter) ([]*entity.VisitRecord, int64, error)

	// CheckOut transitions a visit to checked-out and stamps its time out.
	CheckOut(ctx context.Context, id uuid.UUID, timeOut time.Time) error

	// DeleteVisit permanently removes a visit record by its ID.
	DeleteVisit(ctx context.Context, id uuid.UUID) error

	// Stats aggregates visit counts within the given date range.
	Stats(ctx context.Context, from, to time.Time) (*VisitStats, error)
}
