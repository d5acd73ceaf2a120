// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"vms/internal/domain/entity"
	"vms/internal/domain/repository"

	"github.com/google/uuid"
)

// CheckInInput defines the data captured at the front desk for a new visit.
// A zero TimeIn means the visit starts now.
type CheckInInput struct {
	HostID           uuid.UUID
	CheckinOfficerID uuid.UUID
	FirstName        string
	LastName         string
	NationalID       string
	Phone            string
	Purpose          entity.VisitPurpose
	TimeIn           time.Time
}

// ListVisitsInput narrows the visit log listing. Zero values are ignored.
type ListVisitsInput struct {
	HostID  uuid.UUID
	Status  entity.VisitStatus
	Purpose entity.VisitPurpose
	From    time.Time
	To      time.Time
	Limit   int
	Offset  int
}

// HostVisitsInput narrows a host's own visit log.
type HostVisitsInput struct {
	TodayOnly bool
	Limit     int
	Offset    int
}

// VisitListOutput returns a page of visit records with pagination totals.
type VisitListOutput struct {
	Visits     []*entity.VisitRecord `json:"visits"`
	Total      int64                 `json:"total"`
	TotalPages int64                 `json:"total_pages"`
}

// VisitUsecase defines the interface for visit lifecycle operations.
type VisitUsecase interface {
	// CheckIn validates the host's availability and records a new visit.
	// The host is notified asynchronously; check-in never waits on delivery.
	CheckIn(ctx context.Context, input CheckInInput) (*entity.VisitRecord, error)

	// CheckOut transitions a checked-in visit to checked-out.
	CheckOut(ctx context.Context, visitID uuid.UUID) (*entity.VisitRecord, error)

	// DeleteVisit permanently removes a visit record.
	DeleteVisit(ctx context.Context, visitID uuid.UUID) error

	// ListVisits retrieves visit records matching the filter, newest first,
	// with pagination totals.
	ListVisits(ctx context.Context, input ListVisitsInput) (*VisitListOutput, error)

	// HostVisits retrieves the authenticated host's own visit log, optionally
	// narrowed to the current server day.
	HostVisits(ctx context.Context, hostID uuid.UUID, input HostVisitsInput) (*VisitListOutput, error)

	// Stats aggregates visit counts within a date range, defaulting to the
	// current server day when no range is given.
	Stats(ctx context.Context, from, to time.Time) (*repository.VisitStats, error)

	// Purposes lists the accepted visit purposes.
	Purposes(ctx context.Context) []entity.VisitPurpose

	// Badge renders the QR badge image for a visit.
	Badge(ctx context.Context, visitID uuid.UUID) ([]byte, error)
}
