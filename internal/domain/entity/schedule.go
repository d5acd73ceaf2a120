// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilityWindow is a contiguous time interval during which a host may
// receive visitors. Windows for the same host never overlap; the schedule
// store enforces that invariant at write time.
type AvailabilityWindow struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the window.
	HostID    uuid.UUID `json:"host_id"`    // The ID of the host who owns this window.
	StartAt   time.Time `json:"start_at"`   // The inclusive start of the window. Always before EndAt.
	EndAt     time.Time `json:"end_at"`     // The inclusive end of the window.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when the window was created.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}
