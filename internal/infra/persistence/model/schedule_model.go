package model

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilityWindowModel is the GORM-specific struct for the
// 'availability_windows' table. Windows of one host must not overlap; the
// schedule repository enforces that inside the write transaction.
type AvailabilityWindowModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	HostID    uuid.UUID `gorm:"type:uuid;not null;index"`
	StartAt   time.Time `gorm:"not null;index"`
	EndAt     time.Time `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AvailabilityWindowModel) TableName() string {
	return "availability_windows"
}
