package model

import (
	"time"

	"github.com/google/uuid"
)

// VisitRecordModel is the GORM-specific struct for the 'visit_records' table.
// It represents a single visitor check-in, optionally closed by a check-out.
// Deletion is a hard delete: a removed record leaves no tombstone.
type VisitRecordModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	HostID           uuid.UUID `gorm:"type:uuid;not null;index"`
	CheckinOfficerID uuid.UUID `gorm:"type:uuid;not null;index"`
	VisitorFirstName string    `gorm:"type:varchar(100);not null"`
	VisitorLastName  string    `gorm:"type:varchar(100);not null"`
	NationalID       string    `gorm:"type:varchar(64);not null"`
	Phone            string    `gorm:"type:varchar(32)"`
	Purpose          string    `gorm:"type:varchar(64);not null"`
	Status           string    `gorm:"type:varchar(32);not null;index"`
	VisitDate        time.Time `gorm:"not null;index"`
	TimeIn           time.Time `gorm:"not null"`
	TimeOut          *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (VisitRecordModel) TableName() string {
	return "visit_records"
}
