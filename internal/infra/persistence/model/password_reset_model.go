package model

import (
	"time"

	"github.com/google/uuid"
)

// PasswordResetModel is the GORM-specific struct for the 'password_resets'
// table. At most one pending reset exists per email; issuing a new code
// replaces the previous row.
type PasswordResetModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	OTPHash   string    `gorm:"type:varchar(255);not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PasswordResetModel) TableName() string {
	return "password_resets"
}
