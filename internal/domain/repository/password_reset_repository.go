// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"vms/internal/domain/entity"
)

// ErrPasswordResetNotFound is returned when no pending reset exists for an email.
var ErrPasswordResetNotFound = errors.New("password reset not found")

// PasswordResetRepository defines the interface for one time pass code persistence.
// At most one pending reset exists per email; creating a new one replaces it.
type PasswordResetRepository interface {
	// CreateReset stores a pending reset, replacing any previous one for the email.
	CreateReset(ctx context.Context, reset *entity.PasswordReset) error

	// FindByEmail retrieves the pending reset for an email.
	FindByEmail(ctx context.Context, email string) (*entity.PasswordReset, error)

	// DeleteByEmail removes the pending reset for an email once consumed.
	DeleteByEmail(ctx context.Context, email string) error
}
