// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PasswordReset stores a short-lived one-time pass code issued by the
// forgot-password flow. The code itself is never persisted; only its bcrypt
// hash is, compared on verification and deleted on success.
type PasswordReset struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the reset request.
	Email     string    // The email the code was sent to.
	OTPHash   string    // bcrypt hash of the one-time pass code.
	ExpiresAt time.Time // The instant the code stops being accepted.
	CreatedAt time.Time // Timestamp of when the code was issued.
}

// Expired reports whether the code is past its expiry at the given instant.
func (p *PasswordReset) Expired(now time.Time) bool {
	return now.After(p.ExpiresAt)
}
