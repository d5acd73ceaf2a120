// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a staff account in the visitor management system.
// Every user carries exactly one role; hosts additionally own an
// availability schedule used when visitors check in to see them.
type User struct {
	ID           uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the user.
	FirstName    string    `json:"first_name"` // The user's given name.
	LastName     string    `json:"last_name"`  // The user's family name.
	Email        string    `json:"email"`      // The user's primary contact email, used as a login identifier.
	Phone        string    `json:"phone"`      // The user's phone number, also accepted as a login identifier.
	PasswordHash string    `json:"-"`          // The bcrypt hash of the user's password. Never serialized.
	Role         Role      `json:"role"`       // The user's role, driving the capability policy.
	CreatedAt    time.Time `json:"created_at"` // Timestamp of when this account was created.
	UpdatedAt    time.Time `json:"updated_at"` // Timestamp of the last modification to this account.
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
