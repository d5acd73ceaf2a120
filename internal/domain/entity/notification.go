// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification represents an in-app message delivered to a host, typically
// announcing a new visitor check-in. It belongs to its recipient and is only
// ever mutated by mark-as-read operations.
type Notification struct {
	ID          uuid.UUID `json:"id"`           // The Global Unique Identifier (GUID) for the notification.
	RecipientID uuid.UUID `json:"recipient_id"` // The ID of the host this notification is addressed to.
	Title       string    `json:"title"`        // Short headline, e.g. "New visitor check in.".
	Message     string    `json:"message"`      // The full notification text.
	IsRead      bool      `json:"is_read"`      // Whether the recipient has read the notification.
	CreatedAt   time.Time `json:"created_at"`   // Timestamp of when the notification was created.
}
