// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionKeys holds the cryptographic material of a Web Push
// subscription as handed out by the browser's Push API.
type SubscriptionKeys struct {
	P256dh string `json:"p256dh"` // The client's public ECDH key on the P-256 curve.
	Auth   string `json:"auth"`   // The client's authentication secret.
}

// PushSubscription registers a browser push endpoint for a user. A user holds
// at most one subscription per endpoint; resubscribing with the same endpoint
// updates the keys in place instead of creating a duplicate row.
type PushSubscription struct {
	ID        uuid.UUID        `json:"id"`         // The Global Unique Identifier (GUID) for the subscription.
	UserID    uuid.UUID        `json:"user_id"`    // The ID of the user who owns this subscription.
	Endpoint  string           `json:"endpoint"`   // The push service URL messages are delivered to.
	Keys      SubscriptionKeys `json:"keys"`       // The encryption keys for payload delivery.
	CreatedAt time.Time        `json:"created_at"` // Timestamp of when the subscription was first saved.
	UpdatedAt time.Time        `json:"updated_at"` // Timestamp of the last key rotation.
}

// IsDeliverable reports whether the subscription carries everything a Web
// Push send requires: a non-empty endpoint and both encryption keys.
func (s *PushSubscription) IsDeliverable() bool {
	return s != nil && s.Endpoint != "" && s.Keys.P256dh != "" && s.Keys.Auth != ""
}
