// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"vms/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSubscriptionNotFound is returned when a push subscription is not found.
var ErrSubscriptionNotFound = errors.New("subscription not found")

// SubscriptionRepository defines the interface for web push subscription persistence.
// A user holds at most one subscription per browser endpoint.
type SubscriptionRepository interface {
	// UpsertSubscription creates the subscription, or refreshes its keys when
	// the (user, endpoint) pair already exists.
	UpsertSubscription(ctx context.Context, subscription *entity.PushSubscription) error

	// FindSubscriptionsByUser retrieves all subscriptions registered by a user.
	FindSubscriptionsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PushSubscription, error)

	// DeleteByEndpoint removes a user's subscription for a specific endpoint.
	// Used to drop endpoints the push service reports as gone.
	DeleteByEndpoint(ctx context.Context, userID uuid.UUID, endpoint string) error
}
