// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"vms/internal/domain/entity"
	"vms/internal/domain/service"

	"github.com/google/uuid"
)

// SubscribeInput carries a browser push subscription as delivered by the
// Push API: the endpoint URL plus the p256dh and auth encryption keys.
type SubscribeInput struct {
	Endpoint string
	P256dh   string
	Auth     string
}

// NotificationUsecase defines the interface for notification management use cases
type NotificationUsecase interface {
	// DispatchCheckIn fans a check-in event out to the host: it persists an
	// in-app notification, then attempts web push, mobile push and email.
	// Only the persistence step is fatal; delivery failures are logged.
	DispatchCheckIn(ctx context.Context, event *service.CheckInEvent) error

	// Subscribe registers or refreshes a user's web push subscription.
	Subscribe(ctx context.Context, userID uuid.UUID, input SubscribeInput) (*entity.PushSubscription, error)

	// ListNotifications retrieves a user's notifications with pagination,
	// newest first, optionally narrowed to unread ones.
	ListNotifications(ctx context.Context, userID uuid.UUID, onlyUnread bool, limit, offset int) ([]*entity.Notification, error)

	// UnreadCount returns the number of unread notifications for a user.
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)

	// MarkRead marks one of the user's notifications as read.
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error

	// MarkAllRead marks all of the user's notifications as read.
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
}
