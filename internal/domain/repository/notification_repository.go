// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"vms/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the interface for in-app notification persistence.
type NotificationRepository interface {
	// CreateNotification persists a new notification for a recipient.
	CreateNotification(ctx context.Context, notification *entity.Notification) error

	// FindNotificationByID retrieves a notification by its unique ID.
	FindNotificationByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// ListByRecipient retrieves notifications for a recipient, newest first.
	// When onlyUnread is set, read notifications are excluded.
	ListByRecipient(ctx context.Context, recipientID uuid.UUID, onlyUnread bool, limit, offset int) ([]*entity.Notification, error)

	// CountUnread returns the number of unread notifications for a recipient.
	CountUnread(ctx context.Context, recipientID uuid.UUID) (int64, error)

	// MarkRead marks a single notification as read.
	MarkRead(ctx context.Context, id uuid.UUID) error

	// MarkAllRead marks every notification for a recipient as read.
	MarkAllRead(ctx context.Context, recipientID uuid.UUID) error
}
