package postgres

import (
	"context"

	"vms/internal/domain/entity"
	"vms/internal/domain/repository"
	"vms/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface using GORM.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// CreateNotification persists a new notification for a recipient.
func (repo *notificationRepository) CreateNotification(ctx context.Context, notification *entity.Notification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		return errors.Wrap(err, "failed to create notification")
	}

	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// FindNotificationByID retrieves a notification by its unique ID.
func (repo *notificationRepository) FindNotificationByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	var notificationM model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification by id")
	}

	return toNotificationDomain(&notificationM), nil
}

// ListByRecipient retrieves notifications for a recipient, newest first.
// When onlyUnread is set, read notifications are excluded.
func (repo *notificationRepository) ListByRecipient(ctx context.Context, recipientID uuid.UUID, onlyUnread bool, limit, offset int) ([]*entity.Notification, error) {
	var notificationMs []*model.NotificationModel

	query := repo.db.WithContext(ctx).
		Where("recipient_id = ?", recipientID)
	if onlyUnread {
		query = query.Where("is_read = ?", false)
	}

	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&notificationMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list notifications by recipient")
	}

	notifications := make([]*entity.Notification, 0, len(notificationMs))
	for _, notificationM := range notificationMs {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, nil
}

// CountUnread returns the number of unread notifications for a recipient.
func (repo *notificationRepository) CountUnread(ctx context.Context, recipientID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

// MarkRead marks a single notification as read.
func (repo *notificationRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ?", id).
		Update("is_read", true)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark notification as read")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// MarkAllRead marks every notification for a recipient as read.
func (repo *notificationRepository) MarkAllRead(ctx context.Context, recipientID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Update("is_read", true).Error; err != nil {
		return errors.Wrap(err, "failed to mark all notifications as read")
	}

	return nil
}

// toNotificationDomain converts a GORM model to a domain entity.
func toNotificationDomain(notificationM *model.NotificationModel) *entity.Notification {
	return &entity.Notification{
		ID:          notificationM.ID,
		RecipientID: notificationM.RecipientID,
		Title:       notificationM.Title,
		Message:     notificationM.Message,
		IsRead:      notificationM.IsRead,
		CreatedAt:   notificationM.CreatedAt,
	}
}

// fromNotificationDomain converts a domain entity to a GORM model.
func fromNotificationDomain(notification *entity.Notification) *model.NotificationModel {
	return &model.NotificationModel{
		ID:          notification.ID,
		RecipientID: notification.RecipientID,
		Title:       notification.Title,
		Message:     notification.Message,
		IsRead:      notification.IsRead,
	}
}
