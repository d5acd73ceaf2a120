package postgres

import (
	"context"

	"vms/internal/domain/entity"
	"vms/internal/domain/repository"
	"vms/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// subscriptionRepository implements the repository.SubscriptionRepository interface using GORM.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
	}
}

// UpsertSubscription creates the subscription, or refreshes its keys when the
// (user, endpoint) pair already exists.
func (repo *subscriptionRepository) UpsertSubscription(ctx context.Context, subscription *entity.PushSubscription) error {
	subscriptionM := fromSubscriptionDomain(subscription)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "endpoint"}},
			DoUpdates: clause.AssignmentColumns([]string{"p256dh", "auth", "updated_at"}),
		}).
		Create(subscriptionM).Error; err != nil {
		return errors.Wrap(err, "failed to upsert push subscription")
	}

	subscription.ID = subscriptionM.ID
	subscription.CreatedAt = subscriptionM.CreatedAt
	subscription.UpdatedAt = subscriptionM.UpdatedAt

	return nil
}

// FindSubscriptionsByUser retrieves all subscriptions registered by a user.
func (repo *subscriptionRepository) FindSubscriptionsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PushSubscription, error) {
	var subscriptionMs []*model.PushSubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&subscriptionMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find push subscriptions by user")
	}

	subscriptions := make([]*entity.PushSubscription, 0, len(subscriptionMs))
	for _, subscriptionM := range subscriptionMs {
		subscriptions = append(subscriptions, toSubscriptionDomain(subscriptionM))
	}

	return subscriptions, nil
}

// DeleteByEndpoint removes a user's subscription for a specific endpoint.
func (repo *subscriptionRepository) DeleteByEndpoint(ctx context.Context, userID uuid.UUID, endpoint string) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND endpoint = ?", userID, endpoint).
		Delete(&model.PushSubscriptionModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete push subscription by endpoint")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// toSubscriptionDomain converts a GORM model to a domain entity.
func toSubscriptionDomain(subscriptionM *model.PushSubscriptionModel) *entity.PushSubscription {
	return &entity.PushSubscription{
		ID:       subscriptionM.ID,
		UserID:   subscriptionM.UserID,
		Endpoint: subscriptionM.Endpoint,
		Keys: entity.SubscriptionKeys{
			P256dh: subscriptionM.P256dh,
			Auth:   subscriptionM.Auth,
		},
		CreatedAt: subscriptionM.CreatedAt,
		UpdatedAt: subscriptionM.UpdatedAt,
	}
}

// fromSubscriptionDomain converts a domain entity to a GORM model.
func fromSubscriptionDomain(subscription *entity.PushSubscription) *model.PushSubscriptionModel {
	return &model.PushSubscriptionModel{
		ID:       subscription.ID,
		UserID:   subscription.UserID,
		Endpoint: subscription.Endpoint,
		P256dh:   subscription.Keys.P256dh,
		Auth:     subscription.Keys.Auth,
	}
}
