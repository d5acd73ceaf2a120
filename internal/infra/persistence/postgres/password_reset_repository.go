package postgres

import (
	"context"

	"vms/internal/domain/entity"
	"vms/internal/domain/repository"
	"vms/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// passwordResetRepository implements the repository.PasswordResetRepository interface using GORM.
type passwordResetRepository struct {
	db *gorm.DB
}

// NewPasswordResetRepository is the constructor for passwordResetRepository.
func NewPasswordResetRepository(db *gorm.DB) repository.PasswordResetRepository {
	return &passwordResetRepository{
		db: db,
	}
}

// CreateReset stores a pending reset, replacing any previous one for the email.
func (repo *passwordResetRepository) CreateReset(ctx context.Context, reset *entity.PasswordReset) error {
	resetM := fromPasswordResetDomain(reset)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoUpdates: clause.AssignmentColumns([]string{"otp_hash", "expires_at", "created_at"}),
		}).
		Create(resetM).Error; err != nil {
		return errors.Wrap(err, "failed to create password reset")
	}

	reset.ID = resetM.ID
	reset.CreatedAt = resetM.CreatedAt

	return nil
}

// FindByEmail retrieves the pending reset for an email.
func (repo *passwordResetRepository) FindByEmail(ctx context.Context, email string) (*entity.PasswordReset, error) {
	var resetM model.PasswordResetModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&resetM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPasswordResetNotFound
		}

		return nil, errors.Wrap(err, "failed to find password reset by email")
	}

	return toPasswordResetDomain(&resetM), nil
}

// DeleteByEmail removes the pending reset for an email once consumed.
func (repo *passwordResetRepository) DeleteByEmail(ctx context.Context, email string) error {
	result := repo.db.WithContext(ctx).
		Where("email = ?", email).
		Delete(&model.PasswordResetModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete password reset by email")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPasswordResetNotFound
	}

	return nil
}

// toPasswordResetDomain converts a GORM model to a domain entity.
func toPasswordResetDomain(resetM *model.PasswordResetModel) *entity.PasswordReset {
	return &entity.PasswordReset{
		ID:        resetM.ID,
		Email:     resetM.Email,
		OTPHash:   resetM.OTPHash,
		ExpiresAt: resetM.ExpiresAt,
		CreatedAt: resetM.CreatedAt,
	}
}

// fromPasswordResetDomain converts a domain entity to a GORM model.
func fromPasswordResetDomain(reset *entity.PasswordReset) *model.PasswordResetModel {
	return &model.PasswordResetModel{
		ID:        reset.ID,
		Email:     reset.Email,
		OTPHash:   reset.OTPHash,
		ExpiresAt: reset.ExpiresAt,
	}
}
