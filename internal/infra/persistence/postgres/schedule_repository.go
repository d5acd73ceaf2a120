package postgres

import (
	"context"
	"time"

	"vms/internal/domain/entity"
	"vms/internal/domain/repository"
	"vms/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// scheduleRepository implements the repository.ScheduleRepository interface using GORM.
type scheduleRepository struct {
	db *gorm.DB
}

// NewScheduleRepository is the constructor for scheduleRepository.
func NewScheduleRepository(db *gorm.DB) repository.ScheduleRepository {
	return &scheduleRepository{
		db: db,
	}
}

// CreateWindow persists a new availability window for a host.
func (repo *scheduleRepository) CreateWindow(ctx context.Context, window *entity.AvailabilityWindow) error {
	windowM := fromWindowDomain(window)

	if err := repo.db.WithContext(ctx).Create(windowM).Error; err != nil {
		return errors.Wrap(err, "failed to create availability window")
	}

	window.ID = windowM.ID
	window.CreatedAt = windowM.CreatedAt
	window.UpdatedAt = windowM.UpdatedAt

	return nil
}

// FindWindowByID retrieves an availability window by its unique ID.
func (repo *scheduleRepository) FindWindowByID(ctx context.Context, id uuid.UUID) (*entity.AvailabilityWindow, error) {
	var windowM model.AvailabilityWindowModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&windowM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWindowNotFound
		}

		return nil, errors.Wrap(err, "failed to find availability window by id")
	}

	return toWindowDomain(&windowM), nil
}

// ListWindowsByHost retrieves all windows for a host, ordered by start time ascending.
func (repo *scheduleRepository) ListWindowsByHost(ctx context.Context, hostID uuid.UUID) ([]*entity.AvailabilityWindow, error) {
	var windowMs []*model.AvailabilityWindowModel

	if err := repo.db.WithContext(ctx).
		Where("host_id = ?", hostID).
		Order("start_at ASC").
		Find(&windowMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list availability windows by host")
	}

	windows := make([]*entity.AvailabilityWindow, 0, len(windowMs))
	for _, windowM := range windowMs {
		windows = append(windows, toWindowDomain(windowM))
	}

	return windows, nil
}

// UpdateWindow replaces the start and end of an existing window.
func (repo *scheduleRepository) UpdateWindow(ctx context.Context, window *entity.AvailabilityWindow) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AvailabilityWindowModel{}).
		Where("id = ?", window.ID).
		Updates(map[string]any{
			"start_at": window.StartAt,
			"end_at":   window.EndAt,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update availability window")
	}
	if result.RowsAffected == 0 {
		return repository.ErrWindowNotFound
	}

	return nil
}

// DeleteWindow removes an availability window by its ID.
func (repo *scheduleRepository) DeleteWindow(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AvailabilityWindowModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete availability window")
	}
	if result.RowsAffected == 0 {
		return repository.ErrWindowNotFound
	}

	return nil
}

// FindOverlapping retrieves the host's windows that overlap [start, end],
// excluding the window with excludeID when given. The matched rows are locked
// for update so concurrent writers serialize on the same host's schedule.
func (repo *scheduleRepository) FindOverlapping(ctx context.Context, hostID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) ([]*entity.AvailabilityWindow, error) {
	query := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("host_id = ?", hostID).
		// Closed-interval overlap: the stored window touches [start, end]
		// even when they only share a boundary instant.
		Where("start_at <= ? AND end_at >= ?", end, start)

	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var windowMs []*model.AvailabilityWindowModel
	if err := query.Order("start_at ASC").Find(&windowMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find overlapping availability windows")
	}

	windows := make([]*entity.AvailabilityWindow, 0, len(windowMs))
	for _, windowM := range windowMs {
		windows = append(windows, toWindowDomain(windowM))
	}

	return windows, nil
}

// toWindowDomain converts a GORM model to a domain entity.
func toWindowDomain(windowM *model.AvailabilityWindowModel) *entity.AvailabilityWindow {
	return &entity.AvailabilityWindow{
		ID:        windowM.ID,
		HostID:    windowM.HostID,
		StartAt:   windowM.StartAt,
		EndAt:     windowM.EndAt,
		CreatedAt: windowM.CreatedAt,
		UpdatedAt: windowM.UpdatedAt,
	}
}

// fromWindowDomain converts a domain entity to a GORM model.
func fromWindowDomain(window *entity.AvailabilityWindow) *model.AvailabilityWindowModel {
	return &model.AvailabilityWindowModel{
		ID:      window.ID,
		HostID:  window.HostID,
		StartAt: window.StartAt,
		EndAt:   window.EndAt,
	}
}
