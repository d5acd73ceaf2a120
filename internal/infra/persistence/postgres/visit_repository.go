// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"vms/internal/domain/entity"
	domainerrors "vms/internal/domain/errors"
	"vms/internal/domain/repository"
	"vms/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// visitRepository implements the repository.VisitRepository interface using GORM.
type visitRepository struct {
	db *gorm.DB
}

// NewVisitRepository is the constructor for visitRepository.
func NewVisitRepository(db *gorm.DB) repository.VisitRepository {
	return &visitRepository{
		db: db,
	}
}

// CreateVisit persists a new visit record.
func (repo *visitRepository) CreateVisit(ctx context.Context, visit *entity.VisitRecord) error {
	visitM := fromVisitDomain(visit)

	if err := repo.db.WithContext(ctx).Create(visitM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("visit references an unknown user")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required visit information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create visit")
	}

	visit.ID = visitM.ID
	visit.CreatedAt = visitM.CreatedAt
	visit.UpdatedAt = visitM.UpdatedAt

	return nil
}

// FindVisitByID retrieves a visit record by its unique ID.
func (repo *visitRepository) FindVisitByID(ctx context.Context, id uuid.UUID) (*entity.VisitRecord, error) {
	var visitM model.VisitRecordModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&visitM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVisitNotFound
		}

		return nil, errors.Wrap(err, "failed to find visit by id")
	}

	return toVisitDomain(&visitM), nil
}

// ListVisits retrieves visit records matching the filter, newest first,
// together with the total match count before pagination.
func (repo *visitRepository) ListVisits(ctx context.Context, filter repository.VisitFilter) ([]*entity.VisitRecord, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.VisitRecordModel{})

	if filter.HostID != uuid.Nil {
		query = query.Where("host_id = ?", filter.HostID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Purpose != "" {
		query = query.Where("purpose = ?", filter.Purpose.String())
	}
	if !filter.From.IsZero() {
		query = query.Where("time_in >= ?", filter.From)
	}
	if !filter.To.IsZero() {
		query = query.Where("time_in <= ?", filter.To)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count visits")
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var visitMs []model.VisitRecordModel
	if err := query.Order("time_in DESC").Find(&visitMs).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list visits")
	}

	visits := make([]*entity.VisitRecord, 0, len(visitMs))
	for i := range visitMs {
		visits = append(visits, toVisitDomain(&visitMs[i]))
	}

	return visits, total, nil
}

// CheckOut transitions a visit to checked-out and stamps its time out.
func (repo *visitRepository) CheckOut(ctx context.Context, id uuid.UUID, timeOut time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VisitRecordModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":   entity.VisitStatusCheckedOut.String(),
			"time_out": timeOut,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to check out visit")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVisitNotFound
	}

	return nil
}

// DeleteVisit permanently removes a visit record by its ID.
func (repo *visitRepository) DeleteVisit(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.VisitRecordModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete visit")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVisitNotFound
	}

	return nil
}

// Stats aggregates visit counts within the given date range.
func (repo *visitRepository) Stats(ctx context.Context, from, to time.Time) (*repository.VisitStats, error) {
	base := repo.db.WithContext(ctx).Model(&model.VisitRecordModel{})
	if !from.IsZero() {
		base = base.Where("time_in >= ?", from)
	}
	if !to.IsZero() {
		base = base.Where("time_in <= ?", to)
	}

	stats := &repository.VisitStats{
		ByPurpose: make(map[entity.VisitPurpose]int64),
	}

	if err := base.Session(&gorm.Session{}).Count(&stats.Total).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count visits")
	}
	if err := base.Session(&gorm.Session{}).
		Where("status = ?", entity.VisitStatusCheckedIn.String()).
		Count(&stats.CheckedIn).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count checked-in visits")
	}
	if err := base.Session(&gorm.Session{}).
		Where("status = ?", entity.VisitStatusCheckedOut.String()).
		Count(&stats.CheckedOut).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count checked-out visits")
	}

	var rows []struct {
		Purpose string
		Count   int64
	}
	if err := base.Session(&gorm.Session{}).
		Select("purpose, COUNT(*) AS count").
		Group("purpose").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate visits by purpose")
	}
	for _, row := range rows {
		stats.ByPurpose[entity.VisitPurpose(row.Purpose)] = row.Count
	}

	return stats, nil
}

// --- Mapper Functions ---

// toVisitDomain converts a GORM VisitRecordModel to a domain VisitRecord entity.
func toVisitDomain(data *model.VisitRecordModel) *entity.VisitRecord {
	if data == nil {
		return nil
	}

	return &entity.VisitRecord{
		ID:               data.ID,
		HostID:           data.HostID,
		CheckinOfficerID: data.CheckinOfficerID,
		VisitorFirstName: data.VisitorFirstName,
		VisitorLastName:  data.VisitorLastName,
		NationalID:       data.NationalID,
		Phone:            data.Phone,
		Purpose:          entity.VisitPurpose(data.Purpose),
		Status:           entity.VisitStatus(data.Status),
		VisitDate:        data.VisitDate,
		TimeIn:           data.TimeIn,
		TimeOut:          data.TimeOut,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

// fromVisitDomain converts a domain VisitRecord entity to a GORM VisitRecordModel.
func fromVisitDomain(data *entity.VisitRecord) *model.VisitRecordModel {
	if data == nil {
		return nil
	}

	return &model.VisitRecordModel{
		ID:               data.ID,
		HostID:           data.HostID,
		CheckinOfficerID: data.CheckinOfficerID,
		VisitorFirstName: data.VisitorFirstName,
		VisitorLastName:  data.VisitorLastName,
		NationalID:       data.NationalID,
		Phone:            data.Phone,
		Purpose:          data.Purpose.String(),
		Status:           data.Status.String(),
		VisitDate:        data.VisitDate,
		TimeIn:           data.TimeIn,
		TimeOut:          data.TimeOut,
	}
}
