package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "vms/internal/delivery/context"
	"vms/internal/domain/availability"
	"vms/internal/domain/entity"
	domainerrors "vms/internal/domain/errors"
	"vms/internal/domain/repository"
	"vms/internal/domain/service"
	"vms/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// visitService implements the VisitUsecase interface. Check-in is the hot
// path: it resolves the host's availability and either records the visit or
// rejects with the reason and, when known, the next available instant.
type visitService struct {
	txManager    repository.TransactionManager
	visitRepo    repository.VisitRepository
	badgeService service.BadgeService
	publisher    service.EventPublisher
	now          func() time.Time
	logger       *slog.Logger
}

// VisitServiceParams holds dependencies for VisitService, injected by Fx.
type VisitServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	VisitRepo    repository.VisitRepository
	BadgeService service.BadgeService
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewVisitService is the constructor for visitService.
func NewVisitService(params VisitServiceParams) usecase.VisitUsecase {
	return &visitService{
		txManager:    params.TxManager,
		visitRepo:    params.VisitRepo,
		badgeService: params.BadgeService,
		publisher:    params.Publisher,
		now:          time.Now,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *visitService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CheckIn validates the host's availability at the check-in instant and
// records the visit. The availability read and the insert share one
// transaction so a concurrent schedule change cannot slip between them.
// The host notification is published after commit and never blocks check-in.
func (srv *visitService) CheckIn(ctx context.Context, input usecase.CheckInInput) (*entity.VisitRecord, error) {
	if !input.Purpose.IsValid() {
		return nil, domainerrors.ErrInvalidPurpose.WrapMessage("check-in rejected")
	}

	at := input.TimeIn
	if at.IsZero() {
		at = srv.now()
	}

	var visit *entity.VisitRecord
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		host, err := repoFactory.NewUserRepository().FindByID(ctx, input.HostID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("host not found")
			}

			return errors.Wrap(err, "failed to load host")
		}
		if host.Role != entity.RoleHost {
			return domainerrors.ErrHostRoleRequired.WrapMessage("check-in rejected")
		}

		windows, err := repoFactory.NewScheduleRepository().ListWindowsByHost(ctx, input.HostID)
		if err != nil {
			return errors.Wrap(err, "failed to load host schedule")
		}

		if err := srv.resolve(ctx, input.HostID, windows, at); err != nil {
			return err
		}

		visit = &entity.VisitRecord{
			ID:               uuid.New(),
			HostID:           input.HostID,
			CheckinOfficerID: input.CheckinOfficerID,
			VisitorFirstName: input.FirstName,
			VisitorLastName:  input.LastName,
			NationalID:       input.NationalID,
			Phone:            input.Phone,
			Purpose:          input.Purpose,
			Status:           entity.VisitStatusCheckedIn,
			VisitDate:        at,
			TimeIn:           at,
		}

		return repoFactory.NewVisitRepository().CreateVisit(ctx, visit)
	})
	if err != nil {
		srv.log(ctx).Info("Check-in rejected", slog.Any("hostID", input.HostID), slog.Any("error", err))

		return nil, err
	}

	srv.publishCheckIn(ctx, visit)

	srv.log(ctx).Info("Visitor checked in", slog.Any("visitID", visit.ID), slog.Any("hostID", visit.HostID))

	return visit, nil
}

// resolve maps an availability decision onto the check-in rejections.
func (srv *visitService) resolve(ctx context.Context, hostID uuid.UUID, windows []*entity.AvailabilityWindow, at time.Time) error {
	sorted := dereference(windows)

	if first, second, ok := availability.Overlapping(sorted); ok {
		srv.log(ctx).Warn("Host schedule contains overlapping windows",
			slog.Any("hostID", hostID),
			slog.Any("first", first.ID),
			slog.Any("second", second.ID))
	}

	decision := availability.Resolve(sorted, at)
	switch decision.Kind {
	case availability.Available:
		return nil
	case availability.NoScheduleSet:
		return domainerrors.ErrNoScheduleSet.WrapMessage("check-in rejected")
	case availability.UnavailableWithNext:
		return domainerrors.NewHostUnavailableError(*decision.NextStart).WrapMessage("check-in rejected")
	default:
		return domainerrors.ErrNoFurtherAvailability.WrapMessage("check-in rejected")
	}
}

// publishCheckIn hands the event to the notification pipeline. A publish
// failure is logged and dropped; the visit record is already committed.
func (srv *visitService) publishCheckIn(ctx context.Context, visit *entity.VisitRecord) {
	event := &service.CheckInEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		VisitID:     visit.ID.String(),
		HostID:      visit.HostID.String(),
		VisitorName: visit.VisitorFullName(),
		Purpose:     visit.Purpose.String(),
		CheckedInAt: visit.TimeIn.Format(time.RFC3339),
	}

	if err := srv.publisher.PublishCheckInEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish check-in event",
			slog.Any("visitID", visit.ID),
			slog.Any("error", err))
	}
}

// CheckOut transitions a checked-in visit to checked-out.
func (srv *visitService) CheckOut(ctx context.Context, visitID uuid.UUID) (*entity.VisitRecord, error) {
	at := srv.now()

	var visit *entity.VisitRecord
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		visitRepo := repoFactory.NewVisitRepository()

		found, err := visitRepo.FindVisitByID(ctx, visitID)
		if err != nil {
			if errors.Is(err, repository.ErrVisitNotFound) {
				return domainerrors.ErrVisitNotFound.WrapMessage("check-out rejected")
			}

			return errors.Wrap(err, "failed to load visit")
		}
		if found.Status == entity.VisitStatusCheckedOut {
			return domainerrors.ErrAlreadyCheckedOut.WrapMessage("check-out rejected")
		}

		if err := visitRepo.CheckOut(ctx, visitID, at); err != nil {
			return errors.Wrap(err, "failed to check out visit")
		}

		found.Status = entity.VisitStatusCheckedOut
		found.TimeOut = &at
		visit = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Visitor checked out", slog.Any("visitID", visitID))

	return visit, nil
}

// DeleteVisit permanently removes a visit record.
func (srv *visitService) DeleteVisit(ctx context.Context, visitID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		visitRepo := repoFactory.NewVisitRepository()

		if _, err := visitRepo.FindVisitByID(ctx, visitID); err != nil {
			if errors.Is(err, repository.ErrVisitNotFound) {
				return domainerrors.ErrVisitNotFound.WrapMessage("visit deletion rejected")
			}

			return errors.Wrap(err, "failed to load visit for deletion")
		}

		return visitRepo.DeleteVisit(ctx, visitID)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Visit deleted", slog.Any("visitID", visitID))

	return nil
}

// ListVisits retrieves visit records matching the filter, newest first,
// with pagination totals.
func (srv *visitService) ListVisits(ctx context.Context, input usecase.ListVisitsInput) (*usecase.VisitListOutput, error) {
	if input.Purpose != "" && !input.Purpose.IsValid() {
		return nil, domainerrors.ErrInvalidPurpose.WrapMessage("visit listing rejected")
	}

	return srv.listPage(ctx, repository.VisitFilter{
		HostID:  input.HostID,
		Status:  input.Status,
		Purpose: input.Purpose,
		From:    input.From,
		To:      input.To,
		Limit:   input.Limit,
		Offset:  input.Offset,
	})
}

// HostVisits retrieves the authenticated host's own visit log.
func (srv *visitService) HostVisits(ctx context.Context, hostID uuid.UUID, input usecase.HostVisitsInput) (*usecase.VisitListOutput, error) {
	filter := repository.VisitFilter{
		HostID: hostID,
		Limit:  input.Limit,
		Offset: input.Offset,
	}
	if input.TodayOnly {
		filter.From, filter.To = serverDay(srv.now())
	}

	return srv.listPage(ctx, filter)
}

// listPage runs a filtered listing and derives the pagination totals.
func (srv *visitService) listPage(ctx context.Context, filter repository.VisitFilter) (*usecase.VisitListOutput, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 50
	}

	visits, total, err := srv.visitRepo.ListVisits(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list visits")
	}

	totalPages := total / int64(filter.Limit)
	if total%int64(filter.Limit) != 0 {
		totalPages++
	}

	return &usecase.VisitListOutput{
		Visits:     visits,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

// Stats aggregates visit counts within a date range. An empty range means
// the current server day.
func (srv *visitService) Stats(ctx context.Context, from, to time.Time) (*repository.VisitStats, error) {
	if from.IsZero() && to.IsZero() {
		from, to = serverDay(srv.now())
	}

	stats, err := srv.visitRepo.Stats(ctx, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate visit stats")
	}

	return stats, nil
}

// serverDay returns the bounds of the local calendar day containing t.
func serverDay(t time.Time) (from, to time.Time) {
	from = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())

	return from, from.Add(24*time.Hour - time.Nanosecond)
}

// Purposes lists the accepted visit purposes.
func (srv *visitService) Purposes(_ context.Context) []entity.VisitPurpose {
	return entity.VisitPurposes
}

// Badge renders the QR badge image for a visit.
func (srv *visitService) Badge(ctx context.Context, visitID uuid.UUID) ([]byte, error) {
	if _, err := srv.visitRepo.FindVisitByID(ctx, visitID); err != nil {
		if errors.Is(err, repository.ErrVisitNotFound) {
			return nil, domainerrors.ErrVisitNotFound.WrapMessage("badge rejected")
		}

		return nil, errors.Wrap(err, "failed to load visit for badge")
	}

	badge, err := srv.badgeService.GenerateVisitQR(visitID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render badge")
	}

	return badge, nil
}
