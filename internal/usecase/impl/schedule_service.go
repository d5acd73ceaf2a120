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
	"vms/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// scheduleService implements the ScheduleUsecase interface. Writes enforce
// the no-overlap invariant inside a transaction that locks the host's
// conflicting rows, so two concurrent inserts cannot both pass the check.
type scheduleService struct {
	txManager    repository.TransactionManager
	scheduleRepo repository.ScheduleRepository
	logger       *slog.Logger
}

// ScheduleServiceParams holds dependencies for ScheduleService, injected by Fx.
type ScheduleServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ScheduleRepo repository.ScheduleRepository
	Logger       *slog.Logger
}

// NewScheduleService is the constructor for scheduleService.
func NewScheduleService(params ScheduleServiceParams) usecase.ScheduleUsecase {
	return &scheduleService{
		txManager:    params.TxManager,
		scheduleRepo: params.ScheduleRepo,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *scheduleService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateWindow adds an availability window for a host.
func (srv *scheduleService) CreateWindow(ctx context.Context, hostID uuid.UUID, input usecase.WindowInput) (*entity.AvailabilityWindow, error) {
	if !input.StartAt.Before(input.EndAt) {
		return nil, domainerrors.ErrScheduleWindowInvalid.WrapMessage("window creation rejected")
	}

	window := &entity.AvailabilityWindow{
		ID:      uuid.New(),
		HostID:  hostID,
		StartAt: input.StartAt,
		EndAt:   input.EndAt,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		scheduleRepo := repoFactory.NewScheduleRepository()

		if err := srv.ensureNoOverlap(ctx, scheduleRepo, hostID, input.StartAt, input.EndAt, nil); err != nil {
			return err
		}

		if err := scheduleRepo.CreateWindow(ctx, window); err != nil {
			if errors.Is(err, repository.ErrWindowOverlap) {
				return domainerrors.ErrScheduleOverlap.WrapMessage("window creation rejected")
			}

			return errors.Wrap(err, "failed to create window")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Info("Window creation rejected", slog.Any("hostID", hostID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Availability window created", slog.Any("hostID", hostID), slog.Any("windowID", window.ID))

	return window, nil
}

// UpdateWindow replaces the bounds of one of the host's windows.
func (srv *scheduleService) UpdateWindow(ctx context.Context, hostID, windowID uuid.UUID, input usecase.WindowInput) (*entity.AvailabilityWindow, error) {
	if !input.StartAt.Before(input.EndAt) {
		return nil, domainerrors.ErrScheduleWindowInvalid.WrapMessage("window update rejected")
	}

	var updated *entity.AvailabilityWindow
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		scheduleRepo := repoFactory.NewScheduleRepository()

		window, err := srv.loadOwnedWindow(ctx, scheduleRepo, hostID, windowID)
		if err != nil {
			return err
		}

		if err := srv.ensureNoOverlap(ctx, scheduleRepo, hostID, input.StartAt, input.EndAt, &windowID); err != nil {
			return err
		}

		window.StartAt = input.StartAt
		window.EndAt = input.EndAt
		if err := scheduleRepo.UpdateWindow(ctx, window); err != nil {
			if errors.Is(err, repository.ErrWindowOverlap) {
				return domainerrors.ErrScheduleOverlap.WrapMessage("window update rejected")
			}

			return errors.Wrap(err, "failed to update window")
		}

		updated = window

		return nil
	})
	if err != nil {
		srv.log(ctx).Info("Window update rejected", slog.Any("windowID", windowID), slog.Any("error", err))

		return nil, err
	}

	return updated, nil
}

// DeleteWindow removes one of the host's windows.
func (srv *scheduleService) DeleteWindow(ctx context.Context, hostID, windowID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		scheduleRepo := repoFactory.NewScheduleRepository()

		if _, err := srv.loadOwnedWindow(ctx, scheduleRepo, hostID, windowID); err != nil {
			return err
		}

		return scheduleRepo.DeleteWindow(ctx, windowID)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Availability window deleted", slog.Any("hostID", hostID), slog.Any("windowID", windowID))

	return nil
}

// ListWindows retrieves a host's windows ordered by start time. Legacy data
// written before overlap enforcement may still overlap; the first such pair
// is reported so clients can surface a warning.
func (srv *scheduleService) ListWindows(ctx context.Context, hostID uuid.UUID) (*usecase.ScheduleOutput, error) {
	windows, err := srv.scheduleRepo.ListWindowsByHost(ctx, hostID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list windows")
	}

	output := &usecase.ScheduleOutput{Windows: windows}
	if first, second, ok := availability.Overlapping(dereference(windows)); ok {
		srv.log(ctx).Warn("Host schedule contains overlapping windows",
			slog.Any("hostID", hostID),
			slog.Any("first", first.ID),
			slog.Any("second", second.ID))
		output.Overlap = &availability.Overlap{First: first, Second: second}
	}

	return output, nil
}

// ResolveAvailability reports whether a host is available at an instant.
func (srv *scheduleService) ResolveAvailability(ctx context.Context, hostID uuid.UUID, at time.Time) (availability.Decision, error) {
	windows, err := srv.scheduleRepo.ListWindowsByHost(ctx, hostID)
	if err != nil {
		return availability.Decision{}, errors.Wrap(err, "failed to load host schedule")
	}

	return availability.Resolve(dereference(windows), at), nil
}

// ensureNoOverlap rejects the bounds when they intersect an existing window.
func (srv *scheduleService) ensureNoOverlap(ctx context.Context, scheduleRepo repository.ScheduleRepository, hostID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) error {
	conflicts, err := scheduleRepo.FindOverlapping(ctx, hostID, start, end, excludeID)
	if err != nil {
		return errors.Wrap(err, "failed to check window overlap")
	}
	if len(conflicts) > 0 {
		return domainerrors.ErrScheduleOverlap.WrapMessage("window overlaps existing window")
	}

	return nil
}

// loadOwnedWindow loads a window and verifies it belongs to the host.
func (srv *scheduleService) loadOwnedWindow(ctx context.Context, scheduleRepo repository.ScheduleRepository, hostID, windowID uuid.UUID) (*entity.AvailabilityWindow, error) {
	window, err := scheduleRepo.FindWindowByID(ctx, windowID)
	if err != nil {
		if errors.Is(err, repository.ErrWindowNotFound) {
			return nil, domainerrors.ErrScheduleNotFound.WrapMessage("window not found")
		}

		return nil, errors.Wrap(err, "failed to load window")
	}
	if window.HostID != hostID {
		return nil, domainerrors.ErrScheduleNotFound.WrapMessage("window belongs to another host")
	}

	return window, nil
}

// dereference flattens a repository result for the availability helpers.
func dereference(windows []*entity.AvailabilityWindow) []entity.AvailabilityWindow {
	out := make([]entity.AvailabilityWindow, len(windows))
	for i, w := range windows {
		out[i] = *w
	}

	return out
}
