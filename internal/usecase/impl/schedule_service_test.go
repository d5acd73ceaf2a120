package impl

import (
	"context"
	"testing"
	"time"

	"vms/internal/domain/availability"
	"vms/internal/domain/entity"
	domainerrors "vms/internal/domain/errors"
	"vms/internal/domain/repository"
	mockRepo "vms/internal/mocks/repository"
	"vms/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newScheduleServiceForTest(t *testing.T, txManager repository.TransactionManager, scheduleRepo repository.ScheduleRepository) usecase.ScheduleUsecase {
	t.Helper()

	return NewScheduleService(ScheduleServiceParams{
		TxManager:    txManager,
		ScheduleRepo: scheduleRepo,
		Logger:       newDiscardLogger(),
	})
}

func TestScheduleService_CreateWindow_Success(t *testing.T) {
	ctx := context.Background()
	hostID := uuid.New()
	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	end := start.Add(3 * time.Hour)

	scheduleRepo := mockRepo.NewMockScheduleRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewScheduleRepository().Return(scheduleRepo)

	scheduleRepo.EXPECT().
		FindOverlapping(ctx, hostID, start, end, (*uuid.UUID)(nil)).
		Return(nil, nil)
	scheduleRepo.EXPECT().
		CreateWindow(ctx, mock.AnythingOfType("*entity.AvailabilityWindow")).
		Return(nil)

	svc := newScheduleServiceForTest(t, newPassthroughTxManager(t, factory), scheduleRepo)

	window, err := svc.CreateWindow(ctx, hostID, usecase.WindowInput{StartAt: start, EndAt: end})
	require.NoError(t, err)
	assert.Equal(t, hostID, window.HostID)
	assert.Equal(t, start, window.StartAt)
	assert.Equal(t, end, window.EndAt)
	assert.NotEqual(t, uuid.Nil, window.ID)
}

func TestScheduleService_CreateWindow_InvalidBounds(t *testing.T) {
	svc := newScheduleServiceForTest(t, mockRepo.NewMockTransactionManager(t), mockRepo.NewMockScheduleRepository(t))

	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

	for name, input := range map[string]usecase.WindowInput{
		"start equals end": {StartAt: start, EndAt: start},
		"start after end":  {StartAt: start.Add(time.Hour), EndAt: start},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.CreateWindow(context.Background(), uuid.New(), input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrScheduleWindowInvalid))
		})
	}
}

func TestScheduleService_CreateWindow_Overlap(t *testing.T) {
	ctx := context.Background()
	hostID := uuid.New()
	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	end := start.Add(3 * time.Hour)

	scheduleRepo := mockRepo.NewMockScheduleRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewScheduleRepository().Return(scheduleRepo)

	scheduleRepo.EXPECT().
		FindOverlapping(ctx, hostID, start, end, (*uuid.UUID)(nil)).
		Return([]*entity.AvailabilityWindow{
			hostWindow(hostID, start.Add(-time.Hour), start.Add(time.Hour)),
		}, nil)

	svc := newScheduleServiceForTest(t, newPassthroughTxManager(t, factory), scheduleRepo)

	_, err := svc.CreateWindow(ctx, hostID, usecase.WindowInput{StartAt: start, EndAt: end})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrScheduleOverlap))
}

func TestScheduleService_CreateWindow_OverlapIsScopedPerHost(t *testing.T) {
	ctx := context.Background()
	firstHost := uuid.New()
	secondHost := uuid.New()
	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	end := start.Add(3 * time.Hour)

	scheduleRepo := mockRepo.NewMockScheduleRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewScheduleRepository().Return(scheduleRepo).Twice()

	// The first host already holds this exact range.
	scheduleRepo.EXPECT().
		FindOverlapping(ctx, firstHost, start, end, (*uuid.UUID)(nil)).
		Return([]*entity.AvailabilityWindow{hostWindow(firstHost, start, end)}, nil)
	scheduleRepo.EXPECT().
		FindOverlapping(ctx, secondHost, start, end, (*uuid.UUID)(nil)).
		Return(nil, nil)
	scheduleRepo.EXPECT().
		CreateWindow(ctx, mock.AnythingOfType("*entity.AvailabilityWindow")).
		Return(nil)

	svc := newScheduleServiceForTest(t, newPassthroughTxManager(t, factory), scheduleRepo)

	_, err := svc.CreateWindow(ctx, firstHost, usecase.WindowInput{StartAt: start, EndAt: end})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrScheduleOverlap))

	window, err := svc.CreateWindow(ctx, secondHost, usecase.WindowInput{StartAt: start, EndAt: end})
	require.NoError(t, err)
	assert.Equal(t, secondHost, window.HostID)
}

func TestScheduleService_UpdateWindow_Success(t *testing.T) {
	ctx := context.Background()
	hostID := uuid.New()
	windowID := uuid.New()
	start := time.Date(2025, 6, 2, 13, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	existing := &entity.AvailabilityWindow{
		ID:      windowID,
		HostID:  hostID,
		StartAt: start.Add(-time.Hour),
		EndAt:   end.Add(-time.Hour),
	}

	scheduleRepo := mockRepo.NewMockScheduleRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewScheduleRepository().Return(scheduleRepo)

	scheduleRepo.EXPECT().
		FindWindowByID(ctx, windowID).
		Return(existing, nil)
	scheduleRepo.EXPECT().
		FindOverlapping(ctx, hostID, start, end, &windowID).
		Return(nil, nil)
	scheduleRepo.EXPECT().
		UpdateWindow(ctx, mock.AnythingOfType("*entity.AvailabilityWindow")).
		Return(nil)

	svc := newScheduleServiceForTest(t, newPassthroughTxManager(t, factory), scheduleRepo)

	updated, err := svc.UpdateWindow(ctx, hostID, windowID, usecase.WindowInput{StartAt: start, EndAt: end})
	require.NoError(t, err)
	assert.Equal(t, start, updated.StartAt)
	assert.Equal(t, end, updated.EndAt)
}

func TestScheduleService_UpdateWindow_WrongOwner(t *testing.T) {
	ctx := context.Background()
	hostID := uuid.New()
	windowID := uuid.New()
	start := time.Date(2025, 6, 2, 13, 0, 0, 0, time.UTC)

	scheduleRepo := mockRepo.NewMockScheduleRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewScheduleRepository().Return(scheduleRepo)

	scheduleRepo.EXPECT().
		FindWindowByID(ctx, windowID).
		Return(hostWindow(uuid.New(), start, start.Add(time.Hour)), nil)

	svc := newScheduleServiceForTest(t, newPassthroughTxManager(t, factory), scheduleRepo)

	_, err := svc.UpdateWindow(ctx, hostID, windowID, usecase.WindowInput{StartAt: start, EndAt: start.Add(time.Hour)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrScheduleNotFound))
}

func TestScheduleService_DeleteWindow_NotFound(t *testing.T) {
	ctx := context.Background()
	hostID := uuid.New()
	windowID := uuid.New()

	scheduleRepo := mockRepo.NewMockScheduleRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewScheduleRepository().Return(scheduleRepo)

	scheduleRepo.EXPECT().
		FindWindowByID(ctx, windowID).
		Return(nil, repository.ErrWindowNotFound)

	svc := newScheduleServiceForTest(t, newPassthroughTxManager(t, factory), scheduleRepo)

	err := svc.DeleteWindow(ctx, hostID, windowID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrScheduleNotFound))
}

func TestScheduleService_DeleteWindow_Success(t *testing.T) {
	ctx := context.Background()
	hostID := uuid.New()
	windowID := uuid.New()
	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

	window := hostWindow(hostID, start, start.Add(time.Hour))
	window.ID = windowID

	scheduleRepo := mockRepo.NewMockScheduleRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewScheduleRepository().Return(scheduleRepo)

	scheduleRepo.EXPECT().
		FindWindowByID(ctx, windowID).
		Return(window, nil)
	scheduleRepo.EXPECT().
		DeleteWindow(ctx, windowID).
		Return(nil)

	svc := newScheduleServiceForTest(t, newPassthroughTxManager(t, factory), scheduleRepo)

	require.NoError(t, svc.DeleteWindow(ctx, hostID, windowID))
}

func TestScheduleService_ListWindows_ReportsLegacyOverlap(t *testing.T) {
	ctx := context.Background()
	hostID := uuid.New()
	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

	first := hostWindow(hostID, start, start.Add(2*time.Hour))
	second := hostWindow(hostID, start.Add(time.Hour), start.Add(3*time.Hour))

	scheduleRepo := mockRepo.NewMockScheduleRepository(t)
	scheduleRepo.EXPECT().
		ListWindowsByHost(ctx, hostID).
		Return([]*entity.AvailabilityWindow{first, second}, nil)

	svc := newScheduleServiceForTest(t, mockRepo.NewMockTransactionManager(t), scheduleRepo)

	output, err := svc.ListWindows(ctx, hostID)
	require.NoError(t, err)
	assert.Len(t, output.Windows, 2)
	require.NotNil(t, output.Overlap)
	assert.Equal(t, first.ID, output.Overlap.First.ID)
	assert.Equal(t, second.ID, output.Overlap.Second.ID)
}

func TestScheduleService_ListWindows_NoOverlap(t *testing.T) {
	ctx := context.Background()
	hostID := uuid.New()
	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

	scheduleRepo := mockRepo.NewMockScheduleRepository(t)
	scheduleRepo.EXPECT().
		ListWindowsByHost(ctx, hostID).
		Return([]*entity.AvailabilityWindow{
			hostWindow(hostID, start, start.Add(time.Hour)),
			hostWindow(hostID, start.Add(2*time.Hour), start.Add(3*time.Hour)),
		}, nil)

	svc := newScheduleServiceForTest(t, mockRepo.NewMockTransactionManager(t), scheduleRepo)

	output, err := svc.ListWindows(ctx, hostID)
	require.NoError(t, err)
	assert.Nil(t, output.Overlap)
}

func TestScheduleService_ResolveAvailability(t *testing.T) {
	ctx := context.Background()
	hostID := uuid.New()
	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

	scheduleRepo := mockRepo.NewMockScheduleRepository(t)
	scheduleRepo.EXPECT().
		ListWindowsByHost(ctx, hostID).
		Return([]*entity.AvailabilityWindow{
			hostWindow(hostID, start, start.Add(8*time.Hour)),
		}, nil).
		Twice()

	svc := newScheduleServiceForTest(t, mockRepo.NewMockTransactionManager(t), scheduleRepo)

	decision, err := svc.ResolveAvailability(ctx, hostID, start.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, availability.Available, decision.Kind)

	decision, err = svc.ResolveAvailability(ctx, hostID, start.Add(9*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, availability.UnavailablePermanently, decision.Kind)
}
