package impl

import (
	"context"
	"testing"
	"time"

	"vms/internal/domain/entity"
	domainerrors "vms/internal/domain/errors"
	"vms/internal/domain/repository"
	interrors "vms/internal/errors"
	mockRepo "vms/internal/mocks/repository"
	mockSvc "vms/internal/mocks/service"
	"vms/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newVisitServiceForTest(t *testing.T, params VisitServiceParams, now time.Time) *visitService {
	t.Helper()

	svc, ok := NewVisitService(params).(*visitService)
	require.True(t, ok)
	svc.now = func() time.Time { return now }

	return svc
}

func hostWindow(hostID uuid.UUID, start, end time.Time) *entity.AvailabilityWindow {
	return &entity.AvailabilityWindow{
		ID:      uuid.New(),
		HostID:  hostID,
		StartAt: start,
		EndAt:   end,
	}
}

func TestVisitService_CheckIn_HostAvailable(t *testing.T) {
	ctx := context.Background()
	hostID := uuid.New()
	officerID := uuid.New()
	now := time.Date(2025, 6, 2, 10, 30, 0, 0, time.UTC)

	userRepo := mockRepo.NewMockUserRepository(t)
	scheduleRepo := mockRepo.NewMockScheduleRepository(t)
	visitRepo := mockRepo.NewMockVisitRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewUserRepository().Return(userRepo)
	factory.EXPECT().NewScheduleRepository().Return(scheduleRepo)
	factory.EXPECT().NewVisitRepository().Return(visitRepo)

	userRepo.EXPECT().
		FindByID(ctx, hostID).
		Return(&entity.User{ID: hostID, Role: entity.RoleHost}, nil)
	scheduleRepo.EXPECT().
		ListWindowsByHost(ctx, hostID).
		Return([]*entity.AvailabilityWindow{
			hostWindow(hostID, now.Add(-time.Hour), now.Add(time.Hour)),
		}, nil)
	visitRepo.EXPECT().
		CreateVisit(ctx, mock.AnythingOfType("*entity.VisitRecord")).
		Return(nil)
	publisher.EXPECT().
		PublishCheckInEvent(ctx, mock.AnythingOfType("*service.CheckInEvent")).
		Return(nil)

	svc := newVisitServiceForTest(t, VisitServiceParams{
		TxManager:    newPassthroughTxManager(t, factory),
		VisitRepo:    visitRepo,
		BadgeService: mockSvc.NewMockBadgeService(t),
		Publisher:    publisher,
		Logger:       newDiscardLogger(),
	}, now)

	visit, err := svc.CheckIn(ctx, usecase.CheckInInput{
		HostID:           hostID,
		CheckinOfficerID: officerID,
		FirstName:        "jane",
		LastName:         "doe",
		NationalID:       "A123456",
		Phone:            "0700000000",
		Purpose:          entity.PurposeBusinessMeeting,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.VisitStatusCheckedIn, visit.Status)
	assert.Equal(t, hostID, visit.HostID)
	assert.Equal(t, officerID, visit.CheckinOfficerID)
	assert.Equal(t, now, visit.TimeIn)
	assert.Nil(t, visit.TimeOut)
}

func TestVisitService_CheckIn_SuppliedTimeIn(t *testing.T) {
	ctx := context.Background()
	hostID := uuid.New()
	now := time.Date(2025, 6, 2, 18, 0, 0, 0, time.UTC)
	timeIn := time.Date(2025, 6, 2, 10, 30, 0, 0, time.UTC)

	userRepo := mockRepo.NewMockUserRepository(t)
	scheduleRepo := mockRepo.NewMockScheduleRepository(t)
	visitRepo := mockRepo.NewMockVisitRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewUserRepository().Return(userRepo)
	factory.EXPECT().NewScheduleRepository().Return(scheduleRepo)
	factory.EXPECT().NewVisitRepository().Return(visitRepo)

	userRepo.EXPECT().
		FindByID(ctx, hostID).
		Return(&entity.User{ID: hostID, Role: entity.RoleHost}, nil)
	// The window covers the supplied instant but not the current one.
	scheduleRepo.EXPECT().
		ListWindowsByHost(ctx, hostID).
		Return([]*entity.AvailabilityWindow{
			hostWindow(hostID, timeIn.Add(-time.Hour), timeIn.Add(time.Hour)),
		}, nil)
	visitRepo.EXPECT().
		CreateVisit(ctx, mock.AnythingOfType("*entity.VisitRecord")).
		Return(nil)
	publisher.EXPECT().
		PublishCheckInEvent(ctx, mock.AnythingOfType("*service.CheckInEvent")).
		Return(nil)

	svc := newVisitServiceForTest(t, VisitServiceParams{
		TxManager:    newPassthroughTxManager(t, factory),
		VisitRepo:    visitRepo,
		BadgeService: mockSvc.NewMockBadgeService(t),
		Publisher:    publisher,
		Logger:       newDiscardLogger(),
	}, now)

	visit, err := svc.CheckIn(ctx, usecase.CheckInInput{
		HostID:           hostID,
		CheckinOfficerID: uuid.New(),
		FirstName:        "jane",
		LastName:         "doe",
		NationalID:       "A123456",
		Phone:            "0700000000",
		Purpose:          entity.PurposeBusinessMeeting,
		TimeIn:           timeIn,
	})
	require.NoError(t, err)
	assert.Equal(t, timeIn, visit.TimeIn)
	assert.Equal(t, timeIn, visit.VisitDate)
}

func TestVisitService_CheckIn_NoScheduleSet(t *testing.T) {
	ctx := context.Background()
	hostID := uuid.New()
	now := time.Date(2025, 6, 2, 10, 30, 0, 0, time.UTC)

	userRepo := mockRepo.NewMockUserRepository(t)
	scheduleRepo := mockRepo.NewMockScheduleRepository(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewUserRepository().Return(userRepo)
	factory.EXPECT().NewScheduleRepository().Return(scheduleRepo)

	userRepo.EXPECT().
		FindByID(ctx, hostID).
		Return(&entity.User{ID: hostID, Role: entity.RoleHost}, nil)
	scheduleRepo.EXPECT().
		ListWindowsByHost(ctx, hostID).
		Return(nil, nil)

	svc := newVisitServiceForTest(t, VisitServiceParams{
		TxManager:    newPassthroughTxManager(t, factory),
		VisitRepo:    mockRepo.NewMockVisitRepository(t),
		BadgeService: mockSvc.NewMockBadgeService(t),
		Publisher:    mockSvc.NewMockEventPublisher(t),
		Logger:       newDiscardLogger(),
	}, now)

	_, err := svc.CheckIn(ctx, usecase.CheckInInput{
		HostID:  hostID,
		Purpose: entity.PurposeBusinessMeeting,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNoScheduleSet))
}

func TestVisitService_CheckIn_UnavailableWithNextStart(t *testing.T) {
	ctx := context.Background()
	hostID := uuid.New()
	now := time.Date(2025, 6, 2, 12, 30, 0, 0, time.UTC)
	nextStart := time.Date(2025, 6, 2, 13, 0, 0, 0, time.UTC)

	userRepo := mockRepo.NewMockUserRepository(t)
	scheduleRepo := mockRepo.NewMockScheduleRepository(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewUserRepository().Return(userRepo)
	factory.EXPECT().NewScheduleRepository().Return(scheduleRepo)

	userRepo.EXPECT().
		FindByID(ctx, hostID).
		Return(&entity.User{ID: hostID, Role: entity.RoleHost}, nil)
	scheduleRepo.EXPECT().
		ListWindowsByHost(ctx, hostID).
		Return([]*entity.AvailabilityWindow{
			hostWindow(hostID, now.Add(-4*time.Hour), now.Add(-30*time.Minute)),
			hostWindow(hostID, nextStart, nextStart.Add(4*time.Hour)),
		}, nil)

	svc := newVisitServiceForTest(t, VisitServiceParams{
		TxManager:    newPassthroughTxManager(t, factory),
		VisitRepo:    mockRepo.NewMockVisitRepository(t),
		BadgeService: mockSvc.NewMockBadgeService(t),
		Publisher:    mockSvc.NewMockEventPublisher(t),
		Logger:       newDiscardLogger(),
	}, now)

	_, err := svc.CheckIn(ctx, usecase.CheckInInput{
		HostID:  hostID,
		Purpose: entity.PurposeConsultation,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrHostUnavailable))

	appErr, ok := interrors.AsType[domainerrors.AppError](err)
	require.True(t, ok)
	require.NotNil(t, appErr.Payload())
	assert.Equal(t, nextStart.Format(time.RFC3339), appErr.Payload()["availableAt"])
}

func TestVisitService_CheckIn_NoFurtherAvailability(t *testing.T) {
	ctx := context.Background()
	hostID := uuid.New()
	now := time.Date(2025, 6, 2, 18, 0, 0, 0, time.UTC)

	userRepo := mockRepo.NewMockUserRepository(t)
	scheduleRepo := mockRepo.NewMockScheduleRepository(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewUserRepository().Return(userRepo)
	factory.EXPECT().NewScheduleRepository().Return(scheduleRepo)

	userRepo.EXPECT().
		FindByID(ctx, hostID).
		Return(&entity.User{ID: hostID, Role: entity.RoleHost}, nil)
	scheduleRepo.EXPECT().
		ListWindowsByHost(ctx, hostID).
		Return([]*entity.AvailabilityWindow{
			hostWindow(hostID, now.Add(-9*time.Hour), now.Add(-time.Hour)),
		}, nil)

	svc := newVisitServiceForTest(t, VisitServiceParams{
		TxManager:    newPassthroughTxManager(t, factory),
		VisitRepo:    mockRepo.NewMockVisitRepository(t),
		BadgeService: mockSvc.NewMockBadgeService(t),
		Publisher:    mockSvc.NewMockEventPublisher(t),
		Logger:       newDiscardLogger(),
	}, now)

	_, err := svc.CheckIn(ctx, usecase.CheckInInput{
		HostID:  hostID,
		Purpose: entity.PurposeBusinessMeeting,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNoFurtherAvailability))
}

func TestVisitService_CheckIn_InvalidPurpose(t *testing.T) {
	svc := newVisitServiceForTest(t, VisitServiceParams{
		TxManager:    mockRepo.NewMockTransactionManager(t),
		VisitRepo:    mockRepo.NewMockVisitRepository(t),
		BadgeService: mockSvc.NewMockBadgeService(t),
		Publisher:    mockSvc.NewMockEventPublisher(t),
		Logger:       newDiscardLogger(),
	}, time.Now())

	_, err := svc.CheckIn(context.Background(), usecase.CheckInInput{
		HostID:  uuid.New(),
		Purpose: entity.VisitPurpose("loitering"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidPurpose))
}

func TestVisitService_CheckIn_TargetNotHost(t *testing.T) {
	ctx := context.Background()
	hostID := uuid.New()

	userRepo := mockRepo.NewMockUserRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewUserRepository().Return(userRepo)

	userRepo.EXPECT().
		FindByID(ctx, hostID).
		Return(&entity.User{ID: hostID, Role: entity.RoleSoldier}, nil)

	svc := newVisitServiceForTest(t, VisitServiceParams{
		TxManager:    newPassthroughTxManager(t, factory),
		VisitRepo:    mockRepo.NewMockVisitRepository(t),
		BadgeService: mockSvc.NewMockBadgeService(t),
		Publisher:    mockSvc.NewMockEventPublisher(t),
		Logger:       newDiscardLogger(),
	}, time.Now())

	_, err := svc.CheckIn(ctx, usecase.CheckInInput{
		HostID:  hostID,
		Purpose: entity.PurposeBusinessMeeting,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrHostRoleRequired))
}

func TestVisitService_CheckIn_PublishFailureDoesNotFailCheckIn(t *testing.T) {
	ctx := context.Background()
	hostID := uuid.New()
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	userRepo := mockRepo.NewMockUserRepository(t)
	scheduleRepo := mockRepo.NewMockScheduleRepository(t)
	visitRepo := mockRepo.NewMockVisitRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewUserRepository().Return(userRepo)
	factory.EXPECT().NewScheduleRepository().Return(scheduleRepo)
	factory.EXPECT().NewVisitRepository().Return(visitRepo)

	userRepo.EXPECT().
		FindByID(ctx, hostID).
		Return(&entity.User{ID: hostID, Role: entity.RoleHost}, nil)
	scheduleRepo.EXPECT().
		ListWindowsByHost(ctx, hostID).
		Return([]*entity.AvailabilityWindow{
			hostWindow(hostID, now.Add(-time.Hour), now.Add(time.Hour)),
		}, nil)
	visitRepo.EXPECT().
		CreateVisit(ctx, mock.AnythingOfType("*entity.VisitRecord")).
		Return(nil)
	publisher.EXPECT().
		PublishCheckInEvent(ctx, mock.AnythingOfType("*service.CheckInEvent")).
		Return(errors.New("broker unreachable"))

	svc := newVisitServiceForTest(t, VisitServiceParams{
		TxManager:    newPassthroughTxManager(t, factory),
		VisitRepo:    visitRepo,
		BadgeService: mockSvc.NewMockBadgeService(t),
		Publisher:    publisher,
		Logger:       newDiscardLogger(),
	}, now)

	visit, err := svc.CheckIn(ctx, usecase.CheckInInput{
		HostID:  hostID,
		Purpose: entity.PurposeBusinessMeeting,
	})
	require.NoError(t, err)
	assert.NotNil(t, visit)
}

func TestVisitService_CheckOut_Success(t *testing.T) {
	ctx := context.Background()
	visitID := uuid.New()
	now := time.Date(2025, 6, 2, 16, 0, 0, 0, time.UTC)

	visitRepo := mockRepo.NewMockVisitRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewVisitRepository().Return(visitRepo)

	visitRepo.EXPECT().
		FindVisitByID(ctx, visitID).
		Return(&entity.VisitRecord{ID: visitID, Status: entity.VisitStatusCheckedIn}, nil)
	visitRepo.EXPECT().
		CheckOut(ctx, visitID, now).
		Return(nil)

	svc := newVisitServiceForTest(t, VisitServiceParams{
		TxManager:    newPassthroughTxManager(t, factory),
		VisitRepo:    visitRepo,
		BadgeService: mockSvc.NewMockBadgeService(t),
		Publisher:    mockSvc.NewMockEventPublisher(t),
		Logger:       newDiscardLogger(),
	}, now)

	visit, err := svc.CheckOut(ctx, visitID)
	require.NoError(t, err)
	assert.Equal(t, entity.VisitStatusCheckedOut, visit.Status)
	require.NotNil(t, visit.TimeOut)
	assert.Equal(t, now, *visit.TimeOut)
}

func TestVisitService_CheckOut_AlreadyCheckedOut(t *testing.T) {
	ctx := context.Background()
	visitID := uuid.New()

	visitRepo := mockRepo.NewMockVisitRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewVisitRepository().Return(visitRepo)

	visitRepo.EXPECT().
		FindVisitByID(ctx, visitID).
		Return(&entity.VisitRecord{ID: visitID, Status: entity.VisitStatusCheckedOut}, nil)

	svc := newVisitServiceForTest(t, VisitServiceParams{
		TxManager:    newPassthroughTxManager(t, factory),
		VisitRepo:    visitRepo,
		BadgeService: mockSvc.NewMockBadgeService(t),
		Publisher:    mockSvc.NewMockEventPublisher(t),
		Logger:       newDiscardLogger(),
	}, time.Now())

	_, err := svc.CheckOut(ctx, visitID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyCheckedOut))
}

func TestVisitService_CheckOut_NotFound(t *testing.T) {
	ctx := context.Background()
	visitID := uuid.New()

	visitRepo := mockRepo.NewMockVisitRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewVisitRepository().Return(visitRepo)

	visitRepo.EXPECT().
		FindVisitByID(ctx, visitID).
		Return(nil, repository.ErrVisitNotFound)

	svc := newVisitServiceForTest(t, VisitServiceParams{
		TxManager:    newPassthroughTxManager(t, factory),
		VisitRepo:    visitRepo,
		BadgeService: mockSvc.NewMockBadgeService(t),
		Publisher:    mockSvc.NewMockEventPublisher(t),
		Logger:       newDiscardLogger(),
	}, time.Now())

	_, err := svc.CheckOut(ctx, visitID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrVisitNotFound))
}

func TestVisitService_Badge(t *testing.T) {
	ctx := context.Background()
	visitID := uuid.New()

	visitRepo := mockRepo.NewMockVisitRepository(t)
	badgeService := mockSvc.NewMockBadgeService(t)

	visitRepo.EXPECT().
		FindVisitByID(ctx, visitID).
		Return(&entity.VisitRecord{ID: visitID}, nil)
	badgeService.EXPECT().
		GenerateVisitQR(visitID).
		Return([]byte{0x89, 0x50, 0x4e, 0x47}, nil)

	svc := newVisitServiceForTest(t, VisitServiceParams{
		TxManager:    mockRepo.NewMockTransactionManager(t),
		VisitRepo:    visitRepo,
		BadgeService: badgeService,
		Publisher:    mockSvc.NewMockEventPublisher(t),
		Logger:       newDiscardLogger(),
	}, time.Now())

	badge, err := svc.Badge(ctx, visitID)
	require.NoError(t, err)
	assert.NotEmpty(t, badge)
}

func TestVisitService_Purposes(t *testing.T) {
	svc := newVisitServiceForTest(t, VisitServiceParams{
		TxManager:    mockRepo.NewMockTransactionManager(t),
		VisitRepo:    mockRepo.NewMockVisitRepository(t),
		BadgeService: mockSvc.NewMockBadgeService(t),
		Publisher:    mockSvc.NewMockEventPublisher(t),
		Logger:       newDiscardLogger(),
	}, time.Now())

	purposes := svc.Purposes(context.Background())
	assert.Equal(t, entity.VisitPurposes, purposes)
	for _, p := range purposes {
		assert.True(t, p.IsValid())
	}
}

func TestVisitService_ListVisits_Pagination(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 2, 10, 30, 0, 0, time.UTC)

	visitRepo := mockRepo.NewMockVisitRepository(t)
	visitRepo.EXPECT().
		ListVisits(ctx, mock.MatchedBy(func(filter repository.VisitFilter) bool {
			return filter.Limit == 10 && filter.Offset == 20 && filter.Purpose == entity.PurposeBusinessMeeting
		})).
		Return([]*entity.VisitRecord{{ID: uuid.New()}}, int64(41), nil)

	svc := newVisitServiceForTest(t, VisitServiceParams{
		TxManager:    mockRepo.NewMockTransactionManager(t),
		VisitRepo:    visitRepo,
		BadgeService: mockSvc.NewMockBadgeService(t),
		Publisher:    mockSvc.NewMockEventPublisher(t),
		Logger:       newDiscardLogger(),
	}, now)

	output, err := svc.ListVisits(ctx, usecase.ListVisitsInput{
		Purpose: entity.PurposeBusinessMeeting,
		Limit:   10,
		Offset:  20,
	})
	require.NoError(t, err)
	assert.Len(t, output.Visits, 1)
	assert.Equal(t, int64(41), output.Total)
	assert.Equal(t, int64(5), output.TotalPages)
}

func TestVisitService_ListVisits_UnknownPurposeRejected(t *testing.T) {
	now := time.Date(2025, 6, 2, 10, 30, 0, 0, time.UTC)

	svc := newVisitServiceForTest(t, VisitServiceParams{
		TxManager:    mockRepo.NewMockTransactionManager(t),
		VisitRepo:    mockRepo.NewMockVisitRepository(t),
		BadgeService: mockSvc.NewMockBadgeService(t),
		Publisher:    mockSvc.NewMockEventPublisher(t),
		Logger:       newDiscardLogger(),
	}, now)

	_, err := svc.ListVisits(context.Background(), usecase.ListVisitsInput{
		Purpose: entity.VisitPurpose("loitering"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidPurpose))
}

func TestVisitService_HostVisits_TodayBounds(t *testing.T) {
	ctx := context.Background()
	hostID := uuid.New()
	now := time.Date(2025, 6, 2, 10, 30, 0, 0, time.UTC)

	visitRepo := mockRepo.NewMockVisitRepository(t)
	visitRepo.EXPECT().
		ListVisits(ctx, mock.MatchedBy(func(filter repository.VisitFilter) bool {
			return filter.HostID == hostID &&
				filter.From.Equal(time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)) &&
				filter.To.After(now)
		})).
		Return(nil, int64(0), nil)

	svc := newVisitServiceForTest(t, VisitServiceParams{
		TxManager:    mockRepo.NewMockTransactionManager(t),
		VisitRepo:    visitRepo,
		BadgeService: mockSvc.NewMockBadgeService(t),
		Publisher:    mockSvc.NewMockEventPublisher(t),
		Logger:       newDiscardLogger(),
	}, now)

	output, err := svc.HostVisits(ctx, hostID, usecase.HostVisitsInput{TodayOnly: true})
	require.NoError(t, err)
	assert.Empty(t, output.Visits)
	assert.Equal(t, int64(0), output.TotalPages)
}

func TestVisitService_Stats_DefaultsToServerDay(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 2, 10, 30, 0, 0, time.UTC)

	visitRepo := mockRepo.NewMockVisitRepository(t)
	visitRepo.EXPECT().
		Stats(ctx,
			time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
			mock.MatchedBy(func(to time.Time) bool { return to.After(now) })).
		Return(&repository.VisitStats{Total: 3}, nil)

	svc := newVisitServiceForTest(t, VisitServiceParams{
		TxManager:    mockRepo.NewMockTransactionManager(t),
		VisitRepo:    visitRepo,
		BadgeService: mockSvc.NewMockBadgeService(t),
		Publisher:    mockSvc.NewMockEventPublisher(t),
		Logger:       newDiscardLogger(),
	}, now)

	stats, err := svc.Stats(ctx, time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Total)
}
