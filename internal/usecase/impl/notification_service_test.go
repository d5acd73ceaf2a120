package impl

import (
	"context"
	"testing"
	"time"

	"vms/internal/domain/entity"
	domainerrors "vms/internal/domain/errors"
	"vms/internal/domain/repository"
	"vms/internal/domain/service"
	mockRepo "vms/internal/mocks/repository"
	mockSvc "vms/internal/mocks/service"
	"vms/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type notificationServiceMocks struct {
	notificationRepo *mockRepo.MockNotificationRepository
	subscriptionRepo *mockRepo.MockSubscriptionRepository
	deviceRepo       *mockRepo.MockDeviceRepository
	userRepo         *mockRepo.MockUserRepository
	pushSender       *mockSvc.MockPushSender
	deviceNotifier   *mockSvc.MockDeviceNotifier
	mailSender       *mockSvc.MockMailSender
}

func newNotificationServiceForTest(t *testing.T) (usecase.NotificationUsecase, *notificationServiceMocks) {
	t.Helper()

	mocks := &notificationServiceMocks{
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		subscriptionRepo: mockRepo.NewMockSubscriptionRepository(t),
		deviceRepo:       mockRepo.NewMockDeviceRepository(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		pushSender:       mockSvc.NewMockPushSender(t),
		deviceNotifier:   mockSvc.NewMockDeviceNotifier(t),
		mailSender:       mockSvc.NewMockMailSender(t),
	}

	svc := NewNotificationService(NotificationServiceParams{
		NotificationRepo: mocks.notificationRepo,
		SubscriptionRepo: mocks.subscriptionRepo,
		DeviceRepo:       mocks.deviceRepo,
		UserRepo:         mocks.userRepo,
		PushSender:       mocks.pushSender,
		DeviceNotifier:   mocks.deviceNotifier,
		MailSender:       mocks.mailSender,
		Logger:           newDiscardLogger(),
	})

	return svc, mocks
}

func checkInEvent(hostID uuid.UUID) *service.CheckInEvent {
	return &service.CheckInEvent{
		RequestID:   uuid.NewString(),
		VisitID:     uuid.NewString(),
		HostID:      hostID.String(),
		VisitorName: "jane doe",
		Purpose:     entity.PurposeBusinessMeeting.String(),
		CheckedInAt: time.Now().UTC().Format(time.RFC3339),
	}
}

func deliverableSubscription(userID uuid.UUID, endpoint string) *entity.PushSubscription {
	return &entity.PushSubscription{
		ID:       uuid.New(),
		UserID:   userID,
		Endpoint: endpoint,
		Keys:     entity.SubscriptionKeys{P256dh: "p256dh-key", Auth: "auth-secret"},
	}
}

func TestNotificationService_DispatchCheckIn_AllChannels(t *testing.T) {
	ctx := context.Background()
	svc, mocks := newNotificationServiceForTest(t)

	hostID := uuid.New()
	event := checkInEvent(hostID)

	var persisted *entity.Notification
	mocks.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Run(func(_ context.Context, notification *entity.Notification) {
			persisted = notification
		}).
		Return(nil)

	subscription := deliverableSubscription(hostID, "https://push.example.com/abc")
	mocks.subscriptionRepo.EXPECT().
		FindSubscriptionsByUser(ctx, hostID).
		Return([]*entity.PushSubscription{subscription}, nil)
	mocks.pushSender.EXPECT().
		Send(ctx, subscription, mock.AnythingOfType("*service.PushPayload")).
		Return(nil)

	mocks.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, hostID).
		Return([]*entity.UserDevice{{ID: uuid.New(), UserID: hostID, FCMToken: "fcm-token"}}, nil)
	mocks.deviceNotifier.EXPECT().
		NotifyDevices(ctx, []string{"fcm-token"}, "New Visitor", mock.AnythingOfType("string"), mock.Anything).
		Return(0, nil, nil)

	mocks.userRepo.EXPECT().
		FindByID(ctx, hostID).
		Return(&entity.User{ID: hostID, FirstName: "Grace", Email: "grace@example.com"}, nil)
	mocks.mailSender.EXPECT().
		Send(ctx, mock.AnythingOfType("*service.Mail")).
		Return(nil)

	require.NoError(t, svc.DispatchCheckIn(ctx, event))

	require.NotNil(t, persisted)
	assert.Equal(t, hostID, persisted.RecipientID)
	assert.Equal(t, "New Visitor", persisted.Title)
	assert.Equal(t, "jane doe has just checked in to see you. Reason: business meeting.", persisted.Message)
	assert.False(t, persisted.IsRead)
}

func TestNotificationService_DispatchCheckIn_PersistFailureIsFatal(t *testing.T) {
	ctx := context.Background()
	svc, mocks := newNotificationServiceForTest(t)

	hostID := uuid.New()

	mocks.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(errors.New("insert failed"))

	err := svc.DispatchCheckIn(ctx, checkInEvent(hostID))
	require.Error(t, err)
}

func TestNotificationService_DispatchCheckIn_InvalidHostID(t *testing.T) {
	svc, _ := newNotificationServiceForTest(t)

	event := checkInEvent(uuid.New())
	event.HostID = "not-a-uuid"

	err := svc.DispatchCheckIn(context.Background(), event)
	require.Error(t, err)
}

func TestNotificationService_DispatchCheckIn_DropsGoneSubscription(t *testing.T) {
	ctx := context.Background()
	svc, mocks := newNotificationServiceForTest(t)

	hostID := uuid.New()

	mocks.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil)

	gone := deliverableSubscription(hostID, "https://push.example.com/gone")
	alive := deliverableSubscription(hostID, "https://push.example.com/alive")
	mocks.subscriptionRepo.EXPECT().
		FindSubscriptionsByUser(ctx, hostID).
		Return([]*entity.PushSubscription{gone, alive}, nil)
	mocks.pushSender.EXPECT().
		Send(ctx, gone, mock.AnythingOfType("*service.PushPayload")).
		Return(service.ErrSubscriptionGone)
	mocks.subscriptionRepo.EXPECT().
		DeleteByEndpoint(ctx, hostID, gone.Endpoint).
		Return(nil)
	mocks.pushSender.EXPECT().
		Send(ctx, alive, mock.AnythingOfType("*service.PushPayload")).
		Return(nil)

	mocks.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, hostID).
		Return(nil, nil)

	mocks.userRepo.EXPECT().
		FindByID(ctx, hostID).
		Return(&entity.User{ID: hostID, Email: "grace@example.com"}, nil)
	mocks.mailSender.EXPECT().
		Send(ctx, mock.AnythingOfType("*service.Mail")).
		Return(nil)

	require.NoError(t, svc.DispatchCheckIn(ctx, checkInEvent(hostID)))
}

func TestNotificationService_DispatchCheckIn_DropsInvalidDeviceToken(t *testing.T) {
	ctx := context.Background()
	svc, mocks := newNotificationServiceForTest(t)

	hostID := uuid.New()

	mocks.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil)
	mocks.subscriptionRepo.EXPECT().
		FindSubscriptionsByUser(ctx, hostID).
		Return(nil, nil)

	dead := &entity.UserDevice{ID: uuid.New(), UserID: hostID, FCMToken: "dead-token"}
	alive := &entity.UserDevice{ID: uuid.New(), UserID: hostID, FCMToken: "alive-token"}
	mocks.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, hostID).
		Return([]*entity.UserDevice{dead, alive}, nil)
	mocks.deviceNotifier.EXPECT().
		NotifyDevices(ctx, []string{"dead-token", "alive-token"}, "New Visitor", mock.AnythingOfType("string"), mock.Anything).
		Return(1, []string{"dead-token"}, nil)
	mocks.deviceRepo.EXPECT().
		DeleteDevice(ctx, dead.ID).
		Return(nil)

	mocks.userRepo.EXPECT().
		FindByID(ctx, hostID).
		Return(nil, repository.ErrUserNotFound)

	require.NoError(t, svc.DispatchCheckIn(ctx, checkInEvent(hostID)))
}

func TestNotificationService_DispatchCheckIn_ChannelFailuresAreNotFatal(t *testing.T) {
	ctx := context.Background()
	svc, mocks := newNotificationServiceForTest(t)

	hostID := uuid.New()

	mocks.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil)
	mocks.subscriptionRepo.EXPECT().
		FindSubscriptionsByUser(ctx, hostID).
		Return(nil, errors.New("query failed"))
	mocks.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, hostID).
		Return(nil, errors.New("query failed"))
	mocks.userRepo.EXPECT().
		FindByID(ctx, hostID).
		Return(nil, repository.ErrUserNotFound)

	require.NoError(t, svc.DispatchCheckIn(ctx, checkInEvent(hostID)))
}

func TestNotificationService_Subscribe_Success(t *testing.T) {
	ctx := context.Background()
	svc, mocks := newNotificationServiceForTest(t)

	userID := uuid.New()

	mocks.subscriptionRepo.EXPECT().
		UpsertSubscription(ctx, mock.AnythingOfType("*entity.PushSubscription")).
		Return(nil)

	subscription, err := svc.Subscribe(ctx, userID, usecase.SubscribeInput{
		Endpoint: "https://push.example.com/abc",
		P256dh:   "p256dh-key",
		Auth:     "auth-secret",
	})
	require.NoError(t, err)
	assert.Equal(t, userID, subscription.UserID)
	assert.Equal(t, "https://push.example.com/abc", subscription.Endpoint)
}

func TestNotificationService_Subscribe_MissingKeys(t *testing.T) {
	svc, _ := newNotificationServiceForTest(t)

	_, err := svc.Subscribe(context.Background(), uuid.New(), usecase.SubscribeInput{
		Endpoint: "https://push.example.com/abc",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSubscriptionInvalid))
}

func TestNotificationService_MarkRead_WrongOwner(t *testing.T) {
	ctx := context.Background()
	svc, mocks := newNotificationServiceForTest(t)

	notificationID := uuid.New()

	mocks.notificationRepo.EXPECT().
		FindNotificationByID(ctx, notificationID).
		Return(&entity.Notification{ID: notificationID, RecipientID: uuid.New()}, nil)

	err := svc.MarkRead(ctx, uuid.New(), notificationID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotificationNotFound))
}

func TestNotificationService_MarkRead_Success(t *testing.T) {
	ctx := context.Background()
	svc, mocks := newNotificationServiceForTest(t)

	userID := uuid.New()
	notificationID := uuid.New()

	mocks.notificationRepo.EXPECT().
		FindNotificationByID(ctx, notificationID).
		Return(&entity.Notification{ID: notificationID, RecipientID: userID}, nil)
	mocks.notificationRepo.EXPECT().
		MarkRead(ctx, notificationID).
		Return(nil)

	require.NoError(t, svc.MarkRead(ctx, userID, notificationID))
}

func TestNotificationService_ListNotifications_Pagination(t *testing.T) {
	ctx := context.Background()
	svc, mocks := newNotificationServiceForTest(t)

	userID := uuid.New()

	mocks.notificationRepo.EXPECT().
		ListByRecipient(ctx, userID, false, 20, 0).
		Return([]*entity.Notification{}, nil)

	notifications, err := svc.ListNotifications(ctx, userID, false, 0, -5)
	require.NoError(t, err)
	assert.Empty(t, notifications)
}

func TestNotificationService_ListNotifications_UnreadOnly(t *testing.T) {
	ctx := context.Background()
	svc, mocks := newNotificationServiceForTest(t)

	userID := uuid.New()
	unread := &entity.Notification{ID: uuid.New(), RecipientID: userID}

	mocks.notificationRepo.EXPECT().
		ListByRecipient(ctx, userID, true, 20, 0).
		Return([]*entity.Notification{unread}, nil)

	notifications, err := svc.ListNotifications(ctx, userID, true, 20, 0)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, unread.ID, notifications[0].ID)
}

func TestNotificationService_UnreadCount(t *testing.T) {
	ctx := context.Background()
	svc, mocks := newNotificationServiceForTest(t)

	userID := uuid.New()

	mocks.notificationRepo.EXPECT().
		CountUnread(ctx, userID).
		Return(int64(3), nil)

	count, err := svc.UnreadCount(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
