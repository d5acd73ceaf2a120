package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "vms/internal/delivery/context"
	"vms/internal/domain/entity"
	domainerrors "vms/internal/domain/errors"
	"vms/internal/domain/repository"
	"vms/internal/domain/service"
	"vms/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Firebase batch size limit
const firebaseBatchSize = 500

// notificationService implements the NotificationUsecase interface.
// Dispatch persists the in-app notification first; every push and mail
// channel after that is best-effort.
type notificationService struct {
	notificationRepo repository.NotificationRepository
	subscriptionRepo repository.SubscriptionRepository
	deviceRepo       repository.DeviceRepository
	userRepo         repository.UserRepository
	pushSender       service.PushSender
	deviceNotifier   service.DeviceNotifier
	mailSender       service.MailSender
	logger           *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	SubscriptionRepo repository.SubscriptionRepository
	DeviceRepo       repository.DeviceRepository
	UserRepo         repository.UserRepository
	PushSender       service.PushSender
	DeviceNotifier   service.DeviceNotifier `optional:"true"`
	MailSender       service.MailSender
	Logger           *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: params.NotificationRepo,
		subscriptionRepo: params.SubscriptionRepo,
		deviceRepo:       params.DeviceRepo,
		userRepo:         params.UserRepo,
		pushSender:       params.PushSender,
		deviceNotifier:   params.DeviceNotifier,
		mailSender:       params.MailSender,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// DispatchCheckIn fans a check-in event out to the host across every
// registered channel. Persisting the in-app notification is the only fatal
// step; a failed push or mail is logged and skipped so one dead channel
// cannot silence the rest.
func (srv *notificationService) DispatchCheckIn(ctx context.Context, event *service.CheckInEvent) error {
	hostID, err := uuid.Parse(event.HostID)
	if err != nil {
		return errors.Wrap(err, "invalid host ID in check-in event")
	}

	title := "New Visitor"
	message := fmt.Sprintf("%s has just checked in to see you. Reason: %s.", event.VisitorName, event.Purpose)

	notification := &entity.Notification{
		ID:          uuid.New(),
		RecipientID: hostID,
		Title:       title,
		Message:     message,
	}
	if err := srv.notificationRepo.CreateNotification(ctx, notification); err != nil {
		return errors.Wrap(err, "failed to persist notification")
	}

	srv.sendWebPush(ctx, hostID, title, message)
	srv.sendMobilePush(ctx, hostID, title, message, event)
	srv.sendMail(ctx, hostID, title, message)

	srv.log(ctx).Info("Check-in notification dispatched",
		slog.String("visitID", event.VisitID),
		slog.Any("hostID", hostID))

	return nil
}

// sendWebPush delivers the payload to each of the host's browser
// subscriptions, dropping endpoints the push service reports gone.
func (srv *notificationService) sendWebPush(ctx context.Context, hostID uuid.UUID, title, message string) {
	subscriptions, err := srv.subscriptionRepo.FindSubscriptionsByUser(ctx, hostID)
	if err != nil {
		srv.log(ctx).Error("Failed to load push subscriptions", slog.Any("hostID", hostID), slog.Any("error", err))

		return
	}

	payload := &service.PushPayload{Title: title, Message: message}
	for _, sub := range subscriptions {
		if err := srv.pushSender.Send(ctx, sub, payload); err != nil {
			if errors.Is(err, service.ErrSubscriptionGone) {
				if delErr := srv.subscriptionRepo.DeleteByEndpoint(ctx, hostID, sub.Endpoint); delErr != nil {
					srv.log(ctx).Warn("Failed to drop gone subscription", slog.Any("error", delErr))
				}

				continue
			}
			srv.log(ctx).Warn("Web push delivery failed", slog.Any("hostID", hostID), slog.Any("error", err))
		}
	}
}

// sendMobilePush notifies the host's registered mobile devices over FCM.
func (srv *notificationService) sendMobilePush(ctx context.Context, hostID uuid.UUID, title, message string, event *service.CheckInEvent) {
	if srv.deviceNotifier == nil {
		return
	}

	devices, err := srv.deviceRepo.FindActiveDevicesByUser(ctx, hostID)
	if err != nil {
		srv.log(ctx).Error("Failed to load devices", slog.Any("hostID", hostID), slog.Any("error", err))

		return
	}
	if len(devices) == 0 {
		return
	}

	tokens := make([]string, 0, len(devices))
	deviceByToken := make(map[string]uuid.UUID, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
		deviceByToken[device.FCMToken] = device.ID
	}

	data := map[string]string{
		"visit_id":      event.VisitID,
		"checked_in_at": event.CheckedInAt,
	}

	for i := 0; i < len(tokens); i += firebaseBatchSize {
		end := min(i+firebaseBatchSize, len(tokens))

		failed, invalidTokens, err := srv.deviceNotifier.NotifyDevices(ctx, tokens[i:end], title, message, data)
		if err != nil {
			srv.log(ctx).Warn("Mobile push batch failed", slog.Any("hostID", hostID), slog.Any("error", err))

			continue
		}
		if failed > 0 {
			srv.log(ctx).Warn("Mobile push partially failed",
				slog.Any("hostID", hostID),
				slog.Int("failed", failed),
				slog.Int("invalidTokens", len(invalidTokens)))
		}

		// Tokens the provider rejected stay dead; drop their registrations.
		for _, token := range invalidTokens {
			deviceID, ok := deviceByToken[token]
			if !ok {
				continue
			}
			if err := srv.deviceRepo.DeleteDevice(ctx, deviceID); err != nil {
				srv.log(ctx).Warn("Failed to drop device with invalid token",
					slog.Any("deviceID", deviceID),
					slog.Any("error", err))
			}
		}
	}
}

// sendMail emails the host about the waiting visitor.
func (srv *notificationService) sendMail(ctx context.Context, hostID uuid.UUID, title, message string) {
	host, err := srv.userRepo.FindByID(ctx, hostID)
	if err != nil {
		srv.log(ctx).Error("Failed to load host for mail", slog.Any("hostID", hostID), slog.Any("error", err))

		return
	}

	mail := &service.Mail{
		To:      host.Email,
		Subject: title,
		Body:    fmt.Sprintf("Hello %s,\n\n%s", host.FullName(), message),
	}
	if err := srv.mailSender.Send(ctx, mail); err != nil {
		srv.log(ctx).Warn("Notification mail failed", slog.Any("hostID", hostID), slog.Any("error", err))
	}
}

// Subscribe registers or refreshes a user's web push subscription.
func (srv *notificationService) Subscribe(ctx context.Context, userID uuid.UUID, input usecase.SubscribeInput) (*entity.PushSubscription, error) {
	subscription := &entity.PushSubscription{
		ID:       uuid.New(),
		UserID:   userID,
		Endpoint: input.Endpoint,
		Keys: entity.SubscriptionKeys{
			P256dh: input.P256dh,
			Auth:   input.Auth,
		},
	}
	if !subscription.IsDeliverable() {
		return nil, domainerrors.ErrSubscriptionInvalid.WrapMessage("subscription rejected")
	}

	if err := srv.subscriptionRepo.UpsertSubscription(ctx, subscription); err != nil {
		return nil, errors.Wrap(err, "failed to store subscription")
	}

	srv.log(ctx).Info("Push subscription stored", slog.Any("userID", userID))

	return subscription, nil
}

// ListNotifications retrieves a user's notifications with pagination,
// newest first, optionally narrowed to unread ones.
func (srv *notificationService) ListNotifications(ctx context.Context, userID uuid.UUID, onlyUnread bool, limit, offset int) ([]*entity.Notification, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	notifications, err := srv.notificationRepo.ListByRecipient(ctx, userID, onlyUnread, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, nil
}

// UnreadCount returns the number of unread notifications for a user.
func (srv *notificationService) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := srv.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

// MarkRead marks one of the user's notifications as read.
func (srv *notificationService) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	notification, err := srv.notificationRepo.FindNotificationByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotificationNotFound.WrapMessage("mark read rejected")
		}

		return errors.Wrap(err, "failed to load notification")
	}
	if notification.RecipientID != userID {
		return domainerrors.ErrNotificationNotFound.WrapMessage("notification belongs to another user")
	}

	if err := srv.notificationRepo.MarkRead(ctx, notificationID); err != nil {
		return errors.Wrap(err, "failed to mark notification read")
	}

	return nil
}

// MarkAllRead marks all of the user's notifications as read.
func (srv *notificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	if err := srv.notificationRepo.MarkAllRead(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to mark notifications read")
	}

	return nil
}
