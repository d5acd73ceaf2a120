package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"vms/config"
	"vms/internal/delivery"
	"vms/internal/delivery/http"
	"vms/internal/delivery/http/middleware"
	"vms/internal/delivery/http/router/handler"
	"vms/internal/domain/service"
	"vms/internal/infra/auth"
	logs "vms/internal/infra/log"
	"vms/internal/infra/mail"
	"vms/internal/infra/notification"
	"vms/internal/infra/persistence/postgres"
	"vms/internal/infra/pubsub"
	"vms/internal/infra/push"
	"vms/internal/infra/qrcode"
	"vms/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewVisitRepository,
			postgres.NewScheduleRepository,
			postgres.NewNotificationRepository,
			postgres.NewSubscriptionRepository,
			postgres.NewDeviceRepository,
			postgres.NewPasswordResetRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			mail.NewSMTPSender,
			push.NewWebPushSender,
			newDeviceNotifier,
			newQRCodeService,
		),
		pubsub.Module,
	)
}

// newDeviceNotifier creates the FCM device notifier with dependency injection
func newDeviceNotifier(ctx context.Context, cfg *config.Config) (service.DeviceNotifier, error) {
	if cfg.Firebase == nil {
		return nil, nil // Firebase is optional
	}

	notifier, err := notification.NewFCMNotifier(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create FCM notifier: %w", err)
	}

	return notifier, nil
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.BadgeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewVisitService,
			impl.NewScheduleService,
			impl.NewNotificationService,
			impl.NewDeviceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewVisitHandler,
			handler.NewScheduleHandler,
			handler.NewNotificationHandler,
			handler.NewDeviceHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
