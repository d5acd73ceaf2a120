package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"vms/config"
	"vms/internal/delivery"
	"vms/internal/delivery/worker"
	"vms/internal/delivery/worker/handler"
	"vms/internal/domain/service"
	logs "vms/internal/infra/log"
	"vms/internal/infra/mail"
	"vms/internal/infra/notification"
	"vms/internal/infra/persistence/postgres"
	"vms/internal/infra/push"
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
		injectHandler(),
		injectDelivery(),
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
			postgres.NewNotificationRepository,
			postgres.NewSubscriptionRepository,
			postgres.NewDeviceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			mail.NewSMTPSender,
			push.NewWebPushSender,
			newDeviceNotifier,
		),
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

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewNotificationService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
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
