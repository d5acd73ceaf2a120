package pubsub

import (
	"context"
	"log/slog"
	"sync"
	"time"

	deliverycontext "vms/internal/delivery/context"
	"vms/internal/domain/service"
	"vms/internal/usecase"
)

const inlineDispatchTimeout = 30 * time.Second

// inlinePublisher implements EventPublisher by dispatching notifications
// in-process on a background goroutine, for single-binary deployments that
// run without a broker or a separate worker.
type inlinePublisher struct {
	notificationUsecase usecase.NotificationUsecase
	logger              *slog.Logger
	wg                  sync.WaitGroup
}

// NewInlinePublisher creates a publisher that hands events straight to the
// notification pipeline.
func NewInlinePublisher(notificationUsecase usecase.NotificationUsecase, logger *slog.Logger) service.EventPublisher {
	return &inlinePublisher{
		notificationUsecase: notificationUsecase,
		logger:              logger,
	}
}

// PublishCheckInEvent dispatches the event on a detached goroutine so the
// check-in request never waits on notification delivery.
func (p *inlinePublisher) PublishCheckInEvent(ctx context.Context, event *service.CheckInEvent) error {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		// Detach from the request context; the caller's request finishes
		// before dispatch does.
		dispatchCtx, cancel := context.WithTimeout(context.Background(), inlineDispatchTimeout)
		defer cancel()
		if event.RequestID != "" {
			dispatchCtx = deliverycontext.WithRequestID(dispatchCtx, event.RequestID)
		}

		if err := p.notificationUsecase.DispatchCheckIn(dispatchCtx, event); err != nil {
			p.logger.Error("[InlinePubSub] Check-in dispatch failed",
				slog.String("visit_id", event.VisitID),
				slog.Any("error", err),
			)
		}
	}()

	return nil
}

// Close waits for in-flight dispatches to finish.
func (p *inlinePublisher) Close() error {
	p.wg.Wait()

	return nil
}
