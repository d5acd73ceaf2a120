// Package push implements Web Push delivery to browser subscriptions.
package push

import (
	"context"
	"encoding/json"
	"net/http"

	webpush "github.com/SherClockHolmes/webpush-go"
	"github.com/pkg/errors"

	"vms/config"
	"vms/internal/domain/entity"
	"vms/internal/domain/service"
)

// webPushSender sends payloads to browser push endpoints using the VAPID
// protocol.
type webPushSender struct {
	publicKey  string
	privateKey string
	subscriber string
}

// NewWebPushSender is the constructor for webPushSender.
// It returns the implementation as a service.PushSender interface.
func NewWebPushSender(cfg *config.Config) (service.PushSender, error) {
	if cfg.WebPush == nil || cfg.WebPush.VAPIDPublicKey == "" || cfg.WebPush.VAPIDPrivateKey == "" {
		return nil, errors.New("web push VAPID keys must be provided")
	}

	return &webPushSender{
		publicKey:  cfg.WebPush.VAPIDPublicKey,
		privateKey: cfg.WebPush.VAPIDPrivateKey,
		subscriber: cfg.WebPush.Subscriber,
	}, nil
}

// Send delivers the payload to a single browser subscription. Endpoints the
// push service reports as gone are surfaced as service.ErrSubscriptionGone so
// the caller can drop the subscription.
func (s *webPushSender) Send(ctx context.Context, subscription *entity.PushSubscription, payload *service.PushPayload) error {
	if !subscription.IsDeliverable() {
		return service.ErrSubscriptionGone
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "failed to encode push payload")
	}

	target := &webpush.Subscription{
		Endpoint: subscription.Endpoint,
		Keys: webpush.Keys{
			P256dh: subscription.Keys.P256dh,
			Auth:   subscription.Keys.Auth,
		},
	}

	resp, err := webpush.SendNotificationWithContext(ctx, body, target, &webpush.Options{
		Subscriber:      s.subscriber,
		VAPIDPublicKey:  s.publicKey,
		VAPIDPrivateKey: s.privateKey,
		TTL:             60,
	})
	if err != nil {
		return errors.Wrap(err, "failed to send web push")
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNotFound, http.StatusGone:
		return service.ErrSubscriptionGone
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return errors.Errorf("push service rejected delivery with status %d", resp.StatusCode)
	}

	return nil
}
