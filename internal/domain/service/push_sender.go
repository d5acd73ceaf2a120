package service

import (
	"context"
	"errors"

	"vms/internal/domain/entity"
)

// ErrSubscriptionGone is returned when the push service reports the endpoint
// no longer exists. Callers should drop the stored subscription.
var ErrSubscriptionGone = errors.New("push subscription gone")

// PushPayload is the JSON body delivered to the browser's service worker.
type PushPayload struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	URL     string `json:"url,omitempty"`
}

// PushSender defines the interface for delivering web push messages to
// browser subscriptions.
type PushSender interface {
	// Send delivers a payload to a single subscription endpoint.
	Send(ctx context.Context, subscription *entity.PushSubscription, payload *PushPayload) error
}
