// Package notification implements mobile push delivery over Firebase Cloud
// Messaging. Hosts register their devices through the device endpoints; the
// dispatch pipeline pushes check-in alerts to every active token.
package notification

import (
	"context"

	"vms/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// fcmBatchLimit is Firebase's hard cap on tokens per multicast request.
const fcmBatchLimit = 500

type fcmNotifier struct {
	client *messaging.Client
}

// NewFCMNotifier builds a DeviceNotifier backed by Firebase Cloud Messaging.
func NewFCMNotifier(ctx context.Context, credentialsPath string) (service.DeviceNotifier, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create messaging client")
	}

	return &fcmNotifier{
		client: client,
	}, nil
}

// NotifyDevices pushes the notification to the given device tokens and
// collects the tokens Firebase reports as invalid or unregistered.
func (n *fcmNotifier) NotifyDevices(ctx context.Context, tokens []string, title, body string, data map[string]string) (int, []string, error) {
	if len(tokens) == 0 {
		return 0, nil, nil
	}
	if len(tokens) > fcmBatchLimit {
		return 0, nil, errors.Errorf("token count %d exceeds the per-request limit of %d", len(tokens), fcmBatchLimit)
	}

	response, err := n.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	})
	if err != nil {
		return 0, nil, errors.Wrap(err, "failed to send multicast notification")
	}

	var invalidTokens []string
	for idx, sendResponse := range response.Responses {
		if sendResponse.Error == nil {
			continue
		}
		if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
			invalidTokens = append(invalidTokens, tokens[idx])
		}
	}

	return response.FailureCount, invalidTokens, nil
}
