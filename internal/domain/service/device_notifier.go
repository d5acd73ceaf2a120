package service

import (
	"context"
)

// DeviceNotifier delivers mobile push notifications to a user's registered
// devices. It is an optional collaborator: when no provider is configured the
// dispatch pipeline simply skips the mobile leg.
type DeviceNotifier interface {
	// NotifyDevices pushes the notification to the given device tokens, at
	// most 500 per call. It reports how many deliveries failed and which
	// tokens the provider considers invalid or unregistered, so callers can
	// deactivate the matching devices.
	NotifyDevices(ctx context.Context, tokens []string, title, body string, data map[string]string) (failed int, invalidTokens []string, err error)
}
