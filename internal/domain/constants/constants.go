// Package constants holds shared configuration values referenced across layers.
package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub provider selection for the check-in event pipeline.
const (
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
	// PubSubProviderLocal posts events to a local worker endpoint over HTTP.
	PubSubProviderLocal = "local"
	// PubSubProviderInline dispatches events in-process, without a broker.
	PubSubProviderInline = "inline"
)
