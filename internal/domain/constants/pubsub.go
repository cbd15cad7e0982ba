// Package constants holds string identifiers shared across layers.
package constants

const (
	// PubSubProviderLocal posts events to a local HTTP endpoint in Pub/Sub push format.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)

const (
	// EventTypeUserRegistered is emitted once a new account has been committed.
	EventTypeUserRegistered = "user.registered"
)
