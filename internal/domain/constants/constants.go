// Package constants holds configuration values shared across layers.
package constants

// Pub/Sub providers accepted in the pubsub.provider setting.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// EnvDevelop is the env.env value used on developer machines.
const EnvDevelop = "develop"
