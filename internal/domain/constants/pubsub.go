// Package constants holds configuration values shared across layers.
package constants

// Pub/Sub providers accepted in the pubsub.provider setting.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// ActivitySubscription is the subscription name reported by the local push publisher.
const ActivitySubscription = "projects/local/subscriptions/activity-sub"
