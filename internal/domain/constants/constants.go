// Package constants holds shared domain constants.
package constants

// Pub/Sub provider names.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Admin event types published on console mutations.
const (
	EventMerchantCreated = "merchant.created"
	EventMerchantUpdated = "merchant.updated"
	EventMerchantDeleted = "merchant.deleted"
	EventCustomerUpdated = "customer.updated"
	EventCustomerDeleted = "customer.deleted"
	EventRewardCreated   = "reward.created"
	EventRewardUpdated   = "reward.updated"
	EventRewardDeleted   = "reward.deleted"
	EventTierSaved       = "tier.saved"
	EventTierDeleted     = "tier.deleted"
	EventJobExecuted     = "job.executed"
)
