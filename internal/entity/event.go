package entity

import "time"

// Provider event types handled by the reconciler
const (
	EventSubscriptionCreated = "customer.subscription.created"
	EventSubscriptionUpdated = "customer.subscription.updated"
	EventSubscriptionDeleted = "customer.subscription.deleted"
)

// WebhookEvent - decoded inbound notification before validation
type WebhookEvent struct {
	// ID - provider event id
	ID string
	// Type - provider event type
	Type string
	// Data - event payload envelope
	Data *EventData
}

// EventData - payload envelope of a webhook event
type EventData struct {
	Object *SubscriptionObject
}

// SubscriptionObject - provider subscription as sent in the event
type SubscriptionObject struct {
	// SubID - provider subscription id
	SubID string
	// Metadata - free-form metadata attached by the merchant
	Metadata EventMetadata
	// Status - provider status, may be outside the supported vocabulary
	Status *string
	// Epoch-second timestamps
	StartDate          *int64
	CurrentPeriodStart *int64
	CurrentPeriodEnd   *int64
	CanceledAt         *int64
	EndedAt            *int64
	// CancelAtPeriodEnd - nil when absent from the payload
	CancelAtPeriodEnd *bool
}

// EventMetadata - metadata keys the reconciler reads
type EventMetadata struct {
	CustomerID *string
}

// Event is one of SubscriptionCreated, SubscriptionUpdated, SubscriptionDeleted or UnhandledEvent.
type Event interface {
	// EventID - provider event id, may be empty
	EventID() string
	// EventType - provider event type
	EventType() string
	// ProviderSubscriptionID - subscription the event is about
	ProviderSubscriptionID() string
	isEvent()
}

// SubscriptionSnapshot - typed view of the subscription carried by an event
type SubscriptionSnapshot struct {
	Status             *string
	CustomerID         *string
	StartDate          *time.Time
	CurrentPeriodStart *time.Time
	CurrentPeriodEnd   *time.Time
	CancelAtPeriodEnd  *bool
	CanceledAt         *time.Time
	EndedAt            *time.Time
}

// EventHeader - fields shared by every event variant
type EventHeader struct {
	ID             string
	Type           string
	SubscriptionID string
}

func (h EventHeader) EventID() string                { return h.ID }
func (h EventHeader) EventType() string              { return h.Type }
func (h EventHeader) ProviderSubscriptionID() string { return h.SubscriptionID }
func (EventHeader) isEvent()                         {}

// SubscriptionCreated - provider created a subscription
type SubscriptionCreated struct {
	EventHeader
	Snapshot SubscriptionSnapshot
}

// SubscriptionUpdated - provider replaced the subscription state
type SubscriptionUpdated struct {
	EventHeader
	Snapshot SubscriptionSnapshot
}

// SubscriptionDeleted - provider ended the subscription
type SubscriptionDeleted struct {
	EventHeader
	Snapshot SubscriptionSnapshot
}

// UnhandledEvent - structurally valid event of a type the reconciler ignores
type UnhandledEvent struct {
	EventHeader
}
