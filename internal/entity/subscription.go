package entity

import (
	"time"
)

// SubscriptionStatus - lifecycle state of a mirrored provider subscription
type SubscriptionStatus string

const (
	// StatusNone - implicit state before the creation event, never persisted
	StatusNone SubscriptionStatus = "none"
	// StatusActive - subscription is running
	StatusActive SubscriptionStatus = "active"
	// StatusCanceled - provider reported the subscription as canceled
	StatusCanceled SubscriptionStatus = "canceled"
	// StatusEnded - terminal state, period bounds are cleared
	StatusEnded SubscriptionStatus = "ended"
)

// Subscription - stored mirror of one provider subscription
type Subscription struct {
	// ID - internal identifier
	ID int64
	// ProviderEventID - id of the event that created the record
	ProviderEventID *string
	// ProviderSubscriptionID - provider identifier, stable for the subscription life
	ProviderSubscriptionID string
	// CustomerID - customer reference taken from the creation event metadata
	CustomerID *string
	// Status - current lifecycle state
	Status SubscriptionStatus
	// StartDate - provider start date
	StartDate *time.Time
	// CurrentPeriodStart - start of the billed period
	CurrentPeriodStart *time.Time
	// CurrentPeriodEnd - end of the billed period
	CurrentPeriodEnd *time.Time
	// CancelAtPeriodEnd - subscription stops when the current period ends
	CancelAtPeriodEnd bool
	// CanceledAt - moment the cancellation was requested
	CanceledAt *time.Time
	// EndedAt - moment the subscription ended
	EndedAt *time.Time
	// CreatedAt - record creation time
	CreatedAt time.Time
	// UpdatedAt - last record modification time
	UpdatedAt time.Time
}

// SubscriptionState - provider snapshot written over an existing subscription.
// Nil fields are stored as NULL.
type SubscriptionState struct {
	Status             SubscriptionStatus
	CurrentPeriodStart *time.Time
	CurrentPeriodEnd   *time.Time
	CancelAtPeriodEnd  bool
	CanceledAt         *time.Time
	EndedAt            *time.Time
}
