package usecase

import (
	"context"
	"errors"
	"fmt"

	"subs_reconciler/internal/entity"
)

// Presence - result of the two independent idempotency lookups
type Presence struct {
	// SubscriptionExists - a record with the provider subscription id exists
	SubscriptionExists bool
	// EventExists - a record created by this event id exists
	EventExists bool
	// Subscription - the record found by provider subscription id, nil otherwise
	Subscription *entity.Subscription
}

// AlreadyProcessed reports whether a creation event must be suppressed as a duplicate
func (p Presence) AlreadyProcessed() bool {
	return p.SubscriptionExists || p.EventExists
}

// lookupKeys checks both idempotency keys; a missing record is absence, anything else is a fault
func (r *Reconciler) lookupKeys(ctx context.Context, eventID, providerSubID string) (Presence, error) {
	var p Presence

	sub, err := r.Subs.GetSubByProviderID(ctx, providerSubID)
	switch {
	case errors.Is(err, ErrSubscriptionNotFound):
	case err != nil:
		return p, fmt.Errorf("lookup sub_id=%s: %w", providerSubID, err)
	default:
		p.SubscriptionExists = sub != nil
		p.Subscription = sub
	}

	if eventID == "" {
		return p, nil
	}

	byEvent, err := r.Subs.GetSubByEventID(ctx, eventID)
	switch {
	case errors.Is(err, ErrSubscriptionNotFound):
	case err != nil:
		return p, fmt.Errorf("lookup event_id=%s: %w", eventID, err)
	default:
		p.EventExists = byEvent != nil
	}
	return p, nil
}
