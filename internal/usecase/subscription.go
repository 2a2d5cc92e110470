package usecase

import (
	"context"
	"strings"

	"subs_reconciler/internal/entity"
)

// Subscription exposes read access to reconciled subscriptions
type Subscription struct {
	Sr SubscriptionRepository
}

// NewSubscription creates a use case service with the given repository
func NewSubscription(sr SubscriptionRepository) *Subscription {
	return &Subscription{
		Sr: sr,
	}
}

// GetSubByProviderID fetches a subscription by its provider subscription id
func (s *Subscription) GetSubByProviderID(ctx context.Context, providerSubID string) (*entity.Subscription, error) {
	providerSubID = strings.TrimSpace(providerSubID)
	if providerSubID == "" {
		return nil, ErrInvalidID
	}
	return s.Sr.GetSubByProviderID(ctx, providerSubID)
}
