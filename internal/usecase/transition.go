package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"subs_reconciler/internal/entity"
)

// allowedStatus - provider statuses a creation or update may carry
func allowedStatus(s entity.SubscriptionStatus) bool {
	return s == entity.StatusActive || s == entity.StatusCanceled
}

// applyCreated inserts the subscription unless either idempotency key was already seen
func (r *Reconciler) applyCreated(ctx context.Context, log *slog.Logger, e entity.SubscriptionCreated, p Presence) (Action, error) {
	if p.AlreadyProcessed() {
		log.Info("skipping subscription creation due to duplication",
			slog.Bool("subscription_exists", p.SubscriptionExists),
			slog.Bool("event_exists", p.EventExists),
		)
		return ActionDuplicate, nil
	}

	snap := e.Snapshot
	status := entity.StatusActive
	if snap.Status != nil && *snap.Status != "" {
		status = entity.SubscriptionStatus(*snap.Status)
		if !allowedStatus(status) {
			log.Warn("unsupported subscription status, creation skipped", slog.String("status", *snap.Status))
			return ActionSkipped, nil
		}
	}

	sub := &entity.Subscription{
		ProviderSubscriptionID: e.ProviderSubscriptionID(),
		CustomerID:             nonEmpty(snap.CustomerID),
		Status:                 status,
		StartDate:              snap.StartDate,
		CurrentPeriodStart:     snap.CurrentPeriodStart,
		CurrentPeriodEnd:       snap.CurrentPeriodEnd,
		CancelAtPeriodEnd:      boolOrFalse(snap.CancelAtPeriodEnd),
		CanceledAt:             snap.CanceledAt,
	}
	if id := e.EventID(); id != "" {
		sub.ProviderEventID = &id
	}

	created, err := r.Subs.SaveSub(ctx, sub)
	switch {
	case errors.Is(err, ErrDuplicateSubscription):
		// lost the race against a concurrent delivery of the same subscription
		log.Info("subscription already inserted concurrently, creation skipped")
		return ActionDuplicate, nil
	case err != nil:
		return ActionFailed, fmt.Errorf("create sub: %w", err)
	}
	log.Info("subscription created", slog.Int64("subscription_id", created.ID))

	r.linkCustomer(ctx, log, sub.CustomerID, created)
	return ActionCreated, nil
}

// applyUpdated replaces the provider state of an existing subscription.
// Absent period and cancellation fields are written as NULL, not kept.
func (r *Reconciler) applyUpdated(ctx context.Context, log *slog.Logger, e entity.SubscriptionUpdated, p Presence) (Action, error) {
	if !p.SubscriptionExists {
		log.Info("subscription not found for update")
		return ActionSkipped, nil
	}

	snap := e.Snapshot
	if snap.Status == nil || !allowedStatus(entity.SubscriptionStatus(*snap.Status)) {
		status := ""
		if snap.Status != nil {
			status = *snap.Status
		}
		log.Info("invalid subscription status received, update skipped", slog.String("status", status))
		return ActionSkipped, nil
	}

	state := entity.SubscriptionState{
		Status:             entity.SubscriptionStatus(*snap.Status),
		CurrentPeriodStart: snap.CurrentPeriodStart,
		CurrentPeriodEnd:   snap.CurrentPeriodEnd,
		CancelAtPeriodEnd:  boolOrFalse(snap.CancelAtPeriodEnd),
		CanceledAt:         snap.CanceledAt,
		EndedAt:            snap.EndedAt,
	}
	_, err := r.Subs.UpdateSubState(ctx, e.ProviderSubscriptionID(), state)
	switch {
	case errors.Is(err, ErrSubscriptionNotFound):
		log.Info("subscription not found for update")
		return ActionSkipped, nil
	case err != nil:
		return ActionFailed, fmt.Errorf("update sub: %w", err)
	}
	log.Info("subscription updated", slog.String("status", string(state.Status)))
	return ActionUpdated, nil
}

// applyDeleted marks an existing subscription as ended and unlinks its customer.
// An ended subscription is not protected against later updates.
func (r *Reconciler) applyDeleted(ctx context.Context, log *slog.Logger, e entity.SubscriptionDeleted, p Presence) (Action, error) {
	if !p.SubscriptionExists {
		log.Info("subscription not found for deletion")
		return ActionSkipped, nil
	}

	endedAt := r.now().UTC()
	if e.Snapshot.EndedAt != nil {
		endedAt = *e.Snapshot.EndedAt
	}

	ended, err := r.Subs.EndSub(ctx, e.ProviderSubscriptionID(), endedAt)
	switch {
	case errors.Is(err, ErrSubscriptionNotFound):
		log.Info("subscription not found for deletion")
		return ActionSkipped, nil
	case err != nil:
		return ActionFailed, fmt.Errorf("end sub: %w", err)
	}
	log.Info("subscription marked as ended", slog.Time("ended_at", endedAt))

	r.unlinkCustomer(ctx, log, ended)
	return ActionEnded, nil
}

func boolOrFalse(b *bool) bool {
	return b != nil && *b
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}
