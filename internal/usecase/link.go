package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"subs_reconciler/internal/entity"
)

const (
	linkOpLink   = "link"
	linkOpUnlink = "unlink"
)

// linkCustomer points the customer named in the creation event at the new subscription.
// Best effort: every failure is logged and counted, never returned. The subscription is the
// source of truth and customers.subscription_id may drift until repaired.
func (r *Reconciler) linkCustomer(ctx context.Context, log *slog.Logger, customerID *string, sub *entity.Subscription) {
	if customerID == nil {
		log.Warn("no customerId in metadata, cannot link subscription")
		return
	}
	id, err := uuid.Parse(*customerID)
	if err != nil {
		log.Warn("invalid customerId format", slog.String("customer_id", *customerID))
		return
	}

	customer, err := r.Customers.GetCustomerByID(ctx, id)
	switch {
	case errors.Is(err, ErrCustomerNotFound):
		log.Warn("customer not found", slog.String("customer_id", id.String()))
		return
	case err != nil:
		r.linkFailed(log, linkOpLink, err)
		return
	}

	subID := sub.ID
	err = r.Customers.SetCustomerSub(ctx, customer.ID, &subID)
	switch {
	case errors.Is(err, ErrCustomerNotFound):
		log.Warn("customer disappeared before linking", slog.String("customer_id", id.String()))
		return
	case err != nil:
		r.linkFailed(log, linkOpLink, err)
		return
	}
	log.Info("customer linked to subscription",
		slog.String("customer_id", customer.ID.String()),
		slog.Int64("subscription_id", sub.ID),
	)
}

// unlinkCustomer clears the link of whichever customer references the ended subscription.
// The customer is found by reverse lookup, not by the customer id stored on the subscription.
func (r *Reconciler) unlinkCustomer(ctx context.Context, log *slog.Logger, sub *entity.Subscription) {
	customer, err := r.Customers.GetCustomerBySubID(ctx, sub.ID)
	switch {
	case errors.Is(err, ErrCustomerNotFound):
		log.Warn("no customer linked to subscription", slog.Int64("subscription_id", sub.ID))
		return
	case err != nil:
		r.linkFailed(log, linkOpUnlink, err)
		return
	}

	err = r.Customers.SetCustomerSub(ctx, customer.ID, nil)
	switch {
	case errors.Is(err, ErrCustomerNotFound):
		log.Warn("customer disappeared before unlinking", slog.String("customer_id", customer.ID.String()))
		return
	case err != nil:
		r.linkFailed(log, linkOpUnlink, err)
		return
	}
	log.Info("subscription reference removed from customer",
		slog.String("customer_id", customer.ID.String()),
		slog.Int64("subscription_id", sub.ID),
	)
}

func (r *Reconciler) linkFailed(log *slog.Logger, op string, err error) {
	log.Error("customer link maintenance failed", slog.String("op", op), slog.String("error", err.Error()))
	r.metrics.LinkFailed(op)
}
