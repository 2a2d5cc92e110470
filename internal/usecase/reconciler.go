package usecase

import (
	"context"
	"io"
	"log/slog"
	"time"

	"subs_reconciler/internal/entity"
)

// Outcome - transport level verdict for a webhook event
type Outcome int

const (
	// OutcomeAccepted - event processed, including every intentional no-op
	OutcomeAccepted Outcome = iota
	// OutcomeRejected - event failed structural validation
	OutcomeRejected
	// OutcomeFailed - persistence fault during the subscription mutation
	OutcomeFailed
)

// Action - what the reconciler did with an event
type Action string

const (
	ActionCreated   Action = "created"
	ActionUpdated   Action = "updated"
	ActionEnded     Action = "ended"
	ActionDuplicate Action = "duplicate"
	ActionSkipped   Action = "skipped"
	ActionIgnored   Action = "ignored"
	ActionRejected  Action = "rejected"
	ActionFailed    Action = "failed"
)

// Result - outcome of handling one webhook event
type Result struct {
	Outcome                Outcome
	Action                 Action
	EventType              string
	ProviderSubscriptionID string
}

// Reconciler converges stored subscriptions and customer links to provider events.
// It keeps no state between events; concurrent calls are safe as long as the repositories are.
type Reconciler struct {
	Subs      SubscriptionRepository
	Customers CustomerRepository

	log     *slog.Logger
	metrics Metrics
	now     func() time.Time
}

// NewReconciler creates a reconciler over the given repositories
func NewReconciler(subs SubscriptionRepository, customers CustomerRepository, log *slog.Logger, m Metrics, options ...func(*Reconciler)) *Reconciler {
	r := &Reconciler{
		Subs:      subs,
		Customers: customers,
		log:       log,
		metrics:   m,
		now:       time.Now,
	}
	for _, o := range options {
		o(r)
	}
	if r.log == nil {
		r.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if r.metrics == nil {
		r.metrics = nopMetrics{}
	}
	return r
}

// WithClock returns an option that replaces the processing time source.
func WithClock(now func() time.Time) func(*Reconciler) {
	return func(r *Reconciler) {
		if now != nil {
			r.now = now
		}
	}
}

// Handle validates one webhook event and applies it.
// The returned error is non-nil only for OutcomeRejected (wrapping ErrInvalidPayload) and OutcomeFailed.
func (r *Reconciler) Handle(ctx context.Context, raw *entity.WebhookEvent) (Result, error) {
	ev, err := ParseEvent(raw)
	if err != nil {
		res := Result{Outcome: OutcomeRejected, Action: ActionRejected}
		if raw != nil {
			res.EventType = raw.Type
		}
		r.log.Warn("invalid webhook payload", slog.String("error", err.Error()))
		r.metrics.EventHandled(res.EventType, res.Action)
		return res, err
	}

	res := Result{
		Outcome:                OutcomeAccepted,
		EventType:              ev.EventType(),
		ProviderSubscriptionID: ev.ProviderSubscriptionID(),
	}
	log := r.log.With(
		slog.String("event_id", ev.EventID()),
		slog.String("event_type", ev.EventType()),
		slog.String("provider_subscription_id", ev.ProviderSubscriptionID()),
	)

	if _, ok := ev.(entity.UnhandledEvent); ok {
		log.Info("unhandled event type")
		res.Action = ActionIgnored
		r.metrics.EventHandled(res.EventType, res.Action)
		return res, nil
	}

	presence, err := r.lookupKeys(ctx, ev.EventID(), ev.ProviderSubscriptionID())
	if err == nil {
		switch e := ev.(type) {
		case entity.SubscriptionCreated:
			res.Action, err = r.applyCreated(ctx, log, e, presence)
		case entity.SubscriptionUpdated:
			res.Action, err = r.applyUpdated(ctx, log, e, presence)
		case entity.SubscriptionDeleted:
			res.Action, err = r.applyDeleted(ctx, log, e, presence)
		}
	}
	if err != nil {
		log.Error("webhook handling error", slog.String("error", err.Error()))
		res.Outcome = OutcomeFailed
		res.Action = ActionFailed
		r.metrics.EventHandled(res.EventType, res.Action)
		return res, err
	}

	r.metrics.EventHandled(res.EventType, res.Action)
	return res, nil
}

type nopMetrics struct{}

func (nopMetrics) EventHandled(string, Action) {}
func (nopMetrics) LinkFailed(string)           {}
