package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"subs_reconciler/internal/entity"
	"subs_reconciler/internal/repository/subscription/postgres/sqlc"
	"subs_reconciler/internal/usecase"
)

// uniqueViolation - postgres SQLSTATE for a unique constraint violation
const uniqueViolation = "23505"

type SubRepository struct {
	pool    *pgxpool.Pool
	queries *sqlc.Queries
}

func NewSubRepository(pool *pgxpool.Pool) *SubRepository {
	return &SubRepository{
		pool:    pool,
		queries: sqlc.New(pool),
	}
}

func (r *SubRepository) GetSubByProviderID(ctx context.Context, providerSubID string) (*entity.Subscription, error) {
	sub, err := r.queries.GetSubscriptionByProviderID(ctx, providerSubID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, usecase.ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("get sub by sub_id=%s: %w", providerSubID, err)
	}
	return toEntity(sub), nil
}

func (r *SubRepository) GetSubByEventID(ctx context.Context, eventID string) (*entity.Subscription, error) {
	sub, err := r.queries.GetSubscriptionByEventID(ctx, &eventID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, usecase.ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("get sub by event_id=%s: %w", eventID, err)
	}
	return toEntity(sub), nil
}

// SaveSub inserts a new subscription. A clash on either unique key returns usecase.ErrDuplicateSubscription.
func (r *SubRepository) SaveSub(ctx context.Context, sub *entity.Subscription) (*entity.Subscription, error) {
	if sub == nil {
		return nil, fmt.Errorf("save sub: %w", usecase.ErrInvalidPayload)
	}

	params := sqlc.CreateSubscriptionParams{
		ProviderEventID:        sub.ProviderEventID,
		ProviderSubscriptionID: sub.ProviderSubscriptionID,
		CustomerID:             sub.CustomerID,
		Status:                 string(sub.Status),
		StartDate:              sub.StartDate,
		CurrentPeriodStart:     sub.CurrentPeriodStart,
		CurrentPeriodEnd:       sub.CurrentPeriodEnd,
		CancelAtPeriodEnd:      sub.CancelAtPeriodEnd,
		CanceledAt:             sub.CanceledAt,
	}

	out, err := r.queries.CreateSubscription(ctx, params)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, fmt.Errorf("save sub: %w", usecase.ErrDuplicateSubscription)
		}
		return nil, fmt.Errorf("save sub: %w", err)
	}
	return toEntity(out), nil
}

// UpdateSubState overwrites the provider state columns; nil fields become NULL
func (r *SubRepository) UpdateSubState(ctx context.Context, providerSubID string, st entity.SubscriptionState) (*entity.Subscription, error) {
	out, err := r.queries.UpdateSubscriptionState(ctx, sqlc.UpdateSubscriptionStateParams{
		ProviderSubscriptionID: providerSubID,
		Status:                 string(st.Status),
		CurrentPeriodStart:     st.CurrentPeriodStart,
		CurrentPeriodEnd:       st.CurrentPeriodEnd,
		CancelAtPeriodEnd:      st.CancelAtPeriodEnd,
		CanceledAt:             st.CanceledAt,
		EndedAt:                st.EndedAt,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, usecase.ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("update sub state sub_id=%s: %w", providerSubID, err)
	}
	return toEntity(out), nil
}

// EndSub marks the subscription ended and clears its billing period
func (r *SubRepository) EndSub(ctx context.Context, providerSubID string, endedAt time.Time) (*entity.Subscription, error) {
	out, err := r.queries.EndSubscription(ctx, sqlc.EndSubscriptionParams{
		ProviderSubscriptionID: providerSubID,
		EndedAt:                &endedAt,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, usecase.ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("end sub sub_id=%s: %w", providerSubID, err)
	}
	return toEntity(out), nil
}

func toEntity(s sqlc.Subscription) *entity.Subscription {
	return &entity.Subscription{
		ID:                     s.ID,
		ProviderEventID:        s.ProviderEventID,
		ProviderSubscriptionID: s.ProviderSubscriptionID,
		CustomerID:             s.CustomerID,
		Status:                 entity.SubscriptionStatus(s.Status),
		StartDate:              utcPtr(s.StartDate),
		CurrentPeriodStart:     utcPtr(s.CurrentPeriodStart),
		CurrentPeriodEnd:       utcPtr(s.CurrentPeriodEnd),
		CancelAtPeriodEnd:      s.CancelAtPeriodEnd,
		CanceledAt:             utcPtr(s.CanceledAt),
		EndedAt:                utcPtr(s.EndedAt),
		CreatedAt:              s.CreatedAt.UTC(),
		UpdatedAt:              s.UpdatedAt.UTC(),
	}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
