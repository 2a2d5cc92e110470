package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"subs_reconciler/internal/entity"
	"subs_reconciler/internal/repository/customer/postgres/sqlc"
	"subs_reconciler/internal/usecase"
)

type CustomerRepository struct {
	pool    *pgxpool.Pool
	queries *sqlc.Queries
}

func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{
		pool:    pool,
		queries: sqlc.New(pool),
	}
}

func (r *CustomerRepository) SaveCustomer(ctx context.Context, c *entity.Customer) (*entity.Customer, error) {
	if c == nil {
		return nil, fmt.Errorf("save customer: %w", usecase.ErrInvalidCustomer)
	}

	out, err := r.queries.CreateCustomer(ctx, sqlc.CreateCustomerParams{
		ID:             c.ID,
		Name:           c.Name,
		Surname:        c.Surname,
		Email:          c.Email,
		SubscriptionID: c.SubscriptionID,
	})
	if err != nil {
		return nil, fmt.Errorf("save customer: %w", err)
	}
	return toEntity(out), nil
}

func (r *CustomerRepository) ListCustomers(ctx context.Context) ([]*entity.Customer, error) {
	rows, err := r.queries.ListCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	out := make([]*entity.Customer, 0, len(rows))
	for _, item := range rows {
		out = append(out, toEntity(item))
	}
	return out, nil
}

func (r *CustomerRepository) GetCustomerByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	c, err := r.queries.GetCustomer(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, usecase.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("get customer by id=%s: %w", id, err)
	}
	return toEntity(c), nil
}

// GetCustomerBySubID returns the customer whose link points at the subscription row id
func (r *CustomerRepository) GetCustomerBySubID(ctx context.Context, subID int64) (*entity.Customer, error) {
	c, err := r.queries.GetCustomerBySubscriptionID(ctx, &subID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, usecase.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("get customer by subscription_id=%d: %w", subID, err)
	}
	return toEntity(c), nil
}

// SetCustomerSub sets or, with a nil subID, clears the customer's subscription link
func (r *CustomerRepository) SetCustomerSub(ctx context.Context, id uuid.UUID, subID *int64) error {
	rows, err := r.queries.SetCustomerSubscription(ctx, sqlc.SetCustomerSubscriptionParams{
		ID:             id,
		SubscriptionID: subID,
	})
	if err != nil {
		return fmt.Errorf("set customer sub id=%s: %w", id, err)
	}
	if rows == 0 {
		return usecase.ErrCustomerNotFound
	}
	return nil
}

func (r *CustomerRepository) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	rows, err := r.queries.DeleteCustomer(ctx, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	if rows == 0 {
		return usecase.ErrCustomerNotFound
	}
	return nil
}

func toEntity(c sqlc.Customer) *entity.Customer {
	return &entity.Customer{
		ID:             c.ID,
		Name:           c.Name,
		Surname:        c.Surname,
		Email:          c.Email,
		SubscriptionID: c.SubscriptionID,
		CreatedAt:      c.CreatedAt.UTC(),
		UpdatedAt:      c.UpdatedAt.UTC(),
	}
}
