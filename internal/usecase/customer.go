package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"

	"subs_reconciler/internal/entity"
)

// Customer coordinates account management of customers via the repository.
// The subscription link is never written here, only by the Reconciler.
type Customer struct {
	Cr CustomerRepository
}

// NewCustomer creates a use case service with the given repository
func NewCustomer(cr CustomerRepository) *Customer {
	return &Customer{
		Cr: cr,
	}
}

// RegisterCustomer validates/normalizes and saves a new customer without a subscription
func (s *Customer) RegisterCustomer(ctx context.Context, c *entity.Customer) (*entity.Customer, error) {
	if err := validateAndNormalizeCustomer(c); err != nil {
		return nil, err
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.SubscriptionID = nil
	return s.Cr.SaveCustomer(ctx, c)
}

// ListCustomers returns every stored customer
func (s *Customer) ListCustomers(ctx context.Context) ([]*entity.Customer, error) {
	return s.Cr.ListCustomers(ctx)
}

// GetCustomerByID fetches a customer by its ID
func (s *Customer) GetCustomerByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	if id == uuid.Nil {
		return nil, ErrInvalidID
	}
	return s.Cr.GetCustomerByID(ctx, id)
}

// DeleteCustomer removes a customer by ID and returns the previously stored record.
// The linked subscription, if any, is left untouched.
func (s *Customer) DeleteCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	if id == uuid.Nil {
		return nil, ErrInvalidID
	}

	existing, err := s.Cr.GetCustomerByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.Cr.DeleteCustomer(ctx, id); err != nil {
		return nil, err
	}
	return existing, nil
}

// validateAndNormalizeCustomer trims the fields and enforces that all of them are present
func validateAndNormalizeCustomer(c *entity.Customer) error {
	if c == nil {
		return fmt.Errorf("%w: nil", ErrInvalidCustomer)
	}
	c.Name = strings.TrimSpace(c.Name)
	c.Surname = strings.TrimSpace(c.Surname)
	c.Email = strings.TrimSpace(c.Email)
	if c.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidCustomer)
	}
	if c.Surname == "" {
		return fmt.Errorf("%w: empty surname", ErrInvalidCustomer)
	}
	if c.Email == "" {
		return fmt.Errorf("%w: empty email", ErrInvalidCustomer)
	}
	if !strfmt.IsEmail(c.Email) {
		return fmt.Errorf("%w: malformed email", ErrInvalidCustomer)
	}
	return nil
}
