package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"subs_reconciler/internal/entity"
)

//go:generate go run github.com/golang/mock/mockgen@v1.6.0 -destination=usecase_mock.go -package=usecase subs_reconciler/internal/usecase SubscriptionRepository,CustomerRepository,Metrics

var (
	ErrInvalidPayload        = errors.New("invalid payload")
	ErrSubscriptionNotFound  = errors.New("subscription not found")
	ErrDuplicateSubscription = errors.New("subscription already exists")
	ErrCustomerNotFound      = errors.New("customer not found")
	ErrInvalidCustomer       = errors.New("invalid customer")
	ErrInvalidID             = errors.New("invalid id")
)

// SubscriptionRepository - persistence of mirrored subscriptions
type SubscriptionRepository interface {
	// GetSubByProviderID - find a subscription by provider subscription id
	GetSubByProviderID(ctx context.Context, providerSubID string) (*entity.Subscription, error)
	// GetSubByEventID - find a subscription by the id of the event that created it
	GetSubByEventID(ctx context.Context, eventID string) (*entity.Subscription, error)
	// SaveSub - insert a subscription, ErrDuplicateSubscription on a unique key collision
	SaveSub(ctx context.Context, s *entity.Subscription) (*entity.Subscription, error)
	// UpdateSubState - overwrite the provider state of a subscription
	UpdateSubState(ctx context.Context, providerSubID string, st entity.SubscriptionState) (*entity.Subscription, error)
	// EndSub - move a subscription to ended and clear its period bounds
	EndSub(ctx context.Context, providerSubID string, endedAt time.Time) (*entity.Subscription, error)
}

// CustomerRepository - persistence of customers and their subscription link
type CustomerRepository interface {
	// SaveCustomer - insert a customer
	SaveCustomer(ctx context.Context, c *entity.Customer) (*entity.Customer, error)
	// ListCustomers - all customers, oldest first
	ListCustomers(ctx context.Context) ([]*entity.Customer, error)
	// GetCustomerByID - find a customer by id
	GetCustomerByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	// GetCustomerBySubID - find the customer linked to a subscription
	GetCustomerBySubID(ctx context.Context, subID int64) (*entity.Customer, error)
	// SetCustomerSub - set or clear (nil) the customer subscription link
	SetCustomerSub(ctx context.Context, id uuid.UUID, subID *int64) error
	// DeleteCustomer - delete a customer
	DeleteCustomer(ctx context.Context, id uuid.UUID) error
}

// Metrics - observability sink for reconciliation
type Metrics interface {
	// EventHandled - one webhook event finished with the given action
	EventHandled(eventType string, action Action)
	// LinkFailed - customer link maintenance failed and was swallowed
	LinkFailed(op string)
}
