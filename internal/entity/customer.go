package entity

import (
	"time"

	"github.com/google/uuid"
)

// Customer - billing account holder
type Customer struct {
	// ID - identifier in UUID format
	ID uuid.UUID
	// Name - first name
	Name string
	// Surname - last name
	Surname string
	// Email - contact email
	Email string
	// SubscriptionID - internal id of the owned subscription, nil when unlinked
	SubscriptionID *int64
	// CreatedAt - record creation time
	CreatedAt time.Time
	// UpdatedAt - last record modification time
	UpdatedAt time.Time
}
