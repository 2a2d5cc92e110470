package http

import (
	"time"

	"github.com/go-openapi/strfmt"

	"subs_reconciler/internal/entity"
	"subs_reconciler/internal/entity/generated"
)

// toWebhookEvent maps the bound request body onto the engine's raw event.
// Missing branches stay nil; the reconciler decides what is structurally valid.
func toWebhookEvent(in *generated.WebhookEvent) *entity.WebhookEvent {
	if in == nil {
		return nil
	}
	out := &entity.WebhookEvent{ID: in.ID}
	if in.Type != nil {
		out.Type = *in.Type
	}
	if in.Data == nil {
		return out
	}
	out.Data = &entity.EventData{}
	obj := in.Data.Object
	if obj == nil {
		return out
	}

	so := &entity.SubscriptionObject{
		Status:             obj.Status,
		StartDate:          obj.StartDate,
		CurrentPeriodStart: obj.CurrentPeriodStart,
		CurrentPeriodEnd:   obj.CurrentPeriodEnd,
		CancelAtPeriodEnd:  obj.CancelAtPeriodEnd,
		CanceledAt:         obj.CanceledAt,
		EndedAt:            obj.EndedAt,
	}
	if obj.SubID != nil {
		so.SubID = *obj.SubID
	}
	if obj.Metadata != nil {
		so.Metadata.CustomerID = obj.Metadata.CustomerID
	}
	out.Data.Object = so
	return out
}

func toCustomerResponse(c *entity.Customer) generated.Customer {
	return generated.Customer{
		ID:             strfmt.UUID(c.ID.String()),
		Name:           c.Name,
		Surname:        c.Surname,
		Email:          strfmt.Email(c.Email),
		SubscriptionID: c.SubscriptionID,
	}
}

func toSubscriptionResponse(s *entity.Subscription) generated.Subscription {
	return generated.Subscription{
		ID:                 s.ID,
		SubID:              s.ProviderSubscriptionID,
		CustomerID:         s.CustomerID,
		Status:             string(s.Status),
		StartDate:          dateTime(s.StartDate),
		CurrentPeriodStart: dateTime(s.CurrentPeriodStart),
		CurrentPeriodEnd:   dateTime(s.CurrentPeriodEnd),
		CancelAtPeriodEnd:  s.CancelAtPeriodEnd,
		CanceledAt:         dateTime(s.CanceledAt),
		EndedAt:            dateTime(s.EndedAt),
	}
}

func dateTime(t *time.Time) *strfmt.DateTime {
	if t == nil {
		return nil
	}
	dt := strfmt.DateTime(*t)
	return &dt
}
