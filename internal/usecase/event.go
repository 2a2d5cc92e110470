package usecase

import (
	"fmt"
	"time"

	"subs_reconciler/internal/entity"
)

// ParseEvent checks the structure of a raw webhook event and converts it into its typed variant.
// Unknown event types are returned as entity.UnhandledEvent.
func ParseEvent(raw *entity.WebhookEvent) (entity.Event, error) {
	switch {
	case raw == nil:
		return nil, fmt.Errorf("%w: nil event", ErrInvalidPayload)
	case raw.Type == "":
		return nil, fmt.Errorf("%w: empty type", ErrInvalidPayload)
	case raw.Data == nil:
		return nil, fmt.Errorf("%w: missing data", ErrInvalidPayload)
	case raw.Data.Object == nil:
		return nil, fmt.Errorf("%w: missing data.object", ErrInvalidPayload)
	case raw.Data.Object.SubID == "":
		return nil, fmt.Errorf("%w: missing sub_id", ErrInvalidPayload)
	}

	obj := raw.Data.Object
	header := entity.EventHeader{
		ID:             raw.ID,
		Type:           raw.Type,
		SubscriptionID: obj.SubID,
	}

	switch raw.Type {
	case entity.EventSubscriptionCreated:
		return entity.SubscriptionCreated{EventHeader: header, Snapshot: snapshotOf(obj)}, nil
	case entity.EventSubscriptionUpdated:
		return entity.SubscriptionUpdated{EventHeader: header, Snapshot: snapshotOf(obj)}, nil
	case entity.EventSubscriptionDeleted:
		return entity.SubscriptionDeleted{EventHeader: header, Snapshot: snapshotOf(obj)}, nil
	default:
		return entity.UnhandledEvent{EventHeader: header}, nil
	}
}

func snapshotOf(obj *entity.SubscriptionObject) entity.SubscriptionSnapshot {
	return entity.SubscriptionSnapshot{
		Status:             obj.Status,
		CustomerID:         obj.Metadata.CustomerID,
		StartDate:          fromEpoch(obj.StartDate),
		CurrentPeriodStart: fromEpoch(obj.CurrentPeriodStart),
		CurrentPeriodEnd:   fromEpoch(obj.CurrentPeriodEnd),
		CancelAtPeriodEnd:  obj.CancelAtPeriodEnd,
		CanceledAt:         fromEpoch(obj.CanceledAt),
		EndedAt:            fromEpoch(obj.EndedAt),
	}
}

// fromEpoch converts provider epoch seconds to UTC time; nil and 0 mean absent
func fromEpoch(sec *int64) *time.Time {
	if sec == nil || *sec == 0 {
		return nil
	}
	t := time.Unix(*sec, 0).UTC()
	return &t
}
