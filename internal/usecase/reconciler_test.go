package usecase

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"subs_reconciler/internal/entity"
)

var testLog = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

type reconcilerMocks struct {
	subs      *MockSubscriptionRepository
	customers *MockCustomerRepository
	metrics   *MockMetrics
}

func newReconcilerMocks(ctrl *gomock.Controller) reconcilerMocks {
	return reconcilerMocks{
		subs:      NewMockSubscriptionRepository(ctrl),
		customers: NewMockCustomerRepository(ctrl),
		metrics:   NewMockMetrics(ctrl),
	}
}

func (m reconcilerMocks) reconciler(options ...func(*Reconciler)) *Reconciler {
	return NewReconciler(m.subs, m.customers, testLog, m.metrics, options...)
}

func webhook(id, typ string, obj *entity.SubscriptionObject) *entity.WebhookEvent {
	return &entity.WebhookEvent{ID: id, Type: typ, Data: &entity.EventData{Object: obj}}
}

func Test_Reconciler_Handle_Rejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := newReconcilerMocks(ctrl)
	m.subs.EXPECT().GetSubByProviderID(gomock.Any(), gomock.Any()).Times(0)
	m.subs.EXPECT().SaveSub(gomock.Any(), gomock.Any()).Times(0)
	m.metrics.EXPECT().EventHandled(entity.EventSubscriptionCreated, ActionRejected).Times(1)

	res, err := m.reconciler().Handle(ctx, &entity.WebhookEvent{
		ID:   "evt_1",
		Type: entity.EventSubscriptionCreated,
		Data: &entity.EventData{},
	})
	assert.ErrorIs(t, err, ErrInvalidPayload)
	assert.Equal(t, OutcomeRejected, res.Outcome)
}

func Test_Reconciler_Handle_Created(t *testing.T) {
	customerID := uuid.New()
	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	t.Run("ok, creates and links customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		m := newReconcilerMocks(ctrl)
		m.subs.EXPECT().GetSubByProviderID(ctx, "sub_1").Times(1).Return(nil, ErrSubscriptionNotFound)
		m.subs.EXPECT().GetSubByEventID(ctx, "evt_1").Times(1).Return(nil, ErrSubscriptionNotFound)
		m.subs.EXPECT().SaveSub(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, s *entity.Subscription) (*entity.Subscription, error) {
				assert.Equal(t, "sub_1", s.ProviderSubscriptionID)
				assert.Equal(t, "evt_1", *s.ProviderEventID)
				assert.Equal(t, customerID.String(), *s.CustomerID)
				assert.Equal(t, entity.StatusActive, s.Status)
				assert.Equal(t, start, *s.StartDate)
				assert.Nil(t, s.CurrentPeriodStart)
				assert.Nil(t, s.CanceledAt)
				assert.Nil(t, s.EndedAt)
				assert.False(t, s.CancelAtPeriodEnd)
				s.ID = 42
				return s, nil
			}).Times(1)
		m.customers.EXPECT().GetCustomerByID(ctx, customerID).Times(1).Return(&entity.Customer{ID: customerID}, nil)
		m.customers.EXPECT().SetCustomerSub(ctx, customerID, ptr(int64(42))).Times(1).Return(nil)
		m.metrics.EXPECT().EventHandled(entity.EventSubscriptionCreated, ActionCreated).Times(1)

		res, err := m.reconciler().Handle(ctx, webhook("evt_1", entity.EventSubscriptionCreated, &entity.SubscriptionObject{
			SubID:     "sub_1",
			Metadata:  entity.EventMetadata{CustomerID: ptr(customerID.String())},
			StartDate: ptr(start.Unix()),
		}))
		require.NoError(t, err)
		assert.Equal(t, OutcomeAccepted, res.Outcome)
		assert.Equal(t, ActionCreated, res.Action)
		assert.Equal(t, "sub_1", res.ProviderSubscriptionID)
	})

	t.Run("ok, duplicate by subscription id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		m := newReconcilerMocks(ctrl)
		m.subs.EXPECT().GetSubByProviderID(ctx, "sub_1").Times(1).Return(&entity.Subscription{ID: 1, ProviderSubscriptionID: "sub_1"}, nil)
		m.subs.EXPECT().GetSubByEventID(ctx, "evt_2").Times(1).Return(nil, ErrSubscriptionNotFound)
		m.subs.EXPECT().SaveSub(gomock.Any(), gomock.Any()).Times(0)
		m.customers.EXPECT().SetCustomerSub(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		m.metrics.EXPECT().EventHandled(entity.EventSubscriptionCreated, ActionDuplicate).Times(1)

		res, err := m.reconciler().Handle(ctx, webhook("evt_2", entity.EventSubscriptionCreated, &entity.SubscriptionObject{SubID: "sub_1"}))
		require.NoError(t, err)
		assert.Equal(t, OutcomeAccepted, res.Outcome)
		assert.Equal(t, ActionDuplicate, res.Action)
	})

	t.Run("ok, duplicate by event id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		m := newReconcilerMocks(ctrl)
		m.subs.EXPECT().GetSubByProviderID(ctx, "sub_2").Times(1).Return(nil, ErrSubscriptionNotFound)
		m.subs.EXPECT().GetSubByEventID(ctx, "evt_1").Times(1).Return(&entity.Subscription{ID: 1, ProviderSubscriptionID: "sub_1"}, nil)
		m.subs.EXPECT().SaveSub(gomock.Any(), gomock.Any()).Times(0)
		m.metrics.EXPECT().EventHandled(entity.EventSubscriptionCreated, ActionDuplicate).Times(1)

		res, err := m.reconciler().Handle(ctx, webhook("evt_1", entity.EventSubscriptionCreated, &entity.SubscriptionObject{SubID: "sub_2"}))
		require.NoError(t, err)
		assert.Equal(t, ActionDuplicate, res.Action)
	})

	t.Run("ok, insert race resolves to duplicate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		m := newReconcilerMocks(ctrl)
		m.subs.EXPECT().GetSubByProviderID(ctx, "sub_1").Times(1).Return(nil, ErrSubscriptionNotFound)
		m.subs.EXPECT().GetSubByEventID(ctx, "evt_1").Times(1).Return(nil, ErrSubscriptionNotFound)
		m.subs.EXPECT().SaveSub(ctx, gomock.Any()).Times(1).Return(nil, ErrDuplicateSubscription)
		m.customers.EXPECT().GetCustomerByID(gomock.Any(), gomock.Any()).Times(0)
		m.metrics.EXPECT().EventHandled(entity.EventSubscriptionCreated, ActionDuplicate).Times(1)

		res, err := m.reconciler().Handle(ctx, webhook("evt_1", entity.EventSubscriptionCreated, &entity.SubscriptionObject{
			SubID:    "sub_1",
			Metadata: entity.EventMetadata{CustomerID: ptr(customerID.String())},
		}))
		require.NoError(t, err)
		assert.Equal(t, OutcomeAccepted, res.Outcome)
		assert.Equal(t, ActionDuplicate, res.Action)
	})

	t.Run("ok, unsupported creation status is skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		m := newReconcilerMocks(ctrl)
		m.subs.EXPECT().GetSubByProviderID(ctx, "sub_1").Times(1).Return(nil, ErrSubscriptionNotFound)
		m.subs.EXPECT().GetSubByEventID(ctx, "evt_1").Times(1).Return(nil, ErrSubscriptionNotFound)
		m.subs.EXPECT().SaveSub(gomock.Any(), gomock.Any()).Times(0)
		m.metrics.EXPECT().EventHandled(entity.EventSubscriptionCreated, ActionSkipped).Times(1)

		res, err := m.reconciler().Handle(ctx, webhook("evt_1", entity.EventSubscriptionCreated, &entity.SubscriptionObject{
			SubID:  "sub_1",
			Status: ptr("incomplete"),
		}))
		require.NoError(t, err)
		assert.Equal(t, ActionSkipped, res.Action)
	})

	t.Run("ok, malformed customer id is not looked up", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		m := newReconcilerMocks(ctrl)
		m.subs.EXPECT().GetSubByProviderID(ctx, "sub_1").Times(1).Return(nil, ErrSubscriptionNotFound)
		m.subs.EXPECT().GetSubByEventID(ctx, "evt_1").Times(1).Return(nil, ErrSubscriptionNotFound)
		m.subs.EXPECT().SaveSub(ctx, gomock.Any()).Times(1).Return(&entity.Subscription{ID: 7}, nil)
		m.customers.EXPECT().GetCustomerByID(gomock.Any(), gomock.Any()).Times(0)
		m.metrics.EXPECT().EventHandled(entity.EventSubscriptionCreated, ActionCreated).Times(1)

		res, err := m.reconciler().Handle(ctx, webhook("evt_1", entity.EventSubscriptionCreated, &entity.SubscriptionObject{
			SubID:    "sub_1",
			Metadata: entity.EventMetadata{CustomerID: ptr("not-a-customer-id")},
		}))
		require.NoError(t, err)
		assert.Equal(t, ActionCreated, res.Action)
	})

	t.Run("ok, missing customer is skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		m := newReconcilerMocks(ctrl)
		m.subs.EXPECT().GetSubByProviderID(ctx, "sub_1").Times(1).Return(nil, ErrSubscriptionNotFound)
		m.subs.EXPECT().GetSubByEventID(ctx, "evt_1").Times(1).Return(nil, ErrSubscriptionNotFound)
		m.subs.EXPECT().SaveSub(ctx, gomock.Any()).Times(1).Return(&entity.Subscription{ID: 7}, nil)
		m.customers.EXPECT().GetCustomerByID(ctx, customerID).Times(1).Return(nil, ErrCustomerNotFound)
		m.customers.EXPECT().SetCustomerSub(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		m.metrics.EXPECT().LinkFailed(gomock.Any()).Times(0)
		m.metrics.EXPECT().EventHandled(entity.EventSubscriptionCreated, ActionCreated).Times(1)

		res, err := m.reconciler().Handle(ctx, webhook("evt_1", entity.EventSubscriptionCreated, &entity.SubscriptionObject{
			SubID:    "sub_1",
			Metadata: entity.EventMetadata{CustomerID: ptr(customerID.String())},
		}))
		require.NoError(t, err)
		assert.Equal(t, ActionCreated, res.Action)
	})

	t.Run("ok, link fault is swallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		m := newReconcilerMocks(ctrl)
		m.subs.EXPECT().GetSubByProviderID(ctx, "sub_1").Times(1).Return(nil, ErrSubscriptionNotFound)
		m.subs.EXPECT().GetSubByEventID(ctx, "evt_1").Times(1).Return(nil, ErrSubscriptionNotFound)
		m.subs.EXPECT().SaveSub(ctx, gomock.Any()).Times(1).Return(&entity.Subscription{ID: 7}, nil)
		m.customers.EXPECT().GetCustomerByID(ctx, customerID).Times(1).Return(&entity.Customer{ID: customerID}, nil)
		m.customers.EXPECT().SetCustomerSub(ctx, customerID, ptr(int64(7))).Times(1).Return(errors.New("connection reset"))
		m.metrics.EXPECT().LinkFailed("link").Times(1)
		m.metrics.EXPECT().EventHandled(entity.EventSubscriptionCreated, ActionCreated).Times(1)

		res, err := m.reconciler().Handle(ctx, webhook("evt_1", entity.EventSubscriptionCreated, &entity.SubscriptionObject{
			SubID:    "sub_1",
			Metadata: entity.EventMetadata{CustomerID: ptr(customerID.String())},
		}))
		require.NoError(t, err)
		assert.Equal(t, OutcomeAccepted, res.Outcome)
		assert.Equal(t, ActionCreated, res.Action)
	})

	t.Run("err, insert fault", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		expected := errors.New("save error")
		m := newReconcilerMocks(ctrl)
		m.subs.EXPECT().GetSubByProviderID(ctx, "sub_1").Times(1).Return(nil, ErrSubscriptionNotFound)
		m.subs.EXPECT().GetSubByEventID(ctx, "evt_1").Times(1).Return(nil, ErrSubscriptionNotFound)
		m.subs.EXPECT().SaveSub(ctx, gomock.Any()).Times(1).Return(nil, expected)
		m.metrics.EXPECT().EventHandled(entity.EventSubscriptionCreated, ActionFailed).Times(1)

		res, err := m.reconciler().Handle(ctx, webhook("evt_1", entity.EventSubscriptionCreated, &entity.SubscriptionObject{SubID: "sub_1"}))
		assert.ErrorIs(t, err, expected)
		assert.Equal(t, OutcomeFailed, res.Outcome)
	})
}

func Test_Reconciler_Handle_Updated(t *testing.T) {
	existing := &entity.Subscription{ID: 3, ProviderSubscriptionID: "sub_1", Status: entity.StatusActive}

	t.Run("ok, unknown subscription is skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		m := newReconcilerMocks(ctrl)
		m.subs.EXPECT().GetSubByProviderID(ctx, "sub_404").Times(1).Return(nil, ErrSubscriptionNotFound)
		m.subs.EXPECT().GetSubByEventID(ctx, "evt_9").Times(1).Return(nil, ErrSubscriptionNotFound)
		m.subs.EXPECT().UpdateSubState(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		m.metrics.EXPECT().EventHandled(entity.EventSubscriptionUpdated, ActionSkipped).Times(1)

		res, err := m.reconciler().Handle(ctx, webhook("evt_9", entity.EventSubscriptionUpdated, &entity.SubscriptionObject{
			SubID:  "sub_404",
			Status: ptr("canceled"),
		}))
		require.NoError(t, err)
		assert.Equal(t, OutcomeAccepted, res.Outcome)
		assert.Equal(t, ActionSkipped, res.Action)
	})

	t.Run("ok, unsupported status is skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		m := newReconcilerMocks(ctrl)
		m.subs.EXPECT().GetSubByProviderID(ctx, "sub_1").Times(1).Return(existing, nil)
		m.subs.EXPECT().GetSubByEventID(ctx, "evt_9").Times(1).Return(nil, ErrSubscriptionNotFound)
		m.subs.EXPECT().UpdateSubState(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		m.metrics.EXPECT().EventHandled(entity.EventSubscriptionUpdated, ActionSkipped).Times(1)

		res, err := m.reconciler().Handle(ctx, webhook("evt_9", entity.EventSubscriptionUpdated, &entity.SubscriptionObject{
			SubID:  "sub_1",
			Status: ptr("trialing"),
		}))
		require.NoError(t, err)
		assert.Equal(t, ActionSkipped, res.Action)
	})

	t.Run("ok, absent fields are written as null", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		canceledAt := time.Date(2025, 8, 10, 12, 0, 0, 0, time.UTC)
		m := newReconcilerMocks(ctrl)
		m.subs.EXPECT().GetSubByProviderID(ctx, "sub_1").Times(1).Return(existing, nil)
		m.subs.EXPECT().GetSubByEventID(ctx, "evt_9").Times(1).Return(nil, ErrSubscriptionNotFound)
		m.subs.EXPECT().UpdateSubState(ctx, "sub_1", entity.SubscriptionState{
			Status:            entity.StatusCanceled,
			CancelAtPeriodEnd: true,
			CanceledAt:        &canceledAt,
		}).Times(1).Return(existing, nil)
		m.metrics.EXPECT().EventHandled(entity.EventSubscriptionUpdated, ActionUpdated).Times(1)

		res, err := m.reconciler().Handle(ctx, webhook("evt_9", entity.EventSubscriptionUpdated, &entity.SubscriptionObject{
			SubID:             "sub_1",
			Status:            ptr("canceled"),
			CancelAtPeriodEnd: ptr(true),
			CanceledAt:        ptr(canceledAt.Unix()),
		}))
		require.NoError(t, err)
		assert.Equal(t, ActionUpdated, res.Action)
	})

	t.Run("err, lookup fault", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		expected := errors.New("pool closed")
		m := newReconcilerMocks(ctrl)
		m.subs.EXPECT().GetSubByProviderID(ctx, "sub_1").Times(1).Return(nil, expected)
		m.subs.EXPECT().UpdateSubState(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		m.metrics.EXPECT().EventHandled(entity.EventSubscriptionUpdated, ActionFailed).Times(1)

		res, err := m.reconciler().Handle(ctx, webhook("evt_9", entity.EventSubscriptionUpdated, &entity.SubscriptionObject{
			SubID:  "sub_1",
			Status: ptr("active"),
		}))
		assert.ErrorIs(t, err, expected)
		assert.Equal(t, OutcomeFailed, res.Outcome)
	})
}

func Test_Reconciler_Handle_Deleted(t *testing.T) {
	existing := &entity.Subscription{ID: 3, ProviderSubscriptionID: "sub_1", Status: entity.StatusActive}
	customerID := uuid.New()

	t.Run("ok, ends and unlinks with event timestamp", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		endedAt := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
		m := newReconcilerMocks(ctrl)
		m.subs.EXPECT().GetSubByProviderID(ctx, "sub_1").Times(1).Return(existing, nil)
		m.subs.EXPECT().GetSubByEventID(ctx, "evt_3").Times(1).Return(nil, ErrSubscriptionNotFound)
		m.subs.EXPECT().EndSub(ctx, "sub_1", endedAt).Times(1).Return(existing, nil)
		m.customers.EXPECT().GetCustomerBySubID(ctx, int64(3)).Times(1).Return(&entity.Customer{ID: customerID, SubscriptionID: ptr(int64(3))}, nil)
		m.customers.EXPECT().SetCustomerSub(ctx, customerID, gomock.Nil()).Times(1).Return(nil)
		m.metrics.EXPECT().EventHandled(entity.EventSubscriptionDeleted, ActionEnded).Times(1)

		res, err := m.reconciler().Handle(ctx, webhook("evt_3", entity.EventSubscriptionDeleted, &entity.SubscriptionObject{
			SubID:   "sub_1",
			EndedAt: ptr(endedAt.Unix()),
		}))
		require.NoError(t, err)
		assert.Equal(t, ActionEnded, res.Action)
	})

	t.Run("ok, processing time when ended_at is absent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		now := time.Date(2025, 10, 5, 8, 30, 0, 0, time.UTC)
		m := newReconcilerMocks(ctrl)
		m.subs.EXPECT().GetSubByProviderID(ctx, "sub_1").Times(1).Return(existing, nil)
		m.subs.EXPECT().GetSubByEventID(ctx, "evt_3").Times(1).Return(nil, ErrSubscriptionNotFound)
		m.subs.EXPECT().EndSub(ctx, "sub_1", now).Times(1).Return(existing, nil)
		m.customers.EXPECT().GetCustomerBySubID(ctx, int64(3)).Times(1).Return(nil, ErrCustomerNotFound)
		m.customers.EXPECT().SetCustomerSub(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		m.metrics.EXPECT().EventHandled(entity.EventSubscriptionDeleted, ActionEnded).Times(1)

		r := m.reconciler(WithClock(func() time.Time { return now }))
		res, err := r.Handle(ctx, webhook("evt_3", entity.EventSubscriptionDeleted, &entity.SubscriptionObject{SubID: "sub_1"}))
		require.NoError(t, err)
		assert.Equal(t, ActionEnded, res.Action)
	})

	t.Run("ok, deletion before creation is skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		m := newReconcilerMocks(ctrl)
		m.subs.EXPECT().GetSubByProviderID(ctx, "sub_1").Times(1).Return(nil, ErrSubscriptionNotFound)
		m.subs.EXPECT().GetSubByEventID(ctx, "evt_3").Times(1).Return(nil, ErrSubscriptionNotFound)
		m.subs.EXPECT().EndSub(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		m.subs.EXPECT().SaveSub(gomock.Any(), gomock.Any()).Times(0)
		m.metrics.EXPECT().EventHandled(entity.EventSubscriptionDeleted, ActionSkipped).Times(1)

		res, err := m.reconciler().Handle(ctx, webhook("evt_3", entity.EventSubscriptionDeleted, &entity.SubscriptionObject{SubID: "sub_1"}))
		require.NoError(t, err)
		assert.Equal(t, OutcomeAccepted, res.Outcome)
		assert.Equal(t, ActionSkipped, res.Action)
	})

	t.Run("ok, unlink fault is swallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		m := newReconcilerMocks(ctrl)
		m.subs.EXPECT().GetSubByProviderID(ctx, "sub_1").Times(1).Return(existing, nil)
		m.subs.EXPECT().GetSubByEventID(ctx, "evt_3").Times(1).Return(nil, ErrSubscriptionNotFound)
		m.subs.EXPECT().EndSub(ctx, "sub_1", gomock.Any()).Times(1).Return(existing, nil)
		m.customers.EXPECT().GetCustomerBySubID(ctx, int64(3)).Times(1).Return(nil, errors.New("timeout"))
		m.metrics.EXPECT().LinkFailed("unlink").Times(1)
		m.metrics.EXPECT().EventHandled(entity.EventSubscriptionDeleted, ActionEnded).Times(1)

		res, err := m.reconciler().Handle(ctx, webhook("evt_3", entity.EventSubscriptionDeleted, &entity.SubscriptionObject{SubID: "sub_1"}))
		require.NoError(t, err)
		assert.Equal(t, OutcomeAccepted, res.Outcome)
	})
}

func Test_Reconciler_Handle_Unhandled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := newReconcilerMocks(ctrl)
	m.subs.EXPECT().GetSubByProviderID(gomock.Any(), gomock.Any()).Times(0)
	m.metrics.EXPECT().EventHandled("invoice.paid", ActionIgnored).Times(1)

	res, err := m.reconciler().Handle(ctx, webhook("evt_5", "invoice.paid", &entity.SubscriptionObject{SubID: "sub_1"}))
	require.NoError(t, err)
	assert.Equal(t, OutcomeAccepted, res.Outcome)
	assert.Equal(t, ActionIgnored, res.Action)
}
