package postgres

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"subs_reconciler/internal/entity"
	"subs_reconciler/internal/usecase"
)

var pgContainer *postgres.PostgresContainer

func cleanup() {
	if pgContainer != nil {
		_ = pgContainer.Terminate(context.Background())
	}
}

func TestMain(m *testing.M) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cleanup()
		os.Exit(1)
	}()

	c, err := postgres.Run(
		ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("subs_db"),
		postgres.WithUsername("subs_user"),
		postgres.WithPassword("subs_password"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "run container: %v\n", err)
		cleanup()
		os.Exit(1)
	}
	pgContainer = c

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "conn string: %v\n", err)
		cleanup()
		os.Exit(1)
	}

	migDir, err := filepath.Abs("../../../../migrations")
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "migrations path: %v\n", err)
		cleanup()
		os.Exit(1)
	}
	if err := runMigrations(connStr, "file:///"+migDir); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "migrate up: %v\n", err)
		cleanup()
		os.Exit(1)
	}

	code := m.Run()

	cleanup()
	os.Exit(code)
}

func runMigrations(connStr, srcURL string) error {
	m, err := migrate.New(srcURL, connStr)
	if err != nil {
		return err
	}
	defer func(m *migrate.Migrate) {
		_, _ = m.Close()
	}(m)
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func newTestRepo(t *testing.T) (*SubRepository, *pgxpool.Pool) {
	t.Helper()
	ctx := context.Background()
	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	_, err = pool.Exec(ctx, `TRUNCATE TABLE subscriptions RESTART IDENTITY`)
	require.NoError(t, err)
	return NewSubRepository(pool), pool
}

func strPtr(s string) *string { return &s }

func TestSubRepository_SaveSub(t *testing.T) {
	ctx := context.Background()
	sr, _ := newTestRepo(t)

	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := start.AddDate(0, 1, 0)
	created, err := sr.SaveSub(ctx, &entity.Subscription{
		ProviderEventID:        strPtr("evt_1"),
		ProviderSubscriptionID: "sub_1",
		CustomerID:             strPtr("0f8fad5b-d9cb-469f-a165-70867728950e"),
		Status:                 entity.StatusActive,
		StartDate:              &start,
		CurrentPeriodStart:     &start,
		CurrentPeriodEnd:       &periodEnd,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, entity.StatusActive, created.Status)
	assert.Equal(t, start, *created.StartDate)
	assert.Equal(t, periodEnd, *created.CurrentPeriodEnd)
	assert.Nil(t, created.EndedAt)
	assert.False(t, created.CreatedAt.IsZero())

	tcases := []struct {
		Name string
		Sub  entity.Subscription
	}{
		{
			Name: "same provider subscription id",
			Sub: entity.Subscription{
				ProviderEventID:        strPtr("evt_2"),
				ProviderSubscriptionID: "sub_1",
				Status:                 entity.StatusActive,
			},
		},
		{
			Name: "same provider event id",
			Sub: entity.Subscription{
				ProviderEventID:        strPtr("evt_1"),
				ProviderSubscriptionID: "sub_2",
				Status:                 entity.StatusActive,
			},
		},
	}
	for _, tc := range tcases {
		t.Run(tc.Name, func(t *testing.T) {
			_, err := sr.SaveSub(ctx, &tc.Sub)
			assert.ErrorIs(t, err, usecase.ErrDuplicateSubscription)
		})
	}

	t.Run("absent event ids do not clash", func(t *testing.T) {
		_, err := sr.SaveSub(ctx, &entity.Subscription{ProviderSubscriptionID: "sub_3", Status: entity.StatusActive})
		require.NoError(t, err)
		_, err = sr.SaveSub(ctx, &entity.Subscription{ProviderSubscriptionID: "sub_4", Status: entity.StatusActive})
		require.NoError(t, err)
	})
}

func TestSubRepository_Lookups(t *testing.T) {
	ctx := context.Background()
	sr, _ := newTestRepo(t)

	created, err := sr.SaveSub(ctx, &entity.Subscription{
		ProviderEventID:        strPtr("evt_1"),
		ProviderSubscriptionID: "sub_1",
		Status:                 entity.StatusActive,
	})
	require.NoError(t, err)

	bySub, err := sr.GetSubByProviderID(ctx, "sub_1")
	require.NoError(t, err)
	assert.Equal(t, *created, *bySub)

	byEvent, err := sr.GetSubByEventID(ctx, "evt_1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEvent.ID)

	_, err = sr.GetSubByProviderID(ctx, "sub_404")
	assert.ErrorIs(t, err, usecase.ErrSubscriptionNotFound)

	_, err = sr.GetSubByEventID(ctx, "evt_404")
	assert.ErrorIs(t, err, usecase.ErrSubscriptionNotFound)
}

func TestSubRepository_UpdateSubState(t *testing.T) {
	ctx := context.Background()
	sr, _ := newTestRepo(t)

	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := start.AddDate(0, 1, 0)
	_, err := sr.SaveSub(ctx, &entity.Subscription{
		ProviderSubscriptionID: "sub_1",
		Status:                 entity.StatusActive,
		StartDate:              &start,
		CurrentPeriodStart:     &start,
		CurrentPeriodEnd:       &periodEnd,
	})
	require.NoError(t, err)

	canceledAt := start.AddDate(0, 0, 10)
	updated, err := sr.UpdateSubState(ctx, "sub_1", entity.SubscriptionState{
		Status:            entity.StatusCanceled,
		CancelAtPeriodEnd: true,
		CanceledAt:        &canceledAt,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCanceled, updated.Status)
	assert.True(t, updated.CancelAtPeriodEnd)
	assert.Equal(t, canceledAt, *updated.CanceledAt)
	assert.Nil(t, updated.CurrentPeriodStart)
	assert.Nil(t, updated.CurrentPeriodEnd)
	assert.Equal(t, start, *updated.StartDate, "start date is not part of the state")

	_, err = sr.UpdateSubState(ctx, "sub_404", entity.SubscriptionState{Status: entity.StatusActive})
	assert.ErrorIs(t, err, usecase.ErrSubscriptionNotFound)
}

func TestSubRepository_EndSub(t *testing.T) {
	ctx := context.Background()
	sr, pool := newTestRepo(t)

	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := start.AddDate(0, 1, 0)
	_, err := sr.SaveSub(ctx, &entity.Subscription{
		ProviderSubscriptionID: "sub_1",
		Status:                 entity.StatusActive,
		CurrentPeriodStart:     &start,
		CurrentPeriodEnd:       &periodEnd,
	})
	require.NoError(t, err)

	endedAt := periodEnd
	ended, err := sr.EndSub(ctx, "sub_1", endedAt)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusEnded, ended.Status)
	assert.Equal(t, endedAt, *ended.EndedAt)
	assert.Nil(t, ended.CurrentPeriodStart)
	assert.Nil(t, ended.CurrentPeriodEnd)

	var status string
	require.NoError(t, pool.QueryRow(ctx, `SELECT status FROM subscriptions WHERE provider_subscription_id = $1`, "sub_1").Scan(&status))
	assert.Equal(t, "ended", status)

	_, err = sr.EndSub(ctx, "sub_404", endedAt)
	assert.ErrorIs(t, err, usecase.ErrSubscriptionNotFound)

	t.Run("ended with period is rejected by the schema", func(t *testing.T) {
		_, err := pool.Exec(ctx, `UPDATE subscriptions SET current_period_end = now() WHERE provider_subscription_id = $1`, "sub_1")
		assert.Error(t, err)
	})
}
