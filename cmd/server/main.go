package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"subs_reconciler/internal/config"
	httpGateway "subs_reconciler/internal/gateways/http"
	"subs_reconciler/internal/metrics"
	customerRepository "subs_reconciler/internal/repository/customer/postgres"
	subsRepository "subs_reconciler/internal/repository/subscription/postgres"
	usecaseInternal "subs_reconciler/internal/usecase"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg := config.LoadConfig()
	log := setupLogger(cfg.Env)

	log.Info("starting subs reconciler", slog.String("env", cfg.Env))
	log.Debug("debug messages are enabled")

	pool, err := pgxpool.New(ctx, cfg.Pg.DSN())
	if err != nil {
		log.Error("failed to init storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		log.Error("failed to reach storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	log.Debug("init database")

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	recorder := metrics.NewRecorder(registry)

	sr := subsRepository.NewSubRepository(pool)
	cr := customerRepository.NewCustomerRepository(pool)

	useCases := httpGateway.UseCases{
		Reconciler: usecaseInternal.NewReconciler(sr, cr, log, recorder),
		Customer:   usecaseInternal.NewCustomer(cr),
		Sub:        usecaseInternal.NewSubscription(sr),
	}

	mon := httpGateway.Monitoring{Gatherer: registry, Requests: recorder}

	server := httpGateway.New(useCases,
		*cfg,
		log,
		mon,
		httpGateway.WithHost(cfg.Server.Host),
		httpGateway.WithPort(uint16(cfg.Server.Port)),
		httpGateway.WithLogger(log),
		httpGateway.WithTimeout(cfg.Server.Timeout),
	)

	log.Info("starting server",
		slog.String("address", cfg.Server.Host+":"+strconv.Itoa(cfg.Server.Port)),
		slog.String("webhook_path", cfg.Server.WebhookPath),
	)
	if err := server.Run(ctx); err != nil {
		log.Error("server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger
	switch strings.ToLower(env) {
	case envLocal:
		log = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	return log
}
