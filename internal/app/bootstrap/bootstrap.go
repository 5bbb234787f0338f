package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	assignment "brdflow/contexts/brd-onboarding/assignment-service"
	assignmentpostgres "brdflow/contexts/brd-onboarding/assignment-service/adapters/postgres"
	commentaccess "brdflow/contexts/brd-onboarding/comment-access-service"
	commentpostgres "brdflow/contexts/brd-onboarding/comment-access-service/adapters/postgres"
	statusgate "brdflow/contexts/brd-onboarding/status-gate-service"
	statusgatepostgres "brdflow/contexts/brd-onboarding/status-gate-service/adapters/postgres"
	workerapp "brdflow/contexts/brd-onboarding/status-gate-service/application/workers"
	"brdflow/internal/platform/config"
	"brdflow/internal/platform/db"
	"brdflow/internal/platform/httpserver"
	"brdflow/internal/platform/messaging"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

type WorkerApp struct {
	postgres     *db.Postgres
	outboxRelay  workerapp.OutboxRelay
	relayEnabled bool
	pollInterval time.Duration
	logger       *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	statusRepo := statusgatepostgres.NewRepository(pg.DB, logger)
	statusModule := statusgate.NewModule(statusgate.Dependencies{
		BRDs:    statusRepo,
		History: statusRepo,
		Outbox:  statusRepo,
		Clock:   statusgatepostgres.SystemClock{},
		IDGen:   statusgatepostgres.UUIDGenerator{},
		Logger:  logger,
	})

	commentRepo := commentpostgres.NewRepository(pg.DB, logger)
	commentModule := commentaccess.NewModule(commentaccess.Dependencies{
		BRDs:        commentRepo,
		Assignments: commentRepo,
		Comments:    commentRepo,
		Clock:       commentpostgres.SystemClock{},
		IDGen:       commentpostgres.UUIDGenerator{},
		Logger:      logger,
	})

	assignmentRepo := assignmentpostgres.NewRepository(pg.DB, logger)
	assignmentModule := assignment.NewModule(assignment.Dependencies{
		BRDs:        assignmentRepo,
		Users:       assignmentRepo,
		Assignments: assignmentRepo,
		Clock:       assignmentpostgres.SystemClock{},
		IDGen:       assignmentpostgres.UUIDGenerator{},
		Logger:      logger,
	})

	server := httpserver.New(statusModule, commentModule, assignmentModule, logger, normalizeAddr(cfg.HTTPPort))
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func BuildWorker() (*WorkerApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "worker")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	kafka, err := messaging.NewKafka(cfg.KafkaBrokers, logger)
	if err != nil {
		return nil, err
	}

	statusRepo := statusgatepostgres.NewRepository(pg.DB, logger)
	return &WorkerApp{
		postgres: pg,
		outboxRelay: workerapp.OutboxRelay{
			Outbox:    statusRepo,
			Publisher: kafka,
			Clock:     statusgatepostgres.SystemClock{},
			BatchSize: 100,
			Logger:    logger,
		},
		relayEnabled: cfg.EnableStatusChangedRelay,
		pollInterval: 2 * time.Second,
		logger:       logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func (w *WorkerApp) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"relay_enabled", w.relayEnabled,
		"poll_interval", w.pollInterval.String(),
	)

	for {
		if w.relayEnabled {
			if err := w.outboxRelay.RunOnce(ctx); err != nil {
				return err
			}
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (w *WorkerApp) Close() error {
	if w.postgres != nil {
		return w.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
