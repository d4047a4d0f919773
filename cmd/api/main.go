// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the katalog HTTP server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables (and .env, if present).
//  3. Pick the dataset source: PostgreSQL when DATABASE_URL is set, the JSON
//     file at DATASET_PATH otherwise. The database path runs migrations first.
//  4. Load the snapshot and build the in-memory index.
//  5. Wire HTTP handlers.
//  6. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/taibuivan/katalog/internal/api"
	"github.com/taibuivan/katalog/internal/core/catalogue"
	"github.com/taibuivan/katalog/internal/platform/config"
	"github.com/taibuivan/katalog/internal/platform/constants"
	"github.com/taibuivan/katalog/internal/platform/migration"
	pgstore "github.com/taibuivan/katalog/internal/platform/postgres"
)

// pageTitle heads the landing page.
const pageTitle = "Nacionalna klasifikacija zanimanja"

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.Bool("database", cfg.UsesDatabase()),
	)

	startupCtx, startupCancel := context.WithTimeout(context.Background(), constants.StartupTimeout)
	defer startupCancel()

	// ── 3. Dataset Source ─────────────────────────────────────────────────
	dependencies := api.HealthDependencies{}

	var source catalogue.Source
	if cfg.UsesDatabase() {
		pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
		must(log, err, "connect to postgres")
		defer func() {
			log.Info("closing_postgres_pool")
			pool.Close()
		}()

		must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

		source = catalogue.NewPostgresSource(pool)
		dependencies.CheckDatabase = func() error {
			return pgstore.Ping(context.Background(), pool)
		}
	} else {
		source = catalogue.NewJSONSource(cfg.DatasetPath)
		log.Info("dataset_source_file", slog.String("path", cfg.DatasetPath))
	}

	// ── 4. Catalogue Index ────────────────────────────────────────────────
	records, err := source.Load(startupCtx)
	must(log, err, "load dataset")

	index := catalogue.Build(records, log)
	renderer, err := catalogue.NewRenderer(index)
	must(log, err, "parse fragment templates")

	catalogueService := catalogue.NewService(index, renderer, pageTitle)
	if err := catalogueService.Ready(); err != nil {
		// Keep serving; /ready reports the empty catalogue.
		log.Warn("catalogue_empty", slog.Int("skipped", index.Skipped()))
	}
	dependencies.CheckCatalogue = catalogueService.Ready

	// ── 5. HTTP Handlers ──────────────────────────────────────────────────
	liveness, readiness := api.NewHealthHandlers(dependencies, log)

	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Catalogue: catalogue.NewHandler(catalogueService),
	}

	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, handlers)

	// ── 6. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_error", slog.Any("error", err))
	}

	log.Info("shutting_down_server", slog.Duration("timeout", constants.ShutdownTimeout))

	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown_error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped_cleanly")
}

// newLogger builds the JSON logger tagged with the application name.
func newLogger(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", constants.AppName))
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned
// and handled explicitly.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
