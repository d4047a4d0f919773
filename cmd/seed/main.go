// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command seed loads the JSON dataset into PostgreSQL.
//
// It reads DATASET_PATH, applies pending migrations and replaces the
// contents of catalogue.occupation in one transaction. The API server picks
// the new snapshot up on its next start.
//
// Usage:
//
//	DATABASE_URL=postgres://... DATASET_PATH=./data/zanimanja.json go run ./cmd/seed
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/taibuivan/katalog/internal/core/catalogue"
	"github.com/taibuivan/katalog/internal/platform/config"
	"github.com/taibuivan/katalog/internal/platform/constants"
	"github.com/taibuivan/katalog/internal/platform/migration"
	pgstore "github.com/taibuivan/katalog/internal/platform/postgres"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(slog.String("app", constants.AppName+"-seed"))

	if err := run(log); err != nil {
		log.Error("seed_failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(log *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if !cfg.UsesDatabase() {
		return errors.New("seed: DATABASE_URL is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.StartupTimeout)
	defer cancel()

	records, err := catalogue.NewJSONSource(cfg.DatasetPath).Load(ctx)
	if err != nil {
		return err
	}

	// Dry run through the index so bad records show up in the seed log too
	index := catalogue.Build(records, log)

	if err := migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log); err != nil {
		return err
	}

	pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := catalogue.NewPostgresSource(pool).Replace(ctx, records); err != nil {
		return err
	}

	log.Info("seed_completed",
		slog.String("dataset", cfg.DatasetPath),
		slog.Int("rows", len(records)),
		slog.Int("indexable", index.Len()),
	)
	return nil
}
