// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalogue

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/katalog/internal/platform/database/schema"
	"github.com/taibuivan/katalog/internal/platform/dberr"
)

var (
	selectOccupations = fmt.Sprintf(`
		SELECT %s, %s, %s, COALESCE(%s, ''), COALESCE(%s, '')
		FROM %s
		ORDER BY %s ASC, %s ASC`,
		schema.CatalogueOccupation.Code, schema.CatalogueOccupation.Name, schema.CatalogueOccupation.Description,
		schema.CatalogueOccupation.Rod, schema.CatalogueOccupation.Skupina,
		schema.CatalogueOccupation.Table,
		schema.CatalogueOccupation.Position, schema.CatalogueOccupation.Code)

	deleteOccupations = fmt.Sprintf("DELETE FROM %s", schema.CatalogueOccupation.Table)

	insertOccupation = fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6)
		ON CONFLICT (%s) DO NOTHING`,
		schema.CatalogueOccupation.Table,
		strings.Join(schema.CatalogueOccupation.Columns(), ", "),
		schema.CatalogueOccupation.Code)
)

// PostgresSource implements [Source] using a pgxpool.
type PostgresSource struct {
	db *pgxpool.Pool
}

// NewPostgresSource returns a source reading catalogue.occupation.
func NewPostgresSource(db *pgxpool.Pool) *PostgresSource {
	return &PostgresSource{db: db}
}

/*
Load reads the snapshot from the occupation table.

Description: Rows are ordered by their dataset position. NULL rod or skupina
values come back as empty strings so that [Build] skips those records with a
warning instead of failing the whole load.

Parameters:
  - context: context.Context

Returns:
  - []Occupation: Records in dataset order
  - error: Query or scan failures
*/
func (source *PostgresSource) Load(context context.Context) ([]Occupation, error) {
	rows, err := source.db.Query(context, selectOccupations)
	if err != nil {
		return nil, dberr.Wrap(err, "list_occupations")
	}
	defer rows.Close()

	var records []Occupation
	for rows.Next() {
		var o Occupation
		if err := rows.Scan(&o.Code, &o.Name, &o.Description, &o.Rod, &o.Skupina); err != nil {
			return nil, dberr.Wrap(err, "scan_occupation")
		}
		records = append(records, o)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "iterate_occupations")
	}

	return records, nil
}

/*
Replace swaps the stored snapshot for records.

Description: Used by cmd/seed only; the API server never writes. Clears the
table and queues one INSERT per record through a pgx.Batch inside a single
read-write transaction, so readers see either the old or the new snapshot. Slice position becomes the row's position column.
Empty rod or skupina values are stored as NULL. Values are stored as given;
[Build] trims them when the snapshot is loaded.

Parameters:
  - context: context.Context
  - records: []Occupation in dataset order

Returns:
  - error: Transaction or batch failures
*/
func (source *PostgresSource) Replace(context context.Context, records []Occupation) error {
	// The pool defaults to read-only sessions
	transaction, err := source.db.BeginTx(context, pgx.TxOptions{AccessMode: pgx.ReadWrite})
	if err != nil {
		return dberr.Wrap(err, "begin_replace")
	}
	defer func() { _ = transaction.Rollback(context) }()

	if _, err := transaction.Exec(context, deleteOccupations); err != nil {
		return dberr.Wrap(err, "clear_occupations")
	}

	batch := &pgx.Batch{}
	for position, o := range records {
		batch.Queue(insertOccupation, o.Code, o.Name, o.Description, o.Rod, o.Skupina, position)
	}

	if err := transaction.SendBatch(context, batch).Close(); err != nil {
		return dberr.Wrap(err, "insert_occupations")
	}

	if err := transaction.Commit(context); err != nil {
		return dberr.Wrap(err, "commit_replace")
	}

	return nil
}
