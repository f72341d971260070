// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations owns the database schema. Migration files are embedded
// into the binary and applied with goose at process start, before any request
// is served. Re-running is safe: goose tracks applied versions and the DDL
// itself guards with IF NOT EXISTS.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// Migrate applies all pending migrations to db using the sqlite3 dialect.
func Migrate(db *sql.DB) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
