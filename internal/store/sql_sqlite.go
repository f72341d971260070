package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-comment-board/internal/config"
	"github.com/MKhiriev/go-comment-board/internal/logger"
	"github.com/MKhiriev/go-comment-board/migrations"
)

// DB wraps the shared *sql.DB handle together with the application logger.
//
// The handle is explicitly owned and injected into every repository, so tests
// can substitute an isolated or in-memory store. database/sql pools
// connections internally, which makes all repository methods safe to call
// concurrently from multiple request handlers.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// NewConnectSQLite opens the SQLite database named by cfg.DSN, creating the
// backing file first when it does not exist, and verifies the connection with
// a ping.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// db lives in a file
	if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file")
	}

	conn, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB")
	}

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return &DB{
		DB:     conn,
		logger: log,
	}, nil
}

// Migrate brings the schema up to date. Idempotent; called once at process
// start before any request is served.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if dbFile == ":memory:" {
		return nil
	}

	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}
