package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/team-roster/db"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	_ "modernc.org/sqlite"
)

const (
	getQuery    = `SELECT entry_value FROM kv_entries WHERE entry_key = ?`
	upsertQuery = `INSERT INTO kv_entries (entry_key, entry_value, updated_at)
		VALUES (?, ?, CAST(strftime('%s', 'now') AS INTEGER))
		ON CONFLICT(entry_key) DO UPDATE SET
			entry_value = excluded.entry_value,
			updated_at = excluded.updated_at`
	deleteQuery   = `DELETE FROM kv_entries WHERE entry_key = ?`
	listKeysQuery = `SELECT entry_key FROM kv_entries
		WHERE substr(entry_key, 1, length(?)) = ?
		ORDER BY entry_key`
)

// Store is a kvstore.Store backed by a local SQLite file.
type Store struct {
	db *sqlx.DB
}

type options struct {
	migrate bool
}

type Option func(*options)

// WithoutMigrations skips the embedded migrations on open. The schema must
// then be applied by cmd/migration.
func WithoutMigrations() Option {
	return func(o *options) {
		o.migrate = false
	}
}

// Open opens the SQLite file at path and, unless disabled, applies the
// embedded migrations.
func Open(path string, opts ...Option) (*Store, error) {
	cfg := options{migrate: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"
	sqlDB, err := otelsqlx.Open("sqlite", dsn,
		otelsql.WithDBSystem("sqlite"),
		otelsql.WithQueryFormatter(formatQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{db: sqlDB}
	if !cfg.migrate {
		return store, nil
	}
	if err := store.runMigrations(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return store, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	if s == nil || s.db == nil {
		return "", false, fmt.Errorf("storage is not configured")
	}

	var value string
	if err := s.db.GetContext(ctx, &value, getQuery, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get key %q: %w", key, err)
	}

	return value, true, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("storage is not configured")
	}
	if key == "" {
		return fmt.Errorf("key is required")
	}

	if _, err := s.db.ExecContext(ctx, upsertQuery, key, value); err != nil {
		return fmt.Errorf("set key %q: %w", key, err)
	}
	return nil
}

func (s *Store) Remove(ctx context.Context, key string) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("storage is not configured")
	}

	if _, err := s.db.ExecContext(ctx, deleteQuery, key); err != nil {
		return fmt.Errorf("remove key %q: %w", key, err)
	}
	return nil
}

func (s *Store) ListKeys(ctx context.Context, prefix string) ([]string, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	keys := make([]string, 0)
	if err := s.db.SelectContext(ctx, &keys, listKeysQuery, prefix, prefix); err != nil {
		return nil, fmt.Errorf("list keys with prefix %q: %w", prefix, err)
	}
	return keys, nil
}

// runMigrations applies db.Migrations. The migrate instance is not closed:
// closing it would close the shared *sql.DB.
func (s *Store) runMigrations() error {
	source, err := iofs.New(db.Migrations, db.MigrationsDir)
	if err != nil {
		return fmt.Errorf("open migration source: %w", err)
	}

	driver, err := migratesqlite.WithInstance(s.db.DB, &migratesqlite.Config{})
	if err != nil {
		_ = source.Close()
		return fmt.Errorf("create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite", driver)
	if err != nil {
		_ = source.Close()
		return fmt.Errorf("create migrator: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}

	return nil
}
