package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/news-api/internal/config"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx so repositories can run
// inside or outside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// DB is the process-wide Postgres handle. It is built once in main and
// passed down explicitly.
type DB struct {
	*sql.DB
	log zerolog.Logger
}

const pingTimeout = 5 * time.Second

// New opens a pooled connection and verifies it with a ping. The caller owns
// the handle and must Close it.
func New(cfg *config.DatabaseConfig, log zerolog.Logger) (*DB, error) {
	pool, err := sql.Open("postgres", cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	pool.SetMaxOpenConns(cfg.MaxOpenConns)
	pool.SetMaxIdleConns(cfg.MaxIdleConns)
	pool.SetConnMaxLifetime(cfg.MaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := pool.PingContext(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres at %s: %w", target(cfg), err)
	}

	db := Wrap(pool, log)
	db.log.Info().
		Str("target", target(cfg)).
		Int("max_open_conns", cfg.MaxOpenConns).
		Int("max_idle_conns", cfg.MaxIdleConns).
		Msg("Connected to postgres")
	return db, nil
}

// Wrap adopts an already opened *sql.DB.
func Wrap(db *sql.DB, log zerolog.Logger) *DB {
	return &DB{
		DB:  db,
		log: log.With().Str("component", "database").Logger(),
	}
}

// target describes where cfg points without leaking credentials.
func target(cfg *config.DatabaseConfig) string {
	if cfg.URL == "" {
		return cfg.Host + ":" + cfg.Port + "/" + cfg.Name
	}
	u, err := url.Parse(cfg.URL)
	if err != nil {
		return "database url"
	}
	return u.Host + u.Path
}

// WithTx runs fn inside a transaction, committing when fn returns nil and
// rolling back otherwise.
func (db *DB) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			db.log.Error().Err(rbErr).Msg("Transaction rollback failed")
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunMigrations applies every pending migration in dir.
func (db *DB) RunMigrations(dir string) error {
	return db.migrate(dir, "up", func(m *migrate.Migrate) error { return m.Up() })
}

// MigrateDown reverts the most recent migration in dir.
func (db *DB) MigrateDown(dir string) error {
	return db.migrate(dir, "down", func(m *migrate.Migrate) error { return m.Steps(-1) })
}

func (db *DB) migrate(dir, direction string, step func(*migrate.Migrate) error) error {
	driver, err := postgres.WithInstance(db.DB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("migration driver: %w", err)
	}
	m, err := migrate.NewWithDatabaseInstance("file://"+dir, "postgres", driver)
	if err != nil {
		return fmt.Errorf("migration source %s: %w", dir, err)
	}

	if err := step(m); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate %s: %w", direction, err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("read schema version: %w", err)
	}

	db.log.Info().
		Str("dir", dir).
		Str("direction", direction).
		Uint("version", version).
		Bool("dirty", dirty).
		Msg("Schema migrated")
	return nil
}

// HealthCheck pings the pool
func (db *DB) HealthCheck(ctx context.Context) error {
	return db.PingContext(ctx)
}
