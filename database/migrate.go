package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	log "github.com/sirupsen/logrus"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// SchemaState describes the schema version and what the draw store holds at that version
type SchemaState struct {
	Version       uint
	Dirty         bool
	Applied       bool
	Draws         int
	LatestContest int
	Tickets       int
}

// Fields renders the state for structured logging
func (s SchemaState) Fields() log.Fields {
	return log.Fields{
		"version":        s.Version,
		"dirty":          s.Dirty,
		"draws":          s.Draws,
		"latest_contest": s.LatestContest,
		"tickets":        s.Tickets,
	}
}

// MigrateUp applies every pending migration
func MigrateUp(databaseURL string) (*SchemaState, error) {
	return withMigrator(databaseURL, func(m *migrate.Migrate) error {
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		return nil
	})
}

// MigrateDown rolls back steps migrations
func MigrateDown(databaseURL string, steps int) (*SchemaState, error) {
	if steps <= 0 {
		return nil, fmt.Errorf("invalid steps value: %d", steps)
	}
	return withMigrator(databaseURL, func(m *migrate.Migrate) error {
		if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("failed to rollback migrations: %w", err)
		}
		return nil
	})
}

// MigrationStatus reports the current state without changing anything
func MigrationStatus(databaseURL string) (*SchemaState, error) {
	return withMigrator(databaseURL, func(*migrate.Migrate) error { return nil })
}

func withMigrator(databaseURL string, apply func(*migrate.Migrate) error) (*SchemaState, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	db := stdlib.OpenDB(*config.ConnConfig)
	defer db.Close()

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	sourceDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to create source driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer m.Close()

	if err := apply(m); err != nil {
		return nil, err
	}

	return readSchemaState(context.Background(), db, m)
}

func readSchemaState(ctx context.Context, db *sql.DB, m *migrate.Migrate) (*SchemaState, error) {
	state := &SchemaState{}

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return state, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get migration version: %w", err)
	}
	state.Version, state.Dirty, state.Applied = version, dirty, true

	// the tables are gone after a full rollback even though a version row may remain
	var present bool
	if err := db.QueryRowContext(ctx, `SELECT to_regclass('draw_results') IS NOT NULL AND to_regclass('tickets') IS NOT NULL`).Scan(&present); err != nil {
		return nil, fmt.Errorf("failed to inspect schema: %w", err)
	}
	if !present {
		return state, nil
	}

	err = db.QueryRowContext(ctx, `
		SELECT (SELECT COUNT(*) FROM draw_results),
		       (SELECT COALESCE(MAX(contest_id), 0) FROM draw_results),
		       (SELECT COUNT(*) FROM tickets)
	`).Scan(&state.Draws, &state.LatestContest, &state.Tickets)
	if err != nil {
		return nil, fmt.Errorf("failed to count stored rows: %w", err)
	}

	return state, nil
}
