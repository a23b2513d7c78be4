package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/volunteer-backend/migrations"
)

// MigrateUp applies all pending embedded migrations to the database at dsn
// and returns the versions that were applied.
func MigrateUp(ctx context.Context, dsn string) ([]int64, error) {
	provider, closeDB, err := newMigrationProvider(ctx, dsn)
	if err != nil {
		return nil, err
	}
	defer closeDB()

	results, err := provider.Up(ctx)
	if err != nil {
		return nil, fmt.Errorf("goose up: %w", err)
	}

	applied := make([]int64, 0, len(results))
	for _, r := range results {
		applied = append(applied, r.Source.Version)
	}
	return applied, nil
}

// MigrationVersion returns the current schema version.
func MigrationVersion(ctx context.Context, dsn string) (int64, error) {
	provider, closeDB, err := newMigrationProvider(ctx, dsn)
	if err != nil {
		return 0, err
	}
	defer closeDB()

	v, err := provider.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("goose version: %w", err)
	}
	return v, nil
}

// newMigrationProvider opens a database/sql handle (goose requires *sql.DB)
// and wraps it in a goose provider over the embedded migrations.
func newMigrationProvider(ctx context.Context, dsn string) (*goose.Provider, func(), error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("sql.Open: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("db ping: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("goose new provider: %w", err)
	}

	return provider, func() { db.Close() }, nil
}
