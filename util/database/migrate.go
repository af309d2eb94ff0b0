package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed migrations
var migrations embed.FS

func (d *DB) provider() (*goose.Provider, error) {
	dialect := goose.DialectPostgres
	if d.Driver == DriverSQLite {
		dialect = goose.DialectSQLite3
	}
	dir, err := fs.Sub(migrations, "migrations/"+d.Driver)
	if err != nil {
		return nil, err
	}
	return goose.NewProvider(dialect, d.SQL, dir)
}

// Migrate applies every pending migration.
func (d *DB) Migrate(ctx context.Context) error {
	p, err := d.provider()
	if err != nil {
		return fmt.Errorf("migration setup: %w", err)
	}
	if _, err := p.Up(ctx); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}
	return nil
}

// MigrateDown rolls back the most recent migration.
func (d *DB) MigrateDown(ctx context.Context) error {
	p, err := d.provider()
	if err != nil {
		return fmt.Errorf("migration setup: %w", err)
	}
	if _, err := p.Down(ctx); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}
	return nil
}

type MigrationStatus struct {
	Version int64
	Source  string
	Applied bool
}

func (d *DB) MigrationStatus(ctx context.Context) ([]MigrationStatus, error) {
	p, err := d.provider()
	if err != nil {
		return nil, fmt.Errorf("migration setup: %w", err)
	}
	st, err := p.Status(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]MigrationStatus, 0, len(st))
	for _, s := range st {
		out = append(out, MigrationStatus{
			Version: s.Source.Version,
			Source:  s.Source.Path,
			Applied: s.State == goose.StateApplied,
		})
	}
	return out, nil
}
