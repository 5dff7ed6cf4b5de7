package database

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"

	"github.com/lingofeed/lingofeed/schemas"
)

// Migrate applies all pending schema migrations embedded in schemas.Migrations.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	migrations, err := fs.Sub(schemas.Migrations, "migrations")
	if err != nil {
		return fmt.Errorf("fs.Sub() > %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectMySQL, db.DB, migrations)
	if err != nil {
		return fmt.Errorf("goose.NewProvider() > %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("provider.Up() > %w", err)
	}
	return nil
}
