// Package migrations applies the versioned database schema. Migrations are
// ordered, idempotent, and additive-only: columns are added with safe
// defaults and existing columns are never dropped or renamed, so the store
// can be pointed at a database created by an earlier schema version without
// destroying rows.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

func Migrate(db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
