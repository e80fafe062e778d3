// Package migrations embeds the database schema and applies it with goose.
//
// The schema is kept once per SQL dialect under postgres/ and sqlite/.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

// Supported dialects, as understood by goose.
const (
	DialectPostgres = "pgx"
	DialectSQLite   = "sqlite3"
)

var (
	errNilDB              = errors.New("migration error: db is nil")
	errUnsupportedDialect = errors.New("migration error: unsupported dialect")
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// dirs maps a dialect to its migration directory inside embedMigrations.
var dirs = map[string]string{
	DialectPostgres: "postgres",
	DialectSQLite:   "sqlite",
}

// Migrate brings db up to the latest schema version for dialect.
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return errNilDB
	}

	dir, ok := dirs[dialect]
	if !ok {
		return fmt.Errorf("%w: %q", errUnsupportedDialect, dialect)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
