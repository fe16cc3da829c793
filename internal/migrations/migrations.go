package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var fs embed.FS

// Run brings the schema up to date, applying any embedded migration
// not yet recorded in goose's version table. Already-applied files are
// skipped, so running at every boot is safe.
func Run(db *sql.DB) error {
	goose.SetBaseFS(fs)

	// libSQL speaks SQLite on the wire; goose only knows the dialect
	// by its sqlite3 name.
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("setting dialect: %w", err)
	}
	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("applying migrations: %w", err)
	}
	return nil
}
