package favoritesdb

import (
	"database/sql"
	"fmt"

	"calc.renalmetrics.org/internal/appconf"
	_ "modernc.org/sqlite"
)

// InitDB opens a SQLite database at the configured path and creates the
// favorites table. Tests must run against an in-memory database.
func InitDB(config Config) (*sql.DB, error) {
	if config.Env == appconf.Test && config.DBPath != ":memory:" {
		return nil, fmt.Errorf("test environment requires an in-memory database, got %q", config.DBPath)
	}

	db, err := sql.Open("sqlite", config.DBPath)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS favorites (
			formula_id TEXT PRIMARY KEY,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return nil, fmt.Errorf("error creating favorites table: %w", err)
	}

	return db, nil
}
