package favoritesdb

import "calc.renalmetrics.org/internal/appconf"

// Config holds the settings for the favorites database.
type Config struct {
	// DBPath is the SQLite database path, or ":memory:" for tests.
	DBPath string
	Env    appconf.Environment
}
