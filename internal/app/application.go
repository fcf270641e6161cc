package app

import (
	"log/slog"

	"calc.renalmetrics.org/favoritesdb"
	"calc.renalmetrics.org/internal/appconf"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware: the configuration, a structured logger, and the
// favorites store. The formula catalog itself is immutable package-level
// data in internal/formula and needs no wiring here.
type Application struct {
	Config    appconf.Config
	Logger    *slog.Logger
	Favorites *favoritesdb.Client
}
