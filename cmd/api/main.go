package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"calc.renalmetrics.org/favoritesdb"
	"calc.renalmetrics.org/internal/app"
	"calc.renalmetrics.org/internal/appconf"
	"calc.renalmetrics.org/internal/logging"
	"calc.renalmetrics.org/internal/restapi"
	"calc.renalmetrics.org/internal/webui"
)

func main() {
	var cfg appconf.Config
	var envFlag string
	var apiKeysFlag string

	flag.IntVar(&cfg.Port, "port", 4000, "API server port")
	flag.StringVar(&envFlag, "env", "development", "Environment (development|test|staging|production)")
	flag.StringVar(&apiKeysFlag, "api-keys", "test", "Comma Separated API Keys (test, etc)")
	flag.IntVar(&cfg.RateLimit, "rate-limit", 100, "Requests per second allowed per API key (negative disables limiting)")
	flag.StringVar(&cfg.FavoritesDBPath, "favorites-db", "favorites.db", "Path to the favorites SQLite database")
	flag.Parse()

	cfg.Env = appconf.EnvFlagToEnvironment(envFlag)
	if apiKeysFlag != "" {
		cfg.ApiKeys = strings.Split(apiKeysFlag, ",")
		for i := range cfg.ApiKeys {
			cfg.ApiKeys[i] = strings.TrimSpace(cfg.ApiKeys[i])
		}
	}

	logger := logging.NewStructuredLogger(os.Stdout, slog.LevelInfo)

	favorites, err := favoritesdb.NewClient(favoritesdb.Config{
		DBPath: cfg.FavoritesDBPath,
		Env:    cfg.Env,
	})
	if err != nil {
		logging.LogError(logger, "failed to open favorites database", err)
		os.Exit(1)
	}
	defer logging.SafeCloseWithLogging(favorites, logger, "favorites_db")

	application := &app.Application{
		Config:    cfg,
		Logger:    logger,
		Favorites: favorites,
	}

	api := restapi.NewRestAPI(application)

	mux := http.NewServeMux()
	mux.Handle("/api/", api.Handler())
	if cfg.Env != appconf.Production {
		webui.NewWebUI(application).SetWebUIRoutes(mux)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      mux,
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env.String())
	err = srv.ListenAndServe()
	logger.Error(err.Error())
	os.Exit(1)
}
