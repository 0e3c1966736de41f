package main

import (
	"database/sql"
	"log/slog"

	"github.com/phrazzld/tasktrack-api/internal/cache"
	"github.com/phrazzld/tasktrack-api/internal/config"
	"github.com/phrazzld/tasktrack-api/internal/platform/postgres"
	"github.com/phrazzld/tasktrack-api/internal/service"
)

// application holds the wired dependencies of the running server.
type application struct {
	config      *config.Config
	logger      *slog.Logger
	db          *sql.DB
	listCache   *cache.RedisListCache
	taskService service.TaskService
}

// newApplication connects to the backing collaborators and builds the
// service graph. The database is required; the cache is optional and its
// absence only disables list-read acceleration.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	db, err := setupDatabase(cfg, logger)
	if err != nil {
		return nil, err
	}

	listCache := setupListCache(cfg.Cache, logger)

	taskStore := postgres.NewPostgresTaskStore(db, logger)

	// An absent cache must stay a nil interface, not a typed nil.
	var listCacheDep cache.ListCache
	if listCache != nil {
		listCacheDep = listCache
	}

	taskService := service.NewTaskService(taskStore, listCacheDep, logger)

	return &application{
		config:      cfg,
		logger:      logger,
		db:          db,
		listCache:   listCache,
		taskService: taskService,
	}, nil
}

// cleanup releases the application's external resources. It is called after
// the HTTP server has finished shutting down.
func (app *application) cleanup() {
	if app.listCache != nil {
		if err := app.listCache.Close(); err != nil {
			app.logger.Error("Failed to close cache connection", "error", err)
		}
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Failed to close database connection", "error", err)
		}
	}
}
