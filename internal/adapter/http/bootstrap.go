package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"todoapi/internal/adapter/cache/memory"
	cacheredis "todoapi/internal/adapter/cache/redis"
	"todoapi/internal/adapter/database/postgres"
	pgrepository "todoapi/internal/adapter/database/postgres/repository"
	"todoapi/internal/adapter/database/sqlite"
	sqliterepository "todoapi/internal/adapter/database/sqlite/repository"
	"todoapi/internal/core/port"
	"todoapi/pkg/config"
	"todoapi/pkg/logging"
	"todoapi/pkg/telemetry"
)

const sqliteMigrationsPath = "db/migrations"

// StartServer wires the storage and cache adapters from the config,
// builds the container and router, and serves until ctx is cancelled.
func StartServer(ctx context.Context, metrics *telemetry.AppMetrics, probe port.Telemetry, logger *logging.AppLogger, cfg *config.AppConfig) error {
	userRepo, todoRepo, closeDB, err := openRepositories(ctx, cfg, probe)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer closeDB()

	cache := openCache(ctx, cfg)
	defer cache.Close()

	container := NewContainer(userRepo, todoRepo, cache, probe, logger)

	router := SetupRouter(HandlersConfig{
		AuthHandler: container.AuthHandler,
		TodoHandler: container.TodoHandler,
	}, metrics, logger, cfg)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	slog.Info("Server starting",
		"port", cfg.Port,
		"environment", cfg.Environment,
		"database_adapter", cfg.DatabaseAdapter,
		"rate_limit_enabled", cfg.RateLimitEnabled,
		"https_enforced", cfg.EnforceHTTPS)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	slog.Info("Server shutting down")
	return srv.Shutdown(shutdownCtx)
}

func openRepositories(ctx context.Context, cfg *config.AppConfig, probe port.Telemetry) (port.UserRepository, port.TodoRepository, func(), error) {
	switch cfg.DatabaseAdapter {
	case config.AdapterSqlite:
		db, err := sqlite.NewDB(cfg.DatabasePath, sqliteMigrationsPath)
		if err != nil {
			return nil, nil, nil, err
		}
		return sqliterepository.NewUserRepository(db, probe),
			sqliterepository.NewTodoRepository(db, probe),
			func() { db.Close() },
			nil
	default:
		db, err := postgres.NewDB(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, err
		}
		return pgrepository.NewUserRepository(db, probe),
			pgrepository.NewTodoRepository(db, probe),
			func() { db.Close() },
			nil
	}
}

func openCache(ctx context.Context, cfg *config.AppConfig) port.CacheRepository {
	if cfg.RedisURL == "" {
		return memory.New()
	}

	cache, err := cacheredis.New(ctx, cfg.RedisURL)
	if err != nil {
		slog.Warn("Redis unavailable, falling back to in-memory cache", "error", err)
		return memory.New()
	}
	return cache
}
