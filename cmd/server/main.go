package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/news-api/internal/api"
	"github.com/news-api/internal/cache"
	"github.com/news-api/internal/config"
	"github.com/news-api/internal/database"
	"github.com/news-api/internal/observability"
	"github.com/news-api/internal/repository"
	"github.com/news-api/internal/service"
	"github.com/news-api/pkg/logger"
)

func main() {
	migrateDown := flag.Bool("migrate-down", false, "roll back the last migration and exit")
	flag.Parse()

	log := logger.New()
	if err := run(log, *migrateDown); err != nil {
		log.Fatal().Err(err).Msg("News API stopped")
	}
}

func run(log zerolog.Logger, migrateDown bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log.Info().Str("env", cfg.Env).Msg("Starting News API server...")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.New(&cfg.Database, log)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	if migrateDown {
		return db.MigrateDown(cfg.MigrationsPath)
	}
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		return err
	}

	// Existence cache for topic and user keys
	var existsCache *cache.Cache
	if cfg.Cache.Enabled {
		existsCache = cache.New(cfg.Cache.TTL, cfg.Cache.CleanupInterval)
		log.Info().Dur("ttl", cfg.Cache.TTL).Msg("Existence cache enabled")
	}

	metrics := observability.NewMetrics("news_api")

	repos := repository.New(db, existsCache)
	repos.Exists = repository.NewInstrumentedExistenceChecker(repos.Exists, metrics)
	services := service.NewServices(repos, log)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      api.NewRouter(services, db, metrics, cfg, log),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down server...")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info().Msg("Server exited gracefully")
	return nil
}
