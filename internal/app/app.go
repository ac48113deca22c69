// Package app wires the application together: configuration, logging,
// database pool, repositories, the seeding coordinator and the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	postgres "github.com/glosariodev/glosario-backend/internal/adapter/postgres"
	termrepo "github.com/glosariodev/glosario-backend/internal/adapter/postgres/term"
	"github.com/glosariodev/glosario-backend/internal/config"
	"github.com/glosariodev/glosario-backend/internal/seeder"
	"github.com/glosariodev/glosario-backend/internal/seeder/catalog"
	"github.com/glosariodev/glosario-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, initializes
// the logger and the database pool, seeds the catalog on startup (when
// enabled), and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)
	repo := termrepo.New(pool, txm)

	merged, err := seeder.BuildMerged(catalog.All()...)
	if err != nil {
		return fmt.Errorf("build merged catalog: %w", err)
	}

	coordinator := seeder.NewCoordinator(logger, repo, merged, seeder.Limits{
		MaxItems:   cfg.Seeder.MaxItems,
		TimeBudget: cfg.Seeder.TimeBudget,
		Policy:     cfg.Seeder.ChildrenPolicy(),
	})

	if cfg.Seeder.SeedOnStartup {
		// Partial or failed startup seeding is not fatal; the admin endpoint
		// can finish the job.
		if _, err := coordinator.EnsureSeeded(ctx, false); err != nil {
			logger.Warn("startup seeding failed", slog.String("error", err.Error()))
		}
	}

	mux := rest.NewRouter(
		rest.NewHealthHandler(pool, BuildVersion()),
		rest.NewTermsHandler(repo, logger),
		rest.NewAdminHandler(coordinator, logger),
	)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}
