// Command seeder populates the term catalog offline, outside the server
// process. It loops seed batches until the catalog is complete, respecting
// the per-batch item and time limits from configuration.
//
// Flags:
//
//	--force    run batches even when the persisted count matches the catalog
//	--dry-run  normalize and merge the catalogs and report, without writing
//	--config   path to YAML config file (overrides CONFIG_PATH)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	postgres "github.com/glosariodev/glosario-backend/internal/adapter/postgres"
	termrepo "github.com/glosariodev/glosario-backend/internal/adapter/postgres/term"
	"github.com/glosariodev/glosario-backend/internal/app"
	"github.com/glosariodev/glosario-backend/internal/config"
	"github.com/glosariodev/glosario-backend/internal/seeder"
	"github.com/glosariodev/glosario-backend/internal/seeder/catalog"
)

// Compile-time interface assertion.
var _ seeder.TermStore = (*termrepo.Repo)(nil)

func main() {
	forceFlag := flag.Bool("force", false, "run batches even when the catalog looks fully seeded")
	dryRunFlag := flag.Bool("dry-run", false, "normalize and merge without writing to DB")
	configFlag := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	if *configFlag != "" {
		os.Setenv("CONFIG_PATH", *configFlag)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	merged, err := seeder.BuildMerged(catalog.All()...)
	if err != nil {
		logger.Error("build merged catalog", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if *dryRunFlag {
		logger.Info("dry run: catalog is valid",
			slog.Int("terms", len(merged)),
		)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)
	repo := termrepo.New(pool, txm)

	coordinator := seeder.NewCoordinator(logger, repo, merged, seeder.Limits{
		MaxItems:   cfg.Seeder.MaxItems,
		TimeBudget: cfg.Seeder.TimeBudget,
		Policy:     cfg.Seeder.ChildrenPolicy(),
	})

	// One EnsureSeeded call runs at most one bounded batch; loop until the
	// catalog is complete or the coordinator reports a no-op.
	force := *forceFlag
	for {
		result, err := coordinator.EnsureSeeded(ctx, force)
		if err != nil {
			logger.Error("seed batch failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if result == nil {
			logger.Info("catalog already seeded")
			return
		}
		if result.Completed {
			logger.Info("catalog seeding completed",
				slog.Int("processed", result.Processed),
			)
			return
		}
		if result.Processed == 0 {
			// A batch that makes no progress would loop forever; the limits
			// are too tight to ever finish.
			logger.Error("seed batch made no progress",
				slog.Int("remaining", result.Remaining),
			)
			os.Exit(1)
		}
		// Subsequent batches resume the diff; no need to keep forcing.
		force = false
	}
}
