package seeder

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/singleflight"

	"github.com/glosariodev/glosario-backend/internal/domain"
)

// Coordinator guards the seeding pipeline: at most one batch runs per
// process, concurrent callers collapse onto the in-flight one, and the whole
// pipeline is skipped when the store already holds the full catalog.
//
// The in-flight handle is owned by the struct (not a package-level variable)
// so tests can build a fresh Coordinator per run.
type Coordinator struct {
	log    *slog.Logger
	store  TermStore
	merged []domain.Term
	limits Limits

	group singleflight.Group
}

// NewCoordinator builds a Coordinator over an already-merged catalog.
func NewCoordinator(log *slog.Logger, store TermStore, merged []domain.Term, limits Limits) *Coordinator {
	return &Coordinator{
		log:    log.With(slog.String("component", "seeder")),
		store:  store,
		merged: merged,
		limits: limits,
	}
}

// ExpectedCount is the deduplicated catalog size the short-circuit compares
// against.
func (c *Coordinator) ExpectedCount() int { return len(c.merged) }

// EnsureSeeded runs one seed batch unless the store already holds at least
// the full catalog (in which case it returns nil without touching the upsert
// path). Concurrent calls share a single execution and receive its result.
// The in-flight handle is cleared when the batch settles, success or failure.
func (c *Coordinator) EnsureSeeded(ctx context.Context, force bool) (*domain.SeedBatchResult, error) {
	v, err, shared := c.group.Do("seed", func() (any, error) {
		res, err := c.run(ctx, force)
		if err != nil {
			return nil, err
		}
		return res, nil
	})
	if shared {
		c.log.Debug("joined in-flight seed batch")
	}
	if err != nil {
		return nil, err
	}
	return v.(*domain.SeedBatchResult), nil
}

func (c *Coordinator) run(ctx context.Context, force bool) (*domain.SeedBatchResult, error) {
	if !force {
		count, err := c.store.CountTerms(ctx)
		if err != nil {
			return nil, fmt.Errorf("count terms: %w", err)
		}
		if count >= len(c.merged) {
			c.log.Debug("catalog already seeded",
				slog.Int("persisted", count),
				slog.Int("expected", len(c.merged)),
			)
			return nil, nil
		}
	}

	result, err := RunBatch(ctx, c.log, c.store, c.merged, c.limits)
	if err != nil {
		return nil, err
	}
	return &result, nil
}
