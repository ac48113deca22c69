package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/glosariodev/glosario-backend/internal/domain"
)

// Limits bounds one batch-upsert invocation.
type Limits struct {
	// MaxItems caps how many terms this call may upsert.
	MaxItems int
	// TimeBudget caps the wall-clock duration; checked between items, so an
	// upsert already in flight always runs to completion.
	TimeBudget time.Duration
	// Policy decides what happens to child collections on update.
	Policy domain.ChildrenPolicy
}

// RunBatch diffs the merged catalog against the persisted term names and
// upserts the missing entries in catalog order until done or a limit trips.
// Entries are upserted one at a time — serial execution keeps the wall-clock
// accounting meaningful — so repeated invocations make monotonic forward
// progress through the same prefix.
//
// Any store error aborts the batch and propagates; the caller gets the error,
// not a partial result. The only tolerated failure is the best-effort stats
// row, which is logged and skipped.
func RunBatch(ctx context.Context, log *slog.Logger, store TermStore, merged []domain.Term, limits Limits) (domain.SeedBatchResult, error) {
	start := time.Now()

	existing, err := store.ListTermNames(ctx)
	if err != nil {
		return domain.SeedBatchResult{}, fmt.Errorf("list term names: %w", err)
	}

	var missing []domain.Term
	for _, t := range merged {
		if !existing[t.Key()] {
			missing = append(missing, t)
		}
	}

	result := domain.SeedBatchResult{TotalMissing: len(missing)}

	for _, t := range missing {
		if result.Processed >= limits.MaxItems {
			result.BatchLimitReached = true
			break
		}
		if time.Since(start) >= limits.TimeBudget {
			result.TimeBudgetReached = true
			break
		}

		inserted, err := store.UpsertTerm(ctx, t, limits.Policy)
		if err != nil {
			return domain.SeedBatchResult{}, fmt.Errorf("upsert term %q: %w", t.Name, err)
		}

		if err := store.EnsureStatsRow(ctx, t.Name); err != nil {
			log.Warn("stats row upsert failed",
				slog.String("term", t.Name),
				slog.String("error", err.Error()),
			)
		}

		result.Processed++
		log.Debug("term seeded",
			slog.String("term", t.Name),
			slog.Bool("inserted", inserted),
		)
	}

	result.Remaining = result.TotalMissing - result.Processed
	result.Completed = result.Remaining == 0

	log.Info("seed batch finished",
		slog.Int("processed", result.Processed),
		slog.Int("remaining", result.Remaining),
		slog.Bool("completed", result.Completed),
		slog.Bool("batch_limit", result.BatchLimitReached),
		slog.Bool("time_budget", result.TimeBudgetReached),
		slog.Duration("duration", time.Since(start)),
	)

	return result, nil
}
