package seeder

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/glosariodev/glosario-backend/internal/domain"
)

// mockStore is an in-memory TermStore. Persisted names survive across calls,
// so repeated RunBatch invocations see the progress of earlier ones.
type mockStore struct {
	persisted map[string]bool

	upserted   []string
	countCalls int
	statsCalls int

	countErr  error
	listErr   error
	upsertErr error
	statsErr  error

	// failOn aborts the upsert of this specific term name.
	failOn string
}

func newMockStore(seeded ...string) *mockStore {
	m := &mockStore{persisted: make(map[string]bool)}
	for _, name := range seeded {
		m.persisted[domain.NormalizeKey(name)] = true
	}
	return m
}

func (m *mockStore) CountTerms(_ context.Context) (int, error) {
	m.countCalls++
	if m.countErr != nil {
		return 0, m.countErr
	}
	return len(m.persisted), nil
}

func (m *mockStore) ListTermNames(_ context.Context) (map[string]bool, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make(map[string]bool, len(m.persisted))
	for k := range m.persisted {
		out[k] = true
	}
	return out, nil
}

func (m *mockStore) UpsertTerm(_ context.Context, t domain.Term, _ domain.ChildrenPolicy) (bool, error) {
	if m.upsertErr != nil {
		return false, m.upsertErr
	}
	if m.failOn != "" && t.Name == m.failOn {
		return false, errors.New("injected upsert failure")
	}
	key := t.Key()
	inserted := !m.persisted[key]
	m.persisted[key] = true
	m.upserted = append(m.upserted, t.Name)
	return inserted, nil
}

func (m *mockStore) EnsureStatsRow(_ context.Context, _ string) error {
	m.statsCalls++
	return m.statsErr
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testCatalog(names ...string) []domain.Term {
	out := make([]domain.Term, 0, len(names))
	for _, n := range names {
		out = append(out, term(n))
	}
	return out
}

func wideLimits() Limits {
	return Limits{MaxItems: 100, TimeBudget: time.Minute, Policy: domain.ChildrenPreserve}
}

func TestRunBatch_SeedsEverythingWithinLimits(t *testing.T) {
	store := newMockStore()
	merged := testCatalog("fetch", "closure", "grid")

	res, err := RunBatch(context.Background(), testLogger(), store, merged, wideLimits())
	if err != nil {
		t.Fatal(err)
	}

	if res.Processed != 3 || res.Remaining != 0 || !res.Completed {
		t.Errorf("result = %+v, want 3 processed, completed", res)
	}
	if res.BatchLimitReached || res.TimeBudgetReached {
		t.Errorf("no limit should have tripped: %+v", res)
	}
	if store.statsCalls != 3 {
		t.Errorf("stats rows = %d, want one per upsert", store.statsCalls)
	}
}

func TestRunBatch_SkipsAlreadyPersisted(t *testing.T) {
	store := newMockStore("Fetch") // stored spelling differs in case
	merged := testCatalog("fetch", "closure")

	res, err := RunBatch(context.Background(), testLogger(), store, merged, wideLimits())
	if err != nil {
		t.Fatal(err)
	}

	if res.TotalMissing != 1 || res.Processed != 1 {
		t.Errorf("result = %+v, want only the missing term processed", res)
	}
	if len(store.upserted) != 1 || store.upserted[0] != "closure" {
		t.Errorf("upserted = %v, want [closure]", store.upserted)
	}
}

func TestRunBatch_MaxItemsResumes(t *testing.T) {
	store := newMockStore()
	merged := testCatalog("a", "b", "c")
	limits := wideLimits()
	limits.MaxItems = 1

	for i := 0; i < 3; i++ {
		res, err := RunBatch(context.Background(), testLogger(), store, merged, limits)
		if err != nil {
			t.Fatal(err)
		}
		if res.Processed != 1 {
			t.Fatalf("call %d processed %d, want 1", i, res.Processed)
		}
		wantRemaining := 3 - (i + 1)
		if res.Remaining != wantRemaining {
			t.Errorf("call %d remaining = %d, want %d", i, res.Remaining, wantRemaining)
		}
		if got, want := res.Completed, wantRemaining == 0; got != want {
			t.Errorf("call %d completed = %v, want %v", i, got, want)
		}
		if got, want := res.BatchLimitReached, wantRemaining > 0; got != want {
			t.Errorf("call %d batchLimitReached = %v, want %v", i, got, want)
		}
	}

	// Progress is monotonic and in catalog order.
	if len(store.upserted) != 3 || store.upserted[0] != "a" || store.upserted[2] != "c" {
		t.Errorf("upserted = %v, want catalog order a,b,c", store.upserted)
	}

	// A fourth call finds nothing to do.
	res, err := RunBatch(context.Background(), testLogger(), store, merged, limits)
	if err != nil {
		t.Fatal(err)
	}
	if res.TotalMissing != 0 || !res.Completed || res.BatchLimitReached {
		t.Errorf("result = %+v, want empty completed batch", res)
	}
}

func TestRunBatch_ZeroTimeBudget(t *testing.T) {
	store := newMockStore()
	merged := testCatalog("a", "b")
	limits := wideLimits()
	limits.TimeBudget = 0

	res, err := RunBatch(context.Background(), testLogger(), store, merged, limits)
	if err != nil {
		t.Fatal(err)
	}

	if res.Processed != 0 || !res.TimeBudgetReached {
		t.Errorf("result = %+v, want zero processed with time budget tripped", res)
	}
	if res.Remaining != res.TotalMissing {
		t.Errorf("remaining = %d, want totalMissing %d", res.Remaining, res.TotalMissing)
	}
	if len(store.upserted) != 0 {
		t.Errorf("no upserts expected, got %v", store.upserted)
	}
}

func TestRunBatch_UpsertErrorAborts(t *testing.T) {
	store := newMockStore()
	store.failOn = "b"
	merged := testCatalog("a", "b", "c")

	_, err := RunBatch(context.Background(), testLogger(), store, merged, wideLimits())
	if err == nil {
		t.Fatal("upsert failure must abort the batch")
	}
	// The failing term is named in the error and nothing after it ran.
	if got := err.Error(); got == "" || len(store.upserted) != 1 {
		t.Errorf("upserted = %v (err %v), want only the first term", store.upserted, err)
	}
}

func TestRunBatch_ListErrorAborts(t *testing.T) {
	store := newMockStore()
	store.listErr = errors.New("connection refused")

	_, err := RunBatch(context.Background(), testLogger(), store, testCatalog("a"), wideLimits())
	if err == nil {
		t.Fatal("list failure must abort the batch")
	}
}

func TestRunBatch_StatsFailureIsSwallowed(t *testing.T) {
	store := newMockStore()
	store.statsErr = errors.New("stats table locked")
	merged := testCatalog("a", "b")

	res, err := RunBatch(context.Background(), testLogger(), store, merged, wideLimits())
	if err != nil {
		t.Fatalf("stats failures must not abort the batch: %v", err)
	}
	if res.Processed != 2 || !res.Completed {
		t.Errorf("result = %+v, want both terms processed despite stats errors", res)
	}
}
