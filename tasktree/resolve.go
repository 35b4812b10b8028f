package tasktree

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"taskdash-core/config"
	"taskdash-core/tasks"
)

// ChildFetcher is the one slice of the external task source the resolver
// needs: a per-task child lookup.
type ChildFetcher interface {
	Children(ctx context.Context, taskID int) ([]tasks.Task, error)
}

// LeafResult is the outcome of one resolution pass. FetchFailures lists the
// task ids whose child lookup failed and were therefore counted as leaves;
// callers may report it but must not treat it as an error.
type LeafResult struct {
	Leaves        map[int]bool
	FetchFailures []int
}

// Resolver determines the leaf set when children are not bundled with the
// snapshot and must be looked up per task. Lookups fan out concurrently,
// bounded and throttled, and the resolver waits for all of them before
// publishing anything.
type Resolver struct {
	fetcher ChildFetcher
	limiter *rate.Limiter
	limit   int
	log     *slog.Logger
}

// NewResolver wires a resolver against the external child lookup. A nil cfg
// falls back to config defaults; a nil logger falls back to slog.Default.
func NewResolver(fetcher ChildFetcher, cfg *config.Config, log *slog.Logger) *Resolver {
	if cfg == nil {
		cfg = config.Load()
	}
	if log == nil {
		log = slog.Default()
	}
	return &Resolver{
		fetcher: fetcher,
		limiter: rate.NewLimiter(rate.Limit(cfg.FetchRPS), cfg.FetchRPS),
		limit:   cfg.FetchConcurrency,
		log:     log,
	}
}

// LeafSet resolves leaf-ness for every task in the snapshot with one child
// lookup each. A failed lookup marks that task a leaf: overcounting leaves
// is preferred to silently hiding a task from progress accounting. Only
// context cancellation aborts the pass, in which case partial results are
// discarded and the context error returned.
func (r *Resolver) LeafSet(ctx context.Context, ts []tasks.Task) (LeafResult, error) {
	res := LeafResult{Leaves: make(map[int]bool, len(ts))}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.limit)

	for _, t := range ts {
		t := t
		g.Go(func() error {
			if err := r.limiter.Wait(gctx); err != nil {
				return err
			}
			children, err := r.fetcher.Children(gctx, t.ID)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				r.log.Warn("child fetch failed, treating task as leaf",
					"task_id", t.ID, "error", err)
				res.Leaves[t.ID] = true
				res.FetchFailures = append(res.FetchFailures, t.ID)
				return nil
			}
			if len(children) == 0 {
				res.Leaves[t.ID] = true
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return LeafResult{}, err
	}
	sort.Ints(res.FetchFailures)
	return res, nil
}
