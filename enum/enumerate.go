// Package enum implements the parallel search driver.
//
// Only the outermost recursion level is distributed: each admissible first
// row becomes one branch, dispatched to a fixed-size worker pool. A branch
// owns its entire subtree deterministically; there is no work stealing and
// no rebalancing, because the first-row branching factor already keeps the
// pool busy and the pruning state (the row above) is local to a branch.
package enum

import (
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/flewchain/chain"
)

// Enumerate returns every FLew-chain multiplication of a chain with n
// elements, frozen into chain.Tables. It accepts functional options to
// customize the worker count and the pruning policy.
//
// Returns:
//
//   - tables: all accepted multiplications. No ordering is guaranteed across
//     workers; within one branch the generation order is deterministic, so
//     WithWorkers(1) yields the same order on every run.
//   - err: ErrBadSize for n < 1, ErrBadWorkers for a pool size below 1.
//
// Preconditions and validation (in order):
//  1. n ≥ 1 (ErrBadSize).
//  2. Options.Workers ≥ 1 after all options are applied (ErrBadWorkers).
//
// For n ∈ {1, 2} the interior is empty: the single trivial table is returned
// immediately and no goroutine is spawned. A run has no cancellation or
// timeout; it proceeds to exhaustion of the candidate space.
func Enumerate(n int, opts ...Option) ([]chain.Table, error) {
	// 1) Build Options from defaults plus functional overrides.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate the size request at the boundary; no partial result.
	if n < 1 {
		return nil, ErrBadSize
	}

	// 3) Validate the pool size after all options are applied.
	if cfg.Workers < 1 {
		return nil, ErrBadWorkers
	}

	// 4) Degenerate chains have zero free cells: answer without searching.
	if n < 3 {
		trivial, err := chain.New(n, nil)
		if err != nil {
			return nil, err
		}

		return []chain.Table{trivial}, nil
	}

	// 5) Top-level branching: one branch per admissible first row. The first
	//    row ranges over [0, 1], so the branching factor is n-1.
	e := &engine{n: n, prune: cfg.Prune}
	l := n - 2
	first := WeaklyIncreasing(0, n-1-l, l)

	// 6) Shared result set. The mutex-guarded append below is the sole
	//    synchronization point of the entire run; everything else is owned
	//    by exactly one branch.
	var (
		mu  sync.Mutex
		out []chain.Table
	)

	// 7) Fixed-size pool: SetLimit caps concurrent branches, and further
	//    Go calls block until a worker frees up, which preserves dispatch
	//    order under WithWorkers(1).
	var g errgroup.Group
	g.SetLimit(cfg.Workers)
	for _, row := range first {
		g.Go(func() error {
			// 8) Run this branch's subtree to completion, then freeze and
			//    publish its accepted candidates one O(1) append at a time.
			var t chain.Table
			var err error
			for _, cells := range e.step(l, nil, row) {
				if t, err = chain.New(n, cells); err != nil {
					return err
				}
				mu.Lock()
				out = append(out, t)
				mu.Unlock()
			}

			return nil
		})
	}

	// 9) Branches never fail in practice (generated cells are valid by
	//    construction), but a constructor error would surface here.
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
