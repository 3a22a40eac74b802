// Package enum defines configuration options and sentinel errors for the
// FLew-chain multiplication search.
//
// Options:
//
//   - Workers: number of parallel workers consuming top-level branches.
//     Must be ≥ 1; defaults to runtime.GOMAXPROCS(0).
//   - Prune:   apply the row-domination monotonicity pruning (default true).
//     With pruning off, assembled candidates are filtered by a full
//     monotonicity sweep instead, so the accepted set never changes; the
//     switch exists to cross-check the pruning in tests and benchmarks.
//
// Errors (sentinel):
//
//   - ErrBadSize    if the requested domain size is below 1.
//   - ErrBadWorkers if the worker count is below 1.
package enum

import (
	"errors"
	"runtime"
)

// Sentinel errors returned by Enumerate.
var (
	// ErrBadSize indicates a domain size request below the single-element
	// chain; no partial result is produced.
	ErrBadSize = errors.New("enum: domain size must be at least 1")

	// ErrBadWorkers indicates a configured worker count below 1.
	ErrBadWorkers = errors.New("enum: worker count must be at least 1")
)

// Options configures the behavior of Enumerate.
//
// Workers – number of parallel workers for top-level branches (≥ 1).
// Prune   – whether the row-domination pruning is applied during descent.
type Options struct {
	Workers int  // parallel workers consuming first-row branches
	Prune   bool // row-domination pruning on/off
}

// Option represents a functional option for configuring Enumerate.
type Option func(*Options)

// WithWorkers sets the number of parallel workers. Enumerate validates the
// final value; counts below 1 cause ErrBadWorkers.
func WithWorkers(count int) Option {
	return func(o *Options) {
		o.Workers = count
	}
}

// WithoutPruning disables the row-domination pruning. Assembled candidates
// are then filtered by a full monotonicity check, keeping the result set
// identical; use this only to cross-check the pruned search or to measure
// how much work the pruning saves.
func WithoutPruning() Option {
	return func(o *Options) {
		o.Prune = false
	}
}

// DefaultOptions returns an Options struct initialized with sensible
// defaults. Use this as a starting point for functional-option overrides.
//
// Defaults:
//   - Workers: runtime.GOMAXPROCS(0) (one worker per available processor).
//   - Prune:   true (domination pruning on).
func DefaultOptions() Options {
	return Options{
		Workers: runtime.GOMAXPROCS(0),
		Prune:   true,
	}
}
