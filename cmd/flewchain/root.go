// File: cmd/flewchain/root.go
// The root command, the shared run settings and the run diagnostics logger.

package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/flewchain/enum"
)

// logger emits one structured diagnostic line per run to stderr; results on
// stdout stay machine-consumable.
var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

var rootCmd = &cobra.Command{
	Use:   "flewchain",
	Short: "Enumerate the multiplications of finite FLew-chains",
	Long: `flewchain exhaustively enumerates the commutative, associative, monotone
multiplications of a linearly ordered set of N elements in which the minimum
element is absorbing and the maximum element is the identity.

A run is ephemeral and in-memory: no files are written, no state is kept.
The search fans its top recursion level across a fixed pool of workers; the
result is independent of the worker count and, per size, of previous runs.

Chains of 3, 4, 5 and 6 elements admit exactly 2, 6, 22 and 94
multiplications; sizes beyond ~10 grow far too fast to enumerate.`,
	SilenceUsage: true,
}

// runSettings is the merged view of one invocation: config-file values
// overridden by explicitly set flags.
type runSettings struct {
	Size    int  // chain size n; must end up ≥ 1
	Workers int  // worker pool size; 0 means the library default
	Plain   bool // force undecorated ASCII output
	Limit   int  // render at most this many tables; 0 means all
}

// searchOptions translates the merged settings into enum options. A zero
// worker count is "library default", so no option is emitted for it.
func (s runSettings) searchOptions() []enum.Option {
	var opts []enum.Option
	if s.Workers != 0 {
		opts = append(opts, enum.WithWorkers(s.Workers))
	}

	return opts
}

// effectiveWorkers reports the pool size a run will actually use, for the
// diagnostics line.
func (s runSettings) effectiveWorkers() int {
	if s.Workers != 0 {
		return s.Workers
	}

	return enum.DefaultOptions().Workers
}

// logRun emits the per-run summary diagnostic.
func logRun(s runSettings, tables int, start time.Time) {
	logger.Info("enumeration complete",
		slog.Int("size", s.Size),
		slog.Int("workers", s.effectiveWorkers()),
		slog.Int("tables", tables),
		slog.Duration("elapsed", time.Since(start)),
	)
}
