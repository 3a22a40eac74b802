// Package enum exhaustively enumerates the multiplications of a finite
// FLew-chain: every commutative, associative, monotone operation on
// {0, 1, …, n-1} with 0 absorbing and n-1 the identity.
//
// What:
//
//   - WeaklyIncreasing generates all weakly increasing integer sequences of a
//     given length over a bounded range, in lexicographic order; one such
//     sequence is one interior row of a candidate table.
//   - The candidate builder assembles tables row by row, widening the
//     admissible value range by one per level and pruning any row that fails
//     the monotonicity relation against its predecessor.
//   - Enumerate drives the search, fanning the first-row branches across a
//     fixed pool of workers and collecting accepted tables under a mutex.
//
// How the search is shaped:
//
//   - Level l counts the interior rows still unfixed, starting at n-2. A row
//     at level l has length l and values in [floor, n-1-l]; the cap grows by
//     one per consumed level because a row further from the diagonal has one
//     fewer constrained position in the triangular layout.
//   - The floor for the next row is the current row's second element, the
//     cell the two rows share a column with.
//   - A candidate row must dominate the previous row's tail position by
//     position (scanned in reverse); together with the floor rule this keeps
//     every assembled table monotone by construction.
//   - Completed candidates pass through chain.Associative; survivors become
//     frozen chain.Tables in the result set.
//
// Known result sizes, a useful sanity anchor: chains of 3, 4, 5 and 6
// elements admit exactly 2, 6, 22 and 94 multiplications.
//
// Concurrency:
//
//   - Only the first row fans out; each worker owns one top-level branch and
//     runs the rest of the recursion sequentially. Deeper levels share no
//     state, so the sole synchronization point is the result append.
//   - No cancellation or timeout semantics; a run proceeds to exhaustion.
//
// Options:
//
//   - Options.Workers: parallel workers for top-level branches
//     (default runtime.GOMAXPROCS(0)).
//   - Options.Prune: row-domination pruning (default on). Disabling it via
//     WithoutPruning switches acceptance to a full monotonicity check, which
//     must produce the identical result set; the toggle exists for exactly
//     that cross-check.
//
// Errors (sentinel):
//
//   - ErrBadSize    if Enumerate is asked for a chain of n < 1 elements.
//   - ErrBadWorkers if the configured worker count is below 1.
package enum
