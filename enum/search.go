// Package enum — the candidate builder.
//
// The search descends one interior row per level. Level l is the number of
// rows still unfixed: the first row is built at l = n-2, the last single-cell
// row at l = 1. Rationale for the shape, succinct:
//  1. A row at level l has length l (one cell per remaining column of the
//     triangle) and admissible values [floor, n-1-l]. The cap widens by one
//     per consumed level; equivalently, interior row a never exceeds a, the
//     image of x·y ≤ min(x, y) inside the stored triangle.
//  2. The floor handed to the next level is the current row's second
//     element: the next row starts in the column that element occupies, and
//     the column must not decrease downwards.
//  3. Domination pruning: a candidate row must be position-wise ≥ the tail
//     of the row above it (scanned in reverse). Floors, caps, weak increase
//     and domination together make every assembled candidate monotone, so
//     the terminal check is associativity alone.
//  4. With pruning disabled the same descent runs unchecked and a full
//     monotonicity sweep replaces the per-row filter at the terminal level.
//     The accepted set is provably identical; only the visit count differs.
//
// The recursion is pure: every call returns its own slice of accepted cell
// vectors and never mutates shared state, so top-level branches are safe to
// run on separate goroutines with no coordination.
package enum

import "github.com/katalvlaran/flewchain/chain"

// engine holds the per-run search policy. A dedicated struct (instead of
// closures) keeps hot-path state explicit and the branch entry point
// testable in isolation.
type engine struct {
	n     int  // domain size of the chain
	prune bool // row-domination pruning on/off
}

// search runs the whole descent sequentially and returns every accepted
// candidate cell vector. The parallel driver bypasses this entry and fans
// out the first level itself; tests use it for deterministic full runs.
func (e *engine) search() [][]int {
	return e.descend(e.n-2, nil, 0)
}

// descend generates every admissible row at level l on top of the fixed
// prefix and merges the accepted candidates found beneath each of them.
func (e *engine) descend(l int, prefix []int, floor int) [][]int {
	var out [][]int
	var row []int
	for _, row = range WeaklyIncreasing(floor, e.n-1-l, l) {
		out = append(out, e.step(l, prefix, row)...)
	}

	return out
}

// step processes one candidate row at level l: prune against the row above,
// then either finalize the assembled candidate or recurse one level deeper.
func (e *engine) step(l int, prefix, row []int) [][]int {
	// The previous row occupies the last l+1 cells of the prefix; its tail
	// (everything but its first cell) aligns column-for-column with row.
	if e.prune && len(prefix) > 0 && !dominates(row, prefix[len(prefix)-l:]) {
		return nil
	}

	// Fresh concatenation per branch: sibling branches must never share
	// backing arrays (append aliasing would corrupt parallel subtrees).
	cells := joinRows(prefix, row)

	// Non-terminal: fix this row and descend with the widened cap.
	if l > 1 {
		return e.descend(l-1, cells, row[1])
	}

	// Terminal: the candidate is complete. Associativity decides; without
	// pruning, monotonicity is re-established by a full sweep instead.
	if !chain.Associative(e.n, cells) {
		return nil
	}
	if !e.prune && !chain.Monotone(e.n, cells) {
		return nil
	}

	return [][]int{cells}
}

// dominates reports whether row is position-wise ≥ tail, scanning from the
// last position backward. Both slices have equal length by construction.
func dominates(row, tail []int) bool {
	var k int
	for k = len(row) - 1; k >= 0; k-- {
		if row[k] < tail[k] {
			return false
		}
	}

	return true
}

// joinRows concatenates prefix and row into a freshly allocated vector.
func joinRows(prefix, row []int) []int {
	cells := make([]int, 0, len(prefix)+len(row))
	cells = append(cells, prefix...)

	return append(cells, row...)
}
