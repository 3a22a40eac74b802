// Package enum — weakly increasing row generation.
//
// One interior row of a candidate table is a weakly increasing sequence:
// commutativity pins the stored triangle, and monotonicity in the second
// argument forces each cell to be ≥ its left neighbor. The generator below
// produces complete batches, not streams; a batch at level l is small
// (binomial(max-min+l, l) sequences) and restartable by construction.
package enum

// WeaklyIncreasing returns every weakly increasing integer sequence of the
// given length over [min, max], in lexicographic order. The order is part of
// the contract: downstream search results must be reproducible run to run.
//
// Edge cases:
//   - length == 0 yields exactly one sequence, the empty one, for any bounds.
//   - length < 0 yields no sequences at all.
//   - min > max (with length > 0) yields no sequences at all.
//
// Each returned sequence is freshly allocated and never aliases another.
func WeaklyIncreasing(min, max, length int) [][]int {
	// Base case: the empty sequence is the unique length-0 answer.
	if length == 0 {
		return [][]int{{}}
	}
	// Negative lengths and empty value ranges admit no sequence at all.
	if length < 0 || min > max {
		return nil
	}

	var out [][]int
	var v int
	var sub []int
	for v = min; v <= max; v++ {
		// Raise the floor to v so the tail stays ≥ its new head, then
		// prepend v to every tail.
		for _, sub = range WeaklyIncreasing(v, max, length-1) {
			seq := make([]int, 0, length)
			seq = append(seq, v)
			out = append(out, append(seq, sub...))
		}
	}

	return out
}
