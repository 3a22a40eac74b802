// Package chain — law verifiers.
//
// Both checkers operate on raw cell vectors so that a search can test a
// candidate before freezing it into a Table. Boundary operands are resolved
// by the evaluation shortcuts, which is why associativity only needs the
// interior triples: any triple touching 0 collapses to 0 on both sides, and
// any triple touching n-1 reduces to the same two-operand product.
//
// A malformed vector — wrong length, or a value outside [0, n-1] — encodes
// no multiplication at all, so both checkers answer false for it rather
// than indexing past it.
package chain

// Associative reports whether the multiplication encoded by cells is
// associative over the whole domain of a chain of n elements.
//
// Every interior triple (a, b, c) is checked for (a·b)·c == a·(b·c); the scan
// short-circuits on the first mismatch, which dominates performance since
// most rejected candidates fail within the first few triples. Worst case
// O(n³) evaluations (an associative candidate). Pure; no side effects.
// A vector of the wrong length, or with values outside [0, n-1], is never
// associative: it is rejected up front, not evaluated.
func Associative(n int, cells []int) bool {
	if !validCells(n, cells) {
		return false
	}

	var a, b, c int
	for a = 1; a <= n-2; a++ {
		for b = 1; b <= n-2; b++ {
			for c = 1; c <= n-2; c++ {
				if evalCells(n, cells, evalCells(n, cells, a, b), c) != evalCells(n, cells, a, evalCells(n, cells, b, c)) {
					return false
				}
			}
		}
	}

	return true
}

// Monotone reports whether the multiplication encoded by cells is monotone
// in each argument over the whole domain, boundaries included.
//
// The packed layout is symmetric, so monotonicity in one argument implies it
// in the other; a single O(n²) sweep over x·y ≤ (x+1)·y suffices. The sweep
// also pins the stored values under min(x, y), because x·y ≤ (n-1)·y = y.
// Malformed vectors are rejected up front, the same as in Associative.
func Monotone(n int, cells []int) bool {
	if !validCells(n, cells) {
		return false
	}

	var x, y int
	for y = 0; y < n; y++ {
		for x = 0; x+1 < n; x++ {
			if evalCells(n, cells, x, y) > evalCells(n, cells, x+1, y) {
				return false
			}
		}
	}

	return true
}

// IsAssociative reports whether the frozen table satisfies the associativity
// law. Accepted search output always does; the method exists so external
// consumers can verify tables they assembled themselves.
func (t Table) IsAssociative() bool { return Associative(t.n, t.cells) }

// IsMonotone reports whether the frozen table is monotone in each argument.
func (t Table) IsMonotone() bool { return Monotone(t.n, t.cells) }

// validCells reports whether cells is a well-formed vector for a chain of n
// elements: exactly CellCount(n) entries, each a chain element. The law
// checkers refuse anything else before touching the vector.
func validCells(n int, cells []int) bool {
	if len(cells) != CellCount(n) {
		return false
	}

	var v int
	for _, v = range cells {
		if v < 0 || v > n-1 {
			return false
		}
	}

	return true
}
