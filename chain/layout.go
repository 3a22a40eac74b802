// Package chain — triangular cell layout.
//
// The full n×n Cayley table of an FLew-chain multiplication is redundant:
// row/column 0 is constantly 0 (absorbing), row/column n-1 echoes the other
// operand (identity), and the interior is symmetric. Only the upper triangle
// of the interior (n-2)×(n-2) submatrix carries information, so a table is
// packed row-major into a flat vector of CellCount(n) small integers:
//
//	n = 5:  cells = [ (1,1) (1,2) (1,3) | (2,2) (2,3) | (3,3) ]
//
// Interior row a (1 ≤ a ≤ n-2) stores the cells (a,a) … (a,n-2) and has
// length n-1-a. The offset arithmetic lives here, defined once and tested
// independently of the search that consumes it.
package chain

// CellCount returns the number of stored cells for a chain of n elements,
// ((n-2)(n-1))/2. Chains with n < 3 have no interior and store nothing.
func CellCount(n int) int {
	if n < 2 {
		return 0
	}

	return (n - 2) * (n - 1) / 2
}

// Pos returns the offset of the interior cell (a, b) inside the packed cell
// vector of a chain of n elements. Arguments are symmetric: Pos(n, a, b) ==
// Pos(n, b, a).
//
// Precondition: 1 ≤ a, b ≤ n-2 (interior indices only). Boundary operands
// never reach the vector; Eval resolves them before indexing.
func Pos(n, a, b int) int {
	// Order the pair so that (lo, hi) addresses the upper triangle.
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}

	// Row-major upper-triangular offset with the boundary rows excluded:
	// rows 1..lo-1 contribute (n-2)+(n-3)+…, collapsed into closed form.
	return (n-2)*(lo-1) + hi - lo*(lo-1)/2 - 1
}

// evalCells answers a·b against a raw cell vector without any validation.
// It is the hot-path twin of Table.Eval, shared by the law checkers and the
// Cayley reconstruction; callers must guarantee a, b ∈ [0, n-1].
func evalCells(n int, cells []int, a, b int) int {
	// Absorbing element: 0·x = x·0 = 0.
	if a == 0 || b == 0 {
		return 0
	}
	// Identity element: (n-1)·x = x·(n-1) = x.
	if a == n-1 {
		return b
	}
	if b == n-1 {
		return a
	}

	// Both operands are interior; read the packed triangle.
	return cells[Pos(n, a, b)]
}
