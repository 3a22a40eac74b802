// Package chain — the Table type.
//
// Table is a frozen multiplication: constructed once from a cell vector,
// immutable thereafter, safe for concurrent readers. Candidate vectors under
// construction stay plain []int slices owned by a single search branch and
// only become Tables on acceptance.
package chain

import "fmt"

// Table is an immutable FLew-chain multiplication of a fixed domain size.
// The zero value is not usable; obtain instances through New.
type Table struct {
	n     int   // domain size; elements are 0 … n-1
	cells []int // packed interior upper triangle, len == CellCount(n)
}

// New freezes the supplied cell vector into a Table for a chain of n
// elements. The vector is copied, so the caller may keep mutating its own
// slice afterwards.
//
// Validation (in order):
//  1. n ≥ 1, otherwise ErrBadSize.
//  2. len(cells) == CellCount(n), otherwise ErrCellCount.
//  3. every value in [0, n-1], otherwise ErrCellRange.
//
// For n ∈ {1, 2} the interior is empty and cells must be empty or nil.
func New(n int, cells []int) (Table, error) {
	// 1) Reject impossible domains before touching the vector.
	if n < 1 {
		return Table{}, fmt.Errorf("%w: n=%d", ErrBadSize, n)
	}

	// 2) The length is structural; a mismatch is never repaired silently.
	if want := CellCount(n); len(cells) != want {
		return Table{}, fmt.Errorf("%w: got %d cells, want %d for n=%d", ErrCellCount, len(cells), want, n)
	}

	// 3) Every stored value must itself be a chain element.
	var i, v int
	for i, v = range cells {
		if v < 0 || v > n-1 {
			return Table{}, fmt.Errorf("%w: cells[%d]=%d, n=%d", ErrCellRange, i, v, n)
		}
	}

	// 4) Copy to guarantee immutability regardless of the caller's slice.
	frozen := make([]int, len(cells))
	copy(frozen, cells)

	return Table{n: n, cells: frozen}, nil
}

// Size returns the domain size n of the chain.
func (t Table) Size() int { return t.n }

// Cells returns a fresh copy of the packed cell vector. Mutating the result
// never affects the Table.
func (t Table) Cells() []int {
	out := make([]int, len(t.cells))
	copy(out, t.cells)

	return out
}

// Eval answers a·b for any pair of chain elements.
//
// Contract:
//   - a or b outside [0, n-1] → ErrOutOfDomain (both bounds are enforced).
//   - a == 0 or b == 0        → 0 (absorbing element).
//   - a == n-1                → b; b == n-1 → a (identity element).
//   - otherwise a triangular lookup into the packed interior.
func (t Table) Eval(a, b int) (int, error) {
	// Domain guard first, so misuse is reported even for boundary-looking
	// operands such as a = -1, b = 0.
	if a < 0 || a > t.n-1 {
		return 0, fmt.Errorf("%w: a=%d, n=%d", ErrOutOfDomain, a, t.n)
	}
	if b < 0 || b > t.n-1 {
		return 0, fmt.Errorf("%w: b=%d, n=%d", ErrOutOfDomain, b, t.n)
	}

	return evalCells(t.n, t.cells, a, b), nil
}

// Cayley reconstructs the full n×n multiplication table, boundary rows and
// columns included. Renderers consume this; the algebraic core never needs
// the expanded form.
func (t Table) Cayley() [][]int {
	m := make([][]int, t.n)
	var a, b int
	for a = 0; a < t.n; a++ {
		row := make([]int, t.n)
		for b = 0; b < t.n; b++ {
			row[b] = evalCells(t.n, t.cells, a, b)
		}
		m[a] = row
	}

	return m
}
