// Package chain_test validates Table construction, the evaluation contract
// (boundary shortcuts, interior lookups, domain guards) and the Cayley
// reconstruction against hand-computed multiplications.
package chain_test

import (
	"testing"

	"github.com/katalvlaran/flewchain/chain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lukasiewicz packs the Łukasiewicz multiplication x·y = max(0, x+y-(n-1))
// for a chain of n elements; a classic associative, monotone fixture.
func lukasiewicz(n int) []int {
	cells := make([]int, chain.CellCount(n))
	for a := 1; a <= n-2; a++ {
		for b := a; b <= n-2; b++ {
			if v := a + b - (n - 1); v > 0 {
				cells[chain.Pos(n, a, b)] = v
			}
		}
	}

	return cells
}

// godel packs the Gödel multiplication x·y = min(x, y); the other classic.
func godel(n int) []int {
	cells := make([]int, chain.CellCount(n))
	for a := 1; a <= n-2; a++ {
		for b := a; b <= n-2; b++ {
			cells[chain.Pos(n, a, b)] = a
		}
	}

	return cells
}

func TestNew_RejectsBadSize(t *testing.T) {
	_, err := chain.New(0, nil)
	assert.ErrorIs(t, err, chain.ErrBadSize, "n=0 must be rejected")

	_, err = chain.New(-3, nil)
	assert.ErrorIs(t, err, chain.ErrBadSize, "negative n must be rejected")
}

func TestNew_RejectsCellCountMismatch(t *testing.T) {
	// n=5 stores exactly 6 cells; one short and one long must both fail.
	_, err := chain.New(5, make([]int, 5))
	assert.ErrorIs(t, err, chain.ErrCellCount, "short vector must be rejected")

	_, err = chain.New(5, make([]int, 7))
	assert.ErrorIs(t, err, chain.ErrCellCount, "long vector must be rejected")

	// Degenerate chains store nothing, so any non-empty vector is invalid.
	_, err = chain.New(2, []int{0})
	assert.ErrorIs(t, err, chain.ErrCellCount, "n=2 must reject stored cells")

	// And n=3 stores exactly one cell, so empty is invalid.
	_, err = chain.New(3, nil)
	assert.ErrorIs(t, err, chain.ErrCellCount, "n=3 must require one cell")
}

func TestNew_RejectsCellRange(t *testing.T) {
	_, err := chain.New(4, []int{0, 0, 4})
	assert.ErrorIs(t, err, chain.ErrCellRange, "value n must be rejected")

	_, err = chain.New(4, []int{0, -1, 1})
	assert.ErrorIs(t, err, chain.ErrCellRange, "negative value must be rejected")
}

func TestNew_TrivialSizes(t *testing.T) {
	// n=1 and n=2 have empty interiors; nil is the canonical cell vector.
	for n := 1; n <= 2; n++ {
		tbl, err := chain.New(n, nil)
		require.NoError(t, err, "n=%d", n)
		assert.Equal(t, n, tbl.Size())
		assert.Empty(t, tbl.Cells(), "n=%d stores nothing", n)
	}
}

// TestNew_CopiesInput pins the immutability contract on both directions:
// mutating the source slice after construction and mutating the slice
// returned by Cells must leave the Table untouched.
func TestNew_CopiesInput(t *testing.T) {
	src := []int{0, 0, 1}
	tbl, err := chain.New(4, src)
	require.NoError(t, err)

	src[2] = 0
	assert.Equal(t, []int{0, 0, 1}, tbl.Cells(), "mutating the source must not leak in")

	leaked := tbl.Cells()
	leaked[0] = 3
	assert.Equal(t, []int{0, 0, 1}, tbl.Cells(), "mutating a Cells copy must not leak in")
}

func TestEval_BoundaryShortcuts(t *testing.T) {
	tbl, err := chain.New(5, godel(5))
	require.NoError(t, err)

	cases := []struct {
		a, b, want int
	}{
		{0, 0, 0}, // absorbing · absorbing
		{0, 3, 0}, // absorbing on the left
		{3, 0, 0}, // absorbing on the right
		{4, 2, 2}, // identity on the left
		{2, 4, 2}, // identity on the right
		{4, 4, 4}, // identity · identity
		{4, 0, 0}, // absorbing wins over identity
	}
	for _, tc := range cases {
		got, evalErr := tbl.Eval(tc.a, tc.b)
		require.NoError(t, evalErr, "Eval(%d,%d)", tc.a, tc.b)
		assert.Equal(t, tc.want, got, "Eval(%d,%d)", tc.a, tc.b)
	}
}

func TestEval_InteriorLookup(t *testing.T) {
	tbl, err := chain.New(5, lukasiewicz(5))
	require.NoError(t, err)

	// Łukasiewicz on {0..4}: x·y = max(0, x+y-4).
	got, err := tbl.Eval(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, got, "2·3")

	got, err = tbl.Eval(1, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, got, "1·3")

	got, err = tbl.Eval(3, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, got, "3·3")

	// The stored triangle serves both argument orders.
	ab, _ := tbl.Eval(2, 3)
	ba, _ := tbl.Eval(3, 2)
	assert.Equal(t, ab, ba, "Eval must be symmetric")
}

// TestEval_OutOfDomain exercises all four out-of-range sides. The upper bound
// must fire on its own, not only in combination with the lower one.
func TestEval_OutOfDomain(t *testing.T) {
	tbl, err := chain.New(4, lukasiewicz(4))
	require.NoError(t, err)

	for _, pair := range [][2]int{{-1, 2}, {4, 2}, {2, -1}, {2, 4}, {-1, 0}, {97, 0}} {
		_, evalErr := tbl.Eval(pair[0], pair[1])
		assert.ErrorIs(t, evalErr, chain.ErrOutOfDomain, "Eval(%d,%d)", pair[0], pair[1])
	}
}

func TestEval_SingleElementChain(t *testing.T) {
	tbl, err := chain.New(1, nil)
	require.NoError(t, err)

	// The single element is absorbing and identity at once.
	got, err := tbl.Eval(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	_, err = tbl.Eval(1, 0)
	assert.ErrorIs(t, err, chain.ErrOutOfDomain)
}

// TestCayley_ReconstructsFullMatrix expands the packed n=4 Łukasiewicz table
// and compares it with the full hand-written Cayley matrix, boundary rows
// and columns included.
func TestCayley_ReconstructsFullMatrix(t *testing.T) {
	tbl, err := chain.New(4, []int{0, 0, 1})
	require.NoError(t, err)

	want := [][]int{
		{0, 0, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 2},
		{0, 1, 2, 3},
	}
	assert.Equal(t, want, tbl.Cayley())
}
