package chain_test

import (
	"testing"

	"github.com/katalvlaran/flewchain/chain"
)

// BenchmarkAssociative measures the full-triple sweep on an associative
// candidate, the worst case (no short circuit).
// Complexity: O(n³) evaluations.
func BenchmarkAssociative(b *testing.B) {
	const n = 9
	cells := lukasiewicz(n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = chain.Associative(n, cells)
	}
}

// BenchmarkMonotone measures the O(n²) monotonicity sweep on a passing table.
func BenchmarkMonotone(b *testing.B) {
	const n = 9
	cells := godel(n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = chain.Monotone(n, cells)
	}
}

// BenchmarkEval measures a single validated interior lookup.
func BenchmarkEval(b *testing.B) {
	tbl, err := chain.New(9, lukasiewicz(9))
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tbl.Eval(4, 6)
	}
}
