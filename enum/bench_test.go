package enum_test

import (
	"testing"

	"github.com/katalvlaran/flewchain/enum"
)

// BenchmarkEnumerate measures the full pruned search of the 7-chain (451
// accepted tables) with the default worker pool.
// Complexity: exponential in n; pruning keeps the visited tree shallow.
func BenchmarkEnumerate(b *testing.B) {
	const n = 7

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := enum.Enumerate(n); err != nil {
			b.Fatalf("Enumerate failed: %v", err)
		}
	}
}

// BenchmarkEnumerate_SingleWorker is the sequential baseline for the same
// search; the gap to BenchmarkEnumerate is the top-level fan-out payoff.
func BenchmarkEnumerate_SingleWorker(b *testing.B) {
	const n = 7

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := enum.Enumerate(n, enum.WithWorkers(1)); err != nil {
			b.Fatalf("Enumerate failed: %v", err)
		}
	}
}

// BenchmarkEnumerate_NoPruning runs the same search with the domination
// filter disabled; the gap to BenchmarkEnumerate is what the pruning saves.
func BenchmarkEnumerate_NoPruning(b *testing.B) {
	const n = 7

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := enum.Enumerate(n, enum.WithoutPruning()); err != nil {
			b.Fatalf("Enumerate failed: %v", err)
		}
	}
}

// BenchmarkWeaklyIncreasing measures one full row batch of the size a deep
// recursion level actually requests.
// Complexity: O(C(max-min+length, length)) sequences, each freshly allocated.
func BenchmarkWeaklyIncreasing(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = enum.WeaklyIncreasing(0, 7, 8)
	}
}
