// Package flewchain is an in-memory research toolkit for exhaustively
// enumerating the multiplications of finite FLew-chains: the commutative,
// associative, monotone operations on a linearly ordered set where the
// minimum element is absorbing and the maximum element is the identity.
//
// 🚀 What is flewchain?
//
//	A small, focused library that brings together:
//		• Compact encoding: the upper triangle of the interior submatrix in a flat vector
//		• Pointwise evaluation with absorbing/identity boundary shortcuts
//		• Law verifiers: associativity and monotonicity over the full domain
//		• Row-by-row candidate search with monotonicity pruning
//		• A parallel driver that fans the top recursion level across workers
//
// ✨ Why choose flewchain?
//
//   - Exhaustive - every multiplication of a given chain size, not a sample
//   - Reproducible - deterministic generation order inside each branch
//   - Honest errors - strict sentinels, no panics on caller mistakes
//   - Pure computation - no I/O, no persistence, a run is ephemeral
//
// Under the hood, everything is organized under two subpackages and one command:
//
//	chain/          - Table encoding, evaluation, Cayley reconstruction, law checks
//	enum/           - weakly increasing row generation, pruned search, parallel driver
//	cmd/flewchain/  - CLI that enumerates and renders Cayley tables
//
// Quick Cayley example (size 4, the Łukasiewicz multiplication):
//
//	    · | 0 1 2 3
//	    --+--------
//	    0 | 0 0 0 0
//	    1 | 0 0 0 1
//	    2 | 0 0 1 2
//	    3 | 0 1 2 3
//
//	row 0 is absorbing, row 3 acts as the identity; only the three interior
//	cells (1·1, 1·2, 2·2) are actually stored.
//
//	go get github.com/katalvlaran/flewchain
package flewchain
