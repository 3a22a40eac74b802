// Package chain sentinel errors.
//
// Every failure in this package is a caller-contract violation, surfaced
// immediately and never recovered. Match with errors.Is; construction and
// evaluation wrap these sentinels with positional context via fmt.Errorf.
package chain

import "errors"

var (
	// ErrBadSize indicates a domain size below the single-element chain.
	ErrBadSize = errors.New("chain: domain size must be at least 1")

	// ErrCellCount indicates a supplied cell vector whose length does not
	// match CellCount(n); the vector is rejected, never truncated or padded.
	ErrCellCount = errors.New("chain: cell vector length mismatch")

	// ErrCellRange indicates a supplied cell value outside [0, n-1].
	ErrCellRange = errors.New("chain: cell value outside domain")

	// ErrOutOfDomain indicates an evaluation operand outside [0, n-1].
	// Internally generated tables never trigger it; it is reachable only
	// through direct misuse of the public evaluation entry point.
	ErrOutOfDomain = errors.New("chain: operand outside domain")
)
