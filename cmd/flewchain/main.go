// Command flewchain enumerates the multiplications of finite FLew-chains and
// renders their Cayley tables.
//
// A FLew-chain multiplication is a commutative, associative, monotone
// operation on the ordered set {0, 1, …, n-1} where 0 is absorbing and n-1
// is the identity. The command is a thin presentation layer: all search work
// happens in the enum package, all table semantics in the chain package.
//
// Usage:
//
//	flewchain tables --size 4              render every multiplication of the 4-chain
//	flewchain tables --size 5 --limit 3    render only the first three (sorted)
//	flewchain tables --config run.yaml     read defaults from a YAML file
//	flewchain count  --size 6 --workers 8  print only the number of tables
//
// Tables are sorted lexicographically by their packed cells before rendering,
// so the output is stable regardless of how many workers the search used.
// Diagnostics (size, workers, tables, elapsed) go to stderr as one structured
// log line per run; results go to stdout.
package main

import "os"

func main() {
	// Cobra prints the failure itself; the shell only needs the status.
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
