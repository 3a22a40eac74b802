// File: cmd/flewchain/cmd_count.go
// The count command: run the same exhaustive search but print only how many
// multiplications the chain admits.

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/flewchain/enum"
)

var (
	countSize    int // chain size n
	countWorkers int // worker pool size; 0 = library default
)

var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Print only the number of multiplications of a chain",
	Long: `Runs the full enumeration and prints a single number: how many FLew-chain
multiplications the requested size admits. Useful for sweeps over sizes where
rendering every table would drown the terminal.

Examples:
  flewchain count --size 6
  flewchain count --size 7 --workers 8`,
	RunE: runCount,
}

func init() {
	countCmd.Flags().IntVarP(&countSize, "size", "n", 0,
		"chain size to enumerate (required)")
	countCmd.Flags().IntVarP(&countWorkers, "workers", "w", 0,
		"parallel workers for the search (default: one per processor)")
	rootCmd.AddCommand(countCmd)
}

func runCount(cmd *cobra.Command, _ []string) error {
	settings := runSettings{Size: countSize, Workers: countWorkers}

	start := time.Now()
	tables, err := enum.Enumerate(settings.Size, settings.searchOptions()...)
	if err != nil {
		return err
	}
	logRun(settings, len(tables), start)

	fmt.Fprintln(cmd.OutOrStdout(), len(tables))

	return nil
}
