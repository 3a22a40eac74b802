// File: cmd/flewchain/render.go
// Cayley-table rendering. The renderer is a pure consumer of the public
// chain API: it expands each table to the full n×n matrix and lays it out as
// text, bare ASCII for pipes and a bordered grid for terminals.

package main

import (
	"os"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/katalvlaran/flewchain/chain"
)

// tableBoxStyle frames one Cayley grid for interactive reading.
var tableBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("36")).
	Padding(0, 1)

// sortTables orders tables lexicographically by their packed cells, so the
// rendered output is stable no matter how workers interleaved the search.
func sortTables(tables []chain.Table) {
	sort.Slice(tables, func(i, j int) bool {
		a, b := tables[i].Cells(), tables[j].Cells()
		for k := range a {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}

		return false
	})
}

// renderCayley renders the full multiplication matrix of one table.
func renderCayley(tbl chain.Table, plain bool) string {
	grid := renderGrid(tbl.Cayley())
	if plain {
		return grid
	}

	return tableBoxStyle.Render(grid)
}

// renderGrid lays out a Cayley matrix as a bare ASCII grid:
//
//	· | 0 1 2 3
//	--+--------
//	0 | 0 0 0 0
//	1 | 0 0 0 1
//	2 | 0 0 1 2
//	3 | 0 1 2 3
//
// Cells are right-aligned to the width of the largest element, so chains of
// ten or more elements stay readable. No trailing newline.
func renderGrid(cay [][]int) string {
	n := len(cay)
	w := len(strconv.Itoa(n - 1))

	var b strings.Builder
	var a, v int
	b.WriteString(pad("·", w))
	b.WriteString(" |")
	for v = 0; v < n; v++ {
		b.WriteByte(' ')
		b.WriteString(pad(strconv.Itoa(v), w))
	}

	b.WriteByte('\n')
	b.WriteString(strings.Repeat("-", w+1))
	b.WriteByte('+')
	b.WriteString(strings.Repeat("-", (w+1)*n))

	for a = 0; a < n; a++ {
		b.WriteByte('\n')
		b.WriteString(pad(strconv.Itoa(a), w))
		b.WriteString(" |")
		for _, v = range cay[a] {
			b.WriteByte(' ')
			b.WriteString(pad(strconv.Itoa(v), w))
		}
	}

	return b.String()
}

// pad left-pads s with spaces up to the given display width.
func pad(s string, w int) string {
	for utf8.RuneCountInString(s) < w {
		s = " " + s
	}

	return s
}

// stdoutIsTTY reports whether stdout is an interactive terminal; bordered
// rendering is reserved for humans, pipes always get plain ASCII.
func stdoutIsTTY() bool {
	fd := os.Stdout.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
