// Package pretty renders the final dynamic-programming tables of a fold as
// aligned ASCII grids for debugging.
package pretty

import (
	"fmt"
	"strings"

	"selffold-core/fold"
	"selffold-core/oligo"
	"selffold-core/table"
)

// Options control the ASCII rendering.
type Options struct {
	// Append the transition glyph to each cell ("9\" for a diagonal 9).
	ShowTransitions bool
	// Column width; if <=0, use the default (4).
	CellWidth int
}

// DefaultOptions prints scores only.
var DefaultOptions = Options{CellWidth: 4}

const linePrefix = "# "

var glyph = map[fold.Transition]string{
	fold.None:     ".",
	fold.Diagonal: `\`,
	fold.Up:       "|",
	fold.Left:     "-",
}

// RenderTable draws score as a grid with the sequence down the rows and its
// reversal across the columns. Row 0 and column 0 are labelled "-". trans may
// be nil. Every line carries the "# " prefix.
func RenderTable(id string, seq []byte, score *table.Table[int], trans *table.Table[fold.Transition], opt Options) string {
	w := opt.CellWidth
	if w <= 0 {
		w = DefaultOptions.CellWidth
	}
	n := score.Len()
	rev := oligo.Reverse(seq)
	label := func(s []byte, k int) string {
		if k == 0 || k > len(s) {
			return "-"
		}
		return string(s[k-1])
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s%s (n=%d)\n", linePrefix, id, n)
	b.WriteString(linePrefix)
	fmt.Fprintf(&b, "%*s", w, "")
	for j := 0; j <= n; j++ {
		fmt.Fprintf(&b, "%*s", w, label(rev, j))
	}
	b.WriteByte('\n')

	for i := 0; i <= n; i++ {
		b.WriteString(linePrefix)
		fmt.Fprintf(&b, "%*s", w, label(seq, i))
		for j, v := range score.Row(i) {
			cell := fmt.Sprint(v)
			if opt.ShowTransitions && trans != nil {
				cell += glyph[trans.Get(i, j)]
			}
			fmt.Fprintf(&b, "%*s", w, cell)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
