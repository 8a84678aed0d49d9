// internal/engine/product.go
package engine

import (
	"selffold-core/fold"
	"selffold-core/table"
)

// Product is the folded form of one input record.
type Product struct {
	Index       int    // position in the input stream, 0-based
	SequenceID  string // FASTA ID, or the default header for inline input
	Description string
	SourceFile  string

	Sequence  string // normalised sequence that was folded
	Structure string // dot-bracket, len(Sequence)

	Pairs      []fold.Pair
	Helices    []fold.Helix
	Iterations int
	Crossing   bool // the pair list contains crossing pairs

	// Final DP tables, only kept when Config.KeepTables is set.
	Score      *table.Table[int]
	Transition *table.Table[fold.Transition]
}
