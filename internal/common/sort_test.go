package common

import (
	"testing"

	"selffold/internal/engine"
)

func TestSortProducts(t *testing.T) {
	ps := []engine.Product{
		{SequenceID: "b", SourceFile: "x", Index: 0},
		{SequenceID: "a", SourceFile: "y", Index: 1},
		{SequenceID: "a", SourceFile: "x", Index: 3},
		{SequenceID: "a", SourceFile: "x", Index: 2},
	}
	SortProducts(ps)
	want := []int{2, 3, 1, 0}
	for i, p := range ps {
		if p.Index != want[i] {
			t.Fatalf("position %d: got index %d, want %d", i, p.Index, want[i])
		}
	}
}
