// internal/common/sort.go
package common

import (
	"sort"

	"selffold/internal/engine"
)

// LessProduct defines a stable order for products (for --sort).
func LessProduct(a, b engine.Product) bool {
	if a.SequenceID != b.SequenceID {
		return a.SequenceID < b.SequenceID
	}
	if a.SourceFile != b.SourceFile {
		return a.SourceFile < b.SourceFile
	}
	return a.Index < b.Index
}

func SortProducts(ps []engine.Product) {
	sort.SliceStable(ps, func(i, j int) bool { return LessProduct(ps[i], ps[j]) })
}
