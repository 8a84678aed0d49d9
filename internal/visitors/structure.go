// internal/visitors/structure.go
package visitors

import (
	"io"

	"selffold-core/structure"
	"selffold/internal/cmdutil"
	"selffold/internal/engine"
	"selffold/internal/pretty"
)

// Structure filters folded products and reports side information on Stderr.
// It is called from the pipeline's collector, one product at a time.
type Structure struct {
	MinPairs   int       // drop products with fewer pairs
	DumpMatrix bool      // render the final score table (needs Product.Score)
	Stderr     io.Writer // destination for warnings and matrix dumps
	Quiet      bool
}

func (v Structure) Visit(p engine.Product) (bool, engine.Product, error) {
	if p.Crossing {
		a, b, _ := structure.FindCrossing(p.Pairs)
		cmdutil.Warnf(v.Stderr, v.Quiet, "%s: structure has crossing pairs (%d,%d) and (%d,%d)", p.SequenceID, a.I, a.J, b.I, b.J)
	}
	if v.DumpMatrix && p.Score != nil && v.Stderr != nil {
		_, _ = io.WriteString(v.Stderr, pretty.RenderTable(p.SequenceID, []byte(p.Sequence), p.Score, p.Transition,
			pretty.Options{ShowTransitions: true}))
	}
	if len(p.Pairs) < v.MinPairs {
		return false, p, nil
	}
	return true, p, nil
}
