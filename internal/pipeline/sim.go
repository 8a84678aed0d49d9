// internal/pipeline/sim.go
package pipeline

import "selffold/internal/engine"

// Folder is the minimal capability the pipeline needs.
// Any engine (including fakes in tests) can satisfy this.
type Folder interface {
	FoldRecord(id, desc string, seq []byte) (engine.Product, error)
}
