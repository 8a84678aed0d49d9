// internal/output/json.go
package output

import (
	"io"

	"selffold/internal/engine"
	"selffold/internal/jsonutil"
	"selffold/pkg/api"
)

// ToAPIStructure converts a domain Product to the stable wire schema (v1).
// Pairs are listed by opening position; helices keep acceptance order.
func ToAPIStructure(p engine.Product) api.StructureV1 {
	v := api.StructureV1{
		SequenceID:  p.SequenceID,
		Description: p.Description,
		SourceFile:  p.SourceFile,
		Length:      len(p.Sequence),
		Sequence:    p.Sequence,
		Structure:   p.Structure,
		Pairs:       []api.PairV1{},
		Iterations:  p.Iterations,
		Crossing:    p.Crossing,
	}
	for _, hp := range sortedPairs(p.Helices) {
		v.Pairs = append(v.Pairs, api.PairV1{I: hp.I, J: hp.J})
	}
	for _, h := range p.Helices {
		hv := api.HelixV1{Score: h.Score, Pairs: make([]api.PairV1, 0, len(h.Pairs))}
		for _, q := range h.Pairs {
			hv.Pairs = append(hv.Pairs, api.PairV1{I: q.I, J: q.J})
		}
		v.Helices = append(v.Helices, hv)
	}
	return v
}

func toAPIStructures(list []engine.Product) []api.StructureV1 {
	out := make([]api.StructureV1, 0, len(list))
	for _, p := range list {
		out = append(out, ToAPIStructure(p))
	}
	return out
}

// WriteJSON writes a single JSON array of v1 structures (pretty-indented).
func WriteJSON(w io.Writer, list []engine.Product) error {
	return jsonutil.EncodePretty(w, toAPIStructures(list))
}
