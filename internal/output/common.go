package output

import (
	"sort"

	"selffold-core/fold"
)

// TSVHeader is the canonical header row for TSV output.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "source_file\tsequence_id\ti\tj\thelix"

// sortedPairs returns the pairs ordered by opening position, each tagged with
// the 1-based helix it was accepted in.
func sortedPairs(helices []fold.Helix) []helixPair {
	var out []helixPair
	for h, hx := range helices {
		for _, p := range hx.Pairs {
			out = append(out, helixPair{Pair: p, Helix: h + 1})
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].I < out[b].I })
	return out
}

type helixPair struct {
	fold.Pair
	Helix int
}
