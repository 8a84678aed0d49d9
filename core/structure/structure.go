// Package structure renders accepted base pairs in dot-bracket notation and
// checks pair lists for well-formedness.
package structure

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"selffold-core/fold"
)

// DefaultHeader is used when a sequence has no name of its own.
const DefaultHeader = "sequence"

var (
	ErrPairBounds   = errors.New("pair out of range")
	ErrPairOverlap  = errors.New("position paired twice")
	ErrCrossing     = errors.New("crossing pairs")
	ErrUnbalanced   = errors.New("unbalanced brackets")
	ErrBadStructure = errors.New("invalid structure character")
)

// Record is the three-line structure report.
type Record struct {
	Header    string
	Sequence  string
	Structure string
}

// String renders ">header\nsequence\nstructure" without a trailing newline.
func (r Record) String() string {
	return ">" + r.Header + "\n" + r.Sequence + "\n" + r.Structure
}

// Report builds the record for seq and its pairs. An empty header becomes
// DefaultHeader.
func Report(header, seq string, pairs []fold.Pair) Record {
	if header == "" {
		header = DefaultHeader
	}
	return Record{Header: header, Sequence: seq, Structure: DotBracket(len(seq), pairs)}
}

// DotBracket returns a string of n dots with '(' at each pair's I and ')' at
// its J (1-based). Pair order does not matter.
func DotBracket(n int, pairs []fold.Pair) string {
	b := make([]byte, n)
	for k := range b {
		b[k] = '.'
	}
	for _, p := range pairs {
		b[p.I-1] = '('
		b[p.J-1] = ')'
	}
	return string(b)
}

// PartnerTable returns, for positions 1..n, the 1-based partner of each
// position or 0 when it is unpaired. Index 0 of the result is unused.
func PartnerTable(n int, pairs []fold.Pair) []int {
	partner := make([]int, n+1)
	for _, p := range pairs {
		partner[p.I] = p.J
		partner[p.J] = p.I
	}
	return partner
}

// FormatPartnerTable renders three tab-terminated rows: positions, symbols
// and partners.
func FormatPartnerTable(seq string, pairs []fold.Pair) string {
	partner := PartnerTable(len(seq), pairs)
	var sb strings.Builder
	for i := range seq {
		fmt.Fprintf(&sb, "%d\t", i+1)
	}
	sb.WriteByte('\n')
	for i := range seq {
		sb.WriteByte(seq[i])
		sb.WriteByte('\t')
	}
	sb.WriteByte('\n')
	for i := range seq {
		fmt.Fprintf(&sb, "%d\t", partner[i+1])
	}
	sb.WriteByte('\n')
	return sb.String()
}

// Validate checks that every pair lies in 1..n with I < J, that no position
// is used twice and that no two pairs cross. The first problem found is
// returned.
func Validate(n int, pairs []fold.Pair) error {
	used := make(map[int]fold.Pair, 2*len(pairs))
	for _, p := range pairs {
		if p.I < 1 || p.J > n || p.I >= p.J {
			return fmt.Errorf("%w: (%d,%d) with n=%d", ErrPairBounds, p.I, p.J, n)
		}
		for _, k := range [2]int{p.I, p.J} {
			if q, ok := used[k]; ok {
				return fmt.Errorf("%w: %d in (%d,%d) and (%d,%d)", ErrPairOverlap, k, q.I, q.J, p.I, p.J)
			}
			used[k] = p
		}
	}
	if a, b, ok := FindCrossing(pairs); ok {
		return fmt.Errorf("%w: (%d,%d) and (%d,%d)", ErrCrossing, a.I, a.J, b.I, b.J)
	}
	return nil
}

// FindCrossing returns the first two pairs (by opening position) that cross,
// i.e. a.I < b.I < a.J < b.J. Pairs must already be disjoint.
func FindCrossing(pairs []fold.Pair) (a, b fold.Pair, ok bool) {
	sorted := append([]fold.Pair(nil), pairs...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].I < sorted[j].I })

	var open []fold.Pair
	for _, p := range sorted {
		for len(open) > 0 && open[len(open)-1].J < p.I {
			open = open[:len(open)-1]
		}
		if len(open) > 0 && open[len(open)-1].J < p.J {
			return open[len(open)-1], p, true
		}
		open = append(open, p)
	}
	return fold.Pair{}, fold.Pair{}, false
}

// ParseDotBracket is the inverse of DotBracket. Pairs are returned sorted by
// opening position.
func ParseDotBracket(s string) ([]fold.Pair, error) {
	var stack []int
	var pairs []fold.Pair
	for k := 0; k < len(s); k++ {
		switch s[k] {
		case '.':
		case '(':
			stack = append(stack, k+1)
		case ')':
			if len(stack) == 0 {
				return nil, fmt.Errorf("%w: unmatched ')' at %d", ErrUnbalanced, k+1)
			}
			i := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			pairs = append(pairs, fold.Pair{I: i, J: k + 1})
		default:
			return nil, fmt.Errorf("%w: %q at %d", ErrBadStructure, s[k], k+1)
		}
	}
	if len(stack) > 0 {
		return nil, fmt.Errorf("%w: unmatched '(' at %d", ErrUnbalanced, stack[len(stack)-1])
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].I < pairs[j].I })
	return pairs, nil
}
