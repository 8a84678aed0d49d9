// Package scheme holds the scoring configuration used by the folding engine:
// a pairwise match table, affine gap penalties and the acceptance threshold.
package scheme

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidConfig reports a scheme that cannot drive a fold.
var ErrInvalidConfig = errors.New("invalid scoring configuration")

// Indel holds the gap penalties. Open applies to the first gap step after a
// match, Extend to each following step in the same direction.
type Indel struct {
	Open   int
	Extend int
}

// Penalty returns Extend when extend is true, Open otherwise.
func (d Indel) Penalty(extend bool) int {
	if extend {
		return d.Extend
	}
	return d.Open
}

// Scheme is immutable once built; share it freely between engines.
type Scheme struct {
	match     map[byte]map[byte]int
	lut       [256][256]int
	defined   [256][256]bool
	indel     Indel
	threshold int
}

// New validates and compiles a scheme. The match table is copied.
func New(match map[byte]map[byte]int, indel Indel, threshold int) (*Scheme, error) {
	if len(match) == 0 {
		return nil, fmt.Errorf("%w: empty match table", ErrInvalidConfig)
	}
	if threshold < 0 {
		return nil, fmt.Errorf("%w: threshold %d must be ≥ 0", ErrInvalidConfig, threshold)
	}
	if indel.Open > 0 || indel.Extend > 0 {
		return nil, fmt.Errorf("%w: gap penalties must be ≤ 0 (open=%d extend=%d)", ErrInvalidConfig, indel.Open, indel.Extend)
	}
	if indel.Open > indel.Extend {
		return nil, fmt.Errorf("%w: gap open (%d) must cost at least as much as gap extend (%d)", ErrInvalidConfig, indel.Open, indel.Extend)
	}

	s := &Scheme{match: make(map[byte]map[byte]int, len(match)), indel: indel, threshold: threshold}
	for a, row := range match {
		cp := make(map[byte]int, len(row))
		for b, v := range row {
			cp[b] = v
			s.lut[a][b] = v
			s.defined[a][b] = true
		}
		s.match[a] = cp
	}
	return s, nil
}

// Score returns the match score for pairing a with b and whether the table
// defines it.
func (s *Scheme) Score(a, b byte) (int, bool) {
	return s.lut[a][b], s.defined[a][b]
}

// IndelPenalty returns the gap penalty for an opening (false) or extending
// (true) step.
func (s *Scheme) IndelPenalty(extend bool) int { return s.indel.Penalty(extend) }

func (s *Scheme) Indel() Indel { return s.indel }
func (s *Scheme) Threshold() int { return s.threshold }

// Match returns a copy of the match table.
func (s *Scheme) Match() map[byte]map[byte]int {
	out := make(map[byte]map[byte]int, len(s.match))
	for a, row := range s.match {
		cp := make(map[byte]int, len(row))
		for b, v := range row {
			cp[b] = v
		}
		out[a] = cp
	}
	return out
}

// Symbols lists every symbol that appears as a row or column key, sorted.
func (s *Scheme) Symbols() []byte {
	seen := make(map[byte]struct{})
	for a, row := range s.match {
		seen[a] = struct{}{}
		for b := range row {
			seen[b] = struct{}{}
		}
	}
	out := make([]byte, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// WithIndel returns a copy of s using indel.
func (s *Scheme) WithIndel(indel Indel) (*Scheme, error) {
	return New(s.match, indel, s.threshold)
}

// WithThreshold returns a copy of s using threshold.
func (s *Scheme) WithThreshold(threshold int) (*Scheme, error) {
	return New(s.match, s.indel, threshold)
}
