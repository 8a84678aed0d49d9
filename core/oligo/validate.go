// Package oligo normalises and checks nucleotide sequences before folding.
package oligo

import (
	"fmt"
	"strings"
	"unicode"
)

// Nucleotides accepted by Validate: the IUPAC DNA codes plus U.
const Nucleotides = "ACGTURYSWKMBDHVN"

// Normalize removes whitespace and quotes and uppercases the rest.
func Normalize(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || r == '\'' || r == '"' {
			continue
		}
		out = append(out, unicode.ToUpper(r))
	}
	return string(out)
}

// Validate normalises raw and rejects any character outside Nucleotides.
// An empty sequence is valid.
func Validate(raw string) (string, error) {
	s := Normalize(raw)
	for i, r := range s {
		if !strings.ContainsRune(Nucleotides, r) {
			return "", fmt.Errorf("invalid base %q at %d; allowed: %s", r, i+1, strings.Join(strings.Split(Nucleotides, ""), " "))
		}
	}
	return s, nil
}

// Unscored returns the distinct symbols of seq that have no entry in
// alphabet, in order of first appearance.
func Unscored(seq []byte, alphabet []byte) []byte {
	var known [256]bool
	for _, c := range alphabet {
		known[c] = true
	}
	var seen [256]bool
	var out []byte
	for _, c := range seq {
		if !known[c] && !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

// ToRNA replaces T with U.
func ToRNA(seq []byte) []byte {
	out := make([]byte, len(seq))
	for i, c := range seq {
		if c == 'T' {
			c = 'U'
		}
		out[i] = c
	}
	return out
}

// Reverse returns seq read 3'→5'.
func Reverse(seq []byte) []byte {
	out := make([]byte, len(seq))
	for i, c := range seq {
		out[len(seq)-1-i] = c
	}
	return out
}
