package scheme

// Default gap penalties and threshold.
const (
	DefaultOpen      = -5
	DefaultExtend    = -1
	DefaultThreshold = 7
)

// ExampleSequence is the RNA folded by `selffold --example`.
const ExampleSequence = "GCAGCUGCCAUCUUAGGGGCGCCUGGCGCUACGGGUUUCUCGUUGGAGGCGGCCUUCGUGGCAGCUGUAGACGCCGGGAAAAGGCAUAAAGUCCGUUGGCCGAC"

// DefaultMatch returns the built-in nucleotide table: Watson-Crick pairs
// (A–U, A–T, G–C) score positively, G–U wobble scores 1, everything else -5.
func DefaultMatch() map[byte]map[byte]int {
	return map[byte]map[byte]int{
		'A': {'A': -5, 'G': -5, 'C': -5, 'T': 2, 'U': 2},
		'G': {'A': -5, 'G': -5, 'C': 3, 'T': -5, 'U': 1},
		'C': {'A': -5, 'G': 3, 'C': -5, 'T': -5, 'U': -5},
		'T': {'A': 2, 'G': -5, 'C': -5, 'T': -5, 'U': -5},
		'U': {'A': 2, 'G': 1, 'C': -5, 'T': -5, 'U': -5},
	}
}

// Default returns the built-in scheme.
func Default() *Scheme {
	s, err := New(DefaultMatch(), Indel{Open: DefaultOpen, Extend: DefaultExtend}, DefaultThreshold)
	if err != nil {
		panic(err)
	}
	return s
}
