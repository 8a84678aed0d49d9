package scheme

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	s := Default()
	if s.Threshold() != 7 {
		t.Fatalf("threshold=%d, want 7", s.Threshold())
	}
	if s.IndelPenalty(false) != -5 || s.IndelPenalty(true) != -1 {
		t.Fatalf("indel=%+v", s.Indel())
	}
	cases := []struct {
		a, b byte
		want int
	}{
		{'G', 'C', 3}, {'C', 'G', 3}, {'A', 'U', 2}, {'U', 'A', 2},
		{'G', 'U', 1}, {'U', 'G', 1}, {'A', 'T', 2}, {'A', 'A', -5},
	}
	for _, c := range cases {
		got, ok := s.Score(c.a, c.b)
		if !ok || got != c.want {
			t.Fatalf("Score(%c,%c)=%d,%v want %d", c.a, c.b, got, ok, c.want)
		}
	}
	if _, ok := s.Score('G', 'X'); ok {
		t.Fatalf("undefined pair reported as defined")
	}
	if got := string(s.Symbols()); got != "ACGTU" {
		t.Fatalf("Symbols=%q", got)
	}
}

func TestNewRejects(t *testing.T) {
	m := DefaultMatch()
	tests := []struct {
		name      string
		match     map[byte]map[byte]int
		indel     Indel
		threshold int
	}{
		{"empty table", nil, Indel{-5, -1}, 7},
		{"negative threshold", m, Indel{-5, -1}, -1},
		{"positive open", m, Indel{1, -1}, 7},
		{"positive extend", m, Indel{-5, 2}, 7},
		{"open cheaper than extend", m, Indel{-1, -5}, 7},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.match, tc.indel, tc.threshold); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("want ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestNewCopiesTable(t *testing.T) {
	m := map[byte]map[byte]int{'G': {'C': 3}}
	s, err := New(m, Indel{-5, -1}, 0)
	if err != nil {
		t.Fatal(err)
	}
	m['G']['C'] = 100
	if v, _ := s.Score('G', 'C'); v != 3 {
		t.Fatalf("scheme aliased caller's map: %d", v)
	}
	got := s.Match()
	got['G']['C'] = 50
	if v, _ := s.Score('G', 'C'); v != 3 {
		t.Fatalf("Match() leaked internal map: %d", v)
	}
}

func TestWithOverrides(t *testing.T) {
	s, err := Default().WithThreshold(2)
	if err != nil || s.Threshold() != 2 {
		t.Fatalf("WithThreshold: %v %v", s, err)
	}
	s, err = s.WithIndel(Indel{Open: -8, Extend: -2})
	if err != nil || s.Indel() != (Indel{-8, -2}) || s.Threshold() != 2 {
		t.Fatalf("WithIndel: %+v %v", s, err)
	}
	if _, err := s.WithThreshold(-3); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("want ErrInvalidConfig, got %v", err)
	}
}

const gcOnly = `# G/C only
open -4
extend -2
threshold 2
  g c a
G -5  3 -5
C  3 -5 -5
A -5 -5 -5
`

func TestRead(t *testing.T) {
	s, err := Read(strings.NewReader(gcOnly), "gc.tsv")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if s.Indel() != (Indel{-4, -2}) || s.Threshold() != 2 {
		t.Fatalf("settings not applied: %+v thr=%d", s.Indel(), s.Threshold())
	}
	if v, ok := s.Score('G', 'C'); !ok || v != 3 {
		t.Fatalf("G-C=%d,%v", v, ok)
	}
	if v, ok := s.Score('A', 'A'); !ok || v != -5 {
		t.Fatalf("A-A=%d,%v", v, ok)
	}
	if _, ok := s.Score('G', 'U'); ok {
		t.Fatalf("G-U should be undefined")
	}
}

func TestReadErrors(t *testing.T) {
	tests := map[string]string{
		"row width":   "A C\nA 1\n",
		"bad score":   "A C\nA 1 x\n",
		"long header": "AB C\n",
		"setting":     "gap -3\n",
		"bad setting": "open abc\n",
		"no rows":     "# nothing\n",
		"bad indel":   "open 3\nA\nA 1\n",
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Read(strings.NewReader(in), "x.tsv")
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("want ErrInvalidConfig, got %v", err)
			}
			if !strings.HasPrefix(err.Error(), "x.tsv") {
				t.Fatalf("error lacks file name: %v", err)
			}
		})
	}
}

func TestLoadTSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scheme.tsv")
	if err := os.WriteFile(path, []byte(gcOnly), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadTSV(path)
	if err != nil || s.Threshold() != 2 {
		t.Fatalf("LoadTSV: %v %v", s, err)
	}
	if _, err := LoadTSV(filepath.Join(t.TempDir(), "missing.tsv")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
