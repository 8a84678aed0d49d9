package scheme

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadTSV reads a scheme from a whitespace-separated matrix file.
//
//	# comments and blank lines are ignored
//	open      -5
//	extend    -1
//	threshold  7
//	   A  C  G  U
//	A -5 -5 -5  2
//	C -5 -5  3 -5
//	...
//
// The first line made only of single-character fields is the column header;
// each following row starts with its symbol. Symbols are upper-cased. The
// open/extend/threshold lines are optional and default to the built-in values.
func LoadTSV(path string) (*Scheme, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	return Read(fh, path)
}

// Read parses the LoadTSV format from r; name labels error messages.
func Read(r io.Reader, name string) (*Scheme, error) {
	indel := Indel{Open: DefaultOpen, Extend: DefaultExtend}
	threshold := DefaultThreshold
	match := make(map[byte]map[byte]int)
	var cols []byte

	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		f := strings.Fields(line)

		if len(f) == 2 && len(f[0]) > 1 {
			v, err := strconv.Atoi(f[1])
			if err != nil {
				return nil, fmt.Errorf("%s:%d: bad %s value %q: %w", name, ln, f[0], f[1], ErrInvalidConfig)
			}
			switch strings.ToLower(f[0]) {
			case "open":
				indel.Open = v
			case "extend":
				indel.Extend = v
			case "threshold":
				threshold = v
			default:
				return nil, fmt.Errorf("%s:%d: unknown setting %q: %w", name, ln, f[0], ErrInvalidConfig)
			}
			continue
		}

		if cols == nil {
			for _, s := range f {
				if len(s) != 1 {
					return nil, fmt.Errorf("%s:%d: header symbol %q must be one character: %w", name, ln, s, ErrInvalidConfig)
				}
				cols = append(cols, upper(s[0]))
			}
			continue
		}

		if len(f[0]) != 1 {
			return nil, fmt.Errorf("%s:%d: row symbol %q must be one character: %w", name, ln, f[0], ErrInvalidConfig)
		}
		if len(f) != len(cols)+1 {
			return nil, fmt.Errorf("%s:%d: expected %d scores, got %d: %w", name, ln, len(cols), len(f)-1, ErrInvalidConfig)
		}
		a := upper(f[0][0])
		row := match[a]
		if row == nil {
			row = make(map[byte]int, len(cols))
			match[a] = row
		}
		for k, s := range f[1:] {
			v, err := strconv.Atoi(s)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: bad score %q: %w", name, ln, s, ErrInvalidConfig)
			}
			row[cols[k]] = v
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	s, err := New(match, indel, threshold)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return s, nil
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
