// internal/output/tsv.go
package output

import (
	"fmt"
	"io"

	"selffold/internal/engine"
)

func writeTSVRows(w io.Writer, p engine.Product) error {
	for _, hp := range sortedPairs(p.Helices) {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\n", p.SourceFile, p.SequenceID, hp.I, hp.J, hp.Helix); err != nil {
			return err
		}
	}
	return nil
}

// WriteTSV writes one row per base pair. Unpaired sequences produce no rows.
func WriteTSV(w io.Writer, list []engine.Product, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, p := range list {
		if err := writeTSVRows(w, p); err != nil {
			return err
		}
	}
	return nil
}

// StreamTSV is the streaming form of WriteTSV.
func StreamTSV(w io.Writer, in <-chan engine.Product, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for p := range in {
		if err := writeTSVRows(w, p); err != nil {
			return err
		}
	}
	return nil
}
