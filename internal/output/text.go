// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"selffold-core/structure"
	"selffold/internal/engine"
)

// FormatTextRecord renders the three-line record for p with a trailing newline.
func FormatTextRecord(p engine.Product) string {
	return structure.Report(p.SequenceID, p.Sequence, p.Pairs).String() + "\n"
}

// WriteText prints one three-line record per product.
func WriteText(w io.Writer, list []engine.Product) error {
	for _, p := range list {
		if _, err := io.WriteString(w, FormatTextRecord(p)); err != nil {
			return err
		}
	}
	return nil
}

// StreamText prints records as they arrive.
func StreamText(w io.Writer, in <-chan engine.Product) error {
	for p := range in {
		if _, err := io.WriteString(w, FormatTextRecord(p)); err != nil {
			return err
		}
	}
	return nil
}

// FormatTableRecord renders the partner table for p under a ">id" line.
func FormatTableRecord(p engine.Product) string {
	return fmt.Sprintf(">%s\n%s", p.SequenceID, structure.FormatPartnerTable(p.Sequence, p.Pairs))
}

// WriteTable prints the partner table of every product.
func WriteTable(w io.Writer, list []engine.Product) error {
	for _, p := range list {
		if _, err := io.WriteString(w, FormatTableRecord(p)); err != nil {
			return err
		}
	}
	return nil
}

// StreamTable prints partner tables as products arrive.
func StreamTable(w io.Writer, in <-chan engine.Product) error {
	for p := range in {
		if _, err := io.WriteString(w, FormatTableRecord(p)); err != nil {
			return err
		}
	}
	return nil
}
