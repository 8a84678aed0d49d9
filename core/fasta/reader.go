// Package fasta reads FASTA records from plain, gzip-compressed or stdin input.
package fasta

import (
	"context"
)

// Record is one parsed FASTA entry.
type Record struct {
	ID   string
	Desc string
	Seq  []byte
}

// ReadAll collects every record of path.
func ReadAll(ctx context.Context, path string) ([]Record, error) {
	var out []Record
	err := ScanPathCtx(ctx, path, func(r Record) error {
		out = append(out, r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
