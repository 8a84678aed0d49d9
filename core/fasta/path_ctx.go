package fasta

import (
	"context"
	"fmt"
)

// ScanPathCtx opens path (see Open) and scans it with ScanCtx.
// Open errors are returned before any record is emitted.
func ScanPathCtx(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()
	if err := ScanCtx(ctx, rc, emit); err != nil {
		if path != "-" {
			return fmt.Errorf("%s: %w", path, err)
		}
		return err
	}
	return nil
}
