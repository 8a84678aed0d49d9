package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// ScanCtx parses FASTA from r and calls emit once per record, in file order.
// Sequence lines are concatenated with surrounding whitespace trimmed. Lines
// before the first header form a record with an empty ID. A header with no
// sequence lines yields a record with an empty Seq.
//
// ScanCtx returns ctx.Err() promptly once ctx is done, or the first error
// returned by emit.
func ScanCtx(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		rec     Record
		started bool
	)
	flush := func() error {
		if !started && len(rec.Seq) == 0 {
			return nil
		}
		out := rec
		out.Seq = append([]byte(nil), rec.Seq...)
		return emit(out)
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			rec.ID, rec.Desc = parseHeader(line[1:])
			rec.Seq = rec.Seq[:0]
			started = true
			continue
		}
		rec.Seq = append(rec.Seq, bytes.TrimSpace(line)...)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return flush()
}

// parseHeader splits a header line (without '>') into ID and description.
func parseHeader(hdr []byte) (id, desc string) {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i]), string(bytes.TrimSpace(hdr[i+1:]))
	}
	return string(hdr), ""
}
