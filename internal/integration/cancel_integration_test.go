package integration

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"selffold-core/scheme"
	"selffold/internal/foldapp"
)

func TestCtrlC_MidRun_Exit130(t *testing.T) {
	// Many records so folding is still underway when the signal lands.
	fn := filepath.Join(t.TempDir(), "cancel_big.fa")
	rec := ">r\n" + scheme.ExampleSequence + "\n"
	if err := os.WriteFile(fn, []byte(strings.Repeat(rec, 20000)), 0644); err != nil {
		t.Fatalf("write fasta: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	code := foldapp.RunContext(ctx, []string{"--threads", "2", "--quiet", fn}, io.Discard, io.Discard)
	if code != 130 {
		t.Fatalf("expected exit 130 on cancel, got %d", code)
	}
}
