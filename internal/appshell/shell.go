// Package appshell is the process wrapper shared by every selffold binary.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"selffold/internal/appcore"
)

// RunFunc is the signature of an app's RunContext.
type RunFunc func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// Main runs run under a context cancelled by SIGINT/SIGTERM and exits with
// its code. A cancelled run never exits 0.
func Main(run RunFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := Exec(ctx, run, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// Exec is Main without the process plumbing.
func Exec(ctx context.Context, run RunFunc, argv []string, stdout, stderr io.Writer) int {
	if len(argv) == 0 {
		argv = []string{"-h"}
	}
	code := run(ctx, argv, stdout, stderr)
	// Normalize cancellation exit code.
	if ctx.Err() != nil && code == appcore.ExitOK {
		code = appcore.ExitCancelled
	}
	return code
}
