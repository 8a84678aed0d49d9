// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"selffold-core/scheme"
	"selffold/internal/cmdutil"
	"selffold/internal/engine"
	"selffold/internal/pipeline"
	"selffold/internal/writers"
)

// Exit codes shared by every command.
const (
	ExitOK        = 0
	ExitUsage     = 2
	ExitRuntime   = 3
	ExitCancelled = 130
)

type Options struct {
	Sources []pipeline.Source

	Scheme     *scheme.Scheme
	RNA        bool
	KeepTables bool

	Threads         int
	NoMatchExitCode int
}

type VisitorFunc[T any] func(engine.Product) (keep bool, out T, err error)

type WriterFactory[T any] interface {
	Start(out io.Writer, bufSize int) (chan<- T, <-chan error)
}

// Run folds every source, feeds kept outputs to the writer, and maps the
// outcome to an exit code.
func Run[T any](
	parent context.Context,
	stdout, stderr io.Writer,
	o Options,
	visit VisitorFunc[T],
	wf WriterFactory[T],
) int {
	outw := bufio.NewWriter(stdout)

	thr := o.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}

	eng := engine.New(engine.Config{
		Scheme:     o.Scheme,
		RNA:        o.RNA,
		KeepTables: o.KeepTables,
	})

	inCh, writeErr := wf.Start(outw, thr*4)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	total, perr := cmdutil.RunStream[T](
		ctx,
		pipeline.Config{Threads: thr},
		o.Sources,
		eng,
		visit,
		func(x T) error {
			select {
			case inCh <- x:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return ExitOK
	} else if werr != nil {
		fmt.Fprintln(stderr, werr)
		return ExitRuntime
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return ExitRuntime
	}

	if perr != nil {
		return ExitCode(stderr, perr)
	}
	if total == 0 {
		return o.NoMatchExitCode
	}
	return ExitOK
}

// ExitCode prints err (unless it is a cancellation) and classifies it.
func ExitCode(stderr io.Writer, err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitCancelled
	case errors.Is(err, scheme.ErrInvalidConfig):
		fmt.Fprintln(stderr, "error:", err)
		return ExitUsage
	default:
		fmt.Fprintln(stderr, "error:", err)
		return ExitRuntime
	}
}
