// internal/foldapp/app.go
package foldapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"selffold-core/fasta"
	"selffold-core/scheme"
	"selffold-core/structure"
	"selffold/internal/appcore"
	"selffold/internal/clibase"
	"selffold/internal/engine"
	"selffold/internal/foldcli"
	"selffold/internal/pipeline"
	"selffold/internal/version"
	"selffold/internal/visitors"
	"selffold/internal/writers"
)

const name = "selffold"

// flushExit flushes w and maps the outcome to an exit code, treating a
// closed downstream pipe as success.
func flushExit(w *bufio.Writer, stderr io.Writer, code int) int {
	if err := w.Flush(); writers.IsBrokenPipe(err) {
		return appcore.ExitOK
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return appcore.ExitRuntime
	}
	return code
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := foldcli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		argv = []string{"-h"}
	}
	opts, err := foldcli.ParseArgs(fs, argv)
	if err != nil {
		switch {
		case errors.Is(err, flag.ErrHelp):
			fs.SetOutput(outw)
			fs.Usage()
			return flushExit(outw, stderr, appcore.ExitOK)
		case errors.Is(err, clibase.ErrPrintedAndExitOK):
			foldcli.PrintExamples(outw, name)
			return flushExit(outw, stderr, appcore.ExitOK)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return flushExit(outw, stderr, appcore.ExitUsage)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "%s version %s\n", name, version.Version)
		return flushExit(outw, stderr, appcore.ExitOK)
	}

	sch, err := opts.Scheme()
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return appcore.ExitUsage
	}

	coreOpts := appcore.Options{
		Sources:         Sources(opts),
		Scheme:          sch,
		RNA:             opts.RNA,
		KeepTables:      opts.DumpMatrix,
		Threads:         opts.Threads,
		NoMatchExitCode: opts.NoMatchExitCode,
	}
	visit := visitors.Structure{
		MinPairs:   opts.MinPairs,
		DumpMatrix: opts.DumpMatrix,
		Stderr:     stderr,
		Quiet:      opts.Quiet,
	}
	writer := appcore.NewProductWriterFactory(opts.Output, opts.Sort, opts.Header)
	return appcore.Run[engine.Product](parent, stdout, stderr, coreOpts, visit.Visit, writer)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// Sources orders the inputs: inline sequences, then the demo RNA, then FASTA
// files in command-line order.
func Sources(o foldcli.Options) []pipeline.Source {
	var inline []fasta.Record
	for _, s := range o.Inline {
		id, seq := structure.DefaultHeader, s
		if k := strings.IndexByte(s, ':'); k >= 0 {
			id, seq = s[:k], s[k+1:]
		}
		inline = append(inline, fasta.Record{ID: id, Seq: []byte(seq)})
	}
	if o.Demo {
		inline = append(inline, fasta.Record{ID: "example", Seq: []byte(scheme.ExampleSequence)})
	}

	var out []pipeline.Source
	if len(inline) > 0 {
		out = append(out, pipeline.Source{Records: inline})
	}
	for _, f := range o.SeqFiles {
		out = append(out, pipeline.Source{Path: f})
	}
	return out
}
