// Package foldcli parses the selffold command line.
package foldcli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"selffold-core/scheme"
	"selffold/internal/clibase"
	"selffold/internal/cliutil"
)

type Options struct {
	clibase.Common

	// Scoring
	SchemeFile string
	Threshold  int
	GapOpen    int
	GapExtend  int
	RNA        bool

	// Reporting
	MinPairs   int
	DumpMatrix bool

	// flags given explicitly, so they override the scheme file
	set map[string]bool
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] --sequence GGGAAACCC\n", name)
		_, _ = fmt.Fprintf(out, "  %s [options] seqs.fa[.gz] ...\n", name)
		_, _ = fmt.Fprintf(out, "  %s [options] --scheme matrix.tsv --sequences -\n", name)

		_, _ = fmt.Fprintln(out, "\nScoring:")
		_, _ = fmt.Fprintln(out, "      --scheme file           Score matrix TSV (symbol rows/columns, optional open/extend/threshold lines)")
		_, _ = fmt.Fprintf(out, "      --threshold int         Stop when the best cell score is ≤ this [%s]\n", def("threshold"))
		_, _ = fmt.Fprintf(out, "      --gap-open int          Gap opening penalty (≤ 0) [%s]\n", def("gap-open"))
		_, _ = fmt.Fprintf(out, "      --gap-extend int        Gap extension penalty (≤ 0) [%s]\n", def("gap-extend"))
		_, _ = fmt.Fprintf(out, "      --rna                   Read T as U before folding [%s]\n", def("rna"))

		_, _ = fmt.Fprintln(out, "\nReporting:")
		_, _ = fmt.Fprintf(out, "      --min-pairs int         Only report structures with at least N pairs [%s]\n", def("min-pairs"))
		_, _ = fmt.Fprintf(out, "      --dump-matrix           Print the final score table to STDERR [%s]\n", def("dump-matrix"))
	})
	return fs
}

// PrintExamples writes the quickstart shown by --examples.
func PrintExamples(out io.Writer, name string) {
	clibase.PrintExamples(out, name, func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "# Fold one hairpin with a low threshold")
		_, _ = fmt.Fprintf(w, "%s --threshold 2 --sequence GGGAAACCC\n\n", name)
		_, _ = fmt.Fprintln(w, "# Fold every record of a gzipped FASTA as JSON lines on 8 threads")
		_, _ = fmt.Fprintf(w, "%s -t 8 -o jsonl rnas.fa.gz\n\n", name)
		_, _ = fmt.Fprintln(w, "# Base-pair list with a custom matrix and softer gaps")
		_, _ = fmt.Fprintf(w, "%s --scheme matrix.tsv --gap-open -3 -o tsv rnas.fa\n\n", name)
		_, _ = fmt.Fprintln(w, "# The built-in example, with the DP table on STDERR")
		_, _ = fmt.Fprintf(w, "%s --demo --dump-matrix\n", name)
	})
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool

	noHeader := clibase.Register(fs, &o.Common)

	fs.StringVar(&o.SchemeFile, "scheme", "", "score matrix TSV")
	fs.IntVar(&o.Threshold, "threshold", scheme.DefaultThreshold, "stop when the best score is ≤ this")
	fs.IntVar(&o.GapOpen, "gap-open", scheme.DefaultOpen, "gap opening penalty")
	fs.IntVar(&o.GapExtend, "gap-extend", scheme.DefaultExtend, "gap extension penalty")
	fs.BoolVar(&o.RNA, "rna", false, "read T as U [false]")
	fs.IntVar(&o.MinPairs, "min-pairs", 0, "only report structures with ≥ N pairs [0]")
	fs.BoolVar(&o.DumpMatrix, "dump-matrix", false, "print the final score table to STDERR [false]")
	fs.BoolVar(&help, "h", false, "show this help [false]")
	fs.BoolVar(&help, "help", false, "show this help [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if help {
		return o, flag.ErrHelp
	}
	if o.Version {
		return o, nil
	}
	if o.Examples {
		return o, clibase.ErrPrintedAndExitOK
	}
	o.set = cliutil.SetFlags(fs)

	if err := clibase.AfterParse(fs, &o.Common, noHeader, posArgs); err != nil {
		return o, err
	}
	if o.MinPairs < 0 {
		return o, errors.New("--min-pairs must be ≥ 0")
	}
	return o, nil
}

// Scheme builds the scoring scheme: the built-in default or --scheme, then
// any of --gap-open/--gap-extend/--threshold given on the command line.
// Errors wrap scheme.ErrInvalidConfig.
func (o Options) Scheme() (*scheme.Scheme, error) {
	s := scheme.Default()
	if o.SchemeFile != "" {
		var err error
		if s, err = scheme.LoadTSV(o.SchemeFile); err != nil {
			return nil, err
		}
	}
	override := func(name string) bool { return o.SchemeFile == "" || o.set[name] }
	indel := s.Indel()
	if override("gap-open") {
		indel.Open = o.GapOpen
	}
	if override("gap-extend") {
		indel.Extend = o.GapExtend
	}
	s, err := s.WithIndel(indel)
	if err != nil {
		return nil, err
	}
	if override("threshold") {
		return s.WithThreshold(o.Threshold)
	}
	return s, nil
}
