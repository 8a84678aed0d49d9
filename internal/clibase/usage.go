// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"

	"selffold/internal/version"
)

// UsageCommon installs a shared Usage() handler on fs.
// extra prints tool-specific sections (usage lines, scoring block, etc.).
func UsageCommon(fs *flag.FlagSet, name string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		// Header
		fmt.Fprintf(out, "%s – secondary structure by iterative self-alignment\n\n", name)
		fmt.Fprintln(out, "License: MIT")
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		if extra != nil {
			extra(out, def)
		}

		// Shared blocks
		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -i, --sequence string       Sequence to fold, SEQ or ID:SEQ (repeatable)")
		fmt.Fprintln(out, "  -s, --sequences file        FASTA file(s) (repeatable, .gz ok) or '-' for STDIN")
		fmt.Fprintf(out, "      --demo                  Fold the built-in example RNA [%s]\n", def("demo"))

		fmt.Fprintln(out, "\nPerformance:")
		fmt.Fprintf(out, "  -t, --threads int           Worker threads (0=all CPUs) [%s]\n", def("threads"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string         Output: text | tsv | table | json | jsonl [%s]\n", def("output"))
		fmt.Fprintf(out, "      --sort                  Sort outputs by sequence ID [%s]\n", def("sort"))
		fmt.Fprintf(out, "      --no-header             Suppress TSV header line [%s]\n", def("no-header"))
		fmt.Fprintf(out, "      --no-match-exit-code int  Exit code when nothing is reported [%s]\n", def("no-match-exit-code"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Suppress non-essential warnings [%s]\n", def("quiet"))
		fmt.Fprintln(out, "      --examples              Print usage examples and exit")
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
