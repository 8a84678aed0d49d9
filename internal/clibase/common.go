// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"
	"fmt"

	"selffold/internal/cliutil"
	"selffold/internal/output"
)

// Common holds CLI fields shared by every selffold command.
type Common struct {
	// Input
	Inline   []string // --sequence values, "SEQ" or "ID:SEQ"
	SeqFiles []string
	Demo     bool

	// Performance
	Threads int

	// Output
	Output          string // text|tsv|table|json|jsonl
	Sort            bool
	Header          bool
	NoMatchExitCode int

	// Misc
	Quiet    bool
	Version  bool
	Examples bool
}

// Register wires shared flags onto fs and returns a pointer to the “no-header” bool
// that the caller can use to set Common.Header = !noHeader after parsing.
func Register(fs *flag.FlagSet, c *Common) *bool {
	// Inputs
	inline := &cliutil.StringSlice{Dst: &c.Inline}
	fs.Var(inline, "sequence", "sequence to fold (SEQ or ID:SEQ); repeatable")
	fs.Var(inline, "i", "alias of --sequence")
	seqVal := &cliutil.StringSlice{Dst: &c.SeqFiles}
	fs.Var(seqVal, "sequences", "FASTA file(s) (repeatable) or '-'")
	fs.Var(seqVal, "s", "alias of --sequences")
	fs.BoolVar(&c.Demo, "demo", false, "fold the built-in example RNA [false]")

	// Performance
	fs.IntVar(&c.Threads, "threads", 0, "worker threads (0=all CPUs) [0]")
	fs.IntVar(&c.Threads, "t", 0, "alias of --threads")

	// Output
	fs.StringVar(&c.Output, "output", output.FormatText, "output: text | tsv | table | json | jsonl [text]")
	fs.StringVar(&c.Output, "o", output.FormatText, "alias of --output")
	fs.BoolVar(&c.Sort, "sort", false, "sort outputs by sequence ID [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line [false]")
	fs.IntVar(&c.NoMatchExitCode, "no-match-exit-code", 1, "exit code when nothing is reported [1]")

	// Misc
	fs.BoolVar(&c.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&c.Examples, "examples", false, "print usage examples and exit [false]")

	return &noHeader
}

// AfterParse finalizes header and expands positionals, then runs shared validation.
func AfterParse(fs *flag.FlagSet, c *Common, noHeader *bool, posArgs []string) error {
	c.Header = !*noHeader

	if len(posArgs) > 0 {
		exp, err := cliutil.ExpandPositionals(posArgs)
		if err != nil {
			return err
		}
		c.SeqFiles = append(c.SeqFiles, exp...)
	}
	return Validate(c)
}

// Validate applies shared CLI invariants used by all tools.
func Validate(c *Common) error {
	if len(c.Inline) == 0 && len(c.SeqFiles) == 0 && !c.Demo {
		return errors.New("no input: give --sequence, FASTA file(s), or --demo")
	}
	if c.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	switch c.Output {
	case output.FormatText, output.FormatTSV, output.FormatTable, output.FormatJSON, output.FormatJSONL:
	default:
		return fmt.Errorf("invalid --output %q", c.Output)
	}
	if c.NoMatchExitCode < 0 || c.NoMatchExitCode > 255 {
		return errors.New("--no-match-exit-code must be between 0 and 255")
	}
	return nil
}
