package cliutil

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestSplitFlagsAndPositionals(t *testing.T) {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	var b bool
	fs.BoolVar(&b, "bool", false, "")
	flagArgs, posArgs := SplitFlagsAndPositionals(fs, []string{"--bool", "pos1", "--", "pos2"})
	if len(flagArgs) != 1 || len(posArgs) != 2 || posArgs[0] != "pos1" || posArgs[1] != "pos2" {
		t.Fatalf("unexpected split: %v / %v", flagArgs, posArgs)
	}
}

func TestExpandPositionals(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.fa")
	b := filepath.Join(dir, "b.fa")
	_ = os.WriteFile(a, []byte(">a\nA\n"), 0o644)
	_ = os.WriteFile(b, []byte(">b\nA\n"), 0o644)
	got, err := ExpandPositionals([]string{filepath.Join(dir, "*.fa")})
	if err != nil || len(got) != 2 {
		t.Fatalf("expand: err=%v got=%v", err, got)
	}
}

func TestSplitKeepsNegativeValues(t *testing.T) {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	var open int
	var rna bool
	fs.IntVar(&open, "gap-open", 0, "")
	fs.BoolVar(&rna, "rna", false, "")
	flagArgs, posArgs := SplitFlagsAndPositionals(fs, []string{"in.fa", "--gap-open", "-4", "--rna", "-"})
	if len(posArgs) != 2 || posArgs[0] != "in.fa" || posArgs[1] != "-" {
		t.Fatalf("positionals: %v", posArgs)
	}
	if err := fs.Parse(flagArgs); err != nil || open != -4 || !rna {
		t.Fatalf("parse: err=%v open=%d rna=%v", err, open, rna)
	}
	set := SetFlags(fs)
	if !set["gap-open"] || !set["rna"] || len(set) != 2 {
		t.Fatalf("SetFlags=%v", set)
	}
}

func TestStringSlice(t *testing.T) {
	var dst []string
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	fs.Var(&StringSlice{Dst: &dst}, "sequence", "")
	if err := fs.Parse([]string{"--sequence", "AC", "--sequence", "hp:GGGAAACCC"}); err != nil {
		t.Fatal(err)
	}
	if len(dst) != 2 || dst[1] != "hp:GGGAAACCC" {
		t.Fatalf("dst=%v", dst)
	}
	if (&StringSlice{Dst: &dst}).String() != "AC,hp:GGGAAACCC" || (&StringSlice{}).String() != "" {
		t.Fatal("String() mismatch")
	}
}
