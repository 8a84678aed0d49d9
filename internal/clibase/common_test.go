package clibase

import (
	"bytes"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func parse(t *testing.T, args ...string) (Common, error) {
	t.Helper()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(&bytes.Buffer{})
	var c Common
	noHeader := Register(fs, &c)
	if err := fs.Parse(args); err != nil {
		return c, err
	}
	return c, AfterParse(fs, &c, noHeader, fs.Args())
}

func TestCommonDefaults(t *testing.T) {
	c, err := parse(t, "--demo")
	if err != nil {
		t.Fatal(err)
	}
	if c.Output != "text" || !c.Header || c.NoMatchExitCode != 1 || c.Threads != 0 {
		t.Fatalf("defaults: %+v", c)
	}
}

func TestCommonAliasesAndPositionals(t *testing.T) {
	dir := t.TempDir()
	fa := filepath.Join(dir, "a.fa")
	if err := os.WriteFile(fa, []byte(">a\nGC\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := parse(t, "-i", "GGGAAACCC", "-i", "x:AC", "-s", "-", "-o", "jsonl", "-t", "2", "-q", "--no-header", filepath.Join(dir, "*.fa"))
	if err != nil {
		t.Fatal(err)
	}
	if len(c.Inline) != 2 || c.Inline[1] != "x:AC" {
		t.Fatalf("inline=%v", c.Inline)
	}
	if len(c.SeqFiles) != 2 || c.SeqFiles[0] != "-" || c.SeqFiles[1] != fa {
		t.Fatalf("files=%v", c.SeqFiles)
	}
	if c.Output != "jsonl" || c.Threads != 2 || !c.Quiet || c.Header {
		t.Fatalf("parsed: %+v", c)
	}
}

func TestCommonValidation(t *testing.T) {
	cases := map[string][]string{
		"no input":       {},
		"bad output":     {"--demo", "--output", "xml"},
		"neg threads":    {"--demo", "--threads", "-1"},
		"bad exit code":  {"--demo", "--no-match-exit-code", "300"},
		"glob unmatched": {filepath.Join(t.TempDir(), "*.fa")},
	}
	for name, args := range cases {
		if _, err := parse(t, args...); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestUsageCommon(t *testing.T) {
	fs := flag.NewFlagSet("selffold", flag.ContinueOnError)
	var c Common
	Register(fs, &c)
	var buf bytes.Buffer
	fs.SetOutput(&buf)
	UsageCommon(fs, "selffold", func(out io.Writer, def func(string) string) {
		_, _ = out.Write([]byte("EXTRA " + def("output") + "\n"))
	})
	fs.Usage()
	s := buf.String()
	for _, want := range []string{"selffold –", "EXTRA text", "--sequence string", "--no-match-exit-code int  Exit code when nothing is reported [1]"} {
		if !strings.Contains(s, want) {
			t.Fatalf("usage missing %q:\n%s", want, s)
		}
	}
}

func TestPrintExamples(t *testing.T) {
	var buf bytes.Buffer
	PrintExamples(&buf, "selffold", func(w io.Writer) { _, _ = w.Write([]byte("body\n")) })
	if !strings.HasPrefix(buf.String(), "selffold — quickstart\n\nbody\n") {
		t.Fatalf("got %q", buf.String())
	}
	PrintExamples(nil, "x", nil)
}
