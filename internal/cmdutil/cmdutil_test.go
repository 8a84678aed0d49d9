package cmdutil

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"selffold-core/fasta"
	"selffold/internal/engine"
	"selffold/internal/pipeline"
)

func TestWarnf(t *testing.T) {
	var b bytes.Buffer
	Warnf(&b, false, "record %s has %d crossing pairs", "x", 2)
	if b.String() != "WARN: record x has 2 crossing pairs\n" {
		t.Fatalf("got %q", b.String())
	}
	b.Reset()
	Warnf(&b, true, "hidden")
	if b.Len() != 0 {
		t.Fatalf("quiet must suppress, got %q", b.String())
	}
}

func TestRunStream_FiltersAndCounts(t *testing.T) {
	src := pipeline.Source{Records: []fasta.Record{
		{ID: "a", Seq: []byte("GGGAAACCC")},
		{ID: "b", Seq: []byte("AAAA")},
	}}
	eng := engine.New(engine.Config{})
	var sent []string
	n, err := RunStream[string](context.Background(), pipeline.Config{Threads: 2}, []pipeline.Source{src}, eng,
		func(p engine.Product) (bool, string, error) { return p.SequenceID == "b", p.SequenceID, nil },
		func(s string) error { sent = append(sent, s); return nil },
	)
	if err != nil || n != 1 || len(sent) != 1 || sent[0] != "b" {
		t.Fatalf("n=%d sent=%v err=%v", n, sent, err)
	}

	boom := errors.New("boom")
	_, err = RunStream[string](context.Background(), pipeline.Config{Threads: 1}, []pipeline.Source{src}, eng,
		func(engine.Product) (bool, string, error) { return false, "", boom },
		func(string) error { return nil },
	)
	if !errors.Is(err, boom) {
		t.Fatalf("visitor error not propagated: %v", err)
	}
}
