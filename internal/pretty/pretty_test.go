package pretty

import (
	"strings"
	"testing"

	"selffold-core/fold"
	"selffold-core/table"
)

func TestRenderTable_Shape(t *testing.T) {
	seq := []byte("GAC")
	score := table.New(3, 0)
	score.Set(1, 1, 3)
	trans := table.New(3, fold.None)
	trans.Set(1, 1, fold.Diagonal)

	out := RenderTable("x", seq, score, trans, Options{ShowTransitions: true, CellWidth: 3})
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("want title+header+4 rows, got %d:\n%s", len(lines), out)
	}
	for _, l := range lines {
		if !strings.HasPrefix(l, "# ") {
			t.Fatalf("missing prefix: %q", l)
		}
	}
	if lines[0] != "# x (n=3)" {
		t.Fatalf("title=%q", lines[0])
	}
	if lines[1] != "#      -  C  A  G" {
		t.Fatalf("header=%q", lines[1])
	}
	if lines[3] != "#   G 0. 3\\ 0." {
		t.Fatalf("row 1=%q", lines[3])
	}
	if lines[5] != "#   C 0." {
		t.Fatalf("row 3=%q", lines[5])
	}
}

func TestRenderTable_DefaultsWithoutTransitions(t *testing.T) {
	score := table.New(1, 0)
	out := RenderTable("y", []byte("A"), score, nil, Options{ShowTransitions: true})
	want := "# y (n=1)\n#        -   A\n#    -   0   0\n#    A   0\n"
	if out != want {
		t.Fatalf("got:\n%q\nwant:\n%q", out, want)
	}
}
