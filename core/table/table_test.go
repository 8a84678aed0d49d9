package table

import "testing"

func TestShapeAndAccess(t *testing.T) {
	tb := New(4, 0)
	if tb.Len() != 4 {
		t.Fatalf("Len=%d, want 4", tb.Len())
	}
	for i := 0; i <= 4; i++ {
		if got, want := len(tb.Row(i)), 4-i+1; got != want {
			t.Fatalf("row %d: len=%d, want %d", i, got, want)
		}
	}
	// every valid cell is distinct storage
	v := 1
	for i := 0; i <= 4; i++ {
		for j := 0; j <= 4-i; j++ {
			tb.Set(i, j, v)
			v++
		}
	}
	v = 1
	for i := 0; i <= 4; i++ {
		for j := 0; j <= 4-i; j++ {
			if got := tb.Get(i, j); got != v {
				t.Fatalf("cell (%d,%d)=%d, want %d", i, j, got, v)
			}
			v++
		}
	}
}

func TestDefaultFill(t *testing.T) {
	type code uint8
	tb := New[code](3, 2)
	for i := 0; i <= 3; i++ {
		for _, c := range tb.Row(i) {
			if c != 2 {
				t.Fatalf("row %d holds %d, want default 2", i, c)
			}
		}
	}
	tb.Set(1, 1, 0)
	tb.Reset()
	if tb.Get(1, 1) != 2 {
		t.Fatalf("Reset did not restore default")
	}
}

func TestMax(t *testing.T) {
	tests := []struct {
		name  string
		cells map[[2]int]int
		want  Max[int]
	}{
		{"empty", nil, Max[int]{}},
		{"non-positive only", map[[2]int]int{{1, 1}: -3, {2, 1}: 0}, Max[int]{}},
		{"single", map[[2]int]int{{2, 3}: 7}, Max[int]{Value: 7, I: 2, J: 3}},
		{"tie keeps earliest row", map[[2]int]int{{3, 1}: 5, {1, 4}: 5}, Max[int]{Value: 5, I: 1, J: 4}},
		{"tie keeps earliest column", map[[2]int]int{{2, 3}: 5, {2, 1}: 5}, Max[int]{Value: 5, I: 2, J: 1}},
		{"boundary ignored", map[[2]int]int{{0, 3}: 99, {3, 0}: 99, {1, 1}: 1}, Max[int]{Value: 1, I: 1, J: 1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tb := New(5, 0)
			for k, v := range tc.cells {
				tb.Set(k[0], k[1], v)
			}
			if got := MaxOf(tb); got != tc.want {
				t.Fatalf("MaxOf=%+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestZeroLength(t *testing.T) {
	tb := New(0, 0)
	if len(tb.Row(0)) != 1 {
		t.Fatalf("N=0 table must still hold the anchor cell")
	}
	if got := MaxOf(tb); got != (Max[int]{}) {
		t.Fatalf("MaxOf on empty table = %+v", got)
	}
}
