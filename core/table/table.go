// Package table provides the triangular grid the folding engine fills.
//
// A Table for a sequence of length N holds cells (i, j) with 0 ≤ i ≤ N and
// 0 ≤ j ≤ N-i. Row i therefore has N-i+1 cells; the rows are laid out back to
// back in one slice so that i+j ≤ N is a property of the allocation.
package table

// Number is the set of cell types Max can compare.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Table is a triangular grid of T indexed by (i, j) with i+j ≤ N.
type Table[T any] struct {
	n    int
	def  T
	data []T
}

// Max is the result of a Table scan.
type Max[T any] struct {
	Value T
	I, J  int
}

// New allocates a table for a sequence of length n, filled with def.
func New[T any](n int, def T) *Table[T] {
	if n < 0 {
		n = 0
	}
	t := &Table[T]{n: n, def: def, data: make([]T, size(n))}
	for k := range t.data {
		t.data[k] = def
	}
	return t
}

// size is the number of cells in a triangle of side n+1.
func size(n int) int { return (n + 1) * (n + 2) / 2 }

// offset returns the index of cell (i, 0).
func (t *Table[T]) offset(i int) int { return i*(t.n+1) - i*(i-1)/2 }

func (t *Table[T]) idx(i, j int) int { return t.offset(i) + j }

// Len returns N, the sequence length the table was sized for.
func (t *Table[T]) Len() int { return t.n }

// Default returns the value cells were initialised with.
func (t *Table[T]) Default() T { return t.def }

// Get returns cell (i, j).
func (t *Table[T]) Get(i, j int) T { return t.data[t.idx(i, j)] }

// Set stores v at (i, j).
func (t *Table[T]) Set(i, j int, v T) { t.data[t.idx(i, j)] = v }

// Row returns row i (cells j = 0..N-i). The slice aliases the table.
func (t *Table[T]) Row(i int) []T {
	off := t.offset(i)
	return t.data[off : off+t.n-i+1]
}

// Reset writes def into every cell.
func (t *Table[T]) Reset() {
	for k := range t.data {
		t.data[k] = t.def
	}
}

// MaxOf scans rows 1..N and columns 1..N-i of t and returns the first cell
// holding the largest value. Comparison is strict, so ties keep the earliest
// cell in row-major order. If no cell beats the default, the default is
// returned at (0, 0).
func MaxOf[T Number](t *Table[T]) Max[T] {
	best := Max[T]{Value: t.def}
	for i := 1; i <= t.n; i++ {
		row := t.Row(i)
		for j := 1; j < len(row); j++ {
			if row[j] > best.Value {
				best = Max[T]{Value: row[j], I: i, J: j}
			}
		}
	}
	return best
}
