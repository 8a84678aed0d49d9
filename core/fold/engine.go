// Package fold predicts a nested pairing structure by repeatedly extracting
// the best local alignment between a sequence and its own reversal.
//
// Each pass fills a local (zero-floored) affine-gap alignment table over the
// triangle i+j ≤ N, takes its maximum, traces the alignment back and accepts
// the diagonal steps as base pairs. Rows and columns used by an accepted
// pair, together with their mirror images, are masked so that later passes
// can never reuse a position. Folding stops once the table maximum no longer
// exceeds the scheme's threshold.
package fold

import (
	"fmt"

	"selffold-core/scheme"
	"selffold-core/table"
)

// Engine owns the tables of one fold. It is not safe for concurrent use.
type Engine struct {
	seq    []byte
	inv    []byte
	n      int
	scheme *scheme.Scheme

	score *table.Table[int]
	trans *table.Table[Transition]

	maskRows map[int]struct{}
	maskCols map[int]struct{}

	state      State
	pairs      []Pair
	helices    []Helix
	iterations int
}

// New folds seq under s and returns the finished engine.
// The sequence is copied; symbols are used exactly as given.
func New(seq []byte, s *scheme.Scheme) (*Engine, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil scheme", scheme.ErrInvalidConfig)
	}
	e := newEngine(seq, s)
	if err := e.control(); err != nil {
		return nil, err
	}
	return e, nil
}

func newEngine(seq []byte, s *scheme.Scheme) *Engine {
	n := len(seq)
	e := &Engine{
		seq:      append([]byte(nil), seq...),
		inv:      make([]byte, n),
		n:        n,
		scheme:   s,
		score:    table.New(n, 0),
		trans:    table.New(n, None),
		maskRows: map[int]struct{}{0: {}},
		maskCols: map[int]struct{}{0: {}},
	}
	for k := range seq {
		e.inv[k] = seq[n-1-k]
	}
	return e
}

// Fold is New followed by Result.
func Fold(seq []byte, s *scheme.Scheme) (Result, error) {
	e, err := New(seq, s)
	if err != nil {
		return Result{}, err
	}
	return e.Result(), nil
}

// Result returns a copy of the accepted pairs and helices.
func (e *Engine) Result() Result {
	r := Result{
		Length:     e.n,
		Pairs:      append([]Pair(nil), e.pairs...),
		Helices:    make([]Helix, len(e.helices)),
		Iterations: e.iterations,
	}
	for k, h := range e.helices {
		h.Pairs = append([]Pair(nil), h.Pairs...)
		r.Helices[k] = h
	}
	return r
}

func (e *Engine) State() State { return e.state }

// Sequence returns the folded sequence. Do not modify it.
func (e *Engine) Sequence() []byte { return e.seq }

// Score returns the final score table. Callers must treat it as read-only.
func (e *Engine) Score() *table.Table[int] { return e.score }

// Transition returns the final transition table. Callers must treat it as read-only.
func (e *Engine) Transition() *table.Table[Transition] { return e.trans }

func (e *Engine) control() error {
	for {
		e.state = Filling
		if err := e.fill(); err != nil {
			return err
		}
		e.state = Searching
		best := table.MaxOf(e.score)
		if best.Value <= e.scheme.Threshold() {
			e.state = Done
			return nil
		}

		e.state = AcceptedHelix
		e.iterations++
		path := e.trace(best.I, best.J)
		e.eliminate(best.I, best.J)
		h := Helix{Score: best.Value, Row: best.I, Col: best.J, Pairs: make([]Pair, 0, len(path))}
		for _, st := range path {
			e.eliminate(st.i, st.j)
			p := Pair{I: st.i, J: e.n - st.j + 1}
			e.pairs = append(e.pairs, p)
			h.Pairs = append(h.Pairs, p)
		}
		e.helices = append(e.helices, h)
	}
}

// fill recomputes every unmasked cell. Diagonal wins ties over Up, Up over Left.
func (e *Engine) fill() error {
	for i := 1; i <= e.n; i++ {
		if _, masked := e.maskRows[i]; masked {
			continue
		}
		for j := 1; j <= e.n-i; j++ {
			if _, masked := e.maskCols[j]; masked {
				continue
			}
			m, ok := e.scheme.Score(e.seq[i-1], e.inv[j-1])
			if !ok {
				return &UnknownSymbolError{I: i, J: e.n - j + 1, A: e.seq[i-1], B: e.inv[j-1]}
			}
			cand := [3]int{
				e.score.Get(i-1, j-1) + m,
				e.score.Get(i-1, j) + e.scheme.IndelPenalty(e.trans.Get(i-1, j) == Up),
				e.score.Get(i, j-1) + e.scheme.IndelPenalty(e.trans.Get(i, j-1) == Left),
			}
			best := max(cand[0], cand[1], cand[2])
			if best <= 0 {
				e.score.Set(i, j, 0)
				e.trans.Set(i, j, None)
				continue
			}
			for k, v := range cand {
				if v == best {
					e.trans.Set(i, j, Transition(k+1))
					break
				}
			}
			e.score.Set(i, j, best)
		}
	}
	return nil
}

type step struct{ i, j int }

// trace walks back from (x, y) to the zero floor and returns the diagonal
// steps, starting with (x, y) itself when it is one.
func (e *Engine) trace(x, y int) []step {
	var path []step
	for e.score.Get(x, y) != 0 {
		switch e.trans.Get(x, y) {
		case Diagonal:
			path = append(path, step{x, y})
			x, y = x-1, y-1
		case Up:
			x--
		case Left:
			y--
		default:
			return path
		}
	}
	return path
}

// eliminate clears row x and column y, the mirror column N-x+1 below row x
// and the mirror row N-y+1 left of column y, then masks all four.
func (e *Engine) eliminate(x, y int) {
	n := e.n
	e.clear(y, n-y, true)
	e.clear(x, n-x, false)
	e.clear(n-x+1, x-1, true)
	e.clear(n-y+1, y-1, false)
	e.maskRows[x] = struct{}{}
	e.maskRows[n-y+1] = struct{}{}
	e.maskCols[y] = struct{}{}
	e.maskCols[n-x+1] = struct{}{}
}

// clear zeroes cells 1..upto along row line, or along column line when column is set.
func (e *Engine) clear(line, upto int, column bool) {
	for k := 1; k <= upto; k++ {
		i, j := line, k
		if column {
			i, j = k, line
		}
		e.score.Set(i, j, 0)
		e.trans.Set(i, j, None)
	}
}
