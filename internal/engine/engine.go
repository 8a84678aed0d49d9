package engine

import (
	"errors"
	"fmt"

	"selffold-core/fold"
	"selffold-core/oligo"
	"selffold-core/scheme"
	"selffold-core/structure"
)

// Config controls how records are prepared and what is kept after folding.
type Config struct {
	Scheme     *scheme.Scheme
	RNA        bool // rewrite T as U before folding
	KeepTables bool // retain the final Score/Transition tables on Product
}

// Engine folds records under one scheme. It holds no per-record state and is
// safe for concurrent use.
type Engine struct{ cfg Config }

func New(c Config) *Engine {
	if c.Scheme == nil {
		c.Scheme = scheme.Default()
	}
	return &Engine{cfg: c}
}

// Scheme returns the scheme records are folded under.
func (e *Engine) Scheme() *scheme.Scheme { return e.cfg.Scheme }

// FoldRecord normalises seq, folds it, and renders the structure.
func (e *Engine) FoldRecord(id, desc string, seq []byte) (Product, error) {
	if id == "" {
		id = structure.DefaultHeader
	}
	norm := []byte(oligo.Normalize(string(seq)))
	if e.cfg.RNA {
		norm = oligo.ToRNA(norm)
	}

	f, err := fold.New(norm, e.cfg.Scheme)
	if err != nil {
		if errors.Is(err, fold.ErrUnknownSymbol) {
			if bad := oligo.Unscored(norm, e.cfg.Scheme.Symbols()); len(bad) > 0 {
				return Product{}, fmt.Errorf("%s: %w (not in scoring table: %q)", id, err, bad)
			}
		}
		return Product{}, fmt.Errorf("%s: %w", id, err)
	}
	r := f.Result()

	p := Product{
		SequenceID:  id,
		Description: desc,
		Sequence:    string(norm),
		Structure:   structure.DotBracket(r.Length, r.Pairs),
		Pairs:       r.Pairs,
		Helices:     r.Helices,
		Iterations:  r.Iterations,
	}
	_, _, p.Crossing = structure.FindCrossing(r.Pairs)
	if e.cfg.KeepTables {
		p.Score = f.Score()
		p.Transition = f.Transition()
	}
	return p, nil
}
