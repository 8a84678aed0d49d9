package fold

import (
	"errors"
	"fmt"
)

// Transition records which neighbour produced a Score cell.
type Transition uint8

const (
	None Transition = iota
	Diagonal
	Up
	Left
)

func (t Transition) String() string {
	switch t {
	case Diagonal:
		return "diag"
	case Up:
		return "up"
	case Left:
		return "left"
	default:
		return "none"
	}
}

// State is the engine's position in its control loop.
type State uint8

const (
	Filling State = iota
	Searching
	AcceptedHelix
	Done
)

func (s State) String() string {
	switch s {
	case Filling:
		return "filling"
	case Searching:
		return "searching"
	case AcceptedHelix:
		return "accepted"
	default:
		return "done"
	}
}

// Pair is an accepted base pair in 1-based sequence coordinates, I < J.
type Pair struct {
	I int `json:"i"`
	J int `json:"j"`
}

// Helix is the set of pairs accepted from one traceback.
type Helix struct {
	Score int    // table maximum the traceback started from
	Row   int    // anchor cell (forward index)
	Col   int    // anchor cell (reversed index)
	Pairs []Pair // innermost pair first
}

// Result is the finished fold of one sequence.
type Result struct {
	Length     int
	Pairs      []Pair
	Helices    []Helix
	Iterations int
}

// ErrUnknownSymbol is returned when the match table has no score for a pair
// of symbols the sequence needs.
var ErrUnknownSymbol = errors.New("unknown symbol")

// UnknownSymbolError names the positions and symbols of the missing score.
type UnknownSymbolError struct {
	I, J int  // 1-based sequence positions being compared
	A, B byte // symbols at I and J
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("unknown symbol: no score for %q (pos %d) against %q (pos %d)", e.A, e.I, e.B, e.J)
}

func (e *UnknownSymbolError) Unwrap() error { return ErrUnknownSymbol }
