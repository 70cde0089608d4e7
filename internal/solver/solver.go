// Package solver contains guessing strategies driven by a wordle.History.
package solver

import (
	"errors"

	"github.com/robalobadob/wordle/apps/bench/internal/wordle"
)

// ErrNoCandidates is returned when no word in the list fits the history.
var ErrNoCandidates = errors.New("solver: no compatible candidates left")

// Solver proposes the next guess for a game.
type Solver interface {
	// Reset prepares the solver for a new game.
	Reset()
	// Guess returns the next word to play given everything observed so far.
	Guess(h *wordle.History) (wordle.Word, error)
}

// Factory builds a Solver over a list of valid guesses. Each game in a
// parallel run gets its own Solver from the factory.
type Factory func(valid []wordle.Word) Solver

// Naive guesses the last word of its list that is still compatible with the
// history. Rejected words are dropped for the rest of the game.
type Naive struct {
	words     []wordle.Word
	remaining []wordle.Word
}

// NewNaive returns a Naive solver over a copy of valid.
func NewNaive(valid []wordle.Word) *Naive {
	n := &Naive{words: append([]wordle.Word(nil), valid...)}
	n.Reset()
	return n
}

// Reset implements Solver.
func (n *Naive) Reset() {
	n.remaining = append(n.remaining[:0], n.words...)
}

// Guess implements Solver.
func (n *Naive) Guess(h *wordle.History) (wordle.Word, error) {
	for len(n.remaining) > 0 {
		last := len(n.remaining) - 1
		candidate := n.remaining[last]
		n.remaining = n.remaining[:last]
		if h.IsCompatible(candidate) {
			return candidate, nil
		}
	}
	return wordle.Word{}, ErrNoCandidates
}

// Remaining returns how many words have not been tried or rejected yet.
func (n *Naive) Remaining() int { return len(n.remaining) }

var _ Solver = (*Naive)(nil)
