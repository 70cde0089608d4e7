// internal/game/engine.go
//
// Game engine for one simulated Wordle game.
// Responsibilities:
//   - Create games with a fixed answer and an attempt cap.
//   - Score guesses and feed non-winning responses into the History.
//   - Track state transitions: playing → won/lost.
//   - Drive a solver.Solver until the game ends (Play).

package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/bench/internal/solver"
	"github.com/robalobadob/wordle/apps/bench/internal/wordle"
)

// DefaultMaxAttempts bounds a game when the caller does not set a cap.
const DefaultMaxAttempts = 64

// ErrGameFinished is returned when guessing in a game that is over.
var ErrGameFinished = errors.New("game finished")

// New constructs a game for answer. maxAttempts <= 0 selects
// DefaultMaxAttempts.
func New(answer wordle.Word, maxAttempts int) *Game {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Game{
		ID:          randomID(),
		Answer:      answer,
		MaxAttempts: maxAttempts,
		History:     wordle.NewHistory(),
	}
}

// ApplyGuess scores guess against the answer and advances the game.
//
// State transitions:
//   - All letters Correct → Finished, Won.
//   - Otherwise the response is added to the History, and the game is lost
//     once MaxAttempts guesses have been made.
func (g *Game) ApplyGuess(guess wordle.Word) (wordle.Response, State, error) {
	if g.Finished {
		return wordle.Response{}, g.State(), ErrGameFinished
	}
	r := wordle.NewResponse(guess, g.Answer)
	g.Guesses = append(g.Guesses, r)

	log.Debug().Str("gameId", g.ID).Int("attempt", len(g.Guesses)).Stringer("response", r).Msg("guess")

	if r.Solved() {
		g.Finished, g.Won = true, true
	} else {
		g.History.AddCompatible(r)
		if len(g.Guesses) >= g.MaxAttempts {
			g.Finished = true
		}
	}
	return r, g.State(), nil
}

// State reports the current game state.
func (g *Game) State() State {
	if g.Finished {
		if g.Won {
			return StateWon
		}
		return StateLost
	}
	return StatePlaying
}

// Attempts returns the number of guesses made so far.
func (g *Game) Attempts() int { return len(g.Guesses) }

// Play resets s and lets it guess until the game ends, returning the game.
// An error is returned only when the solver fails; the partial game is
// returned with it.
func Play(s solver.Solver, answer wordle.Word, maxAttempts int) (*Game, error) {
	s.Reset()
	g := New(answer, maxAttempts)
	for !g.Finished {
		guess, err := s.Guess(g.History)
		if err != nil {
			return g, fmt.Errorf("game %s, answer %v, attempt %d: %w", g.ID, answer, g.Attempts()+1, err)
		}
		if _, _, err := g.ApplyGuess(guess); err != nil {
			return g, err
		}
	}
	return g, nil
}

// randomID returns a compact 16‑hex‑char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
