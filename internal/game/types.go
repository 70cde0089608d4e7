// internal/game/types.go
//
// Core type definitions for a single simulated game.
// Defines:
//   - State: coarse game state (playing/won/lost).
//   - Game:  answer, accumulated history and guess log for one game.

package game

import "github.com/robalobadob/wordle/apps/bench/internal/wordle"

// State is the coarse state of a game.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// Game holds the state of a single game. Each game owns its History; games
// share nothing and can run on separate goroutines.
type Game struct {
	ID          string            // Random hex identifier used in logs.
	Answer      wordle.Word       // The secret word.
	MaxAttempts int               // Guesses allowed before the game is lost.
	Guesses     []wordle.Response // Every guess made, including the winning one.
	History     *wordle.History   // Responses for non-winning guesses.
	Finished    bool              // True once the game is over (won or lost).
	Won         bool              // True if the game was finished with a win.
}
