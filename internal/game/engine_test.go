package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/bench/internal/solver"
	"github.com/robalobadob/wordle/apps/bench/internal/wordle"
)

func TestNew(t *testing.T) {
	g := New(wordle.MustParse("CRANE"), 0)
	require.NotNil(t, g)
	assert.Len(t, g.ID, 16)
	assert.Equal(t, DefaultMaxAttempts, g.MaxAttempts)
	assert.Equal(t, StatePlaying, g.State())
	assert.Equal(t, 0, g.History.Len())

	assert.NotEqual(t, g.ID, New(wordle.MustParse("CRANE"), 6).ID)
}

func TestGame_ApplyGuess(t *testing.T) {
	t.Run("win", func(t *testing.T) {
		g := New(wordle.MustParse("WIMPY"), 6)

		r, st, err := g.ApplyGuess(wordle.MustParse("ZYMIC"))
		require.NoError(t, err)
		assert.Equal(t, "WMCMW", r.Placements().String())
		assert.Equal(t, StatePlaying, st)
		assert.Equal(t, 1, g.History.Len())

		r, st, err = g.ApplyGuess(wordle.MustParse("WIMPY"))
		require.NoError(t, err)
		assert.True(t, r.Solved())
		assert.Equal(t, StateWon, st)
		assert.Equal(t, 2, g.Attempts())
		// The winning response is not added to the history.
		assert.Equal(t, 1, g.History.Len())
	})

	t.Run("loss after the attempt cap", func(t *testing.T) {
		g := New(wordle.MustParse("WIMPY"), 2)
		_, st, err := g.ApplyGuess(wordle.MustParse("CRANE"))
		require.NoError(t, err)
		require.Equal(t, StatePlaying, st)

		_, st, err = g.ApplyGuess(wordle.MustParse("SLATE"))
		require.NoError(t, err)
		assert.Equal(t, StateLost, st)

		_, st, err = g.ApplyGuess(wordle.MustParse("WIMPY"))
		require.ErrorIs(t, err, ErrGameFinished)
		assert.Equal(t, StateLost, st)
		assert.Equal(t, 2, g.Attempts())
	})
}

func TestPlay(t *testing.T) {
	valid := []wordle.Word{
		wordle.MustParse("CRANE"),
		wordle.MustParse("SLATE"),
		wordle.MustParse("CRATE"),
		wordle.MustParse("WIMPY"),
	}

	t.Run("solves", func(t *testing.T) {
		g, err := Play(solver.NewNaive(valid), wordle.MustParse("CRANE"), 0)
		require.NoError(t, err)
		assert.Equal(t, StateWon, g.State())
		assert.Equal(t, 3, g.Attempts())
	})

	t.Run("cap reached", func(t *testing.T) {
		g, err := Play(solver.NewNaive(valid), wordle.MustParse("CRANE"), 2)
		require.NoError(t, err)
		assert.Equal(t, StateLost, g.State())
	})

	t.Run("solver runs dry", func(t *testing.T) {
		g, err := Play(solver.NewNaive(valid[:2]), wordle.MustParse("WIMPY"), 0)
		require.ErrorIs(t, err, solver.ErrNoCandidates)
		assert.False(t, g.Finished)
	})

	t.Run("solver error is wrapped", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := Play(failing{boom}, wordle.MustParse("WIMPY"), 0)
		require.ErrorIs(t, err, boom)
	})
}

type failing struct{ err error }

func (failing) Reset() {}

func (f failing) Guess(*wordle.History) (wordle.Word, error) { return wordle.Word{}, f.err }
