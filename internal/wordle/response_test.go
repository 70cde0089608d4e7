package wordle

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomWord draws letters from the first n letters of the alphabet. A small n
// produces many repeated letters, which is where scoring gets subtle.
func randomWord(rng *rand.Rand, n int) Word {
	var w Word
	for i := range w {
		w[i] = Letter(rng.IntN(n))
	}
	return w
}

func TestNewResponse(t *testing.T) {
	tests := []struct {
		guess, answer, want string
	}{
		{"AAAAA", "AAAAA", "CCCCC"},
		{"AAAAA", "BBBBB", "WWWWW"},
		{"ABCDE", "BCDEA", "MMMMM"},
		{"ABCDA", "BAXXA", "MMWWC"},
		{"ABCAC", "BBCAC", "WCCCC"},
		{"ZYMIC", "WIMPY", "WMCMW"},
		// More copies in the guess than in the answer: only the first
		// unmatched copy is Misplaced.
		{"EERIE", "THOSE", "WWWWC"},
		{"SPEED", "ABIDE", "WWMWM"},
		{"LLAMA", "HELLO", "MMWWW"},
	}
	for _, tt := range tests {
		t.Run(tt.guess+"/"+tt.answer, func(t *testing.T) {
			r := NewResponse(MustParse(tt.guess), MustParse(tt.answer))
			assert.Equal(t, tt.want, r.Placements().String())
			assert.Equal(t, MustParse(tt.guess), r.Guess())
		})
	}
}

func TestResponse_Solved(t *testing.T) {
	assert.True(t, NewResponse(MustParse("CRANE"), MustParse("CRANE")).Solved())
	assert.False(t, NewResponse(MustParse("CRANE"), MustParse("CRANK")).Solved())
}

func TestResponse_String(t *testing.T) {
	r := NewResponse(MustParse("ZYMIC"), MustParse("WIMPY"))
	assert.Equal(t, "ZYMIC:WMCMW", r.String())
}

func TestParsePlacements(t *testing.T) {
	ps, err := ParsePlacements("cMwCm")
	require.NoError(t, err)
	assert.Equal(t, Placements{Correct, Misplaced, Wrong, Correct, Misplaced}, ps)

	_, err = ParsePlacements("CCCC")
	require.Error(t, err)
	_, err = ParsePlacements("CCXCC")
	require.Error(t, err)
}

func TestResponse_WrongLetterMask(t *testing.T) {
	tests := []struct {
		guess, answer, want string
	}{
		{"AAAAA", "BBBBB", "A"},
		{"ABCDE", "BCDEA", ""},
		// A is Wrong at position 0 but Correct at 3 and 4: A stays possible.
		{"ABCAC", "BBCAC", ""},
		{"ZYMIC", "WIMPY", "CZ"},
		{"EERIE", "THOSE", "IR"},
	}
	for _, tt := range tests {
		t.Run(tt.guess+"/"+tt.answer, func(t *testing.T) {
			r := NewResponse(MustParse(tt.guess), MustParse(tt.answer))
			assert.Equal(t, maskOf(tt.want), r.WrongLetterMask())
		})
	}
}

func TestResponse_Properties(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for n := 0; n < 20000; n++ {
		size := 2 + n%6
		g, a := randomWord(rng, size), randomWord(rng, size)
		r := NewResponse(g, a)

		require.True(t, r.Matches(a), "%v vs %v", g, a)
		require.True(t, NewResponse(g, g).Solved(), "%v", g)

		for l, p := range r.Pairs() {
			if p != Wrong {
				require.False(t, r.WrongLetterMask().Contains(l), "%v: %v is %v", r, l, p)
			}
		}
		// Every letter left in the wrong mask is absent from the answer.
		require.False(t, r.WrongLetterMask().Intersects(a.Mask()), "%v vs %v", r, a)
	}
}
