// internal/wordle/response.go
//
// Per-letter feedback for a guess against an answer.
//
// Scoring runs in two passes:
//   Pass 1: exact matches are Correct and consume their answer slot; letters
//           absent from the answer altogether are Wrong.
//   Pass 2: each unresolved guess letter, left to right, takes the first
//           unconsumed answer slot holding the same letter (Misplaced) or is
//           Wrong if none is left.
//
// The answer is not kept in the Response. Matches re-scores the guess against
// a candidate answer and compares the result.

package wordle

import (
	"fmt"
	"iter"
)

// Placement is the feedback for one guess position.
type Placement uint8

const (
	Wrong Placement = iota
	Misplaced
	Correct
)

func (p Placement) String() string {
	switch p {
	case Correct:
		return "C"
	case Misplaced:
		return "M"
	default:
		return "W"
	}
}

// Placements is the feedback for a whole guess.
type Placements [WordLen]Placement

func (ps Placements) String() string {
	var b [WordLen]byte
	for i, p := range ps {
		b[i] = p.String()[0]
	}
	return string(b[:])
}

// ParsePlacements reads a five-character string of C, M and W (either case).
func ParsePlacements(s string) (Placements, error) {
	var ps Placements
	if len(s) != WordLen {
		return ps, fmt.Errorf("placements %q: want %d characters, got %d", s, WordLen, len(s))
	}
	for i := 0; i < WordLen; i++ {
		switch s[i] {
		case 'C', 'c':
			ps[i] = Correct
		case 'M', 'm':
			ps[i] = Misplaced
		case 'W', 'w':
			ps[i] = Wrong
		default:
			return Placements{}, fmt.Errorf("placements %q: bad character %q at position %d", s, s[i], i)
		}
	}
	return ps, nil
}

// Response pairs a guess with the feedback it produced. Responses are
// comparable with ==.
type Response struct {
	guess      Word
	placements Placements
}

// NewResponse scores guess against answer.
func NewResponse(guess, answer Word) Response {
	r := Response{guess: guess}
	inAnswer := answer.Mask()

	// resolved tracks guess positions, consumed tracks answer positions.
	var resolved, consumed uint8
	for i := 0; i < WordLen; i++ {
		switch {
		case guess[i] == answer[i]:
			r.placements[i] = Correct
			resolved |= 1 << i
			consumed |= 1 << i
		case !inAnswer.Contains(guess[i]):
			r.placements[i] = Wrong
			resolved |= 1 << i
		}
	}
	if resolved == 1<<WordLen-1 {
		return r
	}

	for i := 0; i < WordLen; i++ {
		if resolved&(1<<i) != 0 {
			continue
		}
		r.placements[i] = Wrong
		for j := 0; j < WordLen; j++ {
			if consumed&(1<<j) == 0 && answer[j] == guess[i] {
				r.placements[i] = Misplaced
				consumed |= 1 << j
				break
			}
		}
	}
	return r
}

// Guess returns the guessed word.
func (r Response) Guess() Word { return r.guess }

// Placements returns the feedback per position.
func (r Response) Placements() Placements { return r.placements }

// Solved reports whether every position is Correct.
func (r Response) Solved() bool {
	for _, p := range r.placements {
		if p != Correct {
			return false
		}
	}
	return true
}

// Pairs yields each guess letter with its placement, in guess order.
func (r Response) Pairs() iter.Seq2[Letter, Placement] {
	return func(yield func(Letter, Placement) bool) {
		for i, l := range r.guess {
			if !yield(l, r.placements[i]) {
				return
			}
		}
	}
}

// Matches reports whether guessing r.Guess() against candidate would have
// produced exactly this feedback.
func (r Response) Matches(candidate Word) bool {
	return NewResponse(r.guess, candidate) == r
}

// WrongLetterMask returns the letters that are Wrong in every position they
// occupy. A letter marked Wrong in one position but Correct or Misplaced in
// another is still in the answer and must not be excluded; History relies on
// this subtraction for its fast path.
func (r Response) WrongLetterMask() LetterMask {
	var wrong, present LetterMask
	for l, p := range r.Pairs() {
		if p == Wrong {
			wrong = wrong.Add(l)
		} else {
			present = present.Add(l)
		}
	}
	return wrong.Diff(present)
}

// String renders the response as "GUESS:PLACEMENTS", e.g. "ZYMIC:WMCMW".
func (r Response) String() string {
	return r.guess.String() + ":" + r.placements.String()
}
