package wordle

import "fmt"

// History accumulates the responses of one game and answers whether a
// candidate word is still consistent with all of them.
//
// Two summaries are kept alongside the responses: letters fixed at a position
// by a Correct placement, and letters that are Wrong everywhere in some
// response. They only ever reject words that re-scoring against every
// response would also reject.
//
// The zero value is an empty History ready to use.
type History struct {
	correct   Word
	fixed     uint8 // bit i set when correct[i] is known
	wrong     LetterMask
	responses []Response
}

// NewHistory returns an empty History.
func NewHistory() *History {
	return &History{}
}

// AddCompatible records a response that was scored against the true answer.
// It panics if r fixes a position to a different letter than an earlier
// response did, since that can only happen when responses come from
// different answers.
func (h *History) AddCompatible(r Response) {
	for i, p := range r.placements {
		if p != Correct {
			continue
		}
		l := r.guess[i]
		if h.fixed&(1<<i) != 0 && h.correct[i] != l {
			panic(fmt.Sprintf("wordle: position %d already fixed to %v, response %v fixes it to %v",
				i, h.correct[i], r, l))
		}
		h.correct[i] = l
		h.fixed |= 1 << i
	}
	h.wrong = h.wrong.Union(r.WrongLetterMask())
	h.responses = append(h.responses, r)
}

// IsCompatible reports whether candidate could still be the answer.
func (h *History) IsCompatible(candidate Word) bool {
	if candidate.Mask().Intersects(h.wrong) {
		return false
	}
	for i := 0; i < WordLen; i++ {
		if h.fixed&(1<<i) != 0 && candidate[i] != h.correct[i] {
			return false
		}
	}
	return h.matchesAll(candidate)
}

// matchesAll re-scores candidate against every recorded response.
func (h *History) matchesAll(candidate Word) bool {
	for _, r := range h.responses {
		if !r.Matches(candidate) {
			return false
		}
	}
	return true
}

// Len returns the number of recorded responses.
func (h *History) Len() int { return len(h.responses) }

// Responses returns a copy of the recorded responses in the order added.
func (h *History) Responses() []Response {
	return append([]Response(nil), h.responses...)
}

// WrongLetters returns the letters excluded from every candidate so far.
func (h *History) WrongLetters() LetterMask { return h.wrong }
