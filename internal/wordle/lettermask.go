package wordle

import (
	"math/bits"
	"strings"
)

// LetterMask is a set of letters; bit i is set iff Letter(i) is a member.
// The zero value is the empty set.
type LetterMask uint32

// Add returns m with l added.
func (m LetterMask) Add(l Letter) LetterMask { return m | 1<<l }

// Contains reports whether l is in m.
func (m LetterMask) Contains(l Letter) bool { return m&(1<<l) != 0 }

// Union returns m ∪ other.
func (m LetterMask) Union(other LetterMask) LetterMask { return m | other }

// Diff returns the letters of m that are not in other.
func (m LetterMask) Diff(other LetterMask) LetterMask { return m &^ other }

// Intersects reports whether m and other share a letter.
func (m LetterMask) Intersects(other LetterMask) bool { return m&other != 0 }

// Len returns the number of letters in m.
func (m LetterMask) Len() int { return bits.OnesCount32(uint32(m)) }

// String lists the member letters alphabetically, e.g. "{AEZ}".
func (m LetterMask) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for l := Letter(0); l < Alphabet; l++ {
		if m.Contains(l) {
			b.WriteByte(l.Byte())
		}
	}
	b.WriteByte('}')
	return b.String()
}
