// internal/wordle/word.go
//
// Five-letter word value used by the feedback and filtering code.
//
// Representation:
//   - A Word is an array of five Letters, each 0..25 for A..Z.
//   - Words are comparable with == and usable as map keys.
//   - Parsing normalizes ASCII letters to uppercase; anything else is rejected.

package wordle

import (
	"errors"
	"fmt"
	"iter"
)

// WordLen is the number of letters in every Word.
const WordLen = 5

// Letter is an index into the A..Z alphabet (A=0, Z=25).
type Letter uint8

// Alphabet is the number of distinct letters.
const Alphabet = 26

// Byte returns the uppercase ASCII byte for l.
func (l Letter) Byte() byte { return 'A' + byte(l) }

func (l Letter) String() string { return string(rune(l.Byte())) }

// Word is an immutable five-letter value.
type Word [WordLen]Letter

var (
	// ErrWrongSize is wrapped by ParseError when the input is not five bytes.
	ErrWrongSize = errors.New("word must be exactly 5 letters")
	// ErrNotLetter is wrapped by ParseError when a byte is not an ASCII letter.
	ErrNotLetter = errors.New("word contains a non-letter")
)

// ParseError reports why an input could not be turned into a Word.
// Size is the input length for ErrWrongSize; Pos is the offending index for
// ErrNotLetter.
type ParseError struct {
	Input string
	Size  int
	Pos   int
	Err   error
}

func (e *ParseError) Error() string {
	if errors.Is(e.Err, ErrNotLetter) {
		return fmt.Sprintf("parse %q: %v at position %d", e.Input, e.Err, e.Pos)
	}
	return fmt.Sprintf("parse %q: %v (got %d)", e.Input, e.Err, e.Size)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse builds a Word from s. See ParseBytes.
func Parse(s string) (Word, error) {
	return ParseBytes([]byte(s))
}

// ParseBytes builds a Word from exactly five ASCII letters, case-insensitive.
func ParseBytes(b []byte) (Word, error) {
	var w Word
	if len(b) != WordLen {
		return w, &ParseError{Input: string(b), Size: len(b), Pos: -1, Err: ErrWrongSize}
	}
	for i, c := range b {
		if 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		}
		if c < 'A' || c > 'Z' {
			return Word{}, &ParseError{Input: string(b), Size: len(b), Pos: i, Err: ErrNotLetter}
		}
		w[i] = Letter(c - 'A')
	}
	return w, nil
}

// MustParse is like Parse but panics on error. Intended for literals.
func MustParse(s string) Word {
	w, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return w
}

// Letters yields the letters of w in guess order. The sequence can be
// ranged over any number of times.
func (w Word) Letters() iter.Seq2[int, Letter] {
	return func(yield func(int, Letter) bool) {
		for i, l := range w {
			if !yield(i, l) {
				return
			}
		}
	}
}

// Mask returns the set of letters in w; repeated letters collapse.
func (w Word) Mask() LetterMask {
	var m LetterMask
	for _, l := range w {
		m = m.Add(l)
	}
	return m
}

// String renders w as five uppercase letters.
func (w Word) String() string {
	var b [WordLen]byte
	for i, l := range w {
		b[i] = l.Byte()
	}
	return string(b[:])
}
