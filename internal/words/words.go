// internal/words/words.go
//
// Word list loading for the solver benchmark.
//
// Sources (Load):
//   1. answersPath and allowedPath both set: answers from the first, extra
//      allowed guesses from the second.
//   2. Only allowedPath set: that file is used for both lists.
//   3. Neither set: the embedded defaults from the assets package.
//
// File format:
//   • One word per line, any case; surrounding whitespace is trimmed.
//   • Blank lines and lines starting with '#' are skipped.
//   • Every other line must parse as a wordle.Word, otherwise Load fails
//     naming the file and line.
//
// Answers are always part of the allowed list. Duplicates are dropped while
// keeping the first occurrence order.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/robalobadob/wordle/apps/bench/assets"
	"github.com/robalobadob/wordle/apps/bench/internal/wordle"
)

// ErrEmptyAnswers is returned when the answer list has no words.
var ErrEmptyAnswers = errors.New("words: answers list is empty")

// Lists holds the loaded answer and allowed-guess lists.
type Lists struct {
	Answers []wordle.Word // possible secret words
	Allowed []wordle.Word // valid guesses, answers first

	allowedSet map[wordle.Word]struct{}
}

// Load reads the word lists from the given files, falling back to the
// embedded defaults when both paths are empty.
func Load(answersPath, allowedPath string) (*Lists, error) {
	var ans, allow []wordle.Word
	var err error

	switch {
	case answersPath != "" && allowedPath != "":
		if ans, err = readWordFile(answersPath); err != nil {
			return nil, err
		}
		if allow, err = readWordFile(allowedPath); err != nil {
			return nil, err
		}

	case allowedPath != "":
		if allow, err = readWordFile(allowedPath); err != nil {
			return nil, err
		}
		ans = allow

	case answersPath != "":
		if ans, err = readWordFile(answersPath); err != nil {
			return nil, err
		}

	default:
		if ans, err = readEmbedded(assets.AnswersFile); err != nil {
			return nil, err
		}
		if allow, err = readEmbedded(assets.AllowedFile); err != nil {
			return nil, err
		}
	}

	ans = dedupe(ans)
	if len(ans) == 0 {
		return nil, ErrEmptyAnswers
	}
	return NewLists(ans, allow), nil
}

// NewLists builds Lists from already parsed words. Answers are added to the
// allowed list.
func NewLists(answers, allowed []wordle.Word) *Lists {
	l := &Lists{
		Answers: dedupe(answers),
		Allowed: dedupe(append(append([]wordle.Word{}, answers...), allowed...)),
	}
	l.allowedSet = make(map[wordle.Word]struct{}, len(l.Allowed))
	for _, w := range l.Allowed {
		l.allowedSet[w] = struct{}{}
	}
	return l
}

// IsAllowed reports whether w is a valid guess.
func (l *Lists) IsAllowed(w wordle.Word) bool {
	_, ok := l.allowedSet[w]
	return ok
}

// Stats returns the number of answers and allowed guesses.
func (l *Lists) Stats() (answersCount int, allowedCount int) {
	return len(l.Answers), len(l.Allowed)
}

func readWordFile(path string) ([]wordle.Word, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()
	return ReadList(path, f)
}

func readEmbedded(name string) ([]wordle.Word, error) {
	f, err := assets.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open embedded word list: %w", err)
	}
	defer f.Close()
	return ReadList(name, f)
}

// ReadList parses one word per line from r. name is used in error messages.
func ReadList(name string, r io.Reader) ([]wordle.Word, error) {
	var out []wordle.Word
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		w, err := wordle.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", name, line, err)
		}
		out = append(out, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return out, nil
}

// dedupe drops repeated words, keeping first occurrences in order.
func dedupe(list []wordle.Word) []wordle.Word {
	seen := make(map[wordle.Word]struct{}, len(list))
	out := list[:0:0]
	for _, w := range list {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
