package words

import (
	"time"

	"github.com/robalobadob/wordle/apps/bench/internal/daily"
	"github.com/robalobadob/wordle/apps/bench/internal/wordle"
)

// Daily returns the answer for the UTC date of t, chosen deterministically
// from the answer list with salt.
func (l *Lists) Daily(t time.Time, salt string) wordle.Word {
	return l.Answers[daily.WordIndex(t, salt, len(l.Answers))]
}
