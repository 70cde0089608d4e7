package bench

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/robalobadob/wordle/apps/bench/internal/wordle"
)

// notSolvedPenalty is added to the attempt count of an unsolved game so that
// it ranks worse than any solved one.
const notSolvedPenalty = 1

// ByAnswer groups attempt counts per answer. Unsolved games count as one
// attempt more than they used.
func ByAnswer(outcomes []Outcome) map[wordle.Word][]int {
	out := make(map[wordle.Word][]int)
	for _, o := range outcomes {
		n := o.Attempts
		if !o.Solved {
			n += notSolvedPenalty
		}
		out[o.Answer] = append(out[o.Answer], n)
	}
	return out
}

// Metric ranks answers by how badly the solver did on them.
type Metric interface {
	Run(byAnswer map[wordle.Word][]int) string
}

type metricImpl[T constraints.Ordered] struct {
	name        string
	badnessFunc func(attempts []int) T
}

// Run reports the worst badness value and every answer that reached it.
func (m *metricImpl[T]) Run(byAnswer map[wordle.Word][]int) string {
	var worst T
	var worstWords []string
	first := true
	for w, attempts := range byAnswer {
		badness := m.badnessFunc(attempts)
		switch {
		case first || worst < badness:
			worstWords = []string{w.String()}
			worst = badness
			first = false
		case worst == badness:
			worstWords = append(worstWords, w.String())
		}
	}
	sort.Strings(worstWords)
	return fmt.Sprintf("worst %v: %v (%v)", m.name, worst, strings.Join(worstWords, " "))
}

// Metrics are the rankings printed after a run.
var Metrics = []Metric{
	&metricImpl[int]{"worst", func(a []int) int {
		max := a[0]
		for _, n := range a[1:] {
			if n > max {
				max = n
			}
		}
		return max
	}},
	&metricImpl[int]{"best", func(a []int) int {
		min := a[0]
		for _, n := range a[1:] {
			if n < min {
				min = n
			}
		}
		return min
	}},
	&metricImpl[float64]{"average", func(a []int) float64 {
		sum := 0
		for _, n := range a {
			sum += n
		}
		return float64(sum) / float64(len(a))
	}},
	&metricImpl[float64]{"not-in-6", func(a []int) float64 {
		loss := 0
		for _, n := range a {
			if n > 6 {
				loss++
			}
		}
		return 100 * float64(loss) / float64(len(a))
	}},
}
