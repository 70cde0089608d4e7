package bench

import (
	"fmt"
	"strings"
	"time"
)

// Stats summarizes a run. Min, Max and Mean cover solved games only and
// are zero when nothing was solved.
type Stats struct {
	Games     int
	Fails     int
	Min       int
	Max       int
	Mean      float64
	Histogram map[int]int // attempts → solved games
	Duration  time.Duration
}

// Summarize aggregates outcomes. Duration is left for the caller to fill.
func Summarize(outcomes []Outcome) Stats {
	s := Stats{Games: len(outcomes), Histogram: map[int]int{}}
	sum, solved := 0, 0
	for _, o := range outcomes {
		if !o.Solved {
			s.Fails++
			continue
		}
		if solved == 0 || o.Attempts < s.Min {
			s.Min = o.Attempts
		}
		if o.Attempts > s.Max {
			s.Max = o.Attempts
		}
		s.Histogram[o.Attempts]++
		sum += o.Attempts
		solved++
	}
	if solved > 0 {
		s.Mean = float64(sum) / float64(solved)
	}
	return s
}

// String renders the summary the way the CLI prints it.
func (s Stats) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Solved %d games in %d ms\n", s.Games, s.Duration.Milliseconds())
	fmt.Fprintf(&b, "   Number of fails: %d\n", s.Fails)
	if s.Games > s.Fails {
		fmt.Fprintf(&b, "   Min: %d\n", s.Min)
		fmt.Fprintf(&b, "   Max: %d\n", s.Max)
		fmt.Fprintf(&b, "   Mean: %.4f\n", s.Mean)
	}
	return b.String()
}
