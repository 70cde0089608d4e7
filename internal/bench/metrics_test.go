package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByAnswer(t *testing.T) {
	got := ByAnswer([]Outcome{
		{Answer: w("CRANE"), Attempts: 3, Solved: true},
		{Answer: w("CRANE"), Attempts: 6, Solved: false},
		{Answer: w("SLATE"), Attempts: 2, Solved: true},
	})
	assert.Equal(t, []int{3, 7}, got[w("CRANE")])
	assert.Equal(t, []int{2}, got[w("SLATE")])
}

func TestMetrics(t *testing.T) {
	byAnswer := ByAnswer([]Outcome{
		{Answer: w("CRANE"), Attempts: 3, Solved: true},
		{Answer: w("CRANE"), Attempts: 9, Solved: true},
		{Answer: w("SLATE"), Attempts: 9, Solved: true},
		{Answer: w("SLATE"), Attempts: 2, Solved: true},
		{Answer: w("WIMPY"), Attempts: 4, Solved: true},
		{Answer: w("WIMPY"), Attempts: 4, Solved: true},
	})

	var got []string
	for _, m := range Metrics {
		got = append(got, m.Run(byAnswer))
	}
	require.Len(t, got, 4)
	assert.Equal(t, "worst worst: 9 (CRANE SLATE)", got[0])
	assert.Equal(t, "worst best: 4 (WIMPY)", got[1])
	assert.Equal(t, "worst average: 6 (CRANE)", got[2])
	assert.Equal(t, "worst not-in-6: 50 (CRANE SLATE)", got[3])
}
