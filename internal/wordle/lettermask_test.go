package wordle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func maskOf(s string) LetterMask {
	var m LetterMask
	for i := 0; i < len(s); i++ {
		m = m.Add(Letter(s[i] - 'A'))
	}
	return m
}

func TestLetterMask(t *testing.T) {
	var empty LetterMask
	assert.Equal(t, 0, empty.Len())
	assert.Equal(t, "{}", empty.String())

	abc := maskOf("ABC")
	cde := maskOf("CDE")
	xyz := maskOf("XYZ")

	assert.True(t, abc.Contains(Letter(2)))
	assert.False(t, abc.Contains(Letter(25)))

	assert.Equal(t, maskOf("ABCDE"), abc.Union(cde))
	assert.Equal(t, maskOf("AB"), abc.Diff(cde))
	assert.Equal(t, abc, abc.Diff(xyz))

	assert.True(t, abc.Intersects(cde))
	assert.False(t, abc.Intersects(xyz))
	assert.False(t, empty.Intersects(abc))

	// Adding twice is a no-op.
	assert.Equal(t, abc, abc.Add(Letter(0)))
	assert.Equal(t, "{ABCXYZ}", abc.Union(xyz).String())
}
