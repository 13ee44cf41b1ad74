package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_IdenticalStringsScoreOne(t *testing.T) {
	for _, s := range []string{"salaries", "rent", "x", "office supplies"} {
		assert.Equal(t, 1.0, Score(s, s))
	}
}

func TestScore_CaseInsensitive(t *testing.T) {
	assert.Equal(t, 1.0, Score("Salaries", "salaries"))
	assert.Equal(t, Score("RENT", "rnt"), Score("rent", "RNT"))
}

func TestScore_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"rent", "rnt"},
		{"salaries", "salary"},
		{"abc", "xyz"},
		{"", "something"},
	}

	for _, p := range pairs {
		assert.Equal(t, Score(p[0], p[1]), Score(p[1], p[0]))
	}
}

func TestScore_Range(t *testing.T) {
	pairs := [][2]string{
		{"rent", "rnt"},
		{"abc", "xyz"},
		{"", "x"},
		{"a", "completely different"},
	}

	for _, p := range pairs {
		score := Score(p[0], p[1])
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 1.0)
	}
}

func TestScore_DecreasesWithEditDistance(t *testing.T) {
	// Each step deletes one more character, so similarity must fall.
	full := "salaries"
	closer := Score(full, "salarie")
	further := Score(full, "salari")
	furthest := Score(full, "salar")

	assert.Greater(t, 1.0, closer)
	assert.Greater(t, closer, further)
	assert.Greater(t, further, furthest)
}

func TestScore_SingleDeletion(t *testing.T) {
	// One deletion out of 4+3 runes: ratio (7-1)/7.
	assert.InDelta(t, 6.0/7.0, Score("rent", "rnt"), 1e-9)
}

func TestScore_BothEmpty(t *testing.T) {
	assert.Equal(t, 1.0, Score("", ""))
}
