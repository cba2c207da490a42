package analyzers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func textWithWords(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func TestAnalyzeLength_PagesAreExactRatio(t *testing.T) {
	for _, n := range []int{0, 1, 250, 499, 500, 750, 1200} {
		result := AnalyzeLength(textWithWords(n))
		assert.Equal(t, n, result.WordCount)
		assert.Equal(t, float64(n)/500.0, result.EstimatedPages, "n=%d", n)
	}
}

func TestAnalyzeLength_StatusBands(t *testing.T) {
	cases := []struct {
		words int
		want  Status
	}{
		{0, StatusWarning},
		{299, StatusWarning},
		{300, StatusSuccess},
		{599, StatusSuccess},
		{600, StatusSuccess},
		{999, StatusSuccess},
		{1000, StatusWarning},
		{2500, StatusWarning},
	}
	for _, tc := range cases {
		result := AnalyzeLength(textWithWords(tc.words))
		assert.Equal(t, tc.want, result.Status, "words=%d", tc.words)
	}
}

func TestAnalyzeLength_CharacterCount(t *testing.T) {
	result := AnalyzeLength("abcd efg")
	assert.Equal(t, 8, result.CharacterCount)
	assert.Equal(t, 2, result.WordCount)
}

func TestAnalyzeLength_EmptyText(t *testing.T) {
	result := AnalyzeLength("")
	assert.Zero(t, result.WordCount)
	assert.Zero(t, result.EstimatedPages)
	assert.Equal(t, StatusWarning, result.Status)
}
