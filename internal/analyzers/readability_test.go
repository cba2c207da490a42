package analyzers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeReadability_SimpleTextIsVeryEasy(t *testing.T) {
	// Short monosyllabic sentences push Flesch well above 80.
	result := AnalyzeReadability("The cat sat. The dog ran. It was fun.")
	assert.GreaterOrEqual(t, result.FleschScore, 80.0)
	assert.Equal(t, StatusWarning, result.Status)
	assert.Contains(t, result.Interpretation, "Very Easy")
}

func TestAnalyzeReadability_EmptyTextIsVeryDifficultBand(t *testing.T) {
	// Zero-valued metrics land in the lowest band; status must still be a
	// declared value, never a panic.
	result := AnalyzeReadability("")
	assert.Zero(t, result.FleschScore)
	assert.Equal(t, StatusWarning, result.Status)
}

func TestAnalyzeReadability_CarriesMetrics(t *testing.T) {
	result := AnalyzeReadability("Engineered distributed observability infrastructure.")
	assert.Positive(t, result.AvgSyllables)
	assert.Positive(t, result.AvgSentenceLength)
}

func TestAnalyzeReadability_Idempotent(t *testing.T) {
	text := "Delivered the migration on schedule. Reduced costs by thirty percent."
	assert.Equal(t, AnalyzeReadability(text), AnalyzeReadability(text))
}
