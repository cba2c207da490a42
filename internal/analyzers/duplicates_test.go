package analyzers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeDuplicates_OneRepeatedSentence(t *testing.T) {
	sentence := "Managed the production Kubernetes cluster for years"
	text := sentence + ". Some other unrelated content goes here. " + sentence + "."
	result := AnalyzeDuplicates(text)

	assert.Equal(t, 1, result.DuplicateSentences)
	require.Len(t, result.Duplicates, 1)
	assert.Equal(t, sentence, result.Duplicates[0].Word)
	assert.Equal(t, 2, result.Duplicates[0].Count)
}

func TestAnalyzeDuplicates_CleanTextIsGoodVariety(t *testing.T) {
	text := "Designed the ingestion service from scratch. Migrated billing to the new platform."
	result := AnalyzeDuplicates(text)
	assert.Zero(t, result.DuplicateSentences)
	assert.Zero(t, result.RepeatedPhrases)
	assert.Equal(t, StatusSuccess, result.Status)
	assert.Contains(t, result.Recommendation, "good variety")
}

func TestAnalyzeDuplicates_MinimalDuplicationIsAcceptable(t *testing.T) {
	sentence := "Shipped the quarterly compliance report on time"
	text := sentence + ". Unrelated filler sentence about something else. " + sentence + "."
	result := AnalyzeDuplicates(text)
	assert.Equal(t, 1, result.DuplicateSentences)
	assert.Equal(t, StatusSuccess, result.Status)
	assert.Contains(t, result.Recommendation, "acceptable")
}

func TestAnalyzeDuplicates_ManyDuplicatesWarn(t *testing.T) {
	parts := []string{
		"First repeated sentence about delivering projects",
		"Second repeated sentence about managing platform teams",
		"Third repeated sentence about improving system reliability",
	}
	var sb strings.Builder
	for _, p := range parts {
		sb.WriteString(p + ". " + p + ". ")
	}
	result := AnalyzeDuplicates(sb.String())
	assert.Equal(t, 3, result.DuplicateSentences)
	assert.Equal(t, StatusWarning, result.Status)
}

func TestAnalyzeDuplicates_ShortFragmentsIgnored(t *testing.T) {
	result := AnalyzeDuplicates("Go. Go. Go. Go.")
	assert.Zero(t, result.DuplicateSentences)
	assert.Equal(t, StatusSuccess, result.Status)
}

func TestAnalyzeDuplicates_RepeatedPhraseAcrossSentences(t *testing.T) {
	// The same 5-word run appears inside two otherwise distinct sentences.
	text := "Built and maintained internal developer tooling for the platform group. " +
		"Built and maintained internal developer documentation for new hires."
	result := AnalyzeDuplicates(text)
	assert.Positive(t, result.RepeatedPhrases)
	require.NotEmpty(t, result.Phrases)
	assert.Equal(t, "built and maintained internal developer", result.Phrases[0].Word)
}

func TestAnalyzeDuplicates_EmptyText(t *testing.T) {
	result := AnalyzeDuplicates("")
	assert.Zero(t, result.DuplicateSentences)
	assert.Zero(t, result.RepeatedPhrases)
	assert.Equal(t, StatusSuccess, result.Status)
}
