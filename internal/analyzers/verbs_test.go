package analyzers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeVerbs_BalancedScore(t *testing.T) {
	result := AnalyzeVerbs("Led the team. Assisted with deployments.")

	assert.Equal(t, 1, result.StrongVerbsCount)
	assert.Equal(t, 1, result.WeakVerbsCount)
	assert.Equal(t, 50.0, result.Score)
	assert.Equal(t, StatusSuccess, result.Status)
	assert.Equal(t, []string{"led"}, result.StrongVerbsUsed)
	assert.Equal(t, []string{"assisted"}, result.WeakVerbsFound)
}

func TestAnalyzeVerbs_MembershipNotFrequency(t *testing.T) {
	result := AnalyzeVerbs("led led led led assisted")
	assert.Equal(t, 1, result.StrongVerbsCount)
	assert.Equal(t, 1, result.WeakVerbsCount)
	assert.Equal(t, 50.0, result.Score)
}

func TestAnalyzeVerbs_ZeroDenominator(t *testing.T) {
	result := AnalyzeVerbs("plain text with no verb set members")
	assert.Zero(t, result.StrongVerbsCount)
	assert.Zero(t, result.WeakVerbsCount)
	assert.Zero(t, result.Score)
	assert.Equal(t, StatusWarning, result.Status)
}

func TestAnalyzeVerbs_SetOrderPreserved(t *testing.T) {
	// Mention verbs in reverse of the declared set order; output follows
	// the set, not the text.
	result := AnalyzeVerbs("managed developed achieved")
	assert.Equal(t, []string{"achieved", "developed", "managed"}, result.StrongVerbsUsed)
}

func TestAnalyzeVerbs_ListCapAtTen(t *testing.T) {
	text := strings.Join([]string{
		"achieved", "improved", "developed", "led", "managed", "created",
		"designed", "implemented", "increased", "reduced", "optimized",
		"streamlined",
	}, " ")
	result := AnalyzeVerbs(text)
	require.Equal(t, 12, result.StrongVerbsCount)
	assert.Len(t, result.StrongVerbsUsed, 10)
	assert.Equal(t, StatusSuccess, result.Status)
	assert.Equal(t, 100.0, result.Score)
}

func TestAnalyzeVerbs_CaseInsensitive(t *testing.T) {
	result := AnalyzeVerbs("SPEARHEADED a migration")
	assert.Equal(t, 1, result.StrongVerbsCount)
}
