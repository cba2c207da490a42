package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/report"
)

const exportResume = `John Smith
john.smith@example.com | 555-123-4567 | linkedin.com/in/johnsmith

Experience
• Led migration to Kubernetes, reduced costs by 30%
• Managed a team of 5 engineers

Education
MS Software Engineering

Skills
Go, Docker`

func sampleMatch() *llm.MatchResult {
	return &llm.MatchResult{
		MatchScore:     78,
		MatchReasoning: "Solid technical alignment",
		FoundKeywords: llm.FoundKeywords{
			TechnicalSkills: []string{"Go", "Docker"},
			SoftSkills:      []string{"leadership"},
		},
		MissingKeywords: llm.MissingKeywords{
			CriticalTechnicalSkills: []string{"Terraform"},
		},
	}
}

func TestFlatten_CopiesWhitelistedFields(t *testing.T) {
	r := report.Run(exportResume, "")
	rec := Flatten(r, sampleMatch())

	assert.Equal(t, r.Length.WordCount, rec.WordCount)
	assert.Equal(t, r.Length.EstimatedPages, rec.EstimatedPages)
	assert.True(t, rec.HasEmail)
	assert.True(t, rec.HasPhone)
	assert.True(t, rec.HasLinkedIn)
	assert.Equal(t, 75, rec.ContactScore)
	assert.Equal(t, 2, rec.BulletCount)
	assert.Equal(t, r.Verbs.Score, rec.VerbScore)
	assert.Equal(t, r.Quantification.MetricsCount, rec.MetricsCount)

	assert.Equal(t, 78.0, rec.MatchScore)
	assert.Equal(t, "Solid technical alignment", rec.MatchReasoning)
	assert.Equal(t, 2, rec.TechnicalSkillsFound)
	assert.Equal(t, 1, rec.SoftSkillsFound)
	assert.Equal(t, 1, rec.CriticalSkillsMissing)
	assert.Zero(t, rec.SoftSkillsMissing)
}

func TestFlatten_NilMatchLeavesMatchFieldsZero(t *testing.T) {
	rec := Flatten(report.Run(exportResume, ""), nil)

	assert.Zero(t, rec.MatchScore)
	assert.Empty(t, rec.MatchReasoning)
	assert.Zero(t, rec.TechnicalSkillsFound)
}

func TestFlatten_StampsRunIDAndDate(t *testing.T) {
	rec := Flatten(report.Run(exportResume, ""), nil)

	_, err := uuid.Parse(rec.RunID)
	assert.NoError(t, err)

	parsed, err := time.Parse(timestampLayout, rec.AnalysisDate)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), parsed, time.Minute)

	other := Flatten(report.Run(exportResume, ""), nil)
	assert.NotEqual(t, rec.RunID, other.RunID)
}

func TestWriteCSV_HeaderAndRows(t *testing.T) {
	r := report.Run(exportResume, "")
	rec := Flatten(r, sampleMatch())

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, rec, rec))

	rows, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, csvHeader, rows[0])
	assert.Len(t, rows[1], len(csvHeader))
	assert.Equal(t, rec.RunID, rows[1][0])
	assert.Equal(t, "78.00", rows[1][2])
	assert.Equal(t, "true", rows[1][6])
}

func TestWriteCSV_NoRecords(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf))

	rows, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, csvHeader, rows[0])
}
