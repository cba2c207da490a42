package analyzers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeSections_MissingSkills(t *testing.T) {
	text := "Professional Experience\nAcme Corp\n\nEducation\nState University"
	result := AnalyzeSections(text)

	assert.True(t, result.SectionsFound["experience"])
	assert.True(t, result.SectionsFound["education"])
	assert.False(t, result.SectionsFound["skills"])
	assert.Equal(t, []string{"skills"}, result.MissingRequired)
	assert.Equal(t, StatusWarning, result.Status)
	assert.Contains(t, result.Recommendation, "skills")
}

func TestAnalyzeSections_AllRequiredPresent(t *testing.T) {
	text := "Work History\nEducation\nCore Competencies"
	result := AnalyzeSections(text)
	assert.Empty(t, result.MissingRequired)
	assert.Equal(t, StatusSuccess, result.Status)
}

func TestAnalyzeSections_OptionalNeverDowngrades(t *testing.T) {
	// No summary/projects/certifications, but all required present.
	result := AnalyzeSections("Experience Education Skills")
	assert.Equal(t, StatusSuccess, result.Status)
	assert.False(t, result.SectionsFound["summary"])
	assert.False(t, result.SectionsFound["projects"])
	assert.False(t, result.SectionsFound["certifications"])
}

func TestAnalyzeSections_CaseInsensitive(t *testing.T) {
	result := AnalyzeSections("EXPERIENCE EDUCATION SKILLS")
	assert.Equal(t, StatusSuccess, result.Status)
}

func TestAnalyzeSections_EmptyText(t *testing.T) {
	result := AnalyzeSections("")
	assert.Equal(t, []string{"experience", "education", "skills"}, result.MissingRequired)
	assert.Equal(t, StatusWarning, result.Status)
}

func TestAnalyzeSections_OptionalDetected(t *testing.T) {
	result := AnalyzeSections("Summary\nProjects\nCertifications")
	assert.True(t, result.SectionsFound["summary"])
	assert.True(t, result.SectionsFound["projects"])
	assert.True(t, result.SectionsFound["certifications"])
}
