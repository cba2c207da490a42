package analyzers

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/patterns"
)

// SectionResult reports which resume sections were detected.
type SectionResult struct {
	SectionsFound   map[string]bool `json:"sections_found"`
	MissingRequired []string        `json:"missing_required"`
	Recommendation  string          `json:"recommendation"`
	Status          Status          `json:"status"`
}

// AnalyzeSections tests each section category's heading synonyms against
// the lowercased text; the first matching pattern marks a category found.
// Missing optional sections never downgrade the status.
func AnalyzeSections(text string) SectionResult {
	textLower := strings.ToLower(text)

	result := SectionResult{
		SectionsFound:   make(map[string]bool, len(patterns.SectionCategories)),
		MissingRequired: []string{},
	}

	for _, cat := range patterns.SectionCategories {
		found := false
		for _, p := range cat.Patterns {
			if p.MatchString(textLower) {
				found = true
				break
			}
		}
		result.SectionsFound[cat.Name] = found
		if cat.Required && !found {
			result.MissingRequired = append(result.MissingRequired, cat.Name)
		}
	}

	if len(result.MissingRequired) == 0 {
		result.Status = StatusSuccess
		result.Recommendation = "All essential sections present"
	} else {
		result.Status = StatusWarning
		result.Recommendation = fmt.Sprintf("Missing required sections: %s", strings.Join(result.MissingRequired, ", "))
	}

	return result
}
