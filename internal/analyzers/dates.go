package analyzers

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/patterns"
)

// DateFormatResult reports which date format families appear in the text.
type DateFormatResult struct {
	FormatsFound   map[string]int `json:"formats_found"`
	FormatCount    int            `json:"format_count"`
	Recommendation string         `json:"recommendation"`
	Status         Status         `json:"status"`
}

// AnalyzeDateFormats counts occurrences of each date format family. One
// consistent family is ideal; several flag inconsistent formatting.
func AnalyzeDateFormats(text string) DateFormatResult {
	result := DateFormatResult{FormatsFound: make(map[string]int)}

	var found []string
	for _, df := range patterns.DateFormats {
		if matches := df.Pattern.FindAllString(text, -1); len(matches) > 0 {
			result.FormatsFound[df.Name] = len(matches)
			found = append(found, df.Name)
		}
	}
	result.FormatCount = len(result.FormatsFound)

	switch result.FormatCount {
	case 0:
		result.Status = StatusWarning
		result.Recommendation = "No dates found - consider adding employment/education dates"
	case 1:
		result.Status = StatusSuccess
		result.Recommendation = "Consistent date format used throughout"
	default:
		result.Status = StatusWarning
		result.Recommendation = fmt.Sprintf("Inconsistent date formats found: %s", strings.Join(found, ", "))
	}

	return result
}
