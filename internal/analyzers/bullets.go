package analyzers

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/patterns"
)

// maxBulletSamples caps how many matching lines are retained.
const maxBulletSamples = 5

// BulletResult reports bullet point usage.
type BulletResult struct {
	TotalCount     int      `json:"total_count"`
	SampleBullets  []string `json:"sample_bullets"`
	Recommendation string   `json:"recommendation"`
	Status         Status   `json:"status"`
}

// AnalyzeBullets counts lines that start with a bullet marker (glyph,
// asterisk, or ">", each followed by whitespace) and keeps the first five
// as samples.
func AnalyzeBullets(text string) BulletResult {
	result := BulletResult{SampleBullets: []string{}}

	for _, line := range strings.Split(text, "\n") {
		for _, p := range patterns.BulletLinePatterns {
			if p.MatchString(line) {
				result.TotalCount++
				if len(result.SampleBullets) < maxBulletSamples {
					result.SampleBullets = append(result.SampleBullets, strings.TrimSpace(line))
				}
				break
			}
		}
	}

	switch {
	case result.TotalCount < 5:
		result.Recommendation = "Too few bullet points - Add more specific achievements and responsibilities"
		result.Status = StatusWarning
	case result.TotalCount < 20:
		result.Recommendation = "Good number of bullet points - Well-structured resume"
		result.Status = StatusSuccess
	case result.TotalCount < 35:
		result.Recommendation = "Adequate bullet points - Consider if all are necessary"
		result.Status = StatusSuccess
	default:
		result.Recommendation = "Too many bullet points - Focus on most impactful achievements"
		result.Status = StatusWarning
	}

	return result
}
