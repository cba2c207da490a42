package analyzers

import "strings"

// wordsPerPage is the assumed word density of one resume page.
const wordsPerPage = 500.0

// LengthResult reports resume length metrics.
type LengthResult struct {
	WordCount      int     `json:"word_count"`
	CharacterCount int     `json:"character_count"`
	EstimatedPages float64 `json:"estimated_pages"`
	Recommendation string  `json:"recommendation"`
	Status         Status  `json:"status"`
}

// AnalyzeLength computes word/character counts and an estimated page count
// (words / 500, unrounded; display layers round to one decimal).
func AnalyzeLength(text string) LengthResult {
	wordCount := len(strings.Fields(text))

	result := LengthResult{
		WordCount:      wordCount,
		CharacterCount: len(text),
		EstimatedPages: float64(wordCount) / wordsPerPage,
	}

	switch {
	case wordCount < 300:
		result.Recommendation = "Too short - Add more details about your experience and skills"
		result.Status = StatusWarning
	case wordCount < 600:
		result.Recommendation = "Good length - Ideal for 1-page resume"
		result.Status = StatusSuccess
	case wordCount < 1000:
		result.Recommendation = "Good length - Suitable for 2-page resume with extensive experience"
		result.Status = StatusSuccess
	default:
		result.Recommendation = "Too long - Consider condensing to highlight key achievements only"
		result.Status = StatusWarning
	}

	return result
}
