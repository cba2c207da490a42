package analyzers

import "github.com/jonathan/resume-analyzer/internal/textmetrics"

// ReadabilityResult reports the Flesch Reading Ease score with an
// interpretation tuned for resumes.
type ReadabilityResult struct {
	FleschScore       float64 `json:"flesch_score"`
	Interpretation    string  `json:"interpretation"`
	AvgSentenceLength float64 `json:"avg_sentence_length"`
	AvgSyllables      float64 `json:"avg_syllables"`
	Recommendation    string  `json:"recommendation"`
	Status            Status  `json:"status"`
}

// AnalyzeReadability computes readability metrics and maps the Flesch score
// to resume-appropriate bands. Mid-range scores are good: very easy text
// reads as unprofessional, very difficult text as impenetrable.
func AnalyzeReadability(text string) ReadabilityResult {
	r := textmetrics.ComputeReadability(text)

	result := ReadabilityResult{
		FleschScore:       r.FleschScore,
		AvgSentenceLength: r.AvgSentenceLength,
		AvgSyllables:      r.AvgSyllables,
	}

	switch {
	case r.FleschScore >= 80:
		result.Interpretation = "Very Easy - May be too simple for professional resume"
		result.Recommendation = "Consider using more professional vocabulary"
		result.Status = StatusWarning
	case r.FleschScore >= 60:
		result.Interpretation = "Easy - Good for general audience"
		result.Recommendation = "Perfect balance for most resumes"
		result.Status = StatusSuccess
	case r.FleschScore >= 50:
		result.Interpretation = "Fairly Difficult - Appropriate for professional resume"
		result.Recommendation = "Good professional tone"
		result.Status = StatusSuccess
	case r.FleschScore >= 30:
		result.Interpretation = "Difficult - May be too complex"
		result.Recommendation = "Simplify some sentences for better readability"
		result.Status = StatusWarning
	default:
		result.Interpretation = "Very Difficult - Too complex for resumes"
		result.Recommendation = "Significantly simplify your language"
		result.Status = StatusWarning
	}

	return result
}
