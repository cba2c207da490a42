package analyzers

import "github.com/jonathan/resume-analyzer/internal/patterns"

// maxMetricSamples caps the retained metric matches.
const maxMetricSamples = 10

// QuantificationResult reports how well achievements are backed by numbers.
type QuantificationResult struct {
	MetricsCount         int      `json:"metrics_count"`
	QuantifiedPercentage float64  `json:"quantified_percentage"`
	SampleMetrics        []string `json:"sample_metrics"`
	Recommendation       string   `json:"recommendation"`
	Status               Status   `json:"status"`
}

// AnalyzeQuantification pools matches from the five metric pattern families
// and relates them to the approximate bullet count (bullet glyph
// occurrences). With zero bullets the quantified percentage is zero.
func AnalyzeQuantification(text string) QuantificationResult {
	var allMetrics []string
	for _, p := range patterns.MetricPatterns {
		allMetrics = append(allMetrics, p.FindAllString(text, -1)...)
	}

	result := QuantificationResult{
		MetricsCount:  len(allMetrics),
		SampleMetrics: capList(allMetrics, maxMetricSamples),
	}

	bulletCount := len(patterns.BulletGlyphPattern.FindAllString(text, -1))
	if bulletCount > 0 {
		result.QuantifiedPercentage = float64(result.MetricsCount) / float64(bulletCount) * 100
	}

	switch {
	case result.QuantifiedPercentage >= 60:
		result.Recommendation = "Excellent quantification - Strong evidence of impact"
		result.Status = StatusSuccess
	case result.QuantifiedPercentage >= 30:
		result.Recommendation = "Good quantification - Consider adding more specific metrics"
		result.Status = StatusSuccess
	default:
		result.Recommendation = "Add numbers and metrics to demonstrate your impact"
		result.Status = StatusWarning
	}

	return result
}
