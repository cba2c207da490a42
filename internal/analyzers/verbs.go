package analyzers

import (
	"github.com/jonathan/resume-analyzer/internal/patterns"
	"github.com/jonathan/resume-analyzer/internal/textmetrics"
)

// maxVerbSamples caps the displayed verb lists.
const maxVerbSamples = 10

// VerbResult reports action verb usage.
type VerbResult struct {
	StrongVerbsCount int      `json:"strong_verbs_count"`
	WeakVerbsCount   int      `json:"weak_verbs_count"`
	StrongVerbsUsed  []string `json:"strong_verbs_used"`
	WeakVerbsFound   []string `json:"weak_verbs_found"`
	Score            float64  `json:"score"`
	Recommendation   string   `json:"recommendation"`
	Status           Status   `json:"status"`
}

// AnalyzeVerbs tests word membership against the fixed strong and weak verb
// sets. Membership, not frequency: a verb used many times counts once.
// Score is strong/(strong+weak)*100, zero when neither set matched. The
// displayed lists follow the declared set order and cap at ten entries.
func AnalyzeVerbs(text string) VerbResult {
	words := make(map[string]bool)
	for _, w := range textmetrics.Words(text) {
		words[w] = true
	}

	var strongUsed, weakFound []string
	for _, verb := range patterns.StrongVerbs {
		if words[verb] {
			strongUsed = append(strongUsed, verb)
		}
	}
	for _, verb := range patterns.WeakVerbs {
		if words[verb] {
			weakFound = append(weakFound, verb)
		}
	}

	result := VerbResult{
		StrongVerbsCount: len(strongUsed),
		WeakVerbsCount:   len(weakFound),
		StrongVerbsUsed:  capList(strongUsed, maxVerbSamples),
		WeakVerbsFound:   capList(weakFound, maxVerbSamples),
	}

	if total := result.StrongVerbsCount + result.WeakVerbsCount; total > 0 {
		result.Score = float64(result.StrongVerbsCount) / float64(total) * 100
	}

	switch {
	case result.Score >= 70:
		result.Recommendation = "Excellent use of action verbs!"
		result.Status = StatusSuccess
	case result.Score >= 50:
		result.Recommendation = "Good use of action verbs - Consider replacing some weak verbs"
		result.Status = StatusSuccess
	default:
		result.Recommendation = "Replace passive language with strong action verbs"
		result.Status = StatusWarning
	}

	return result
}

func capList(items []string, n int) []string {
	if items == nil {
		return []string{}
	}
	if len(items) > n {
		return items[:n]
	}
	return items
}
