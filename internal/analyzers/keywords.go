package analyzers

import (
	"github.com/jonathan/resume-analyzer/internal/patterns"
	"github.com/jonathan/resume-analyzer/internal/textmetrics"
)

const (
	maxTopKeywords      = 20
	maxMatchingKeywords = 10
)

// KeywordResult reports keyword frequency in the resume and, when a job
// description is supplied, the overlap with its vocabulary.
type KeywordResult struct {
	TopKeywords      []textmetrics.WordCount `json:"top_keywords"`
	MatchingKeywords []textmetrics.WordCount `json:"matching_keywords"`
	TotalWords       int                     `json:"total_words"`
	UniqueWords      int                     `json:"unique_words"`
}

// AnalyzeKeywords extracts alphabetic tokens of length >= 3, removes stop
// words, and returns the top 20 by count (ties broken by first occurrence).
// With a non-empty job description it also surfaces up to 10 of those
// keywords that appear in the job text after the same filtering.
func AnalyzeKeywords(text, jobDescription string) KeywordResult {
	filtered := textmetrics.FilterStopWords(textmetrics.Keywords(text), patterns.StopWords)
	freqs := textmetrics.NewFrequencies(filtered)

	result := KeywordResult{
		TopKeywords:      freqs.TopN(maxTopKeywords),
		MatchingKeywords: []textmetrics.WordCount{},
		TotalWords:       len(filtered),
		UniqueWords:      freqs.Unique(),
	}

	if jobDescription != "" {
		jobWords := make(map[string]bool)
		for _, w := range textmetrics.FilterStopWords(textmetrics.Keywords(jobDescription), patterns.StopWords) {
			jobWords[w] = true
		}
		for _, kw := range result.TopKeywords {
			if jobWords[kw.Word] {
				result.MatchingKeywords = append(result.MatchingKeywords, kw)
				if len(result.MatchingKeywords) == maxMatchingKeywords {
					break
				}
			}
		}
	}

	return result
}
