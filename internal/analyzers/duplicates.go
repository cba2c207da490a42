package analyzers

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/textmetrics"
)

const (
	// minSentenceLength filters out fragments before duplicate detection.
	minSentenceLength = 20
	// phraseWindow is the sliding-window width for repeated-phrase checks.
	phraseWindow = 5
	// maxDuplicateSamples caps the reported duplicate lists.
	maxDuplicateSamples = 5
)

// DuplicateResult reports repeated sentences and phrases.
type DuplicateResult struct {
	DuplicateSentences int                     `json:"duplicate_sentences"`
	RepeatedPhrases    int                     `json:"repeated_phrases"`
	Duplicates         []textmetrics.WordCount `json:"duplicates"`
	Phrases            []textmetrics.WordCount `json:"phrases"`
	Recommendation     string                  `json:"recommendation"`
	Status             Status                  `json:"status"`
}

// AnalyzeDuplicates finds exact duplicate sentences (after trimming,
// ignoring fragments of 20 characters or fewer) and repeated 5-word
// lowercased phrases. Reported samples are capped at five each, ordered by
// first occurrence.
func AnalyzeDuplicates(text string) DuplicateResult {
	sentences := textmetrics.Sentences(text, minSentenceLength)
	sentenceFreqs := textmetrics.NewFrequencies(sentences)

	var phrases []string
	for _, sentence := range sentences {
		words := strings.Fields(sentence)
		for i := 0; i+phraseWindow <= len(words); i++ {
			phrase := strings.ToLower(strings.Join(words[i:i+phraseWindow], " "))
			if len(phrase) > minSentenceLength {
				phrases = append(phrases, phrase)
			}
		}
	}
	phraseFreqs := textmetrics.NewFrequencies(phrases)

	result := DuplicateResult{
		DuplicateSentences: sentenceFreqs.RepeatedCount(),
		RepeatedPhrases:    phraseFreqs.RepeatedCount(),
		Duplicates:         sentenceFreqs.Repeated(maxDuplicateSamples),
		Phrases:            phraseFreqs.Repeated(maxDuplicateSamples),
	}

	switch {
	case result.DuplicateSentences == 0 && result.RepeatedPhrases == 0:
		result.Status = StatusSuccess
		result.Recommendation = "No duplicate content found - good variety"
	case result.DuplicateSentences > 2 || result.RepeatedPhrases > 5:
		result.Status = StatusWarning
		result.Recommendation = "Significant duplicate content found - vary your descriptions"
	default:
		result.Status = StatusSuccess
		result.Recommendation = "Minimal duplication - acceptable"
	}

	return result
}
