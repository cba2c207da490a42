package textmetrics

import "strings"

// Readability holds the Flesch Reading Ease score together with the
// statistics it is computed from.
type Readability struct {
	FleschScore       float64 `json:"flesch_score"`
	AvgSentenceLength float64 `json:"avg_sentence_length"`
	AvgSyllables      float64 `json:"avg_syllables"`
}

// ComputeReadability computes the classic Flesch Reading Ease score:
//
//	206.835 - 1.015*(words/sentences) - 84.6*(syllables/words)
//
// Empty text yields a zero-valued result.
func ComputeReadability(text string) Readability {
	words := Words(text)
	if len(words) == 0 {
		return Readability{}
	}

	sentenceCount := len(Sentences(text, 0))
	if sentenceCount == 0 {
		sentenceCount = 1
	}

	totalSyllables := 0
	for _, w := range words {
		totalSyllables += SyllableCount(w)
	}

	wordsPerSentence := float64(len(words)) / float64(sentenceCount)
	syllablesPerWord := float64(totalSyllables) / float64(len(words))

	return Readability{
		FleschScore:       206.835 - 1.015*wordsPerSentence - 84.6*syllablesPerWord,
		AvgSentenceLength: wordsPerSentence,
		AvgSyllables:      syllablesPerWord,
	}
}

// SyllableCount estimates syllables in a word by counting vowel groups,
// with the standard silent-e adjustment. Every word counts as at least one
// syllable.
func SyllableCount(word string) int {
	word = strings.ToLower(word)
	count := 0
	prevVowel := false
	for _, r := range word {
		vowel := strings.ContainsRune("aeiouy", r)
		if vowel && !prevVowel {
			count++
		}
		prevVowel = vowel
	}
	if strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") && count > 1 {
		count--
	}
	// Silent -ed, except after t or d (wanted, folded).
	if strings.HasSuffix(word, "ed") && !strings.HasSuffix(word, "ted") &&
		!strings.HasSuffix(word, "ded") && count > 1 {
		count--
	}
	if count == 0 {
		count = 1
	}
	return count
}
