// Package textmetrics provides the low-level text statistics shared by the
// analyzers: tokenization, sentence splitting, stop-word filtering, and
// ordered frequency counting.
package textmetrics

import (
	"regexp"
	"sort"
	"strings"
)

var (
	wordPattern     = regexp.MustCompile(`\b\w+\b`)
	keywordPattern  = regexp.MustCompile(`\b[a-zA-Z]{3,}\b`)
	sentencePattern = regexp.MustCompile(`[.!?]+`)
)

// Words returns all lowercase word tokens (\w+) in text.
func Words(text string) []string {
	return wordPattern.FindAllString(strings.ToLower(text), -1)
}

// Keywords returns lowercase alphabetic tokens of length >= 3.
func Keywords(text string) []string {
	return keywordPattern.FindAllString(strings.ToLower(text), -1)
}

// Sentences splits text on runs of sentence terminators, trims each piece,
// and drops any shorter than minLen characters.
func Sentences(text string, minLen int) []string {
	parts := sentencePattern.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if len(p) > minLen {
			sentences = append(sentences, p)
		}
	}
	return sentences
}

// FilterStopWords returns tokens with stop words removed.
func FilterStopWords(tokens []string, stopWords map[string]bool) []string {
	filtered := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if !stopWords[tok] {
			filtered = append(filtered, tok)
		}
	}
	return filtered
}

// WordCount is one token with its occurrence count.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Frequencies counts token occurrences, preserving first-seen order.
type Frequencies struct {
	counts map[string]int
	order  []string
}

// NewFrequencies counts the given tokens.
func NewFrequencies(tokens []string) *Frequencies {
	f := &Frequencies{counts: make(map[string]int, len(tokens))}
	for _, tok := range tokens {
		if _, seen := f.counts[tok]; !seen {
			f.order = append(f.order, tok)
		}
		f.counts[tok]++
	}
	return f
}

// Count returns the occurrence count for a token.
func (f *Frequencies) Count(token string) int {
	return f.counts[token]
}

// Unique returns the number of distinct tokens.
func (f *Frequencies) Unique() int {
	return len(f.counts)
}

// TopN returns up to n entries sorted by count descending, ties broken by
// first-occurrence order. The order is fully deterministic for a given
// token sequence.
func (f *Frequencies) TopN(n int) []WordCount {
	entries := make([]WordCount, 0, len(f.order))
	for _, tok := range f.order {
		entries = append(entries, WordCount{Word: tok, Count: f.counts[tok]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// Repeated returns up to n entries with count > 1, in first-seen order.
func (f *Frequencies) Repeated(n int) []WordCount {
	entries := make([]WordCount, 0, n)
	for _, tok := range f.order {
		if f.counts[tok] > 1 {
			entries = append(entries, WordCount{Word: tok, Count: f.counts[tok]})
			if len(entries) == n {
				break
			}
		}
	}
	return entries
}

// RepeatedCount returns the number of distinct tokens with count > 1.
func (f *Frequencies) RepeatedCount() int {
	total := 0
	for _, c := range f.counts {
		if c > 1 {
			total++
		}
	}
	return total
}
