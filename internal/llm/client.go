// Package llm integrates the external AI resume-match providers. Both
// providers share one contract: resume text plus job text in, a structured
// match result out, or an error after bounded retries. Provider choice is
// configuration, not call sites.
package llm

import (
	"context"
	"fmt"
)

// Provider identifies an AI backend.
type Provider string

const (
	ProviderGemini Provider = "gemini"
	ProviderGroq   Provider = "groq"
)

// Matcher scores a resume against a job description.
type Matcher interface {
	// Match returns a structured match result, retrying transient
	// failures with exponential backoff before giving up.
	Match(ctx context.Context, resumeText, jobDescription string) (*MatchResult, error)
	// Close releases any resources held by the client.
	Close() error
}

// NewMatcher creates the matcher for the configured provider.
func NewMatcher(ctx context.Context, provider Provider, apiKey string) (Matcher, error) {
	switch provider {
	case ProviderGemini, "":
		return NewGeminiMatcher(ctx, apiKey)
	case ProviderGroq:
		return NewGroqMatcher(apiKey)
	default:
		return nil, fmt.Errorf("unknown AI provider %q", provider)
	}
}
