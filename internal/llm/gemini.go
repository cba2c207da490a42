package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// geminiModel is the default Gemini model for match analysis.
const geminiModel = "gemini-1.5-flash"

// GeminiMatcher implements Matcher on the Google Gemini API.
type GeminiMatcher struct {
	client *genai.Client
	model  string
}

// NewGeminiMatcher creates a Gemini-backed matcher.
func NewGeminiMatcher(ctx context.Context, apiKey string) (*GeminiMatcher, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiMatcher{client: client, model: geminiModel}, nil
}

// Match scores the resume against the job description.
func (m *GeminiMatcher) Match(ctx context.Context, resumeText, jobDescription string) (*MatchResult, error) {
	return matchWithRetries(ctx, m.generate, resumeText, jobDescription)
}

func (m *GeminiMatcher) generate(ctx context.Context, prompt string) (string, error) {
	model := m.client.GenerativeModel(m.model)
	model.SetTemperature(0.3)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return extractTextFromResponse(resp)
}

// Close releases resources held by the client.
func (m *GeminiMatcher) Close() error {
	if m.client != nil {
		return m.client.Close()
	}
	return nil
}

// extractTextFromResponse concatenates the text parts of a Gemini response.
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}
