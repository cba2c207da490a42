package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// groqEndpoint is Groq's OpenAI-compatible chat completions API.
	groqEndpoint = "https://api.groq.com/openai/v1/chat/completions"
	groqModel    = "llama-3.3-70b-versatile"

	groqTimeout   = 60 * time.Second
	groqMaxTokens = 4096
)

// GroqMatcher implements Matcher on Groq's OpenAI-compatible HTTP API.
// There is no official Go SDK; the wire format is plain JSON over HTTP.
type GroqMatcher struct {
	apiKey     string
	endpoint   string
	model      string
	httpClient *http.Client
}

// NewGroqMatcher creates a Groq-backed matcher.
func NewGroqMatcher(apiKey string) (*GroqMatcher, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	return &GroqMatcher{
		apiKey:     apiKey,
		endpoint:   groqEndpoint,
		model:      groqModel,
		httpClient: &http.Client{Timeout: groqTimeout},
	}, nil
}

// Match scores the resume against the job description.
func (m *GroqMatcher) Match(ctx context.Context, resumeText, jobDescription string) (*MatchResult, error) {
	return matchWithRetries(ctx, m.generate, resumeText, jobDescription)
}

// Close is a no-op; the matcher holds no long-lived resources.
func (m *GroqMatcher) Close() error { return nil }

type groqRequest struct {
	Model       string        `json:"model"`
	Messages    []groqMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type groqMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type groqResponse struct {
	Choices []struct {
		Message groqMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (m *GroqMatcher) generate(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(groqRequest{
		Model:       m.model,
		Messages:    []groqMessage{{Role: "user", Content: prompt}},
		Temperature: 0.3,
		MaxTokens:   groqMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.apiKey)

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var decoded groqResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", fmt.Errorf("failed to decode response (status %d): %w", resp.StatusCode, err)
	}
	if decoded.Error != nil {
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, decoded.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if len(decoded.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	return decoded.Choices[0].Message.Content, nil
}
