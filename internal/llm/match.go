package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// maxAttempts bounds the retry loop; backoff doubles between attempts.
const maxAttempts = 3

// FoundKeywords groups keywords the provider located in the resume.
type FoundKeywords struct {
	TechnicalSkills    []string `json:"technical_skills"`
	SoftSkills         []string `json:"soft_skills"`
	ExperienceKeywords []string `json:"experience_keywords"`
	EducationKeywords  []string `json:"education_keywords"`
}

// MissingKeywords groups job requirements the provider could not find.
type MissingKeywords struct {
	CriticalTechnicalSkills []string `json:"critical_technical_skills"`
	ImportantSoftSkills     []string `json:"important_soft_skills"`
	ExperienceGaps          []string `json:"experience_gaps"`
	EducationGaps           []string `json:"education_gaps"`
}

// MatchResult is the structured outcome of an AI resume/job comparison.
type MatchResult struct {
	MatchScore          float64         `json:"match_score"`
	MatchReasoning      string          `json:"match_reasoning"`
	FoundKeywords       FoundKeywords   `json:"found_keywords"`
	MissingKeywords     MissingKeywords `json:"missing_keywords"`
	Suggestions         []string        `json:"suggestions"`
	AtsOptimizationTips []string        `json:"ats_optimization_tips"`
	Strengths           []string        `json:"strengths"`
	MatchRating         string          `json:"match_rating"`
}

// Rating bands for the overall match score.
const (
	RatingExcellent        = "Excellent Match"
	RatingGood             = "Good Match"
	RatingNeedsImprovement = "Needs Improvement"
)

// MatchRating maps a score to its display band.
func MatchRating(score float64) string {
	switch {
	case score >= 71:
		return RatingExcellent
	case score >= 41:
		return RatingGood
	default:
		return RatingNeedsImprovement
	}
}

// BuildMatchPrompt renders the analysis prompt shared by all providers.
func BuildMatchPrompt(resumeText, jobDescription string) string {
	var sb strings.Builder
	sb.WriteString("You are an expert ATS (Applicant Tracking System) and resume analyst. ")
	sb.WriteString("Analyze the following resume against the job description and provide a comprehensive analysis.\n\n")
	sb.WriteString("Resume:\n")
	sb.WriteString(resumeText)
	sb.WriteString("\n\nJob Description:\n")
	sb.WriteString(jobDescription)
	sb.WriteString("\n\nProvide your analysis in the following JSON format (respond ONLY with valid JSON, no additional text):\n")
	sb.WriteString(`{
    "match_score": <number between 0-100>,
    "match_reasoning": "<brief explanation of the score>",
    "found_keywords": {
        "technical_skills": ["skill1", "skill2"],
        "soft_skills": ["skill1", "skill2"],
        "experience_keywords": ["keyword1", "keyword2"],
        "education_keywords": ["keyword1", "keyword2"]
    },
    "missing_keywords": {
        "critical_technical_skills": ["skill1", "skill2"],
        "important_soft_skills": ["skill1", "skill2"],
        "experience_gaps": ["gap1", "gap2"],
        "education_gaps": ["gap1", "gap2"]
    },
    "suggestions": ["suggestion1", "suggestion2", "suggestion3", "suggestion4", "suggestion5"],
    "ats_optimization_tips": ["tip1", "tip2", "tip3"],
    "strengths": ["strength1", "strength2", "strength3"]
}`)
	sb.WriteString("\n\nBe specific and actionable in your suggestions. ")
	sb.WriteString("Focus on what's actually present or missing in the resume compared to the job description.")
	return sb.String()
}

var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// ParseMatchResult extracts, validates and decodes a provider response.
// The score is clamped to [0, 100] and the rating band is filled in.
func ParseMatchResult(raw string) (*MatchResult, error) {
	cleaned := CleanJSONBlock(raw)

	// Tolerate prose around the JSON object.
	if match := jsonObjectPattern.FindString(cleaned); match != "" {
		cleaned = match
	}

	if err := ValidateMatchJSON(cleaned); err != nil {
		return nil, fmt.Errorf("match result failed schema validation: %w", err)
	}

	var result MatchResult
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return nil, fmt.Errorf("failed to decode match result: %w", err)
	}

	if result.MatchScore < 0 {
		result.MatchScore = 0
	}
	if result.MatchScore > 100 {
		result.MatchScore = 100
	}
	result.MatchRating = MatchRating(result.MatchScore)

	return &result, nil
}

// generateFunc is one provider attempt: prompt in, raw response out.
type generateFunc func(ctx context.Context, prompt string) (string, error)

// matchWithRetries drives the shared attempt loop: generate, parse,
// validate; back off and retry on any failure, up to maxAttempts.
func matchWithRetries(ctx context.Context, generate generateFunc, resumeText, jobDescription string) (*MatchResult, error) {
	prompt := BuildMatchPrompt(resumeText, jobDescription)

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(1<<attempt) * time.Second
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}

		raw, err := generate(ctx, prompt)
		if err != nil {
			lastErr = err
			continue
		}

		result, err := ParseMatchResult(raw)
		if err != nil {
			lastErr = err
			continue
		}
		return result, nil
	}

	return nil, fmt.Errorf("match failed after %d attempts: %w", maxAttempts, lastErr)
}

// CleanJSONBlock removes markdown code fences from a model response. LLMs
// often wrap JSON in ```json blocks even when instructed not to.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	return text
}
