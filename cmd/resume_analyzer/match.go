package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/pdfio"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match a resume against a job description with an AI provider",
	Long:  "Send the resume text and job description to the configured AI provider (Gemini or Groq) and print the structured match result: score, rating, found and missing keywords, and suggestions.",
	RunE:  runMatch,
}

var (
	matchResume   string
	matchJob      string
	matchJobURL   string
	matchProvider string
	matchAPIKey   string
	matchConfig   string
)

func init() {
	matchCmd.Flags().StringVarP(&matchResume, "resume", "r", "", "Path to resume PDF (required)")
	matchCmd.Flags().StringVarP(&matchJob, "job", "j", "", "Path to job posting text file")
	matchCmd.Flags().StringVarP(&matchJobURL, "job-url", "u", "", "URL to fetch job posting from")
	matchCmd.Flags().StringVarP(&matchProvider, "provider", "p", "", "AI provider: gemini or groq (default gemini)")
	matchCmd.Flags().StringVarP(&matchAPIKey, "api-key", "k", "", "API key (defaults to GEMINI_API_KEY/GROQ_API_KEY)")
	matchCmd.Flags().StringVarP(&matchConfig, "config", "c", "", "Path to JSON config file")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(matchConfig, config.Config{
		Resume:   matchResume,
		Job:      matchJob,
		JobURL:   matchJobURL,
		Provider: matchProvider,
		APIKey:   matchAPIKey,
	})
	if err != nil {
		return err
	}
	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required")
	}
	if cfg.Job == "" && cfg.JobURL == "" {
		return fmt.Errorf("either --job or --job-url must be provided")
	}

	ctx := cmd.Context()

	resumeText, err := pdfio.ExtractText(cfg.Resume)
	if err != nil {
		return fmt.Errorf("failed to extract resume text: %w", err)
	}

	jobText, err := loadJobText(ctx, cfg)
	if err != nil {
		return err
	}

	matcher, err := llm.NewMatcher(ctx, llm.Provider(cfg.Provider), cfg.APIKey)
	if err != nil {
		return err
	}
	defer matcher.Close()

	result, err := matcher.Match(ctx, resumeText, jobText)
	if err != nil {
		return fmt.Errorf("match failed: %w", err)
	}

	printMatchResult(result)
	return nil
}

func printMatchResult(result *llm.MatchResult) {
	fmt.Println("=== AI Match Analysis ===")
	fmt.Println()
	fmt.Printf("Score:  %.0f/100 (%s)\n", result.MatchScore, result.MatchRating)
	if result.MatchReasoning != "" {
		fmt.Printf("Why:    %s\n", result.MatchReasoning)
	}
	fmt.Println()

	printKeywordList("Technical skills found", result.FoundKeywords.TechnicalSkills)
	printKeywordList("Soft skills found", result.FoundKeywords.SoftSkills)
	printKeywordList("Critical skills missing", result.MissingKeywords.CriticalTechnicalSkills)
	printKeywordList("Soft skills missing", result.MissingKeywords.ImportantSoftSkills)

	if len(result.Suggestions) > 0 {
		fmt.Println("Suggestions:")
		for _, s := range result.Suggestions {
			fmt.Printf("  - %s\n", s)
		}
	}
	if len(result.AtsOptimizationTips) > 0 {
		fmt.Println("ATS tips:")
		for _, tip := range result.AtsOptimizationTips {
			fmt.Printf("  - %s\n", tip)
		}
	}
}

func printKeywordList(label string, words []string) {
	if len(words) == 0 {
		return
	}
	fmt.Printf("%s: %s\n", label, strings.Join(words, ", "))
}
