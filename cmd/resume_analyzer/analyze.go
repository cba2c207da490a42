package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/analyzers"
	"github.com/jonathan/resume-analyzer/internal/ats"
	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/export"
	"github.com/jonathan/resume-analyzer/internal/fetch"
	"github.com/jonathan/resume-analyzer/internal/history"
	"github.com/jonathan/resume-analyzer/internal/pdfio"
	"github.com/jonathan/resume-analyzer/internal/report"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume PDF",
	Long:  "Run every heuristic analyzer over a resume PDF, validate its ATS-friendliness, and print a scored summary. Optionally exports a CSV row and saves the run to the history database.",
	RunE:  runAnalyze,
}

var (
	analyzeResume  string
	analyzeJob     string
	analyzeJobURL  string
	analyzeExport  string
	analyzeConfig  string
	analyzeSave    bool
	analyzeVerbose bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume PDF (required)")
	analyzeCmd.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to job posting text file")
	analyzeCmd.Flags().StringVarP(&analyzeJobURL, "job-url", "u", "", "URL to fetch job posting from")
	analyzeCmd.Flags().StringVarP(&analyzeExport, "export", "o", "", "Write analysis as a CSV row to this path")
	analyzeCmd.Flags().StringVarP(&analyzeConfig, "config", "c", "", "Path to JSON config file")
	analyzeCmd.Flags().BoolVar(&analyzeSave, "save", false, "Save the run to the history database")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed progress")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(analyzeConfig, config.Config{
		Resume:  analyzeResume,
		Job:     analyzeJob,
		JobURL:  analyzeJobURL,
		Output:  analyzeExport,
		Verbose: analyzeVerbose,
	})
	if err != nil {
		return err
	}
	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required")
	}

	ctx := cmd.Context()

	text, err := pdfio.ExtractText(cfg.Resume)
	if err != nil {
		return fmt.Errorf("failed to extract resume text: %w", err)
	}
	if cfg.Verbose {
		log.Printf("[ANALYZE] Extracted %d characters from %s", len(text), cfg.Resume)
	}

	jobText, err := loadJobText(ctx, cfg)
	if err != nil {
		return err
	}

	rep := report.Run(text, jobText)
	atsResult := ats.ValidateFile(cfg.Resume, pdfio.StructuralReader{}, ats.DefaultConfig())

	printReport(rep)
	printAtsResult(atsResult)

	if cfg.Output != "" {
		rec := export.Flatten(rep, nil)
		if err := writeExport(cfg.Output, rec); err != nil {
			return err
		}
		fmt.Printf("Exported analysis to %s\n", cfg.Output)
	}

	if analyzeSave {
		if cfg.DatabaseURL == "" {
			return fmt.Errorf("--save requires a database URL (config file or DATABASE_URL)")
		}
		store, err := history.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.EnsureSchema(ctx); err != nil {
			return err
		}

		id, err := store.SaveRun(ctx, cfg.Resume, export.Flatten(rep, nil), rep)
		if err != nil {
			return err
		}
		fmt.Printf("Saved run %s\n", id)
	}

	return nil
}

// resolveConfig layers flag values over the config file over the
// environment, then validates the result.
func resolveConfig(path string, flags config.Config) (config.Config, error) {
	merged := flags

	if path != "" {
		fileCfg, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		merged = merged.Merge(*fileCfg)
	}

	merged = merged.Merge(config.FromEnv())

	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

// loadJobText reads the job description from a file or URL when given.
func loadJobText(ctx context.Context, cfg config.Config) (string, error) {
	switch {
	case cfg.Job != "":
		data, err := os.ReadFile(cfg.Job)
		if err != nil {
			return "", fmt.Errorf("failed to read job file: %w", err)
		}
		return string(data), nil
	case cfg.JobURL != "":
		opts := fetch.DefaultOptions()
		opts.UseBrowser = cfg.UseBrowser
		text, err := fetch.JobDescription(ctx, cfg.JobURL, opts)
		if err != nil {
			return "", fmt.Errorf("failed to fetch job posting: %w", err)
		}
		return text, nil
	default:
		return "", nil
	}
}

func writeExport(path string, rec export.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	return export.WriteCSV(f, rec)
}

func printReport(r *report.Report) {
	fmt.Println("=== Resume Analysis ===")
	fmt.Println()

	fmt.Printf("Length       [%s] %d words, %.1f pages\n", statusTag(r.Length.Status), r.Length.WordCount, r.Length.EstimatedPages)
	fmt.Printf("             %s\n", r.Length.Recommendation)

	fmt.Printf("Contact      score %d/100", r.Contact.Score)
	if len(r.Contact.Missing) > 0 {
		fmt.Printf(", missing: %s", strings.Join(r.Contact.Missing, ", "))
	}
	fmt.Println()

	fmt.Printf("Bullets      [%s] %d found\n", statusTag(r.Bullets.Status), r.Bullets.TotalCount)
	fmt.Printf("Verbs        [%s] %d strong / %d weak, score %.1f\n", statusTag(r.Verbs.Status), r.Verbs.StrongVerbsCount, r.Verbs.WeakVerbsCount, r.Verbs.Score)
	fmt.Printf("Metrics      [%s] %d metrics, %.1f%% of bullets quantified\n", statusTag(r.Quantification.Status), r.Quantification.MetricsCount, r.Quantification.QuantifiedPercentage)
	fmt.Printf("Readability  [%s] Flesch %.1f (%s)\n", statusTag(r.Readability.Status), r.Readability.FleschScore, r.Readability.Interpretation)

	fmt.Printf("Sections     [%s]", statusTag(r.Sections.Status))
	if len(r.Sections.MissingRequired) > 0 {
		fmt.Printf(" missing: %s", strings.Join(r.Sections.MissingRequired, ", "))
	}
	fmt.Println()

	fmt.Printf("Dates        [%s] %s\n", statusTag(r.Dates.Status), r.Dates.Recommendation)
	fmt.Printf("Duplicates   [%s] %d duplicate sentences, %d repeated phrases\n", statusTag(r.Duplicates.Status), r.Duplicates.DuplicateSentences, r.Duplicates.RepeatedPhrases)

	if len(r.Keywords.TopKeywords) > 0 {
		top := r.Keywords.TopKeywords
		if len(top) > 5 {
			top = top[:5]
		}
		words := make([]string, len(top))
		for i, kw := range top {
			words[i] = fmt.Sprintf("%s(%d)", kw.Word, kw.Count)
		}
		fmt.Printf("Keywords     %s\n", strings.Join(words, " "))
	}

	fmt.Println()
	fmt.Printf("%d finding(s) need attention\n", r.Warnings())
	fmt.Println()
}

func printAtsResult(result ats.Result) {
	fmt.Println("=== ATS Format Check ===")
	fmt.Println()
	fmt.Printf("Score: %d/100 [%s]\n", result.AtsScore, result.Status)

	for _, issue := range result.Issues {
		fmt.Printf("  issue:   %s\n", issue)
	}
	for _, warning := range result.Warnings {
		fmt.Printf("  warning: %s\n", warning)
	}
	fmt.Println()
}

func statusTag(s analyzers.Status) string {
	return string(s)
}
