package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/pdfio"
	"github.com/jonathan/resume-analyzer/internal/wordcloud"
)

var wordcloudCmd = &cobra.Command{
	Use:   "wordcloud",
	Short: "Render a word cloud PNG from a resume",
	RunE:  runWordcloud,
}

var (
	cloudResume   string
	cloudOut      string
	cloudMaxWords int
	cloudConfig   string
)

func init() {
	wordcloudCmd.Flags().StringVarP(&cloudResume, "resume", "r", "", "Path to resume PDF (required)")
	wordcloudCmd.Flags().StringVarP(&cloudOut, "out", "o", "wordcloud.png", "Output PNG path")
	wordcloudCmd.Flags().IntVarP(&cloudMaxWords, "max-words", "n", 0, "Maximum words to render (default 50)")
	wordcloudCmd.Flags().StringVarP(&cloudConfig, "config", "c", "", "Path to JSON config file")

	rootCmd.AddCommand(wordcloudCmd)
}

func runWordcloud(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cloudConfig, config.Config{
		Resume:   cloudResume,
		CloudOut: cloudOut,
		MaxWords: cloudMaxWords,
	})
	if err != nil {
		return err
	}
	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required")
	}

	text, err := pdfio.ExtractText(cfg.Resume)
	if err != nil {
		return fmt.Errorf("failed to extract resume text: %w", err)
	}

	opts := wordcloud.DefaultOptions()
	if cfg.MaxWords > 0 {
		opts.MaxWords = cfg.MaxWords
	}

	f, err := os.Create(cfg.CloudOut)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := wordcloud.RenderPNG(f, text, opts); err != nil {
		return err
	}

	fmt.Printf("Wrote word cloud to %s\n", cfg.CloudOut)
	return nil
}
