// Package main provides the entry point for the resume analyzer CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_analyzer",
	Short: "Resume heuristic analysis CLI",
	Long:  "Resume Analyzer scores resumes with length, contact, bullet, verb, quantification, readability, keyword, section, date and duplicate heuristics, validates ATS-friendliness of the PDF layout, and optionally matches against a job description with an AI provider.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
