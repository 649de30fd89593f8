package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-tailor/internal/ingestion"
	"github.com/jonathan/cv-tailor/internal/observability"
	"github.com/jonathan/cv-tailor/internal/posting"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a job posting into structured requirements",
	Long:  "Analyze a job posting (text file or URL) into structured JSON: title, company, required and preferred skills, and responsibilities.",
	RunE:  runAnalyze,
}

var (
	analyzeJobFile    string
	analyzeJobURL     string
	analyzeOutFile    string
	analyzeUseBrowser bool
	analyzeVerbose    bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeJobFile, "job", "j", "", "Path to a job posting text file")
	analyzeCmd.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL to fetch the job posting from")
	analyzeCmd.Flags().StringVarP(&analyzeOutFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	analyzeCmd.Flags().BoolVar(&analyzeUseBrowser, "use-browser", false, "Fall back to a headless browser for JavaScript-rendered job boards")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print a formatted summary")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	if (analyzeJobFile == "") == (analyzeJobURL == "") {
		return fmt.Errorf("exactly one of --job or --job-url is required")
	}

	var text string
	var err error
	if analyzeJobURL != "" {
		text, _, err = ingestion.FromURL(context.Background(), analyzeJobURL, analyzeUseBrowser)
	} else {
		text, _, err = ingestion.FromFile(analyzeJobFile)
	}
	if err != nil {
		return fmt.Errorf("failed to ingest job posting: %w", err)
	}

	requirements := posting.Analyze(text)

	if analyzeVerbose {
		observability.NewPrinter(os.Stderr).PrintRequirements(requirements)
	}
	return writeJSON(analyzeOutFile, requirements)
}
