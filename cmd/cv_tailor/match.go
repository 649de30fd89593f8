package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-tailor/internal/pipeline"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score how well a CV matches a job posting",
	Long:  "Parse the CV and the job posting, score the match with weighted required/preferred skill coverage, and output the result as JSON.",
	RunE:  runMatchCmd,
}

var (
	matchCVFile     string
	matchJobFile    string
	matchJobURL     string
	matchOutFile    string
	matchConfigFile string
	matchUseBrowser bool
	matchVerbose    bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchCVFile, "cv", "c", "", "Path to the CV file (.pdf or .docx)")
	matchCmd.Flags().StringVarP(&matchJobFile, "job", "j", "", "Path to a job posting text file")
	matchCmd.Flags().StringVar(&matchJobURL, "job-url", "", "URL to fetch the job posting from")
	matchCmd.Flags().StringVarP(&matchOutFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	matchCmd.Flags().StringVar(&matchConfigFile, "config", "", "Path to a JSON config file")
	matchCmd.Flags().BoolVar(&matchUseBrowser, "use-browser", false, "Fall back to a headless browser for JavaScript-rendered job boards")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print formatted progress boxes")
	_ = matchCmd.MarkFlagRequired("cv")

	rootCmd.AddCommand(matchCmd)
}

func runMatchCmd(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(matchConfigFile)
	if err != nil {
		return err
	}
	if (matchJobFile == "") == (matchJobURL == "") {
		return fmt.Errorf("exactly one of --job or --job-url is required")
	}

	outcome, err := pipeline.RunMatch(context.Background(), pipeline.RunOptions{
		CVPath:      matchCVFile,
		JobPath:     matchJobFile,
		JobURL:      matchJobURL,
		UseBrowser:  matchUseBrowser || cfg.UseBrowser,
		Verbose:     matchVerbose || cfg.Verbose,
		DatabaseURL: cfg.DatabaseURL,
	})
	if err != nil {
		return err
	}
	return writeJSON(matchOutFile, outcome.Result)
}
