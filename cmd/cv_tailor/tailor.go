package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-tailor/internal/pipeline"
)

var tailorCmd = &cobra.Command{
	Use:   "tailor",
	Short: "Rewrite the CV skills section for a job posting",
	Long:  "Match the CV against the posting, merge the tailored skill list into the CV's skills section and write a new DOCX. Only DOCX CVs can be tailored.",
	RunE:  runTailor,
}

var (
	tailorCVFile     string
	tailorJobFile    string
	tailorJobURL     string
	tailorOutFile    string
	tailorConfigFile string
	tailorUseBrowser bool
	tailorVerbose    bool
)

func init() {
	tailorCmd.Flags().StringVarP(&tailorCVFile, "cv", "c", "", "Path to the CV file (.docx)")
	tailorCmd.Flags().StringVarP(&tailorJobFile, "job", "j", "", "Path to a job posting text file")
	tailorCmd.Flags().StringVar(&tailorJobURL, "job-url", "", "URL to fetch the job posting from")
	tailorCmd.Flags().StringVarP(&tailorOutFile, "out", "o", "cv_tailored.docx", "Path for the tailored DOCX")
	tailorCmd.Flags().StringVar(&tailorConfigFile, "config", "", "Path to a JSON config file")
	tailorCmd.Flags().BoolVar(&tailorUseBrowser, "use-browser", false, "Fall back to a headless browser for JavaScript-rendered job boards")
	tailorCmd.Flags().BoolVarP(&tailorVerbose, "verbose", "v", false, "Print formatted progress boxes")
	_ = tailorCmd.MarkFlagRequired("cv")

	rootCmd.AddCommand(tailorCmd)
}

func runTailor(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(tailorConfigFile)
	if err != nil {
		return err
	}
	if (tailorJobFile == "") == (tailorJobURL == "") {
		return fmt.Errorf("exactly one of --job or --job-url is required")
	}

	outcome, err := pipeline.RunTailor(context.Background(), pipeline.RunOptions{
		CVPath:      tailorCVFile,
		JobPath:     tailorJobFile,
		JobURL:      tailorJobURL,
		UseBrowser:  tailorUseBrowser || cfg.UseBrowser,
		Verbose:     tailorVerbose || cfg.Verbose,
		DatabaseURL: cfg.DatabaseURL,
	}, tailorOutFile)
	if err != nil {
		return err
	}

	fmt.Printf("Tailored CV written to %s (overall match %.1f%%)\n", tailorOutFile, outcome.Result.OverallScore)
	return nil
}
