package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-tailor/internal/cvparse"
	"github.com/jonathan/cv-tailor/internal/observability"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a CV into a structured profile",
	Long:  "Parse a PDF or DOCX CV into structured JSON: contact information and the recognized technical skills.",
	RunE:  runParse,
}

var (
	parseCVFile  string
	parseOutFile string
	parseVerbose bool
)

func init() {
	parseCmd.Flags().StringVarP(&parseCVFile, "cv", "c", "", "Path to the CV file (.pdf or .docx)")
	parseCmd.Flags().StringVarP(&parseOutFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print a formatted summary")
	_ = parseCmd.MarkFlagRequired("cv")

	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, _ []string) error {
	profile, err := cvparse.ParseFile(parseCVFile)
	if err != nil {
		return fmt.Errorf("failed to parse CV: %w", err)
	}

	if parseVerbose {
		observability.NewPrinter(os.Stderr).PrintProfile(profile)
	}

	return writeJSON(parseOutFile, profile)
}
