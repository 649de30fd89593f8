// Package main provides the entry point for the CV Tailor CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cv_tailor",
	Short: "CV Tailor skill matcher",
	Long:  "CV Tailor parses CVs, analyzes job postings, scores how well they match, rewrites the CV skills section and explains rejections via a local language model.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
