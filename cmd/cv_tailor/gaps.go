package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-tailor/internal/extract"
	"github.com/jonathan/cv-tailor/internal/gaps"
	"github.com/jonathan/cv-tailor/internal/ingestion"
	"github.com/jonathan/cv-tailor/internal/observability"
	"github.com/jonathan/cv-tailor/internal/ollama"
	"github.com/jonathan/cv-tailor/internal/store"
)

var gapsCmd = &cobra.Command{
	Use:   "gaps",
	Short: "Explain a rejection by comparing the CV against the posting",
	Long:  "Run a gap analysis through a local Ollama model: compare the CV and the job description, optionally informed by the rejection email, and output a structured JSON explanation.",
	RunE:  runGaps,
}

var (
	gapsCVFile     string
	gapsJobFile    string
	gapsEmailFile  string
	gapsOutFile    string
	gapsModel      string
	gapsOllamaURL  string
	gapsTimeout    time.Duration
	gapsVerbose    bool
	gapsConfigFile string
)

func init() {
	gapsCmd.Flags().StringVarP(&gapsCVFile, "cv", "c", "", "Path to the CV file (.pdf or .docx)")
	gapsCmd.Flags().StringVarP(&gapsJobFile, "job", "j", "", "Path to the job posting text file")
	gapsCmd.Flags().StringVar(&gapsEmailFile, "rejection-email", "", "Path to the rejection email text file (optional)")
	gapsCmd.Flags().StringVarP(&gapsOutFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	gapsCmd.Flags().StringVar(&gapsModel, "model", "", "Ollama model name (default: llama3:8b)")
	gapsCmd.Flags().StringVar(&gapsOllamaURL, "ollama-url", "", "Ollama base URL (default: http://localhost:11434)")
	gapsCmd.Flags().DurationVar(&gapsTimeout, "timeout", 0, "Model request timeout (default: 4m)")
	gapsCmd.Flags().BoolVarP(&gapsVerbose, "verbose", "v", false, "Print a formatted summary")
	gapsCmd.Flags().StringVar(&gapsConfigFile, "config", "", "Path to a JSON config file")
	_ = gapsCmd.MarkFlagRequired("cv")
	_ = gapsCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(gapsCmd)
}

func runGaps(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(gapsConfigFile)
	if err != nil {
		return err
	}

	cvText, err := extract.PlainText(gapsCVFile)
	if err != nil {
		return fmt.Errorf("failed to read CV: %w", err)
	}
	jobText, _, err := ingestion.FromFile(gapsJobFile)
	if err != nil {
		return fmt.Errorf("failed to read job posting: %w", err)
	}

	rejectionEmail := ""
	if gapsEmailFile != "" {
		data, err := os.ReadFile(gapsEmailFile)
		if err != nil {
			return fmt.Errorf("failed to read rejection email: %w", err)
		}
		rejectionEmail = string(data)
	}

	clientCfg := ollama.Config{
		BaseURL: firstNonEmpty(gapsOllamaURL, cfg.OllamaURL),
		Model:   firstNonEmpty(gapsModel, cfg.OllamaModel, ollama.DefaultConfig().Model),
		Timeout: gapsTimeout,
	}
	client := ollama.NewClient(clientCfg)

	if err := client.Ping(context.Background()); err != nil {
		return fmt.Errorf("model backend unreachable: %w", err)
	}

	analyzer := gaps.NewAnalyzer(client)
	analysis, err := analyzer.Analyze(context.Background(), cvText, jobText, rejectionEmail)
	if err != nil {
		return fmt.Errorf("gap analysis failed: %w", err)
	}

	if cfg.DatabaseURL != "" {
		if _, err := store.RecordGapAnalysis(context.Background(), cfg.DatabaseURL, clientCfg.Model, analysis.Confidence, analysis); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to save gap analysis: %v\n", err)
		}
	}

	if gapsVerbose || cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintGapAnalysis(analysis)
	}
	return writeJSON(gapsOutFile, analysis)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
