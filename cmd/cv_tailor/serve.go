package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/cv-tailor/internal/ollama"
	"github.com/jonathan/cv-tailor/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long:  "Expose matching, tailoring, gap analysis and letter generation over a REST API.",
	RunE:  runServe,
}

var (
	serveAddr       string
	serveModel      string
	serveOllamaURL  string
	serveConfigFile string
	serveUseBrowser bool
)

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default: :8080)")
	serveCmd.Flags().StringVar(&serveModel, "model", "", "Ollama model name (default: llama3:8b)")
	serveCmd.Flags().StringVar(&serveOllamaURL, "ollama-url", "", "Ollama base URL (default: http://localhost:11434)")
	serveCmd.Flags().StringVar(&serveConfigFile, "config", "", "Path to a JSON config file")
	serveCmd.Flags().BoolVar(&serveUseBrowser, "use-browser", false, "Fall back to a headless browser for JavaScript-rendered job boards")

	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(serveConfigFile)
	if err != nil {
		return err
	}

	srv := server.New(server.Config{
		Addr: firstNonEmpty(serveAddr, cfg.ListenAddr),
		Ollama: ollama.Config{
			BaseURL: firstNonEmpty(serveOllamaURL, cfg.OllamaURL),
			Model:   firstNonEmpty(serveModel, cfg.OllamaModel),
		},
		DatabaseURL: cfg.DatabaseURL,
		UseBrowser:  serveUseBrowser || cfg.UseBrowser,
	})
	return srv.Start()
}
