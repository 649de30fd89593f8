package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/cv-tailor/internal/config"
)

// writeJSON renders a value as indented JSON and writes it to path, or to
// stdout when path is empty.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return writeOrPrint(path, data)
}

// loadConfig reads the optional config file and merges in environment
// variables. An empty path yields a config filled only from the
// environment.
func loadConfig(path string) (*config.Config, error) {
	cfg := &config.Config{}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	cfg.FromEnv()
	return cfg, nil
}

// writeOrPrint writes data to path, or to stdout when path is empty.
func writeOrPrint(path string, data []byte) error {
	if path == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
