package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadParsesFields(t *testing.T) {
	path := writeConfig(t, `{
		"job_url": "https://example.com/jobs/1",
		"ollama_model": "mistral:7b",
		"use_browser": true,
		"listen_addr": ":9090"
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/jobs/1", cfg.JobURL)
	assert.Equal(t, "mistral:7b", cfg.OllamaModel)
	assert.True(t, cfg.UseBrowser)
	assert.Equal(t, ":9090", cfg.ListenAddr)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.json")
	require.Error(t, err)
}

func TestLoadInvalidJSON(t *testing.T) {
	path := writeConfig(t, `{not json`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestValidateMutuallyExclusiveJobSources(t *testing.T) {
	cfg := &Config{Job: "posting.txt", JobURL: "https://example.com"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestValidateMissingCV(t *testing.T) {
	cfg := &Config{CV: "/nonexistent/cv.pdf"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cv file not found")
}

func TestFromEnvFillsOnlyUnset(t *testing.T) {
	t.Setenv("OLLAMA_MODEL", "env-model")
	t.Setenv("DATABASE_URL", "postgres://env")

	cfg := &Config{OllamaModel: "explicit"}
	cfg.FromEnv()

	assert.Equal(t, "explicit", cfg.OllamaModel)
	assert.Equal(t, "postgres://env", cfg.DatabaseURL)
}
