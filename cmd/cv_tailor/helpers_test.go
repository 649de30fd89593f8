package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, writeJSON(path, map[string]int{"score": 80}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"score": 80`)
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "a", firstNonEmpty("", "a", "b"))
	assert.Equal(t, "x", firstNonEmpty("x"))
	assert.Equal(t, "", firstNonEmpty("", ""))
}

func TestLoadConfigMissingFileFails(t *testing.T) {
	_, err := loadConfig("/nonexistent/config.json")
	require.Error(t, err)
}

func TestLoadConfigEmptyPathUsesEnv(t *testing.T) {
	t.Setenv("OLLAMA_MODEL", "mistral:7b")
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "mistral:7b", cfg.OllamaModel)
}
