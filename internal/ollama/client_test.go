package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_SendsExpectedPayload(t *testing.T) {
	var got generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/generate", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(map[string]string{"response": "model output"})
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, Model: "llama3:8b"})
	out, err := client.Generate(context.Background(), "analyze this", DefaultOptions())

	require.NoError(t, err)
	assert.Equal(t, "model output", out)
	assert.Equal(t, "llama3:8b", got.Model)
	assert.Equal(t, "analyze this", got.Prompt)
	assert.False(t, got.Stream)
	assert.Equal(t, 2000, got.Options.NumPredict)
	assert.InDelta(t, 0.9, got.Options.TopP, 0.001)
	assert.Equal(t, 40, got.Options.TopK)
}

func TestGenerate_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	_, err := client.Generate(context.Background(), "prompt", DefaultOptions())

	assert.ErrorContains(t, err, "404")
}

func TestGenerate_ConnectionRefused(t *testing.T) {
	client := NewClient(Config{BaseURL: "http://127.0.0.1:1"})
	_, err := client.Generate(context.Background(), "prompt", DefaultOptions())

	var connErr *ConnectionError
	assert.ErrorAs(t, err, &connErr)
}

func TestPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/tags", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	assert.NoError(t, client.Ping(context.Background()))
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient(Config{})

	assert.Equal(t, "http://localhost:11434", client.config.BaseURL)
	assert.Equal(t, "llama3:8b", client.config.Model)
}
