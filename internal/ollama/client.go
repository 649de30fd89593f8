// Package ollama provides a client for a locally hosted language model
// exposing the Ollama generate API.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is an abstraction over the local language-model endpoint.
type Client interface {
	// Generate produces a completion for the prompt. It blocks until the
	// model responds or the request times out.
	Generate(ctx context.Context, prompt string, opts Options) (string, error)
	// Ping reports whether the model endpoint is reachable.
	Ping(ctx context.Context) error
}

// Options are the sampling parameters sent with a generate request.
type Options struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict"`
	TopP        float64 `json:"top_p"`
	TopK        int     `json:"top_k"`
}

// DefaultOptions returns the sampling parameters used for analysis calls.
func DefaultOptions() Options {
	return Options{
		Temperature: 0.3,
		NumPredict:  2000,
		TopP:        0.9,
		TopK:        40,
	}
}

// Config holds connection settings for the local endpoint.
type Config struct {
	BaseURL string
	Model   string
	Timeout time.Duration
}

// DefaultConfig returns the standard local Ollama settings.
func DefaultConfig() Config {
	return Config{
		BaseURL: "http://localhost:11434",
		Model:   "llama3:8b",
		Timeout: 240 * time.Second,
	}
}

// HTTPClient implements Client against the Ollama HTTP API.
type HTTPClient struct {
	config     Config
	httpClient *http.Client
}

// NewClient creates a client for the configured endpoint. Zero-value
// config fields fall back to defaults.
func NewClient(config Config) *HTTPClient {
	defaults := DefaultConfig()
	if config.BaseURL == "" {
		config.BaseURL = defaults.BaseURL
	}
	if config.Model == "" {
		config.Model = defaults.Model
	}
	if config.Timeout == 0 {
		config.Timeout = defaults.Timeout
	}
	return &HTTPClient{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
	}
}

// generateRequest is the wire format of a generate call.
type generateRequest struct {
	Model   string  `json:"model"`
	Prompt  string  `json:"prompt"`
	Stream  bool    `json:"stream"`
	Options Options `json:"options"`
}

type generateResponse struct {
	Response string `json:"response"`
}

// Generate posts the prompt to /api/generate and returns the model output.
func (c *HTTPClient) Generate(ctx context.Context, prompt string, opts Options) (string, error) {
	payload := generateRequest{
		Model:   c.config.Model,
		Prompt:  prompt,
		Stream:  false,
		Options: opts,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode generate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &ConnectionError{Endpoint: c.config.BaseURL, Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("model endpoint returned %d: %s", resp.StatusCode, string(data))
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("failed to decode generate response: %w", err)
	}
	return decoded.Response, nil
}

// Ping checks the /api/tags endpoint with a short timeout.
func (c *HTTPClient) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.BaseURL+"/api/tags", nil)
	if err != nil {
		return fmt.Errorf("failed to build ping request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &ConnectionError{Endpoint: c.config.BaseURL, Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("model endpoint returned %d", resp.StatusCode)
	}
	return nil
}
