package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Metadata describes an ingested job posting.
type Metadata struct {
	URL       string `json:"url,omitempty"`
	Timestamp string `json:"timestamp"` // RFC3339
	Hash      string `json:"hash"`      // SHA256 hex of the cleaned text
	Chars     int    `json:"chars"`
	Browser   bool   `json:"browser,omitempty"` // rendered via headless browser
}

// NewMetadata stamps the cleaned text with its source, time and digest.
func NewMetadata(content, url string) *Metadata {
	sum := sha256.Sum256([]byte(content))
	return &Metadata{
		URL:       url,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Hash:      hex.EncodeToString(sum[:]),
		Chars:     len(content),
	}
}

// ToJSON renders the metadata as indented JSON.
func (m *Metadata) ToJSON() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata: %w", err)
	}
	return data, nil
}
