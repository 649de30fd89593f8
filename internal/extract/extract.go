// Package extract provides plain-text extraction from uploaded CV documents.
// PDF and DOCX are the only supported formats; extraction failures degrade
// to an empty string so downstream heuristics can proceed.
package extract

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// MIME types for the supported document formats.
const (
	MimePDF  = "application/pdf"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// SupportedExtension reports whether a file extension can be parsed at all.
// Anything else must be rejected before parsing begins.
func SupportedExtension(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf", ".docx":
		return true
	default:
		return false
	}
}

// PlainText reads a document from disk and returns its text content.
// Unsupported extensions return an UnsupportedFormatError. Extraction
// failures on supported formats (corrupt file, password-protected, scanned
// image with no text layer) log a warning and return an empty string
// rather than an error.
func PlainText(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".pdf":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", path, err)
		}
		return pdfText(data), nil
	case ".docx":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", path, err)
		}
		return docxText(data), nil
	default:
		return "", &UnsupportedFormatError{Extension: ext}
	}
}

// pdfText walks every page and concatenates its plain text. Pages that
// cannot be decoded are skipped.
func pdfText(data []byte) string {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		log.Printf("Warning: failed to read PDF: %v", err)
		return ""
	}

	var sb strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String()
}

// docxText extracts the document body text via the docx library.
func docxText(data []byte) string {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		log.Printf("Warning: failed to parse DOCX: %v", err)
		return ""
	}
	defer func() { _ = doc.Close() }()

	return doc.Editable().GetContent()
}

// CopyToTemp writes an uploaded document stream to a temporary file and
// returns its path. The caller owns the file and must remove it when done.
func CopyToTemp(r io.Reader, fileName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	tmp, err := os.CreateTemp("", "cv-upload-*"+ext)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() { _ = tmp.Close() }()

	if _, err := io.Copy(tmp, r); err != nil {
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	return tmp.Name(), nil
}
