package extract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupportedExtension(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"cv.pdf", true},
		{"cv.PDF", true},
		{"cv.docx", true},
		{"cv.DOCX", true},
		{"cv.doc", false},
		{"cv.txt", false},
		{"cv", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SupportedExtension(tt.path), tt.path)
	}
}

func TestPlainText_UnsupportedFormat(t *testing.T) {
	_, err := PlainText("resume.txt")

	var formatErr *UnsupportedFormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, ".txt", formatErr.Extension)
}

func TestPlainText_CorruptPDFDegradesToEmpty(t *testing.T) {
	// Corrupt payloads must not abort the workflow; extraction degrades
	// to an empty string.
	path := filepath.Join(t.TempDir(), "resume.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not really a pdf"), 0644))

	text, err := PlainText(path)

	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestPlainText_CorruptDOCXDegradesToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.docx")
	require.NoError(t, os.WriteFile(path, []byte("not really a docx"), 0644))

	text, err := PlainText(path)

	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestCopyToTemp(t *testing.T) {
	path, err := CopyToTemp(strings.NewReader("payload"), "resume.docx")
	require.NoError(t, err)
	defer func() { _ = os.Remove(path) }()

	assert.Equal(t, ".docx", filepath.Ext(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
}
