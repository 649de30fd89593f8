package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanTextNormalizesLineEndings(t *testing.T) {
	assert.Equal(t, "a\nb\nc", CleanText("a\r\nb\rc"))
}

func TestCleanTextCollapsesSpacesAndBlankLines(t *testing.T) {
	input := "Job   Title\n\n\n\nRequirements:   Python  and   SQL\n"
	assert.Equal(t, "Job Title\n\nRequirements: Python and SQL", CleanText(input))
}

func TestCleanTextKeepsBulletsAndHeadings(t *testing.T) {
	input := "# About the role\n  - Build services\n* Review code"
	got := CleanText(input)
	assert.Contains(t, got, "# About the role")
	assert.Contains(t, got, "  - Build services")
	assert.Contains(t, got, "* Review code")
}

func TestCleanTextEmpty(t *testing.T) {
	assert.Equal(t, "", CleanText(""))
	assert.Equal(t, "", CleanText("   \n\t\n"))
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "posting.txt")
	require.NoError(t, os.WriteFile(path, []byte("Backend   Engineer\r\nPython required\n"), 0644))

	text, meta, err := FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer\nPython required", text)
	require.NotNil(t, meta)
	assert.Equal(t, len(text), meta.Chars)
	assert.NotEmpty(t, meta.Hash)
}

func TestFromFileMissing(t *testing.T) {
	_, _, err := FromFile("/nonexistent/posting.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
