package cvparse

import (
	"testing"

	"github.com/jonathan/cv-tailor/internal/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCV = `Jane Doe
Senior Data Engineer
jane.doe@example.com | +1 415-555-1234
linkedin.com/in/janedoe | github.com/janedoe

5 years of Python and Django experience, plus SQL and Docker.`

func TestParse_ContactInfo(t *testing.T) {
	profile := Parse(sampleCV)

	assert.Equal(t, "Jane Doe", profile.Contact.Name)
	assert.Equal(t, "jane.doe@example.com", profile.Contact.Email)
	assert.Equal(t, "+1 415-555-1234", profile.Contact.Phone)
	assert.Equal(t, "linkedin.com/in/janedoe", profile.Contact.LinkedIn)
	assert.Equal(t, "github.com/janedoe", profile.Contact.GitHub)
}

func TestParse_SkillsSortedUnderTechnical(t *testing.T) {
	profile := Parse(sampleCV)

	require.Contains(t, profile.Skills, "technical")
	assert.Equal(t, []string{"django", "docker", "python", "sql"}, profile.Skills["technical"])
}

func TestParse_NameHeuristicSkipsLinesWithDigitsOrEmail(t *testing.T) {
	text := "2024 Resume\njohn@site.io\nJohn Smith\nmore text"

	profile := Parse(text)

	assert.Equal(t, "John Smith", profile.Contact.Name)
}

func TestParse_NameOnlyInFirstFiveLines(t *testing.T) {
	text := "1\n2\n3\n4\n5\nJohn Smith"

	profile := Parse(text)

	assert.Empty(t, profile.Contact.Name)
}

func TestParse_NameLengthBounds(t *testing.T) {
	// A 3-character line does not qualify (bounds are strict).
	profile := Parse("Jon\nJonathan Smith\n")
	assert.Equal(t, "Jonathan Smith", profile.Contact.Name)
}

func TestParse_EmptyText(t *testing.T) {
	profile := Parse("")

	assert.Empty(t, profile.Contact.Name)
	assert.Empty(t, profile.Contact.Email)
	assert.Empty(t, profile.Skills["technical"])
}

func TestParseFile_MissingFileIsUnreadable(t *testing.T) {
	_, err := ParseFile("/nonexistent/resume.pdf")

	var unreadable *UnreadableDocumentError
	require.ErrorAs(t, err, &unreadable)
}

func TestParseFile_UnsupportedExtensionRejectedBeforeParse(t *testing.T) {
	_, err := ParseFile("/nonexistent/resume.txt")

	var formatErr *extract.UnsupportedFormatError
	require.ErrorAs(t, err, &formatErr)
}
