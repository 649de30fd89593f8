package letter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-tailor/internal/types"
)

func fixedGenerator() *Generator {
	return &Generator{now: func() time.Time {
		return time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC)
	}}
}

func baseRequest() *types.LetterRequest {
	return &types.LetterRequest{
		CandidateName:  "Jane Doe",
		CandidateEmail: "jane.doe@example.com",
		JobTitle:       "Backend Engineer",
		Company:        "Initech",
	}
}

func TestGenerateHeaderAndDate(t *testing.T) {
	req := baseRequest()
	req.CandidatePhone = "+1 555 123 4567"
	req.CandidateAddress = "42 Main Street, Springfield"

	text := fixedGenerator().Generate(req)

	lines := strings.Split(text, "\n")
	require.GreaterOrEqual(t, len(lines), 5)
	assert.Equal(t, "Jane Doe", lines[0])
	assert.Equal(t, "42 Main Street, Springfield", lines[1])
	assert.Equal(t, "Email: jane.doe@example.com", lines[2])
	assert.Equal(t, "Mobile: +1 555 123 4567", lines[3])
	assert.Equal(t, "March 14, 2025", lines[4])
}

func TestGenerateSubjectAndSalutation(t *testing.T) {
	text := fixedGenerator().Generate(baseRequest())

	assert.Contains(t, text, "Subject: Application for Backend Engineer")
	assert.Contains(t, text, "Dear Initech Team,")
	assert.Contains(t, text, "Warm regards,")
	assert.True(t, strings.HasSuffix(text, "jane.doe@example.com"))
}

func TestGenerateSubjectWithoutTitle(t *testing.T) {
	req := baseRequest()
	req.JobTitle = ""

	text := fixedGenerator().Generate(req)
	assert.Contains(t, text, "Subject: Application for Position")
}

func TestGenerateSkillParagraphs(t *testing.T) {
	req := baseRequest()
	req.MatchedSkills = []string{"python", "go", "django", "sql", "docker", "machine learning"}

	text := fixedGenerator().Generate(req)

	assert.Contains(t, text, "Technical Expertise")
	assert.Contains(t, text, "I am proficient in python and go")
	assert.Contains(t, text, "I have experience with django")
	assert.Contains(t, text, "My expertise in sql")
	assert.Contains(t, text, "I work with docker")
	assert.Contains(t, text, "My machine learning experience includes machine learning")
}

func TestGenerateOmitsSkillsSectionWhenNoneMatched(t *testing.T) {
	text := fixedGenerator().Generate(baseRequest())
	assert.NotContains(t, text, "Technical Expertise")
}

func TestGenerateResponsibilitiesCappedAndCapitalized(t *testing.T) {
	req := baseRequest()
	req.Responsibilities = []string{
		"design and build APIs",
		"maintain CI pipelines",
		"review code",
		"attend standups",
	}

	text := fixedGenerator().Generate(req)

	assert.Contains(t, text, "• Design and build apis")
	assert.Contains(t, text, "• Maintain ci pipelines")
	assert.Contains(t, text, "• Review code")
	assert.NotContains(t, text, "standups")
}

func TestGenerateLinksClosing(t *testing.T) {
	req := baseRequest()
	req.PortfolioURL = "https://janedoe.dev"
	req.GitHubURL = "https://github.com/janedoe"

	text := fixedGenerator().Generate(req)
	assert.Contains(t, text, "on my portfolio (https://janedoe.dev) and GitHub (https://github.com/janedoe)")

	req.PortfolioURL = ""
	text = fixedGenerator().Generate(req)
	assert.Contains(t, text, "on my GitHub (https://github.com/janedoe)")
}
