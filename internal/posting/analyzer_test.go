package posting

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze_TitleAndCompany(t *testing.T) {
	text := "Senior Backend Engineer\nAcme Corporation\n\nWe build things."

	req := Analyze(text)

	assert.Equal(t, "Senior Backend Engineer", req.JobTitle)
	assert.Equal(t, "Acme Corporation", req.Company)
}

func TestAnalyze_TitleSkipsURLsAndShortLines(t *testing.T) {
	text := "https://jobs.example.com/1234\nwww.example.com\nhi\nPlatform Engineer Role\nInitech Systems"

	req := Analyze(text)

	assert.Equal(t, "Platform Engineer Role", req.JobTitle)
	assert.Equal(t, "Initech Systems", req.Company)
}

func TestAnalyze_RequiredAndPreferredSections(t *testing.T) {
	text := strings.Join([]string{
		"Backend Engineer Position",
		"Example Company",
		"",
		"Required: Python, Django, AWS",
		"Preferred: Docker",
	}, "\n")

	req := Analyze(text)

	assert.Equal(t, []string{"aws", "django", "python"}, req.RequiredSkills)
	assert.Equal(t, []string{"docker"}, req.PreferredSkills)
	assert.ElementsMatch(t, []string{"aws", "django", "docker", "python"}, req.AllSkills)
}

func TestAnalyze_MustHaveSection(t *testing.T) {
	text := "Data Engineer Opening\nMust have: SQL and Spark experience\nNice to have: Kafka pipelines"

	req := Analyze(text)

	assert.Contains(t, req.RequiredSkills, "sql")
	assert.Contains(t, req.RequiredSkills, "spark")
	assert.Contains(t, req.PreferredSkills, "kafka")
}

func TestAnalyze_FallbackSeventyThirtySplit(t *testing.T) {
	// Ten extracted skills, no section labels: integer truncation of
	// 10 * 0.7 keeps exactly 7 required and moves 3 to preferred.
	text := "We use python, java, docker, kubernetes, terraform, ansible, jenkins, mysql, redis and kafka daily."

	req := Analyze(text)

	require.Len(t, req.AllSkills, 10)
	assert.Len(t, req.RequiredSkills, 7)
	assert.Len(t, req.PreferredSkills, 3)

	// Split is over the sorted list, so it is deterministic.
	assert.Equal(t, []string{"ansible", "docker", "java", "jenkins", "kafka", "kubernetes", "mysql"}, req.RequiredSkills)
	assert.Equal(t, []string{"python", "redis", "terraform"}, req.PreferredSkills)
}

func TestAnalyze_NoFallbackForThreeOrFewerSkills(t *testing.T) {
	text := "Small shop using python and sql only."

	req := Analyze(text)

	assert.Equal(t, []string{"python", "sql"}, req.RequiredSkills)
	assert.Empty(t, req.PreferredSkills)
}

func TestAnalyze_Responsibilities(t *testing.T) {
	text := strings.Join([]string{
		"Platform Engineer Position",
		"Responsibilities:",
		"- Design and operate large scale ingestion pipelines",
		"- Short one",
		"- Maintain deployment automation across environments",
		"- Partner with product teams on roadmap and delivery",
		"- Own the observability stack end to end for services",
		"- Review designs and mentor junior engineers weekly",
		"- Never reached because of the cap on extracted items",
		"Qualifications: lots",
	}, "\n")

	req := Analyze(text)

	require.Len(t, req.Responsibilities, 5)
	assert.Equal(t, "Design and operate large scale ingestion pipelines", req.Responsibilities[0])
	assert.NotContains(t, req.Responsibilities, "Short one")
}

func TestAnalyze_NoResponsibilitiesSection(t *testing.T) {
	req := Analyze("Engineer Role\nJust a description with python.")

	assert.Empty(t, req.Responsibilities)
}
