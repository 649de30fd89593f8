package gaps

import (
	"context"
	"errors"
	"strings"

	"github.com/jonathan/cv-tailor/internal/ollama"
	"github.com/jonathan/cv-tailor/internal/prompts"
)

const (
	minInputLength = 50
	maxCVChars     = 1800
	maxJobChars    = 1800
	maxEmailChars  = 400
	maxRawRetained = 1000

	defaultEmailText = "No specific rejection email provided - generic rejection assumed"

	// Analysis needs more determinism than generation.
	analysisTemperature = 0.2
)

// commonTech names technologies models tend to invent as missing skills
// even when the job posting never mentions them. A skill on this list is
// dropped from the gap lists unless the posting actually references it.
var commonTech = map[string]bool{
	"aws":        true,
	"docker":     true,
	"kubernetes": true,
	"k8s":        true,
	"azure":      true,
	"gcp":        true,
	"jenkins":    true,
	"terraform":  true,
	"ansible":    true,
	"redis":      true,
	"kafka":      true,
}

// Analyzer runs rejection gap analyses against an Ollama backend.
type Analyzer struct {
	client ollama.Client
}

// NewAnalyzer returns an Analyzer backed by the given client.
func NewAnalyzer(client ollama.Client) *Analyzer {
	return &Analyzer{client: client}
}

// Analyze compares a CV against a job description, optionally informed by a
// rejection email, and returns a structured gap analysis. A response the
// model mangles beyond repair degrades to a low-confidence result carrying
// the raw text; only transport failures return an error.
func (a *Analyzer) Analyze(ctx context.Context, cvText, jobDescription, rejectionEmail string) (*GapAnalysis, error) {
	if len(strings.TrimSpace(cvText)) < minInputLength {
		return nil, &InputTooShortError{Field: "cv text", Length: len(strings.TrimSpace(cvText)), MinLength: minInputLength}
	}
	if len(strings.TrimSpace(jobDescription)) < minInputLength {
		return nil, &InputTooShortError{Field: "job description", Length: len(strings.TrimSpace(jobDescription)), MinLength: minInputLength}
	}

	email := strings.TrimSpace(rejectionEmail)
	if email == "" {
		email = defaultEmailText
	}

	prompt := prompts.Format(prompts.MustGet("gaps.json", "compare-cv-to-job"), map[string]string{
		"CVText":         truncate(cvText, maxCVChars),
		"JobDescription": truncate(jobDescription, maxJobChars),
		"RejectionEmail": truncate(email, maxEmailChars),
	})

	opts := ollama.DefaultOptions()
	opts.Temperature = analysisTemperature
	response, err := a.client.Generate(ctx, prompt, opts)
	if err != nil {
		return nil, err
	}

	analysis, err := parseResponse(response)
	if err != nil {
		var malformed *MalformedResponseError
		if errors.As(err, &malformed) {
			return fallbackAnalysis(response), nil
		}
		return nil, err
	}

	filterHallucinations(analysis, jobDescription)
	return analysis, nil
}

// filterHallucinations removes commonly invented technologies from the gap
// lists when the job posting never mentions them.
func filterHallucinations(analysis *GapAnalysis, jobDescription string) {
	jobLower := strings.ToLower(jobDescription)
	gap := &analysis.TechnicalSkillsGap
	gap.CriticalMissing = filterSkillList(gap.CriticalMissing, jobLower)
	gap.ImportantMissing = filterSkillList(gap.ImportantMissing, jobLower)
	gap.WeakSkills = filterSkillList(gap.WeakSkills, jobLower)
}

func filterSkillList(skills []string, jobLower string) []string {
	filtered := make([]string, 0, len(skills))
	for _, skill := range skills {
		skillLower := strings.ToLower(skill)
		if !commonTech[skillLower] || mentionedIn(jobLower, skillLower) {
			filtered = append(filtered, skill)
		}
	}
	return filtered
}

func mentionedIn(jobLower, skillLower string) bool {
	for _, term := range strings.Fields(skillLower) {
		if strings.Contains(jobLower, term) {
			return true
		}
	}
	return false
}

// fallbackAnalysis builds the degraded result returned when the model
// response cannot be parsed. The raw response is retained so a human can
// still read what the model said.
func fallbackAnalysis(raw string) *GapAnalysis {
	return &GapAnalysis{
		PrimaryRejectionReason: "Unable to parse the analysis response - manual review of the raw output is recommended",
		DetailedAnalysis:       "The language model returned a response that could not be converted into a structured analysis.",
		ActionableRecommendations: []string{
			"Re-run the analysis, possibly with a different model",
			"Review the raw response below for any usable insights",
		},
		EstimatedTimeToQualify: "unknown",
		Confidence:             "low",
		ParseError:             true,
		RawResponse:            truncate(raw, maxRawRetained),
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
