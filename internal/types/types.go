// Package types provides type definitions for structured data used throughout the cv-tailor system.
package types

// ContactInfo holds contact fields extracted from a CV. Every field is
// optional; an empty string means the pattern search found nothing.
type ContactInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

// ResumeProfile is the structured result of parsing a CV.
// Skills maps a category name (currently only "technical") to a sorted
// list of canonical skill tokens.
type ResumeProfile struct {
	Contact    ContactInfo         `json:"contact"`
	Skills     map[string][]string `json:"skills"`
	RawText    string              `json:"raw_text,omitempty"`
	SourcePath string              `json:"source_path,omitempty"`
}

// JobRequirements is the structured result of analyzing a job posting.
type JobRequirements struct {
	JobTitle         string   `json:"job_title"`
	Company          string   `json:"company"`
	RequiredSkills   []string `json:"required_skills"`
	PreferredSkills  []string `json:"preferred_skills"`
	AllSkills        []string `json:"all_skills"`
	Responsibilities []string `json:"responsibilities"`
}

// MatchResult holds the scores and skill breakdowns computed for one
// profile/requirements pair. Scores are percentages rounded to one decimal.
type MatchResult struct {
	OverallScore     float64  `json:"overall_score"`
	RequiredScore    float64  `json:"required_score"`
	PreferredScore   float64  `json:"preferred_score"`
	MatchedRequired  []string `json:"matched_required"`
	MissingRequired  []string `json:"missing_required"`
	MatchedPreferred []string `json:"matched_preferred"`
	MissingPreferred []string `json:"missing_preferred"`
}

// TailoredSkills returns the deduplicated union of matched and missing
// skills in both buckets, required first. This is the list handed to the
// skills-section rewriter.
func (m *MatchResult) TailoredSkills() []string {
	seen := make(map[string]bool)
	out := make([]string, 0, len(m.MatchedRequired)+len(m.MissingRequired)+len(m.MatchedPreferred)+len(m.MissingPreferred))
	for _, group := range [][]string{m.MatchedRequired, m.MissingRequired, m.MatchedPreferred, m.MissingPreferred} {
		for _, skill := range group {
			if !seen[skill] {
				seen[skill] = true
				out = append(out, skill)
			}
		}
	}
	return out
}
