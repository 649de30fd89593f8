// Package gaps produces a structured rejection gap analysis by comparing a
// CV, a job description and an optional rejection email through the local
// language model.
package gaps

// TechnicalSkillsGap lists skill shortfalls by severity.
type TechnicalSkillsGap struct {
	CriticalMissing  []string `json:"critical_missing"`
	ImportantMissing []string `json:"important_missing"`
	WeakSkills       []string `json:"weak_skills"`
}

// ExperienceGap compares required and held years of experience.
type ExperienceGap struct {
	RequiredYears     string `json:"required_years"`
	CandidateYears    string `json:"candidate_years"`
	Gap               string `json:"gap"`
	SeniorityMismatch string `json:"seniority_mismatch"`
}

// EducationGap compares required and held education.
type EducationGap struct {
	Required     string `json:"required"`
	CandidateHas string `json:"candidate_has"`
	GapExists    string `json:"gap_exists"`
}

// DomainExperienceGap compares required and held industry experience.
type DomainExperienceGap struct {
	RequiredDomain  string `json:"required_domain"`
	CandidateDomain string `json:"candidate_domain"`
	GapDescription  string `json:"gap_description"`
}

// RejectionEmailAnalysis summarizes clues read from the rejection email.
type RejectionEmailAnalysis struct {
	EmailType      string   `json:"email_type"`
	HintsFromEmail []string `json:"hints_from_email"`
	KeyPhrases     []string `json:"key_phrases"`
}

// SpecificEvidence quotes the material backing the analysis.
type SpecificEvidence struct {
	FromJobDescription []string `json:"from_job_description"`
	FromCV             []string `json:"from_cv"`
	TheGap             string   `json:"the_gap"`
}

// GapAnalysis is the structured result of a rejection analysis. When the
// model response could not be parsed, ParseError is set, Confidence is
// "low" and RawResponse retains the model output for inspection.
type GapAnalysis struct {
	PrimaryRejectionReason    string                  `json:"primary_rejection_reason"`
	RejectionEmailAnalysis    *RejectionEmailAnalysis `json:"rejection_email_analysis,omitempty"`
	TechnicalSkillsGap        TechnicalSkillsGap      `json:"technical_skills_gap"`
	ExperienceGap             ExperienceGap           `json:"experience_gap"`
	EducationGap              EducationGap            `json:"education_gap"`
	DomainExperienceGap       DomainExperienceGap     `json:"domain_experience_gap"`
	ProjectRelevanceScore     string                  `json:"project_relevance_score"`
	DetailedAnalysis          string                  `json:"detailed_analysis"`
	SpecificEvidence          SpecificEvidence        `json:"specific_evidence"`
	ActionableRecommendations []string                `json:"actionable_recommendations"`
	EstimatedTimeToQualify    string                  `json:"estimated_time_to_qualify"`
	Confidence                string                  `json:"confidence"`
	ParseError                bool                    `json:"parse_error,omitempty"`
	RawResponse               string                  `json:"raw_response,omitempty"`
}
