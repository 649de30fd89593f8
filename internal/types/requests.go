package types

import (
	"github.com/go-playground/validator/v10"
)

// GapAnalysisRequest is the JSON body for POST /api/gaps.
type GapAnalysisRequest struct {
	CVText         string `json:"cv_text" validate:"required,min=50"`
	JobDescription string `json:"job_description" validate:"required,min=50"`
	RejectionEmail string `json:"rejection_email,omitempty"`
	Model          string `json:"model,omitempty"`
}

// LetterRequest is the JSON body for POST /api/letter.
type LetterRequest struct {
	CandidateName    string   `json:"candidate_name" validate:"required,min=1"`
	CandidateEmail   string   `json:"candidate_email" validate:"required,email"`
	CandidatePhone   string   `json:"candidate_phone,omitempty"`
	CandidateAddress string   `json:"candidate_address,omitempty"`
	JobTitle         string   `json:"job_title,omitempty"`
	Company          string   `json:"company,omitempty"`
	MatchedSkills    []string `json:"matched_skills,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
	Education        string   `json:"education,omitempty"`
	PortfolioURL     string   `json:"portfolio_url,omitempty"`
	GitHubURL        string   `json:"github_url,omitempty"`
}

// Validate validates the GapAnalysisRequest using the validator.
func (r *GapAnalysisRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the LetterRequest using the validator.
func (r *LetterRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
