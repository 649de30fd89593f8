// Package cvparse turns extracted CV text into a structured ResumeProfile.
package cvparse

import (
	"errors"
	"regexp"
	"strings"

	"github.com/jonathan/cv-tailor/internal/extract"
	"github.com/jonathan/cv-tailor/internal/keywords"
	"github.com/jonathan/cv-tailor/internal/types"
)

var (
	emailPattern    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phonePattern    = regexp.MustCompile(`(\+\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	linkedinPattern = regexp.MustCompile(`(?i)linkedin\.com/in/[\w-]+`)
	githubPattern   = regexp.MustCompile(`(?i)github\.com/[\w-]+`)
	digitOrAt       = regexp.MustCompile(`[@\d]`)
)

// ParseFile reads a CV document from disk and parses it into a profile.
// An unsupported extension is rejected before any parse attempt; a missing
// or unreadable file surfaces as UnreadableDocumentError. The parser never
// fabricates placeholder skills.
func ParseFile(path string) (*types.ResumeProfile, error) {
	text, err := extract.PlainText(path)
	if err != nil {
		var formatErr *extract.UnsupportedFormatError
		if errors.As(err, &formatErr) {
			return nil, err
		}
		return nil, &UnreadableDocumentError{Path: path, Cause: err}
	}

	profile := Parse(text)
	profile.SourcePath = path
	return profile, nil
}

// Parse builds a ResumeProfile from raw CV text. Contact fields are
// independent best-effort pattern searches; absence is valid and never an
// error. The full extracted skill set lands under the "technical" category,
// sorted lexicographically.
func Parse(text string) *types.ResumeProfile {
	contact := extractContactInfo(text)
	skills := keywords.Extract(text)

	return &types.ResumeProfile{
		Contact: contact,
		Skills: map[string][]string{
			"technical": skills.Sorted(),
		},
		RawText: text,
	}
}

// extractContactInfo runs the per-field pattern searches. First match wins
// for every field.
func extractContactInfo(text string) types.ContactInfo {
	contact := types.ContactInfo{}

	if m := emailPattern.FindString(text); m != "" {
		contact.Email = m
	}
	if m := phonePattern.FindString(text); m != "" {
		contact.Phone = m
	}
	if m := linkedinPattern.FindString(text); m != "" {
		contact.LinkedIn = m
	}
	if m := githubPattern.FindString(text); m != "" {
		contact.GitHub = m
	}
	contact.Name = extractName(text)

	return contact
}

// extractName scans the first 5 lines for a plausible name: strictly
// between 3 and 50 characters, no digit, no "@". Best effort; returns ""
// when no line qualifies.
func extractName(text string) string {
	lines := strings.Split(text, "\n")
	limit := 5
	if len(lines) < limit {
		limit = len(lines)
	}
	for _, line := range lines[:limit] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(line) > 3 && len(line) < 50 && !digitOrAt.MatchString(line) {
			return line
		}
	}
	return ""
}
