// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/cv-tailor/internal/gaps"
	"github.com/jonathan/cv-tailor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs a human-readable summary of the parsed CV.
func (p *Printer) PrintProfile(profile *types.ResumeProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:   %s\n", valueOr(profile.Contact.Name, "(not found)")))
	sb.WriteString(fmt.Sprintf("Email:  %s\n", valueOr(profile.Contact.Email, "(not found)")))
	if profile.Contact.Phone != "" {
		sb.WriteString(fmt.Sprintf("Phone:  %s\n", profile.Contact.Phone))
	}
	if profile.Contact.LinkedIn != "" {
		sb.WriteString(fmt.Sprintf("LinkedIn: %s\n", profile.Contact.LinkedIn))
	}

	if skills := profile.Skills["technical"]; len(skills) > 0 {
		sb.WriteString("\nTechnical Skills:\n")
		sb.WriteString(itemList(skills, maxItemsToShow))
	}

	p.printBox("PARSED CV", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRequirements outputs a summary of the analyzed job posting.
func (p *Printer) PrintRequirements(req *types.JobRequirements) {
	if req == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Title:    %s\n", valueOr(req.JobTitle, "(not found)")))
	sb.WriteString(fmt.Sprintf("Company:  %s\n", valueOr(req.Company, "(not found)")))

	if len(req.RequiredSkills) > 0 {
		sb.WriteString("\nRequired Skills:\n")
		sb.WriteString(itemList(req.RequiredSkills, maxItemsToShow))
	}
	if len(req.PreferredSkills) > 0 {
		sb.WriteString("\nPreferred Skills:\n")
		sb.WriteString(itemList(req.PreferredSkills, 3))
	}
	if len(req.Responsibilities) > 0 {
		sb.WriteString("\nResponsibilities:\n")
		sb.WriteString(itemList(req.Responsibilities, 3))
	}

	p.printBox("JOB REQUIREMENTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchResult outputs the match scores and skill breakdown.
func (p *Printer) PrintMatchResult(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:    %.1f%%\n", result.OverallScore))
	sb.WriteString(fmt.Sprintf("Required:   %.1f%%\n", result.RequiredScore))
	sb.WriteString(fmt.Sprintf("Preferred:  %.1f%%\n", result.PreferredScore))

	if len(result.MatchedRequired) > 0 {
		sb.WriteString("\nMatched Required:\n")
		sb.WriteString(itemList(result.MatchedRequired, maxItemsToShow))
	}
	if len(result.MissingRequired) > 0 {
		sb.WriteString("\nMissing Required:\n")
		sb.WriteString(itemList(result.MissingRequired, maxItemsToShow))
	}
	if len(result.MissingPreferred) > 0 {
		sb.WriteString("\nMissing Preferred:\n")
		sb.WriteString(itemList(result.MissingPreferred, 3))
	}

	p.printBox("MATCH RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGapAnalysis outputs the rejection gap analysis summary.
func (p *Printer) PrintGapAnalysis(analysis *gaps.GapAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Confidence: %s\n", analysis.Confidence))
	if analysis.ParseError {
		sb.WriteString("(degraded result: model response was not parseable)\n")
	}
	sb.WriteString("\nPrimary reason:\n")
	sb.WriteString(wrapText(analysis.PrimaryRejectionReason, boxWidth-6))

	if len(analysis.TechnicalSkillsGap.CriticalMissing) > 0 {
		sb.WriteString("\nCritical Missing:\n")
		sb.WriteString(itemList(analysis.TechnicalSkillsGap.CriticalMissing, maxItemsToShow))
	}
	if len(analysis.ActionableRecommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		sb.WriteString(itemList(analysis.ActionableRecommendations, 3))
	}

	p.printBox("REJECTION ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

func itemList(items []string, limit int) string {
	var sb strings.Builder
	count := min(len(items), limit)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > limit {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-limit))
	}
	return sb.String()
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// wrapText breaks a long line into width-bounded lines on word boundaries.
func wrapText(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return "\n"
	}

	var sb strings.Builder
	lineLen := 0
	for i, word := range words {
		if lineLen > 0 && lineLen+1+len(word) > width {
			sb.WriteString("\n")
			lineLen = 0
		} else if i > 0 {
			sb.WriteString(" ")
			lineLen++
		}
		sb.WriteString(word)
		lineLen += len(word)
	}
	sb.WriteString("\n")
	return sb.String()
}
