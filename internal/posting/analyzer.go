// Package posting analyzes free-text job postings into structured
// JobRequirements: title/company heuristics, required vs preferred skill
// classification and responsibility extraction.
package posting

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/cv-tailor/internal/keywords"
	"github.com/jonathan/cv-tailor/internal/types"
)

// requiredSectionPatterns capture the text span that follows a
// "required"/"must have" label, up to the next section label or end of
// text. Applied against the lowercased posting, whole-document.
var requiredSectionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?s)required(?:\s+(?:skills|qualifications))?[:\s]+(.*?)(?:preferred|nice|bonus|responsibilities|$)`),
	regexp.MustCompile(`(?s)must\s+have[:\s]+(.*?)(?:preferred|nice|$)`),
}

var (
	responsibilitiesPattern = regexp.MustCompile(`(?is)(?:responsibilities|duties)[:\s]+(.*?)(?:requirements|qualifications|skills|$)`)
	bulletItemPattern       = regexp.MustCompile(`[•\-\*]\s*([^\n•\-\*]+)`)
)

// fallbackSplitRatio is the share of skills kept as required when a posting
// never labels its sections. Computed with integer truncation over the
// sorted skill list so the split is deterministic.
const fallbackSplitRatio = 0.7

// Analyze parses a job posting into JobRequirements. Title and company
// detection is heuristic and may misfire on atypically formatted postings.
func Analyze(text string) *types.JobRequirements {
	title, company := extractTitleAndCompany(text)
	required, preferred, all := classifySkills(text)

	return &types.JobRequirements{
		JobTitle:         title,
		Company:          company,
		RequiredSkills:   required,
		PreferredSkills:  preferred,
		AllSkills:        all,
		Responsibilities: extractResponsibilities(text),
	}
}

// extractTitleAndCompany scans the first 10 lines. The first line strictly
// between 5 and 100 characters not starting with http/www becomes the
// title; the next distinct qualifying line becomes the company.
func extractTitleAndCompany(text string) (title, company string) {
	lines := strings.Split(text, "\n")
	limit := 10
	if len(lines) < limit {
		limit = len(lines)
	}

	for _, line := range lines[:limit] {
		line = strings.TrimSpace(line)
		if line == "" || len(line) <= 5 || len(line) >= 100 {
			continue
		}
		if strings.HasPrefix(line, "http") || strings.HasPrefix(line, "www") {
			continue
		}
		if title == "" {
			title = line
		} else if company == "" && line != title {
			company = line
			break
		}
	}
	return title, company
}

// classifySkills extracts the posting's skill set and buckets it into
// required and preferred lists, both sorted.
func classifySkills(text string) (required, preferred, all []string) {
	allSet := keywords.Extract(text)
	lower := strings.ToLower(text)

	requiredText := ""
	for _, pattern := range requiredSectionPatterns {
		if m := pattern.FindStringSubmatch(lower); m != nil {
			requiredText = m[1]
			break
		}
	}

	// A skill whose canonical string appears verbatim inside the required
	// span is required; everything else is provisionally preferred. When no
	// labeled section exists at all, every skill starts out required so the
	// 70/30 fallback below can re-split.
	for _, skill := range allSet.Sorted() {
		if requiredText == "" || strings.Contains(requiredText, skill) {
			required = append(required, skill)
		} else {
			preferred = append(preferred, skill)
		}
	}

	// Fallback for postings that never label sections: keep the first 70%
	// of the sorted required list, move the rest to preferred.
	if len(preferred) == 0 && len(required) > 3 {
		splitPoint := int(float64(len(required)) * fallbackSplitRatio)
		preferred = append(preferred, required[splitPoint:]...)
		required = required[:splitPoint]
	}

	sort.Strings(required)
	sort.Strings(preferred)
	return required, preferred, allSet.Sorted()
}

// extractResponsibilities pulls bullet-style lines out of the first
// "responsibilities"/"duties" section: items longer than 20 characters
// after trimming, capped at 5.
func extractResponsibilities(text string) []string {
	m := responsibilitiesPattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}

	var out []string
	for _, item := range bulletItemPattern.FindAllStringSubmatch(m[1], -1) {
		trimmed := strings.TrimSpace(item[1])
		if len(trimmed) > 20 {
			out = append(out, trimmed)
		}
		if len(out) == 5 {
			break
		}
	}
	return out
}
