package docxedit

import (
	"regexp"
	"strings"
)

// canonicalHeaders are the exact (whitespace-normalized, upper-cased)
// paragraph texts accepted as a skills-section header in pass 1.
var canonicalHeaders = map[string]bool{
	"SKILLS":              true,
	"TECHNICAL SKILLS":    true,
	"COMPETENCIES":        true,
	"EXPERTISE":           true,
	"TECHNOLOGIES":        true,
	"CORE SKILLS":         true,
	"HARD SKILLS":         true,
	"PROFESSIONAL SKILLS": true,
}

// headerExclusions disqualify a "SKILLS"-containing paragraph in pass 2,
// so "PROFESSIONAL EXPERIENCE" or "WORK SKILLS IN PROJECTS" style headers
// are not misread as the skills section.
var headerExclusions = []string{
	"EXPERIENCE", "EDUCATION", "PROFESSIONAL", "WORK", "INTERNSHIP", "PROJECT",
}

// nextSectionKeywords mark the end of the skills section. A match only
// counts on paragraphs shorter than maxBoundaryLen characters, guarding
// against hits inside long sentences.
var nextSectionKeywords = []string{
	"EXPERIENCE", "EDUCATION", "PROJECTS", "CERTIFICATIONS", "LANGUAGES",
	"AWARDS", "PUBLICATIONS", "WORK EXPERIENCE", "PROFESSIONAL EXPERIENCE",
	"TRAINING", "CERTIFICATES",
}

const maxBoundaryLen = 50

var (
	softLabelPattern = regexp.MustCompile(`(?i)soft skills?:?`)
	hardLabelPattern = regexp.MustCompile(`(?i)hard skills?:?`)
	skillTokenSplit  = regexp.MustCompile(`[•\-\*,]`)
)

// Cue words used to bucket unlabeled skill lines.
var (
	hardSkillCues = []string{"python", "machine learning", "docker", "sql", "programming"}
	softSkillCues = []string{"communication", "teamwork", "problem", "creativity", "leadership"}
)

// existingSkills holds skills recovered from the current section body
// before it is deleted.
type existingSkills struct {
	soft []string
	hard []string
}

// ExportFile rewrites the skills section of the DOCX at path, merging the
// incoming skill list with whatever the section already holds, and returns
// the new document bytes. The source file is only read; the caller's
// slice is never modified.
func ExportFile(path string, incoming []string) ([]byte, error) {
	doc, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	RewriteSkills(doc, incoming)
	return doc.Bytes()
}

// RewriteSkills locates the skills section, extracts and merges its
// current content with the incoming skills, and splices in a regenerated
// section. Every paragraph outside the section is preserved untouched;
// the header paragraph itself is never removed. When no header exists the
// section is appended at the end of the document instead.
func RewriteSkills(doc *Document, incoming []string) {
	headerIdx := findHeader(doc)
	if headerIdx == -1 {
		appendSkillsSection(doc, incoming)
		return
	}

	endIdx := findSectionEnd(doc, headerIdx)
	existing := extractExisting(doc, headerIdx, endIdx)
	merged := mergeSkills(existing.hard, incoming)

	// Delete the section body (paragraphs only), keeping the header.
	kept := make([]Block, 0, len(doc.blocks))
	kept = append(kept, doc.blocks[:headerIdx+1]...)
	for _, b := range doc.blocks[headerIdx+1 : endIdx] {
		if !b.Paragraph {
			kept = append(kept, b)
		}
	}
	tail := doc.blocks[endIdx:]

	// Regenerate: blank, optional soft skills + blank, hard skills, blank.
	section := []Block{{XML: blankParagraphXML(), Paragraph: true}}
	if len(existing.soft) > 0 {
		soft := strings.Join(existing.soft, skillJoiner)
		section = append(section,
			Block{XML: labeledParagraphXML("Soft Skills: ", soft), Text: "Soft Skills: " + soft, Paragraph: true},
			Block{XML: blankParagraphXML(), Paragraph: true},
		)
	}
	hard := strings.Join(merged, skillJoiner)
	section = append(section,
		Block{XML: labeledParagraphXML("Hard Skills: ", hard), Text: "Hard Skills: " + hard, Paragraph: true},
		Block{XML: blankParagraphXML(), Paragraph: true},
	)

	blocks := make([]Block, 0, len(kept)+len(section)+len(tail))
	blocks = append(blocks, kept[:headerIdx+1]...)
	blocks = append(blocks, section...)
	blocks = append(blocks, kept[headerIdx+1:]...)
	blocks = append(blocks, tail...)
	doc.blocks = blocks
}

// findHeader runs the two-pass header detection. Pass 1 accepts only exact
// canonical headers; pass 2 tolerates non-canonical "SKILLS" headers while
// rejecting the exclusion words.
func findHeader(doc *Document) int {
	for i, b := range doc.blocks {
		if b.Paragraph && canonicalHeaders[normalizeText(b.Text)] {
			return i
		}
	}
	for i, b := range doc.blocks {
		if !b.Paragraph {
			continue
		}
		text := normalizeText(b.Text)
		if !strings.Contains(text, "SKILLS") {
			continue
		}
		excluded := false
		for _, word := range headerExclusions {
			if strings.Contains(text, word) {
				excluded = true
				break
			}
		}
		if !excluded {
			return i
		}
	}
	return -1
}

// findSectionEnd returns the exclusive end boundary of the skills section:
// the first following paragraph that names a next section and is short
// enough to be a header, or the document end.
func findSectionEnd(doc *Document, headerIdx int) int {
	for i := headerIdx + 1; i < len(doc.blocks); i++ {
		if !doc.blocks[i].Paragraph {
			continue
		}
		text := normalizeText(doc.blocks[i].Text)
		if len(text) >= maxBoundaryLen {
			continue
		}
		for _, keyword := range nextSectionKeywords {
			if strings.Contains(text, keyword) {
				return i
			}
		}
	}
	return len(doc.blocks)
}

// extractExisting classifies the section body into soft and hard skill
// lists. Labeled lines are split after their label; unlabeled lines are
// bucketed by cue words and default to hard skills.
func extractExisting(doc *Document, headerIdx, endIdx int) existingSkills {
	var out existingSkills
	for _, b := range doc.blocks[headerIdx+1 : endIdx] {
		if !b.Paragraph {
			continue
		}
		text := strings.TrimSpace(b.Text)
		if text == "" {
			continue
		}
		lower := strings.ToLower(text)

		switch {
		case strings.Contains(lower, "soft skill"):
			if parts := softLabelPattern.Split(text, 2); len(parts) > 1 {
				out.soft = append(out.soft, tokenizeSkills(parts[1])...)
			}
		case strings.Contains(lower, "hard skill"):
			if parts := hardLabelPattern.Split(text, 2); len(parts) > 1 {
				out.hard = append(out.hard, tokenizeSkills(parts[1])...)
			}
		default:
			tokens := tokenizeSkills(text)
			if containsAny(lower, hardSkillCues) {
				out.hard = append(out.hard, tokens...)
			} else if containsAny(lower, softSkillCues) {
				out.soft = append(out.soft, tokens...)
			} else {
				out.hard = append(out.hard, tokens...)
			}
		}
	}
	return out
}

// appendSkillsSection handles the no-header fallback: a page break, a new
// TECHNICAL SKILLS heading and the incoming skill list, appended after the
// existing content (before a trailing section-properties block if one
// exists). Nothing existed to merge with.
func appendSkillsSection(doc *Document, incoming []string) {
	section := []Block{
		{XML: pageBreakParagraphXML(), Paragraph: true},
		{XML: headingParagraphXML("TECHNICAL SKILLS"), Text: "TECHNICAL SKILLS", Paragraph: true},
		{XML: labeledParagraphXML("Hard Skills: ", strings.Join(incoming, skillJoiner)), Text: "Hard Skills: " + strings.Join(incoming, skillJoiner), Paragraph: true},
	}

	insertAt := len(doc.blocks)
	if insertAt > 0 && strings.HasPrefix(strings.TrimSpace(doc.blocks[insertAt-1].XML), "<w:sectPr") {
		insertAt--
	}

	blocks := make([]Block, 0, len(doc.blocks)+len(section))
	blocks = append(blocks, doc.blocks[:insertAt]...)
	blocks = append(blocks, section...)
	blocks = append(blocks, doc.blocks[insertAt:]...)
	doc.blocks = blocks
}

// mergeSkills concatenates existing and incoming skills, deduplicating
// case-insensitively while preserving first-seen casing and order.
func mergeSkills(existing, incoming []string) []string {
	seen := make(map[string]bool)
	merged := make([]string, 0, len(existing)+len(incoming))
	for _, skill := range append(append([]string{}, existing...), incoming...) {
		trimmed := strings.TrimSpace(skill)
		key := strings.ToLower(trimmed)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		merged = append(merged, trimmed)
	}
	return merged
}

// tokenizeSkills splits a line on bullet, dash, asterisk and comma.
func tokenizeSkills(text string) []string {
	var out []string
	for _, token := range skillTokenSplit.Split(text, -1) {
		if trimmed := strings.TrimSpace(token); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func containsAny(text string, cues []string) bool {
	for _, cue := range cues {
		if strings.Contains(text, cue) {
			return true
		}
	}
	return false
}

// normalizeText collapses whitespace and upper-cases for header matching.
func normalizeText(text string) string {
	return strings.ToUpper(strings.Join(strings.Fields(text), " "))
}
