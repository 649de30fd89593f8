// Package keywords implements deterministic skill extraction from free text
// against the fixed vocabulary.
package keywords

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/cv-tailor/internal/vocab"
)

// SkillSet is a set of canonical lowercase skill tokens. Only vocabulary
// terms (plus abbreviation expansions) can appear as members.
type SkillSet map[string]bool

// Sorted returns the members sorted lexicographically.
func (s SkillSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for skill := range s {
		out = append(out, skill)
	}
	sort.Strings(out)
	return out
}

// termPatterns holds one compiled word-boundary pattern per vocabulary term,
// built once at package init. Terms are matched against lowercased input so
// the patterns themselves are case-sensitive.
var termPatterns = buildTermPatterns()

func buildTermPatterns() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp)
	for _, term := range vocab.Terms() {
		patterns[term] = regexp.MustCompile(`\b` + regexp.QuoteMeta(term) + `\b`)
	}
	for _, abbr := range vocab.Abbreviations {
		if _, ok := patterns[abbr.Token]; !ok {
			patterns[abbr.Token] = regexp.MustCompile(`\b` + regexp.QuoteMeta(abbr.Token) + `\b`)
		}
	}
	return patterns
}

// Extract scans text for vocabulary skills. Matching is whole-word and
// case-insensitive; a hit adds the canonical lowercase term. After the
// vocabulary scan the fixed abbreviation expansions are applied additively.
// Empty input yields an empty set.
func Extract(text string) SkillSet {
	found := make(SkillSet)
	if text == "" {
		return found
	}

	lower := strings.ToLower(text)
	for _, term := range vocab.Terms() {
		if termPatterns[term].MatchString(lower) {
			found[term] = true
		}
	}

	for _, abbr := range vocab.Abbreviations {
		if termPatterns[abbr.Token].MatchString(lower) {
			found[abbr.Imply] = true
		}
	}

	return found
}
