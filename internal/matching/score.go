// Package matching computes weighted skill-match scores between a parsed
// CV profile and analyzed job requirements.
package matching

import (
	"math"
	"sort"
	"strings"

	"github.com/jonathan/cv-tailor/internal/types"
)

// Weights for combining the required and preferred component scores.
const (
	requiredWeight  = 0.7
	preferredWeight = 0.3
)

// Score computes the match between a candidate profile and job
// requirements. Scores are percentages rounded to one decimal; an empty
// job skill list scores 100 by convention. The result is freshly derived
// on every call and never mutates its inputs.
func Score(profile *types.ResumeProfile, req *types.JobRequirements) *types.MatchResult {
	candidate := candidateSkillSet(profile)

	matchedRequired, missingRequired := partition(candidate, req.RequiredSkills)
	matchedPreferred, missingPreferred := partition(candidate, req.PreferredSkills)

	requiredScore := componentScore(len(matchedRequired), len(matchedRequired)+len(missingRequired))
	preferredScore := componentScore(len(matchedPreferred), len(matchedPreferred)+len(missingPreferred))
	overall := roundOneDecimal(requiredScore*requiredWeight + preferredScore*preferredWeight)

	return &types.MatchResult{
		OverallScore:     overall,
		RequiredScore:    roundOneDecimal(requiredScore),
		PreferredScore:   roundOneDecimal(preferredScore),
		MatchedRequired:  matchedRequired,
		MissingRequired:  missingRequired,
		MatchedPreferred: matchedPreferred,
		MissingPreferred: missingPreferred,
	}
}

// candidateSkillSet unions every category list in the profile's skills
// mapping, lowercased.
func candidateSkillSet(profile *types.ResumeProfile) map[string]bool {
	set := make(map[string]bool)
	if profile == nil {
		return set
	}
	for _, category := range profile.Skills {
		for _, skill := range category {
			set[strings.ToLower(skill)] = true
		}
	}
	return set
}

// partition splits jobSkills into matched and missing against the
// candidate set, case-insensitively. Both outputs are deduplicated,
// lowercased and sorted; together they cover the job list exactly.
func partition(candidate map[string]bool, jobSkills []string) (matched, missing []string) {
	matched = make([]string, 0, len(jobSkills))
	missing = make([]string, 0, len(jobSkills))
	seen := make(map[string]bool)
	for _, skill := range jobSkills {
		lower := strings.ToLower(skill)
		if seen[lower] {
			continue
		}
		seen[lower] = true
		if candidate[lower] {
			matched = append(matched, lower)
		} else {
			missing = append(missing, lower)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)
	return matched, missing
}

// componentScore is the percentage of job skills matched; an empty job
// list degrades to 100 by convention.
func componentScore(matched, total int) float64 {
	if total == 0 {
		return 100
	}
	return float64(matched) / float64(total) * 100
}

func roundOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
