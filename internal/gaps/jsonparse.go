package gaps

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

var (
	fencedJSONPattern   = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")
	trailingCommaObject = regexp.MustCompile(`,\s*\}`)
	trailingCommaArray  = regexp.MustCompile(`,\s*\]`)
)

// resultSchema is the shape a model response must satisfy before it is
// accepted as a gap analysis. Anything that fails validation goes through
// the low-confidence fallback path instead.
const resultSchema = `{
  "type": "object",
  "required": ["primary_rejection_reason", "technical_skills_gap", "detailed_analysis", "confidence"],
  "properties": {
    "primary_rejection_reason": {"type": "string", "minLength": 10},
    "technical_skills_gap": {
      "type": "object",
      "properties": {
        "critical_missing": {"type": "array", "items": {"type": "string"}},
        "important_missing": {"type": "array", "items": {"type": "string"}},
        "weak_skills": {"type": "array", "items": {"type": "string"}}
      }
    },
    "detailed_analysis": {"type": "string"},
    "actionable_recommendations": {"type": "array", "items": {"type": "string"}},
    "confidence": {"type": "string"}
  }
}`

var compiledSchema = gojsonschema.NewStringLoader(resultSchema)

// parseResponse extracts the JSON object from a model response and decodes
// it into a GapAnalysis. Models wrap JSON in prose or markdown fences often
// enough that three recovery strategies are tried in order: the raw text,
// a fenced code block, and a brace-balanced scan with trailing commas
// stripped.
func parseResponse(response string) (*GapAnalysis, error) {
	for _, candidate := range jsonCandidates(response) {
		analysis, err := decodeAnalysis(candidate)
		if err == nil {
			return analysis, nil
		}
	}
	return nil, &MalformedResponseError{
		Reason:      "no valid JSON object found in response",
		RawResponse: response,
	}
}

func jsonCandidates(response string) []string {
	var candidates []string

	trimmed := strings.TrimSpace(response)
	if strings.HasPrefix(trimmed, "{") {
		candidates = append(candidates, trimmed)
	}

	if m := fencedJSONPattern.FindStringSubmatch(response); m != nil {
		candidates = append(candidates, m[1])
	}

	if scanned, ok := scanBraces(response); ok {
		candidates = append(candidates, stripTrailingCommas(scanned))
	}

	return candidates
}

// scanBraces returns the substring from the first '{' to its balancing '}',
// ignoring braces inside string literals.
func scanBraces(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return text[start : i+1], true
				}
			}
		}
	}
	return "", false
}

func stripTrailingCommas(text string) string {
	text = trailingCommaObject.ReplaceAllString(text, "}")
	return trailingCommaArray.ReplaceAllString(text, "]")
}

func decodeAnalysis(candidate string) (*GapAnalysis, error) {
	validation, err := gojsonschema.Validate(compiledSchema, gojsonschema.NewStringLoader(candidate))
	if err != nil {
		return nil, err
	}
	if !validation.Valid() {
		return nil, &MalformedResponseError{Reason: "response does not match expected structure", RawResponse: candidate}
	}

	var analysis GapAnalysis
	if err := json.Unmarshal([]byte(candidate), &analysis); err != nil {
		return nil, err
	}
	return &analysis, nil
}
