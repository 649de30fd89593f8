package gaps

import "fmt"

// MalformedResponseError indicates the model response could not be parsed
// into a valid gap analysis. The raw response is retained so callers can
// build a degraded fallback result.
type MalformedResponseError struct {
	Reason      string
	RawResponse string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed model response: %s", e.Reason)
}

// InputTooShortError indicates a CV or job description below the minimum
// length needed for a meaningful analysis.
type InputTooShortError struct {
	Field     string
	Length    int
	MinLength int
}

func (e *InputTooShortError) Error() string {
	return fmt.Sprintf("%s too short for analysis: %d characters (minimum %d)", e.Field, e.Length, e.MinLength)
}
