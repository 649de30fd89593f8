package cvparse

import "fmt"

// UnreadableDocumentError indicates the text-extraction collaborator could
// not read the source document at all.
type UnreadableDocumentError struct {
	Path  string
	Cause error
}

func (e *UnreadableDocumentError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("unreadable document %s: %v", e.Path, e.Cause)
	}
	return fmt.Sprintf("unreadable document %s", e.Path)
}

func (e *UnreadableDocumentError) Unwrap() error {
	return e.Cause
}
