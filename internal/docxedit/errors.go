package docxedit

import "fmt"

// SourceNotFoundError indicates an export was requested against a source
// document that no longer exists on disk. The user must re-upload.
type SourceNotFoundError struct {
	Path string
}

func (e *SourceNotFoundError) Error() string {
	return fmt.Sprintf("source document not found: %s", e.Path)
}
