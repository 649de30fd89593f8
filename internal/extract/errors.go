package extract

import "fmt"

// UnsupportedFormatError indicates the uploaded file has an extension the
// system cannot parse. It is raised before any parse attempt.
type UnsupportedFormatError struct {
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Extension == "" {
		return "unsupported file format: missing extension"
	}
	return fmt.Sprintf("unsupported file format: %s (only .pdf and .docx are accepted)", e.Extension)
}
