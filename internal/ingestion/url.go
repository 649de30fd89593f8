package ingestion

import (
	"context"
	"fmt"

	"github.com/jonathan/cv-tailor/internal/fetch"
)

var (
	// ErrHTTPRequestFailed is returned when the posting page cannot be fetched.
	ErrHTTPRequestFailed = fmt.Errorf("HTTP request failed")
	// ErrContentExtractionFailed is returned when no text can be pulled from the page.
	ErrContentExtractionFailed = fmt.Errorf("content extraction failed")
)

// FromURL fetches a job posting page, extracts its text and cleans it.
// When useBrowser is set and the plain fetch yields too little text, the
// page is re-rendered in a headless browser before giving up.
func FromURL(ctx context.Context, urlStr string, useBrowser bool) (string, *Metadata, error) {
	result, err := fetch.URL(ctx, urlStr, nil)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}

	selectors := fetch.JobPostingSelectors()
	text, err := fetch.ExtractMainText(result.HTML, selectors)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}

	usedBrowser := false
	if useBrowser && fetch.ShouldUseBrowser(text) {
		if html, browserErr := fetch.BrowserSimple(ctx, urlStr); browserErr == nil {
			if rendered, extractErr := fetch.ExtractMainText(html, selectors); extractErr == nil {
				text = rendered
				usedBrowser = true
			}
		}
		// On browser failure the HTTP content is used as-is.
	}

	cleaned := CleanText(text)
	metadata := NewMetadata(cleaned, urlStr)
	metadata.Browser = usedBrowser
	return cleaned, metadata, nil
}
