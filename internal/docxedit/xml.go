package docxedit

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

// skillJoiner separates skills inside a generated paragraph.
const skillJoiner = " • "

// Run formatting for generated paragraphs: 11pt (half-points), dark
// slate label color.
const (
	runSize    = "22"
	labelColor = "2C3E50"
)

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// blankParagraphXML is an empty spacer paragraph.
func blankParagraphXML() string {
	return "<w:p/>"
}

// labeledParagraphXML builds a paragraph with a bold label run followed by
// a plain content run, e.g. "Hard Skills: python • sql".
func labeledParagraphXML(label, content string) string {
	return fmt.Sprintf(
		`<w:p><w:r><w:rPr><w:b/><w:color w:val="%s"/><w:sz w:val="%s"/><w:szCs w:val="%s"/></w:rPr><w:t xml:space="preserve">%s</w:t></w:r>`+
			`<w:r><w:rPr><w:sz w:val="%s"/><w:szCs w:val="%s"/></w:rPr><w:t xml:space="preserve">%s</w:t></w:r></w:p>`,
		labelColor, runSize, runSize, escapeXML(label),
		runSize, runSize, escapeXML(content),
	)
}

// headingParagraphXML builds a Heading1-styled paragraph. The style is
// referenced by name only, so documents lacking the style still open.
func headingParagraphXML(text string) string {
	return fmt.Sprintf(
		`<w:p><w:pPr><w:pStyle w:val="Heading1"/></w:pPr><w:r><w:t>%s</w:t></w:r></w:p>`,
		escapeXML(text),
	)
}

// pageBreakParagraphXML builds a paragraph holding a single page break.
func pageBreakParagraphXML() string {
	return `<w:p><w:r><w:br w:type="page"/></w:r></w:p>`
}
