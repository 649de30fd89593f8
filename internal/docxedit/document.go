// Package docxedit performs structure-preserving edits on DOCX documents.
// A document is parsed into an ordered list of body blocks; edits are
// list-level splices; serialization writes the full list back into
// word/document.xml and repacks the archive, leaving every other zip entry
// byte-for-byte intact.
package docxedit

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
)

const documentXMLName = "word/document.xml"

// Block is one top-level child of the document body: a paragraph, a table
// or a section-properties element. XML holds the raw slice of
// word/document.xml; Text is the concatenated run text for paragraphs.
type Block struct {
	XML       string
	Text      string
	Paragraph bool
}

type zipEntry struct {
	name string
	data []byte
}

// Document is a parsed DOCX archive with its body split into blocks.
type Document struct {
	entries []zipEntry
	prefix  string // document.xml up to the first body child
	suffix  string // document.xml from the body close tag on
	blocks  []Block
}

// LoadFile opens a DOCX from disk. A missing file raises
// SourceNotFoundError; a non-.docx extension is rejected up front since
// fixed-layout formats cannot be structurally edited.
func LoadFile(path string) (*Document, error) {
	if !strings.HasSuffix(strings.ToLower(path), ".docx") {
		return nil, fmt.Errorf("cannot structurally edit %s: only .docx documents are editable", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &SourceNotFoundError{Path: path}
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Load(data)
}

// Load parses a DOCX archive from memory.
func Load(data []byte) (*Document, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open docx archive: %w", err)
	}

	doc := &Document{}
	var documentXML string
	found := false
	for _, f := range zr.File {
		content, err := readZipFile(f)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", f.Name, err)
		}
		name := strings.ReplaceAll(f.Name, "\\", "/")
		doc.entries = append(doc.entries, zipEntry{name: f.Name, data: content})
		if name == documentXMLName {
			documentXML = string(content)
			found = true
		}
	}
	if !found {
		return nil, fmt.Errorf("invalid docx: %s not found", documentXMLName)
	}

	if err := doc.parseBody(documentXML); err != nil {
		return nil, err
	}
	return doc, nil
}

// parseBody splits document.xml into prefix, body blocks and suffix using
// raw token offsets, so every block keeps its original markup untouched.
func (d *Document) parseBody(content string) error {
	dec := xml.NewDecoder(strings.NewReader(content))

	depth := 0
	bodyDepth := -1
	childStart := int64(-1)
	firstChildStart := int64(-1)
	childName := ""
	inText := false
	var textBuf strings.Builder
	prefixEnd := int64(-1)
	suffixStart := int64(len(content))

	for {
		before := dec.InputOffset()
		tok, err := dec.RawToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", documentXMLName, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if bodyDepth == -1 && t.Name.Local == "body" {
				bodyDepth = depth
				prefixEnd = dec.InputOffset()
			} else if bodyDepth != -1 && depth == bodyDepth+1 && childStart == -1 {
				childStart = before
				if firstChildStart == -1 {
					firstChildStart = before
				}
				childName = t.Name.Local
				textBuf.Reset()
			}
			if childStart != -1 && t.Name.Local == "t" {
				inText = true
			}
			depth++
		case xml.EndElement:
			depth--
			if childStart != -1 && t.Name.Local == "t" {
				inText = false
			}
			if bodyDepth != -1 && depth == bodyDepth+1 && childStart != -1 {
				end := dec.InputOffset()
				d.blocks = append(d.blocks, Block{
					XML:       content[childStart:end],
					Text:      textBuf.String(),
					Paragraph: childName == "p",
				})
				childStart = -1
			}
			if bodyDepth != -1 && depth == bodyDepth && t.Name.Local == "body" {
				suffixStart = before
			}
		case xml.CharData:
			if inText {
				textBuf.Write(t)
			}
		}
	}

	if bodyDepth == -1 {
		return fmt.Errorf("invalid docx: no body element in %s", documentXMLName)
	}
	if firstChildStart != -1 {
		prefixEnd = firstChildStart
	}
	d.prefix = content[:prefixEnd]
	d.suffix = content[suffixStart:]
	return nil
}

// Paragraphs returns the indexes of paragraph blocks, in document order.
func (d *Document) Paragraphs() []int {
	var idx []int
	for i, b := range d.blocks {
		if b.Paragraph {
			idx = append(idx, i)
		}
	}
	return idx
}

// Bytes serializes the document back into a DOCX archive. Only
// word/document.xml is regenerated; all other entries are copied verbatim.
func (d *Document) Bytes() ([]byte, error) {
	var body strings.Builder
	body.WriteString(d.prefix)
	for _, b := range d.blocks {
		body.WriteString(b.XML)
	}
	body.WriteString(d.suffix)

	var out bytes.Buffer
	zw := zip.NewWriter(&out)
	for _, entry := range d.entries {
		w, err := zw.Create(entry.name)
		if err != nil {
			return nil, fmt.Errorf("failed to create zip entry %s: %w", entry.name, err)
		}
		data := entry.data
		if strings.ReplaceAll(entry.name, "\\", "/") == documentXMLName {
			data = []byte(body.String())
		}
		if _, err := w.Write(data); err != nil {
			return nil, fmt.Errorf("failed to write zip entry %s: %w", entry.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize docx archive: %w", err)
	}
	return out.Bytes(), nil
}

func readZipFile(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
