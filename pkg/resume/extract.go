package resume

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	pdf "github.com/ledongthuc/pdf"
)

// FormatError is returned when a resume arrives in a file format we cannot
// read. The message names the offending extension so the caller can surface
// an actionable error.
type FormatError struct {
	Ext string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("unsupported file format %q: only pdf and docx are allowed", e.Ext)
}

// ErrUnreadable marks a structurally broken document: a truncated PDF, a docx
// that is not a zip archive, an archive without word/document.xml. Like
// FormatError it means the input is rejected, not that the service failed.
var ErrUnreadable = errors.New("unreadable document")

// ExtractText extracts plain text from supported resume formats.
// Supports: .pdf, .docx and .doc
func ExtractText(filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return extractTextFromPDF(data)
	case ".docx", ".doc":
		return extractTextFromDocx(data)
	default:
		return "", &FormatError{Ext: ext}
	}
}

func extractTextFromPDF(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	r, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: read pdf: %v", ErrUnreadable, err)
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("%w: extract pdf text: %v", ErrUnreadable, err)
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, rs); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var reXMLTags = regexp.MustCompile(`<[^>]+>`)

func extractTextFromDocx(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: read docx container: %v", ErrUnreadable, err)
	}
	var docXML []byte
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return "", err
			}
			defer rc.Close()
			docXML, err = io.ReadAll(rc)
			if err != nil {
				return "", err
			}
			break
		}
	}
	if len(docXML) == 0 {
		return "", fmt.Errorf("%w: no document.xml found in docx", ErrUnreadable)
	}
	xml := string(docXML)
	// Paragraph boundaries become newlines (naive but effective).
	xml = strings.ReplaceAll(xml, "</w:p>", "\n")
	xml = strings.ReplaceAll(xml, "<w:tab/>", "\t")
	return reXMLTags.ReplaceAllString(xml, " "), nil
}
