// Package pdfio provides the PDF collaborators for the analysis engine:
// plain-text extraction and a best-effort structural reader. Extraction is
// built on github.com/ledongthuc/pdf, a pure Go implementation with no CGO
// dependency.
package pdfio

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrNoText signals a PDF with no extractable text, typically a scanned
// image. Callers must treat this as a distinct input-unusable condition,
// not as garbage text.
var ErrNoText = errors.New("no extractable text in PDF")

// DefaultMaxFileSize is the default upload size cap in bytes (5 MB).
const DefaultMaxFileSize = 5 * 1024 * 1024

// ExtractError wraps a failure while opening or reading a PDF.
type ExtractError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ExtractError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("pdf extract error for %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("pdf extract error for %s: %s", e.Path, e.Message)
}

func (e *ExtractError) Unwrap() error {
	return e.Cause
}

// ExtractText reads a PDF file and returns its plain text content.
// Returns ErrNoText when the document parses but yields no text.
func ExtractText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ExtractError{Path: path, Message: "failed to read file", Cause: err}
	}
	text, err := ExtractTextFromBytes(data)
	if err != nil {
		var extractErr *ExtractError
		if errors.As(err, &extractErr) {
			extractErr.Path = path
		}
		return "", err
	}
	return text, nil
}

// ExtractTextFromBytes extracts plain text from in-memory PDF data.
func ExtractTextFromBytes(data []byte) (string, error) {
	if err := ValidateBytes(data, DefaultMaxFileSize); err != nil {
		return "", err
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractError{Message: "failed to open PDF", Cause: err}
	}

	text, err := collectText(reader)
	if err != nil {
		return "", &ExtractError{Message: "failed to extract text", Cause: err}
	}

	if text == "" {
		return "", ErrNoText
	}
	return text, nil
}

// collectText walks the document pages and concatenates their text.
// Pages without a decodable content stream contribute nothing; a scanned
// or otherwise textless document therefore comes back empty rather than
// as an error. The recover converts the library's panics on malformed
// structures into an error.
func collectText(reader *pdf.Reader) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%v", r)
		}
	}()

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, pageErr := pageTextContent(page)
		if pageErr != nil {
			continue
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}
	return strings.TrimSpace(sb.String()), nil
}

// pageTextContent extracts one page's plain text, converting the
// library's panic on an absent content stream into an error.
func pageTextContent(page pdf.Page) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return page.GetPlainText(nil)
}

// ValidateBytes checks the PDF magic bytes and enforces a size cap.
func ValidateBytes(data []byte, maxSize int64) error {
	if len(data) < 5 || string(data[:5]) != "%PDF-" {
		return &ExtractError{Message: "not a PDF file (missing %PDF- header)"}
	}
	if maxSize > 0 && int64(len(data)) > maxSize {
		return &ExtractError{Message: fmt.Sprintf("file size %d exceeds %d byte limit", len(data), maxSize)}
	}
	return nil
}
