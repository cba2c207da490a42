package pdfio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/ats"
)

// minimalPDF builds a syntactically valid single-page PDF with no content
// stream, computing the cross-reference offsets as it goes.
func minimalPDF() []byte {
	header := "%PDF-1.4\n"
	objects := []string{
		"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n",
		"2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n",
		"3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] >>\nendobj\n",
	}

	var sb strings.Builder
	sb.WriteString(header)
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = sb.Len()
		sb.WriteString(obj)
	}

	xrefStart := sb.Len()
	sb.WriteString(fmt.Sprintf("xref\n0 %d\n", len(objects)+1))
	sb.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		sb.WriteString(fmt.Sprintf("%010d 00000 n \n", off))
	}
	sb.WriteString(fmt.Sprintf("trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xrefStart))

	return []byte(sb.String())
}

func TestValidateBytes_RejectsNonPDF(t *testing.T) {
	err := ValidateBytes([]byte("plain text file"), DefaultMaxFileSize)
	require.Error(t, err)

	var extractErr *ExtractError
	require.ErrorAs(t, err, &extractErr)
	assert.Contains(t, extractErr.Message, "not a PDF")
}

func TestValidateBytes_RejectsTooShortData(t *testing.T) {
	assert.Error(t, ValidateBytes([]byte("%PD"), DefaultMaxFileSize))
	assert.Error(t, ValidateBytes(nil, DefaultMaxFileSize))
}

func TestValidateBytes_EnforcesSizeCap(t *testing.T) {
	data := append([]byte("%PDF-1.4\n"), make([]byte, 100)...)
	err := ValidateBytes(data, 50)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds")

	assert.NoError(t, ValidateBytes(data, 0)) // zero disables the cap
	assert.NoError(t, ValidateBytes(data, DefaultMaxFileSize))
}

func TestExtractTextFromBytes_GarbageAfterHeaderFails(t *testing.T) {
	_, err := ExtractTextFromBytes([]byte("%PDF-1.4\nthis is not a real pdf body"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoText)
}

func TestExtractTextFromBytes_TextlessDocumentSignalsNoText(t *testing.T) {
	_, err := ExtractTextFromBytes(minimalPDF())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoText)
}

func TestExtractText_MissingFile(t *testing.T) {
	_, err := ExtractText(filepath.Join(t.TempDir(), "missing.pdf"))
	require.Error(t, err)

	var extractErr *ExtractError
	require.ErrorAs(t, err, &extractErr)
	assert.Contains(t, extractErr.Path, "missing.pdf")
}

func TestExtractError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &ExtractError{Path: "x.pdf", Message: "failed", Cause: cause}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "x.pdf")
}

func TestStructuralReader_MissingFile(t *testing.T) {
	_, err := StructuralReader{}.ReadStructure(filepath.Join(t.TempDir(), "nope.pdf"))
	assert.Error(t, err)
}

func TestExtractText_TextlessFileSignalsNoText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "textless.pdf")
	require.NoError(t, os.WriteFile(path, minimalPDF(), 0o644))

	_, err := ExtractText(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoText)
}

func TestValidateFile_PageWithoutContentStream(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contentless.pdf")
	require.NoError(t, os.WriteFile(path, minimalPDF(), 0o644))

	// A page the library cannot read text from must still produce a
	// scored result, never a panic past the validator boundary.
	result := ats.ValidateFile(path, StructuralReader{}, ats.DefaultConfig())
	assert.Equal(t, 100, result.AtsScore)
	assert.Equal(t, "success", result.Status)
	assert.Empty(t, result.Issues)
}

func TestStructuralReader_MinimalDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minimal.pdf")
	require.NoError(t, os.WriteFile(path, minimalPDF(), 0o644))

	doc, err := StructuralReader{}.ReadStructure(path)
	require.NoError(t, err)
	require.Len(t, doc.Pages, 1)
	assert.Equal(t, 612.0, doc.Pages[0].Width)
	assert.Equal(t, 792.0, doc.Pages[0].Height)
	assert.Empty(t, doc.Pages[0].Words)
}
