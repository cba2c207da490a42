package pdfio

import (
	"fmt"
	"math"

	"github.com/ledongthuc/pdf"

	"github.com/jonathan/resume-analyzer/internal/ats"
)

// Default page geometry (US Letter, points) used when a page carries no
// MediaBox of its own.
const (
	defaultPageWidth  = 612.0
	defaultPageHeight = 792.0
)

// wordGapFactor scales the font size into the maximum horizontal gap
// between fragments still considered part of one word.
const wordGapFactor = 0.3

// StructuralReader builds an ats.Document from a PDF file. The underlying
// library exposes positioned text with font names and page geometry but has
// no image or table detection, so those slices stay empty from this
// producer; validators relying on them need a richer backend.
type StructuralReader struct{}

var _ ats.Reader = StructuralReader{}

// ReadStructure parses the PDF at path into a structural document snapshot.
func (StructuralReader) ReadStructure(path string) (doc *ats.Document, err error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, &ExtractError{Path: path, Message: "failed to open PDF", Cause: err}
	}
	defer f.Close()

	// The library panics on malformed structures instead of returning
	// errors. Anything the per-page guard misses becomes a read error
	// rather than escaping to the caller.
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = &ExtractError{Path: path, Message: "failed to read PDF structure", Cause: fmt.Errorf("%v", r)}
		}
	}()

	doc = &ats.Document{
		Metadata: readMetadata(reader),
	}

	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		width, height := pageGeometry(page)
		structPage := ats.Page{Width: width, Height: height}
		structPage.Words = groupWords(pageFragments(page), height)

		doc.Pages = append(doc.Pages, structPage)
	}

	return doc, nil
}

// pageFragments reads a page's positioned text fragments, tolerating
// pages the library cannot decode. A page without a content stream makes
// it panic; such a page simply has no words.
func pageFragments(page pdf.Page) (fragments []pdf.Text) {
	defer func() { _ = recover() }()
	return page.Content().Text
}

// readMetadata pulls the document information dictionary, tolerating
// missing or malformed entries.
func readMetadata(reader *pdf.Reader) ats.Metadata {
	defer func() { _ = recover() }() // the pdf library panics on some malformed values

	info := reader.Trailer().Key("Info")
	if info.IsNull() {
		return ats.Metadata{}
	}
	return ats.Metadata{
		Title:    info.Key("Title").Text(),
		Author:   info.Key("Author").Text(),
		Creator:  info.Key("Creator").Text(),
		Producer: info.Key("Producer").Text(),
	}
}

// pageGeometry reads the page MediaBox, falling back to US Letter.
func pageGeometry(page pdf.Page) (width, height float64) {
	width, height = defaultPageWidth, defaultPageHeight

	box := page.V.Key("MediaBox")
	if box.IsNull() || box.Len() != 4 {
		return width, height
	}

	x0 := box.Index(0).Float64()
	y0 := box.Index(1).Float64()
	x1 := box.Index(2).Float64()
	y1 := box.Index(3).Float64()
	if w := math.Abs(x1 - x0); w > 0 {
		width = w
	}
	if h := math.Abs(y1 - y0); h > 0 {
		height = h
	}
	return width, height
}

// groupWords merges adjacent text fragments into words. Fragments belong to
// the same word while they share a baseline and font and sit within a small
// horizontal gap of each other. PDF text coordinates are bottom-origin;
// output words are converted to the top-origin convention of ats.Word.
func groupWords(fragments []pdf.Text, pageHeight float64) []ats.Word {
	var words []ats.Word
	var current *pdf.Text
	var currentText string

	flush := func() {
		if current == nil || currentText == "" {
			return
		}
		words = append(words, ats.Word{
			Text:   currentText,
			X0:     current.X,
			Top:    pageHeight - current.Y - current.FontSize,
			Bottom: pageHeight - current.Y,
			Font:   current.Font,
		})
		current = nil
		currentText = ""
	}

	var lastEnd float64
	for i := range fragments {
		frag := fragments[i]
		if frag.S == " " || frag.S == "" {
			flush()
			continue
		}

		maxGap := frag.FontSize * wordGapFactor
		sameWord := current != nil &&
			current.Font == frag.Font &&
			math.Abs(current.Y-frag.Y) < 0.5 &&
			frag.X-lastEnd <= maxGap

		if !sameWord {
			flush()
			start := frag
			current = &start
		}
		currentText += frag.S
		lastEnd = frag.X + frag.W
	}
	flush()

	return words
}
