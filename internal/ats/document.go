// Package ats validates parsed PDF resumes for applicant-tracking-system
// compatibility: tables, images, headers/footers, font choices, and
// multi-column layouts that ATS parsers commonly mangle.
package ats

// Metadata holds document-level PDF metadata.
type Metadata struct {
	Title    string `json:"title"`
	Author   string `json:"author"`
	Creator  string `json:"creator"`
	Producer string `json:"producer"`
}

// Word is one positioned text fragment on a page. Coordinates are in PDF
// points with the origin at the top-left of the page: Top is the distance
// from the page top to the top of the word, Bottom to its bottom edge.
type Word struct {
	Text   string  `json:"text"`
	X0     float64 `json:"x0"`
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
	Font   string  `json:"font"`
}

// Image is one embedded image on a page.
type Image struct {
	X0     float64 `json:"x0"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Table is one detected table region on a page.
type Table struct {
	Rows    int `json:"rows"`
	Columns int `json:"columns"`
}

// Page is one page of a parsed document.
type Page struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Words  []Word  `json:"words"`
	Images []Image `json:"images"`
	Tables []Table `json:"tables"`
}

// Document is a read-only structural view over a parsed PDF. Producers own
// the underlying file; the validator only reads the snapshot.
type Document struct {
	Metadata Metadata `json:"metadata"`
	Pages    []Page   `json:"pages"`
}

// Reader produces a structural Document from a PDF file.
type Reader interface {
	ReadStructure(path string) (*Document, error)
}
