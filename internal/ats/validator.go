package ats

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/patterns"
)

const (
	// headerFooterMargin is the band at the top and bottom of each page,
	// in points (72pt = 1in), where text counts as header/footer content.
	headerFooterMargin = 72.0

	issuePenalty   = 15
	warningPenalty = 5

	maxUnusualFontsNamed = 3
	maxRecommendedFonts  = 3
)

// Config carries the tuning constants of the multi-column heuristic. The
// defaults are inherited thresholds with no principled derivation; callers
// may override them.
type Config struct {
	// MinDistinctXPositions is the number of distinct word x-start values
	// on the first page above which a column check is attempted.
	MinDistinctXPositions int
	// MinWordsPerHalf is the word count both page halves must exceed for
	// the layout to be flagged as multi-column.
	MinWordsPerHalf int
}

// DefaultConfig returns the standard heuristic thresholds.
func DefaultConfig() Config {
	return Config{
		MinDistinctXPositions: 50,
		MinWordsPerHalf:       10,
	}
}

// Result is the outcome of an ATS format validation.
type Result struct {
	AtsScore          int      `json:"ats_score"`
	Status            string   `json:"status"`
	Overall           string   `json:"overall"`
	Issues            []string `json:"issues"`
	Warnings          []string `json:"warnings"`
	Metadata          Metadata `json:"metadata"`
	HasTables         bool     `json:"has_tables"`
	HasImages         bool     `json:"has_images"`
	HasHeadersFooters bool     `json:"has_headers_footers"`
	FontCount         int      `json:"font_count"`
	UnusualFonts      []string `json:"unusual_fonts"`
}

// ValidateFile reads the document structure with the given reader and
// validates it. Open or parse failures never propagate: they become a
// zero-score error result with a single describing issue.
func ValidateFile(path string, reader Reader, cfg Config) Result {
	doc, err := reader.ReadStructure(path)
	if err != nil {
		return failureResult(err)
	}
	return Validate(doc, cfg)
}

// Validate walks every page of the document, accumulating issues (tables,
// headers/footers, multi-column layout) and warnings (images, font
// choices), then scores the document: 100 minus 15 per issue and 5 per
// warning, clamped to [0, 100].
func Validate(doc *Document, cfg Config) Result {
	result := Result{
		Metadata:     doc.Metadata,
		Issues:       []string{},
		Warnings:     []string{},
		UnusualFonts: []string{},
	}

	seenFonts := make(map[string]bool)
	var fontOrder []string

	for i, page := range doc.Pages {
		pageNum := i + 1

		if len(page.Tables) > 0 {
			result.HasTables = true
			result.Issues = append(result.Issues,
				fmt.Sprintf("Page %d: Contains tables (ATS may not parse correctly)", pageNum))
		}

		if len(page.Images) > 0 {
			result.HasImages = true
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Page %d: Contains %d image(s)", pageNum, len(page.Images)))
		}

		for _, word := range page.Words {
			if word.Top < headerFooterMargin || word.Bottom > page.Height-headerFooterMargin {
				result.HasHeadersFooters = true
			}
			if word.Font != "" && !seenFonts[word.Font] {
				seenFonts[word.Font] = true
				fontOrder = append(fontOrder, word.Font)
			}
		}
	}

	result.FontCount = len(fontOrder)
	for _, font := range fontOrder {
		if !isStandardFont(font) {
			result.UnusualFonts = append(result.UnusualFonts, font)
		}
	}

	if len(result.UnusualFonts) > 0 {
		named := result.UnusualFonts
		if len(named) > maxUnusualFontsNamed {
			named = named[:maxUnusualFontsNamed]
		}
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Unusual fonts detected: %s", strings.Join(named, ", ")))
	}

	if result.FontCount > maxRecommendedFonts {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Multiple fonts used (%d). Recommend 1-2 fonts max", result.FontCount))
	}

	if result.HasHeadersFooters {
		result.Issues = append(result.Issues,
			"Headers/footers detected - ATS may ignore this content")
	}

	if hasMultiColumnLayout(doc, cfg) {
		result.Issues = append(result.Issues,
			"Multi-column layout detected - ATS may read out of order")
	}

	score := 100 - issuePenalty*len(result.Issues) - warningPenalty*len(result.Warnings)
	result.AtsScore = clamp(score, 0, 100)

	switch {
	case result.AtsScore >= 80:
		result.Status = "success"
		result.Overall = "Excellent ATS compatibility"
	case result.AtsScore >= 60:
		result.Status = "warning"
		result.Overall = "Good ATS compatibility with minor issues"
	default:
		result.Status = "error"
		result.Overall = "Poor ATS compatibility - significant issues found"
	}

	return result
}

// hasMultiColumnLayout applies the first-page column heuristic: many
// distinct x-start positions and a substantial word population on both
// sides of the page midpoint.
func hasMultiColumnLayout(doc *Document, cfg Config) bool {
	if len(doc.Pages) == 0 {
		return false
	}
	first := doc.Pages[0]
	if len(first.Words) == 0 {
		return false
	}

	xPositions := make(map[float64]bool, len(first.Words))
	for _, w := range first.Words {
		xPositions[w.X0] = true
	}
	if len(xPositions) <= cfg.MinDistinctXPositions {
		return false
	}

	midpoint := first.Width / 2
	var left, right int
	for _, w := range first.Words {
		if w.X0 < midpoint {
			left++
		} else {
			right++
		}
	}
	return left > cfg.MinWordsPerHalf && right > cfg.MinWordsPerHalf
}

func isStandardFont(font string) bool {
	lower := strings.ToLower(font)
	for _, standard := range patterns.StandardFonts {
		if strings.Contains(lower, standard) {
			return true
		}
	}
	return false
}

// failureResult is the error-taxonomy boundary: parse failures surface as a
// result object, never as an error return.
func failureResult(err error) Result {
	return Result{
		AtsScore:     0,
		Status:       "error",
		Overall:      fmt.Sprintf("Error analyzing PDF: %v", err),
		Issues:       []string{fmt.Sprintf("Could not analyze PDF: %v", err)},
		Warnings:     []string{},
		UnusualFonts: []string{},
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
