// Package report orchestrates the individual analyzers into a single
// per-resume analysis, and runs analyses across resumes concurrently.
package report

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-analyzer/internal/analyzers"
)

// Report bundles every analyzer's findings for one resume.
type Report struct {
	Length         analyzers.LengthResult         `json:"length"`
	Contact        analyzers.ContactResult        `json:"contact"`
	Bullets        analyzers.BulletResult         `json:"bullets"`
	Verbs          analyzers.VerbResult           `json:"verbs"`
	Quantification analyzers.QuantificationResult `json:"quantification"`
	Readability    analyzers.ReadabilityResult    `json:"readability"`
	Keywords       analyzers.KeywordResult        `json:"keywords"`
	Sections       analyzers.SectionResult        `json:"sections"`
	Dates          analyzers.DateFormatResult     `json:"dates"`
	Duplicates     analyzers.DuplicateResult      `json:"duplicates"`
}

// Run executes every text analyzer over one resume. The job description
// may be empty; it only affects keyword matching.
func Run(text, jobDescription string) *Report {
	return &Report{
		Length:         analyzers.AnalyzeLength(text),
		Contact:        analyzers.AnalyzeContact(text),
		Bullets:        analyzers.AnalyzeBullets(text),
		Verbs:          analyzers.AnalyzeVerbs(text),
		Quantification: analyzers.AnalyzeQuantification(text),
		Readability:    analyzers.AnalyzeReadability(text),
		Keywords:       analyzers.AnalyzeKeywords(text, jobDescription),
		Sections:       analyzers.AnalyzeSections(text),
		Dates:          analyzers.AnalyzeDateFormats(text),
		Duplicates:     analyzers.AnalyzeDuplicates(text),
	}
}

// Warnings counts findings whose status is not success. Contact and
// keyword findings carry scores rather than statuses and are excluded.
func (r *Report) Warnings() int {
	statuses := []analyzers.Status{
		r.Length.Status,
		r.Bullets.Status,
		r.Verbs.Status,
		r.Quantification.Status,
		r.Readability.Status,
		r.Sections.Status,
		r.Dates.Status,
		r.Duplicates.Status,
	}
	count := 0
	for _, s := range statuses {
		if s != analyzers.StatusSuccess {
			count++
		}
	}
	return count
}

// Batch runs analyses for several resumes concurrently. Results are
// positionally aligned with the input texts. The analyzers share no
// state, so each resume runs on its own goroutine.
func Batch(ctx context.Context, texts []string, jobDescription string) ([]*Report, error) {
	reports := make([]*Report, len(texts))

	g, ctx := errgroup.WithContext(ctx)
	for i, text := range texts {
		i, text := i, text
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			reports[i] = Run(text, jobDescription)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
