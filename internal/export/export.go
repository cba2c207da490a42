// Package export flattens an analysis run into a single tabular record
// for CSV tracking over time. Only a whitelisted set of scalar fields is
// exported; sample lists and free-form findings stay out of the table.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/report"
)

// timestampLayout matches the export date format used in saved runs.
const timestampLayout = "2006-01-02 15:04:05"

// Record is one flat analysis row. All values are scalars.
type Record struct {
	RunID        string `json:"run_id"`
	AnalysisDate string `json:"analysis_date"`

	MatchScore     float64 `json:"match_score"`
	MatchReasoning string  `json:"match_reasoning"`

	WordCount      int     `json:"word_count"`
	EstimatedPages float64 `json:"estimated_pages"`

	HasEmail     bool `json:"has_email"`
	HasPhone     bool `json:"has_phone"`
	HasLinkedIn  bool `json:"has_linkedin"`
	ContactScore int  `json:"contact_score"`

	BulletCount int `json:"bullet_count"`

	StrongVerbs int     `json:"strong_verbs"`
	WeakVerbs   int     `json:"weak_verbs"`
	VerbScore   float64 `json:"verb_score"`

	MetricsCount         int     `json:"metrics_count"`
	QuantifiedPercentage float64 `json:"quantified_percentage"`

	TechnicalSkillsFound  int `json:"technical_skills_found"`
	SoftSkillsFound       int `json:"soft_skills_found"`
	CriticalSkillsMissing int `json:"critical_skills_missing"`
	SoftSkillsMissing     int `json:"soft_skills_missing"`
}

// Flatten assembles a record from one analysis report and an optional AI
// match result. The record is timestamped at aggregation time and tagged
// with a fresh run ID. A nil match leaves the match fields zeroed.
func Flatten(r *report.Report, match *llm.MatchResult) Record {
	rec := Record{
		RunID:        uuid.NewString(),
		AnalysisDate: time.Now().Format(timestampLayout),

		WordCount:      r.Length.WordCount,
		EstimatedPages: r.Length.EstimatedPages,

		HasEmail:     r.Contact.Email.Present,
		HasPhone:     r.Contact.Phone.Present,
		HasLinkedIn:  r.Contact.LinkedIn.Present,
		ContactScore: r.Contact.Score,

		BulletCount: r.Bullets.TotalCount,

		StrongVerbs: r.Verbs.StrongVerbsCount,
		WeakVerbs:   r.Verbs.WeakVerbsCount,
		VerbScore:   r.Verbs.Score,

		MetricsCount:         r.Quantification.MetricsCount,
		QuantifiedPercentage: r.Quantification.QuantifiedPercentage,
	}

	if match != nil {
		rec.MatchScore = match.MatchScore
		rec.MatchReasoning = match.MatchReasoning
		rec.TechnicalSkillsFound = len(match.FoundKeywords.TechnicalSkills)
		rec.SoftSkillsFound = len(match.FoundKeywords.SoftSkills)
		rec.CriticalSkillsMissing = len(match.MissingKeywords.CriticalTechnicalSkills)
		rec.SoftSkillsMissing = len(match.MissingKeywords.ImportantSoftSkills)
	}

	return rec
}

// csvHeader is the column order for CSV output.
var csvHeader = []string{
	"run_id",
	"analysis_date",
	"match_score",
	"match_reasoning",
	"word_count",
	"estimated_pages",
	"has_email",
	"has_phone",
	"has_linkedin",
	"contact_score",
	"bullet_count",
	"strong_verbs",
	"weak_verbs",
	"verb_score",
	"metrics_count",
	"quantified_percentage",
	"technical_skills_found",
	"soft_skills_found",
	"critical_skills_missing",
	"soft_skills_missing",
}

func (r Record) row() []string {
	return []string{
		r.RunID,
		r.AnalysisDate,
		formatFloat(r.MatchScore),
		r.MatchReasoning,
		fmt.Sprintf("%d", r.WordCount),
		formatFloat(r.EstimatedPages),
		fmt.Sprintf("%t", r.HasEmail),
		fmt.Sprintf("%t", r.HasPhone),
		fmt.Sprintf("%t", r.HasLinkedIn),
		fmt.Sprintf("%d", r.ContactScore),
		fmt.Sprintf("%d", r.BulletCount),
		fmt.Sprintf("%d", r.StrongVerbs),
		fmt.Sprintf("%d", r.WeakVerbs),
		formatFloat(r.VerbScore),
		fmt.Sprintf("%d", r.MetricsCount),
		formatFloat(r.QuantifiedPercentage),
		fmt.Sprintf("%d", r.TechnicalSkillsFound),
		fmt.Sprintf("%d", r.SoftSkillsFound),
		fmt.Sprintf("%d", r.CriticalSkillsMissing),
		fmt.Sprintf("%d", r.SoftSkillsMissing),
	}
}

func formatFloat(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// WriteCSV writes a header row followed by one row per record.
func WriteCSV(w io.Writer, records ...Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, rec := range records {
		if err := cw.Write(rec.row()); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
