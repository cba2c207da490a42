// Package patterns holds the lexical data tables used by the analyzers:
// verb sets, stop words, section synonyms, and the compiled regular
// expressions for contacts, dates, metrics, and bullets. Everything here is
// declarative data so the analyzers stay free of inline pattern literals and
// the tables can be unit-tested (or localized) on their own.
package patterns

import "regexp"

// StrongVerbs lists action verbs that signal ownership and impact.
// Order is significant: analyzers report verbs in this order, so keep the
// slice stable when editing.
var StrongVerbs = []string{
	"achieved", "improved", "developed", "led", "managed", "created",
	"designed", "implemented", "increased", "reduced", "optimized",
	"streamlined", "launched", "spearheaded", "orchestrated", "pioneered",
	"transformed", "delivered", "executed", "built", "established",
	"generated", "accelerated", "enhanced", "drove", "initiated",
	"innovated", "architected", "engineered", "automated", "coordinated",
	"directed", "exceeded", "maximized", "modernized", "produced",
	"revamped", "scaled", "secured",
}

// WeakVerbs lists passive or vague verbs that weaken bullet points.
// Same ordering rule as StrongVerbs.
var WeakVerbs = []string{
	"responsible", "worked", "helped", "assisted", "did", "made", "got",
	"was", "were", "had", "involved", "participated", "contributed",
	"handled",
}

// StopWords is the shared stop-word set used for keyword extraction and
// word-cloud filtering.
var StopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true,
	"but": true, "in": true, "on": true, "at": true, "to": true,
	"for": true, "of": true, "with": true, "by": true, "from": true,
	"as": true, "is": true, "was": true, "are": true, "were": true,
	"been": true, "be": true, "have": true, "has": true, "had": true,
	"do": true, "does": true, "did": true, "will": true, "would": true,
	"should": true, "could": true, "may": true, "might": true,
	"must": true, "can": true, "this": true, "that": true,
	"these": true, "those": true,
}

// SectionCategory names one resume section and whether it is required.
type SectionCategory struct {
	Name     string
	Required bool
	// Patterns are tried in order; the first match marks the section found.
	Patterns []*regexp.Regexp
}

// SectionCategories defines the six recognized resume sections.
// experience, education and skills are required; the rest are optional.
var SectionCategories = []SectionCategory{
	{
		Name:     "experience",
		Required: true,
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(work\s+experience|professional\s+experience|employment|experience)\b`),
			regexp.MustCompile(`\b(work\s+history|career\s+history)\b`),
		},
	},
	{
		Name:     "education",
		Required: true,
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(education|academic\s+background|qualifications)\b`),
		},
	},
	{
		Name:     "skills",
		Required: true,
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(skills|technical\s+skills|core\s+competencies|expertise)\b`),
		},
	},
	{
		Name: "summary",
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(summary|profile|objective|about\s+me)\b`),
		},
	},
	{
		Name: "projects",
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(projects|portfolio|work\s+samples)\b`),
		},
	},
	{
		Name: "certifications",
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(certifications|certificates|licenses)\b`),
		},
	},
}

// DateFormat pairs a display name with its matching pattern.
type DateFormat struct {
	Name    string
	Pattern *regexp.Regexp
}

// DateFormats lists the recognized date families. "Jan 2023" matches only
// "Month YYYY"; the comma variant is a separate family.
var DateFormats = []DateFormat{
	{Name: "MM/YYYY", Pattern: regexp.MustCompile(`\b\d{2}/\d{4}\b`)},
	{Name: "Month YYYY", Pattern: regexp.MustCompile(`(?i)\b(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]* \d{4}\b`)},
	{Name: "YYYY-MM", Pattern: regexp.MustCompile(`\b\d{4}-\d{2}\b`)},
	{Name: "Month, YYYY", Pattern: regexp.MustCompile(`(?i)\b(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*, \d{4}\b`)},
}

// MetricPatterns match quantified achievements: percentages, money, counted
// nouns, durations, and impact verbs followed by a number.
var MetricPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+%`),
	regexp.MustCompile(`\$\d+[\d,]*[KMB]?`),
	regexp.MustCompile(`(?i)\d+[\d,]*\+?\s*(?:users|customers|clients|projects|people|team|members)`),
	regexp.MustCompile(`(?i)\d+[\d,]*\s*(?:hours|days|weeks|months|years)`),
	regexp.MustCompile(`(?i)(?:increased|decreased|improved|reduced|grew|saved)\s+(?:by\s+)?\d+`),
}

// BulletLinePatterns match a bullet marker anchored at the start of a line,
// after optional leading whitespace.
var BulletLinePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\s*[•●○■□▪▫–-]\s+`),
	regexp.MustCompile(`^\s*\*\s+`),
	regexp.MustCompile(`^\s*>\s+`),
}

// BulletGlyphPattern matches a bullet glyph anywhere in text. Used as the
// denominator when estimating how many bullets carry metrics.
var BulletGlyphPattern = regexp.MustCompile(`[•●○■□▪▫–-]\s+`)

// Contact information patterns.
var (
	EmailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	PhonePattern = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)

	// LinkedInPatterns are tried in priority order: profile URL, label,
	// bare mention.
	LinkedInPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)linkedin\.com/in/[\w-]+`),
		regexp.MustCompile(`(?i)LinkedIn:?\s*[\w-]+`),
		regexp.MustCompile(`(?i)linkedin`),
	}

	// GitHubPatterns are tried in priority order: profile URL, label.
	GitHubPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)github\.com/[\w-]+`),
		regexp.MustCompile(`(?i)GitHub:?\s*[\w-]+`),
	}
)

// StandardFonts are ATS-safe font families. A document font is considered
// standard if its name contains any of these, case-insensitively.
var StandardFonts = []string{
	"arial", "calibri", "times", "helvetica", "georgia", "verdana",
}
