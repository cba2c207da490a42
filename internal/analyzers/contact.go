package analyzers

import "github.com/jonathan/resume-analyzer/internal/patterns"

// pointsPerContactField is the score contribution of each detected contact
// signal (four signals, max 100).
const pointsPerContactField = 25

// ContactField reports one contact signal.
type ContactField struct {
	Present bool   `json:"present"`
	Valid   bool   `json:"valid"`
	Value   string `json:"value,omitempty"`
}

// ContactResult reports detected contact information and an aggregate score.
type ContactResult struct {
	Email    ContactField `json:"email"`
	Phone    ContactField `json:"phone"`
	LinkedIn ContactField `json:"linkedin"`
	GitHub   ContactField `json:"github"`
	Score    int          `json:"score"`
	Missing  []string     `json:"missing"`
}

// AnalyzeContact scans for email, phone, LinkedIn and GitHub. Each signal is
// worth 25 points. Email, phone and LinkedIn are required and land in
// Missing when absent; GitHub is a bonus. The first match is recorded for
// email, phone and GitHub.
func AnalyzeContact(text string) ContactResult {
	result := ContactResult{Missing: []string{}}

	if email := patterns.EmailPattern.FindString(text); email != "" {
		result.Email = ContactField{Present: true, Valid: true, Value: email}
		result.Score += pointsPerContactField
	} else {
		result.Missing = append(result.Missing, "Email")
	}

	if phone := patterns.PhonePattern.FindString(text); phone != "" {
		result.Phone = ContactField{Present: true, Valid: true, Value: phone}
		result.Score += pointsPerContactField
	} else {
		result.Missing = append(result.Missing, "Phone")
	}

	// Priority order: profile URL, label, bare mention. First hit wins.
	for _, p := range patterns.LinkedInPatterns {
		if p.MatchString(text) {
			result.LinkedIn.Present = true
			result.Score += pointsPerContactField
			break
		}
	}
	if !result.LinkedIn.Present {
		result.Missing = append(result.Missing, "LinkedIn")
	}

	for _, p := range patterns.GitHubPatterns {
		if match := p.FindString(text); match != "" {
			result.GitHub = ContactField{Present: true, Value: match}
			result.Score += pointsPerContactField
			break
		}
	}

	return result
}
