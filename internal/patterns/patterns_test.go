package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerbSets_SizesAndDisjoint(t *testing.T) {
	assert.Len(t, StrongVerbs, 39)
	assert.Len(t, WeakVerbs, 14)

	strong := make(map[string]bool, len(StrongVerbs))
	for _, v := range StrongVerbs {
		strong[v] = true
	}
	for _, v := range WeakVerbs {
		assert.False(t, strong[v], "verb %q appears in both sets", v)
	}
}

func TestSectionCategories_RequiredSet(t *testing.T) {
	var required []string
	for _, cat := range SectionCategories {
		if cat.Required {
			required = append(required, cat.Name)
		}
	}
	assert.Equal(t, []string{"experience", "education", "skills"}, required)
}

func TestSectionCategories_ExperienceMatchesSynonyms(t *testing.T) {
	var experience *SectionCategory
	for i := range SectionCategories {
		if SectionCategories[i].Name == "experience" {
			experience = &SectionCategories[i]
		}
	}
	require.NotNil(t, experience)

	for _, heading := range []string{
		"work experience", "professional experience", "employment",
		"experience", "work history", "career history",
	} {
		matched := false
		for _, p := range experience.Patterns {
			if p.MatchString(heading) {
				matched = true
				break
			}
		}
		assert.True(t, matched, "heading %q should match", heading)
	}
}

func TestDateFormats_CommaDisambiguation(t *testing.T) {
	byName := make(map[string]DateFormat)
	for _, df := range DateFormats {
		byName[df.Name] = df
	}

	assert.True(t, byName["Month YYYY"].Pattern.MatchString("Jan 2023"))
	assert.False(t, byName["Month, YYYY"].Pattern.MatchString("Jan 2023"))
	assert.True(t, byName["Month, YYYY"].Pattern.MatchString("January, 2023"))
	assert.True(t, byName["MM/YYYY"].Pattern.MatchString("03/2021"))
	assert.True(t, byName["YYYY-MM"].Pattern.MatchString("2021-03"))
}

func TestEmailPattern(t *testing.T) {
	assert.Equal(t, "jane.doe@example.com", EmailPattern.FindString("Contact: jane.doe@example.com"))
	assert.Equal(t, "", EmailPattern.FindString("not-an-email@nowhere"))
}

func TestPhonePattern_Formats(t *testing.T) {
	for _, s := range []string{
		"555-123-4567",
		"(555) 123-4567",
		"+1 555.123.4567",
		"5551234567",
	} {
		assert.True(t, PhonePattern.MatchString(s), "phone %q should match", s)
	}
}

func TestLinkedInPatterns_PriorityOrder(t *testing.T) {
	require.Len(t, LinkedInPatterns, 3)
	assert.True(t, LinkedInPatterns[0].MatchString("linkedin.com/in/jane-doe"))
	assert.False(t, LinkedInPatterns[0].MatchString("LinkedIn: janedoe"))
	assert.True(t, LinkedInPatterns[1].MatchString("LinkedIn: janedoe"))
	assert.True(t, LinkedInPatterns[2].MatchString("find me on linkedin"))
}

func TestMetricPatterns_Families(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"grew revenue 50%", true},
		{"$2M budget", true},
		{"supported 300 users", true},
		{"over 6 months", true},
		{"increased by 40", true},
		{"no numbers here", false},
	}
	for _, tc := range cases {
		matched := false
		for _, p := range MetricPatterns {
			if p.MatchString(tc.text) {
				matched = true
				break
			}
		}
		assert.Equal(t, tc.want, matched, "text %q", tc.text)
	}
}

func TestBulletLinePatterns(t *testing.T) {
	for _, line := range []string{"• Did a thing", "  * Did a thing", "> Did a thing", "- Did a thing"} {
		matched := false
		for _, p := range BulletLinePatterns {
			if p.MatchString(line) {
				matched = true
				break
			}
		}
		assert.True(t, matched, "line %q should count as a bullet", line)
	}

	// A dash mid-line is not a bullet marker.
	assert.False(t, BulletLinePatterns[0].MatchString("built x - then y"))
}
