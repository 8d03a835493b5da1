package roadmap

import (
	"context"
	"strings"
	"unicode"
)

// skillKeywords is scanned in order; matches keep this order.
var skillKeywords = []string{
	"python",
	"java",
	"javascript",
	"react",
	"node.js",
	"sql",
	"aws",
	"docker",
	"kubernetes",
	"machine learning",
	"data structures",
	"algorithms",
}

var midLevelMarkers = []string{"3+ years", "4+ years", "5+ years"}

// KeywordExtractor works without any network collaborator: it looks up a
// fixed vocabulary in the description.
type KeywordExtractor struct{}

func NewKeywordExtractor() *KeywordExtractor {
	return &KeywordExtractor{}
}

func (KeywordExtractor) Extract(_ context.Context, jobDescription, role string) ExtractedSkills {
	desc := strings.ToLower(jobDescription)

	var technical []string
	for _, keyword := range skillKeywords {
		if strings.Contains(desc, keyword) {
			technical = append(technical, titleCase(keyword))
		}
	}

	if len(technical) == 0 {
		technical = []string{"Programming", "Problem Solving", "Software Development"}
	}

	return ExtractedSkills{
		TechnicalSkills:   technical,
		SoftSkills:        []string{"Communication", "Teamwork", "Problem Solving", "Leadership"},
		ToolsTechnologies: append([]string(nil), technical...),
		Responsibilities:  []string{"Software Development", "Code Review", "System Design"},
		ExperienceLevel:   experienceLevel(desc, role),
	}
}

// DefaultSkills is used when a collaborator response cannot be used.
func DefaultSkills() ExtractedSkills {
	return ExtractedSkills{
		TechnicalSkills:   []string{"Programming", "Problem Solving"},
		SoftSkills:        []string{"Communication", "Teamwork"},
		ToolsTechnologies: []string{"Development Tools"},
		Responsibilities:  []string{"Software Development"},
		ExperienceLevel:   ExperienceMid,
	}
}

func experienceLevel(desc, role string) string {
	role = strings.ToLower(role)
	if strings.Contains(role, "senior") || strings.Contains(role, "lead") {
		return ExperienceSenior
	}

	for _, marker := range midLevelMarkers {
		if strings.Contains(desc, marker) {
			return ExperienceMid
		}
	}

	return ExperienceEntry
}

// titleCase upper-cases every letter that follows a non-letter, so
// "node.js" becomes "Node.Js".
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
			continue
		}
		b.WriteRune(r)
		prevLetter = false
	}

	return b.String()
}
