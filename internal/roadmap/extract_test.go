package roadmap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywordExtractorFallsBackWithoutKeywords(t *testing.T) {
	t.Parallel()

	descriptions := []string{
		"",
		"We need a great colleague who loves shipping products.",
		"Strong communication skills, 2 years of Go and Rust.",
	}

	extractor := NewKeywordExtractor()
	for _, desc := range descriptions {
		skills := extractor.Extract(context.Background(), desc, "Engineer")
		assert.Equal(t, []string{"Programming", "Problem Solving", "Software Development"}, skills.TechnicalSkills, desc)
		assert.Equal(t, skills.TechnicalSkills, skills.ToolsTechnologies)
	}
}

func TestKeywordExtractorMatchesVocabularyInOrder(t *testing.T) {
	t.Parallel()

	desc := "Knowledge of ALGORITHMS and data structures. Experience with Node.js, React and Python. Kubernetes is a plus."
	skills := NewKeywordExtractor().Extract(context.Background(), desc, "Backend Engineer")

	assert.Equal(t, []string{"Python", "React", "Node.Js", "Kubernetes", "Data Structures", "Algorithms"}, skills.TechnicalSkills)
	assert.Equal(t, []string{"Communication", "Teamwork", "Problem Solving", "Leadership"}, skills.SoftSkills)
	assert.Equal(t, []string{"Software Development", "Code Review", "System Design"}, skills.Responsibilities)
}

func TestKeywordExtractorJavascriptAlsoMatchesJava(t *testing.T) {
	t.Parallel()

	skills := NewKeywordExtractor().Extract(context.Background(), "Strong JavaScript skills", "Frontend Developer")
	assert.Equal(t, []string{"Java", "Javascript"}, skills.TechnicalSkills)
}

func TestKeywordExtractorToolsAreACopy(t *testing.T) {
	t.Parallel()

	skills := NewKeywordExtractor().Extract(context.Background(), "python", "")
	skills.ToolsTechnologies[0] = "changed"
	require.Equal(t, "Python", skills.TechnicalSkills[0])
}

func TestExperienceLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		desc   string
		role   string
		expect string
	}{
		{name: "senior role", desc: "1+ years", role: "Senior Software Engineer", expect: ExperienceSenior},
		{name: "lead role any case", desc: "", role: "TECH LEAD", expect: ExperienceSenior},
		{name: "lead substring", desc: "", role: "Team Leader", expect: ExperienceSenior},
		{name: "senior wins over years", desc: "5+ years", role: "senior dev", expect: ExperienceSenior},
		{name: "three years", desc: "3+ years of experience", role: "Engineer", expect: ExperienceMid},
		{name: "four years", desc: "4+ Years of Go", role: "Engineer", expect: ExperienceMid},
		{name: "five years", desc: "5+ years", role: "Data Scientist", expect: ExperienceMid},
		{name: "entry by default", desc: "1+ years of software development experience", role: "Software Engineer (SDE-1)", expect: ExperienceEntry},
		{name: "range is not a marker", desc: "2-4 years", role: "Full Stack Developer", expect: ExperienceEntry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			skills := NewKeywordExtractor().Extract(context.Background(), tt.desc, tt.role)
			assert.Equal(t, tt.expect, skills.ExperienceLevel)
		})
	}
}

func TestTitleCase(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"python":           "Python",
		"node.js":          "Node.Js",
		"machine learning": "Machine Learning",
		"aws":              "Aws",
		"sql":              "Sql",
		"":                 "",
	}

	for input, expect := range tests {
		assert.Equal(t, expect, titleCase(input), input)
	}
}

func TestDefaultSkills(t *testing.T) {
	t.Parallel()

	skills := DefaultSkills()
	assert.Equal(t, []string{"Programming", "Problem Solving"}, skills.TechnicalSkills)
	assert.Equal(t, []string{"Communication", "Teamwork"}, skills.SoftSkills)
	assert.Equal(t, []string{"Development Tools"}, skills.ToolsTechnologies)
	assert.Equal(t, []string{"Software Development"}, skills.Responsibilities)
	assert.Equal(t, ExperienceMid, skills.ExperienceLevel)
}
