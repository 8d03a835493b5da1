package roadmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfileNormalizesName(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"Google Inc", "google", "GOOGLE", "Go ogle"} {
		insights := Profile(name)
		assert.Equal(t, CompanyTypeFAANG, insights.CompanyType, name)
		assert.Equal(t, DifficultyHard, insights.DifficultyLevel, name)
		assert.Equal(t, name, insights.CompanyName)
	}
}

func TestProfileKnownCompanies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		kind       string
		difficulty string
		focus      []string
	}{
		{name: "Amazon Web Services", kind: CompanyTypeFAANG, difficulty: DifficultyHard, focus: []string{"Algorithms", "Leadership"}},
		{name: "Netflix", kind: CompanyTypeFAANG, difficulty: DifficultyHard, focus: []string{"Algorithms", "Culture"}},
		{name: "Microsoft", kind: CompanyTypeBigTech, difficulty: DifficultyHard, focus: []string{"Algorithms", "System Design"}},
		{name: "Uber Technologies", kind: CompanyTypeBigTech, difficulty: DifficultyHard, focus: []string{"Algorithms", "Problem Solving"}},
		{name: "TechFlow (Startup)", kind: CompanyTypeStartup, difficulty: DifficultyMedium, focus: []string{"Full Stack", "Adaptability"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			insights := Profile(tt.name)
			assert.Equal(t, tt.kind, insights.CompanyType)
			assert.Equal(t, tt.difficulty, insights.DifficultyLevel)
			assert.Equal(t, tt.focus, insights.InterviewFocus)
		})
	}
}

func TestProfileUnknownCompany(t *testing.T) {
	t.Parallel()

	insights := Profile("Unknown Co")
	assert.Equal(t, CompanyTypeUnknown, insights.CompanyType)
	assert.Equal(t, DifficultyMedium, insights.DifficultyLevel)
	assert.Equal(t, []string{"Technical Skills"}, insights.InterviewFocus)
}

func TestProfileFirstMatchWins(t *testing.T) {
	t.Parallel()

	// "uber" comes after "google" in the table.
	insights := Profile("Uber Google Partnership")
	assert.Equal(t, []string{"Algorithms", "System Design"}, insights.InterviewFocus)
	assert.Equal(t, CompanyTypeFAANG, insights.CompanyType)

	// "startup" is matched only once the space is removed.
	assert.Equal(t, CompanyTypeStartup, Profile("Start Up Labs").CompanyType)
}

func TestProfileTypicalRoundsAreConstant(t *testing.T) {
	t.Parallel()

	expected := []string{"Screening", "Technical", "System Design", "Behavioral", "Manager"}
	for _, name := range []string{"Google", "Unknown Co", "startup", ""} {
		assert.Equal(t, expected, Profile(name).TypicalRounds, name)
	}
}
