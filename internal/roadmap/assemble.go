package roadmap

import (
	"fmt"
	"math"
	"strings"
)

const maxRecommendedSteps = 6

var baseWeeks = map[string]float64{
	DifficultyEasy:   4,
	DifficultyMedium: 8,
	DifficultyHard:   12,
}

var experienceMultiplier = map[string]float64{
	ExperienceEntry:  1.5,
	ExperienceMid:    1.0,
	ExperienceSenior: 0.8,
}

// Assemble builds the roadmap from the extracted skills and the company
// profile. role is only used to pick the preparation branch.
func Assemble(skills ExtractedSkills, company CompanyInsights, role string) *Roadmap {
	return &Roadmap{
		Company:             company.CompanyName,
		Role:                role,
		Difficulty:          company.DifficultyLevel,
		Rounds:              Rounds(company),
		RecommendedOrder:    PreparationOrder(company, role),
		PreparationTimeline: Timeline(company.DifficultyLevel, skills.ExperienceLevel),
		KeySkills:           KeySkills(skills, company),
		Resources:           Resources(),
	}
}

// Rounds returns one of two fixed templates depending on the company type.
// Skills and focus areas are not used here.
func Rounds(company CompanyInsights) []InterviewRound {
	if company.IsBigCompany() {
		return []InterviewRound{
			{Type: "Phone Screening", Topics: []string{"Resume", "Basic Technical"}, Duration: strPtr("30 min")},
			{Type: "Coding Round 1", Topics: []string{"Arrays", "Strings", "Hash Maps"}, Duration: strPtr("45 min")},
			{Type: "Coding Round 2", Topics: []string{"Dynamic Programming", "Graphs"}, Duration: strPtr("45 min")},
			{Type: "System Design", Topics: []string{"Scalability", "Database Design"}, Duration: strPtr("60 min")},
			{Type: "Behavioral", Topics: []string{"Leadership", "Teamwork"}, Duration: strPtr("30 min")},
		}
	}

	return []InterviewRound{
		{Type: "Initial Screening", Topics: []string{"Background", "Interest"}, Duration: strPtr("30 min")},
		{Type: "Technical Interview", Topics: []string{"Problem Solving", "Code Review"}, Duration: strPtr("60 min")},
		{Type: "Manager Round", Topics: []string{"Experience", "Culture Fit"}, Duration: strPtr("45 min")},
	}
}

// PreparationOrder lists study topics, capped at six entries. The cap may
// drop the trailing "Mock Interviews" step.
func PreparationOrder(company CompanyInsights, role string) []string {
	order := []string{"DSA Fundamentals"}

	lowerRole := strings.ToLower(role)
	switch {
	case strings.Contains(lowerRole, "data"):
		order = append(order, "Statistics", "SQL", "Machine Learning")
	case strings.Contains(lowerRole, "frontend"):
		order = append(order, "JavaScript", "React", "CSS")
	default:
		order = append(order, "System Design", "Backend Development")
	}

	if company.IsBigCompany() {
		order = append(order, "Advanced Algorithms", "System Design")
	}

	order = append(order, "Behavioral Preparation", "Mock Interviews")

	if len(order) > maxRecommendedSteps {
		order = order[:maxRecommendedSteps]
	}

	return order
}

// Timeline estimates the preparation time as "<n> weeks".
func Timeline(difficulty, experience string) string {
	base, ok := baseWeeks[difficulty]
	if !ok {
		base = baseWeeks[DifficultyMedium]
	}

	multiplier, ok := experienceMultiplier[experience]
	if !ok {
		multiplier = 1.0
	}

	weeks := int(math.Floor(base * multiplier))
	return fmt.Sprintf("%d weeks", weeks)
}

func Resources() map[string][]string {
	return map[string][]string{
		"DSA":           {"LeetCode", "Cracking the Coding Interview"},
		"System Design": {"System Design Interview by Alex Xu"},
		"Behavioral":    {"STAR method preparation", "Company research"},
	}
}

// KeySkills merges the first three technical skills with the first two focus
// areas, dropping duplicates.
func KeySkills(skills ExtractedSkills, company CompanyInsights) []string {
	candidates := make([]string, 0, 5)
	candidates = append(candidates, firstN(skills.TechnicalSkills, 3)...)
	candidates = append(candidates, firstN(company.InterviewFocus, 2)...)

	seen := make(map[string]struct{}, len(candidates))
	result := make([]string, 0, len(candidates))
	for _, skill := range candidates {
		if _, ok := seen[skill]; ok {
			continue
		}
		seen[skill] = struct{}{}
		result = append(result, skill)
	}

	return result
}

func firstN(items []string, n int) []string {
	if len(items) < n {
		return items
	}
	return items[:n]
}
