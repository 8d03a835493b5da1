package roadmap

import "strings"

type companyProfile struct {
	key        string
	kind       string
	difficulty string
	focus      []string
}

// knownCompanies is ordered: the first key found in the normalized name wins.
var knownCompanies = []companyProfile{
	{key: "google", kind: CompanyTypeFAANG, difficulty: DifficultyHard, focus: []string{"Algorithms", "System Design"}},
	{key: "meta", kind: CompanyTypeFAANG, difficulty: DifficultyHard, focus: []string{"Algorithms", "System Design"}},
	{key: "facebook", kind: CompanyTypeFAANG, difficulty: DifficultyHard, focus: []string{"Algorithms", "System Design"}},
	{key: "amazon", kind: CompanyTypeFAANG, difficulty: DifficultyHard, focus: []string{"Algorithms", "Leadership"}},
	{key: "apple", kind: CompanyTypeFAANG, difficulty: DifficultyHard, focus: []string{"Algorithms", "Product"}},
	{key: "netflix", kind: CompanyTypeFAANG, difficulty: DifficultyHard, focus: []string{"Algorithms", "Culture"}},
	{key: "microsoft", kind: CompanyTypeBigTech, difficulty: DifficultyHard, focus: []string{"Algorithms", "System Design"}},
	{key: "uber", kind: CompanyTypeBigTech, difficulty: DifficultyHard, focus: []string{"Algorithms", "Problem Solving"}},
	{key: "startup", kind: CompanyTypeStartup, difficulty: DifficultyMedium, focus: []string{"Full Stack", "Adaptability"}},
}

var unknownCompany = companyProfile{
	kind:       CompanyTypeUnknown,
	difficulty: DifficultyMedium,
	focus:      []string{"Technical Skills"},
}

// Profile looks the company up in the static table. Unknown companies get a
// generic medium profile.
func Profile(companyName string) CompanyInsights {
	profile := lookupCompany(companyName)

	return CompanyInsights{
		CompanyName:     companyName,
		CompanyType:     profile.kind,
		TypicalRounds:   []string{"Screening", "Technical", "System Design", "Behavioral", "Manager"},
		DifficultyLevel: profile.difficulty,
		InterviewFocus:  append([]string(nil), profile.focus...),
	}
}

func lookupCompany(companyName string) companyProfile {
	normalized := strings.ReplaceAll(strings.ToLower(companyName), " ", "")

	for _, profile := range knownCompanies {
		if strings.Contains(normalized, profile.key) {
			return profile
		}
	}

	return unknownCompany
}
