package roadmap

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	ExperienceEntry  = "Entry"
	ExperienceMid    = "Mid"
	ExperienceSenior = "Senior"

	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"

	CompanyTypeFAANG   = "FAANG"
	CompanyTypeBigTech = "Big Tech"
	CompanyTypeStartup = "Startup"
	CompanyTypeUnknown = "Unknown"
)

var validate = validator.New()

// JobInput is a single roadmap request.
type JobInput struct {
	CompanyName    string `json:"company_name"`
	Role           string `json:"role"`
	JobDescription string `json:"job_description" validate:"required,notblank"`
}

// ExtractedSkills summarizes what a job description asks for.
type ExtractedSkills struct {
	TechnicalSkills   []string `json:"technical_skills" mapstructure:"technical_skills"`
	SoftSkills        []string `json:"soft_skills" mapstructure:"soft_skills"`
	ToolsTechnologies []string `json:"tools_technologies" mapstructure:"tools_technologies"`
	Responsibilities  []string `json:"responsibilities" mapstructure:"responsibilities"`
	ExperienceLevel   string   `json:"experience_level" mapstructure:"experience_level"`
}

// CompanyInsights is the static profile known about a company.
type CompanyInsights struct {
	CompanyName     string   `json:"company_name"`
	CompanyType     string   `json:"company_type"`
	TypicalRounds   []string `json:"typical_rounds"`
	DifficultyLevel string   `json:"difficulty_level"`
	InterviewFocus  []string `json:"interview_focus"`
}

// IsBigCompany reports whether the company gets the long interview loop.
func (c CompanyInsights) IsBigCompany() bool {
	return c.CompanyType == CompanyTypeFAANG || c.CompanyType == CompanyTypeBigTech
}

type InterviewRound struct {
	Type     string   `json:"type" validate:"required"`
	Topics   []string `json:"topics"`
	Duration *string  `json:"duration"`
	Weight   *string  `json:"weight"`
}

// Roadmap is the generated preparation plan. It is a plain value and is
// persisted as is.
type Roadmap struct {
	Company             string              `json:"company"`
	Role                string              `json:"role"`
	Difficulty          string              `json:"difficulty" validate:"required"`
	Rounds              []InterviewRound    `json:"rounds" validate:"required,min=1,dive"`
	RecommendedOrder    []string            `json:"recommended_order" validate:"max=6"`
	PreparationTimeline string              `json:"preparation_timeline"`
	KeySkills           []string            `json:"key_skills" validate:"max=5"`
	Resources           map[string][]string `json:"resources"`
}

// Extractor turns a job description into ExtractedSkills. Implementations
// never fail: they fall back to a default record instead.
type Extractor interface {
	Extract(ctx context.Context, jobDescription, role string) ExtractedSkills
}

// Validate checks the input before a roadmap is generated.
func (in *JobInput) Validate() error {
	return validate.Struct(in)
}

// Validate checks the structural invariants of the roadmap.
func (r *Roadmap) Validate() error {
	return validate.Struct(r)
}

func init() {
	// notblank is not part of the baked-in validator tags.
	_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
}

func strPtr(s string) *string {
	return &s
}
