package pipeline

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/spigell/prep-roadmap/internal/roadmap"
)

const (
	StepExtractSkills   = "extract_skills"
	StepResearchCompany = "research_company"
	StepAssembleRoadmap = "assemble_roadmap"
)

// toggle carries the enabled flag shared by every step.
type toggle struct {
	disabled bool
	reason   string
}

func (t *toggle) Disable(reason string) {
	t.disabled = true
	t.reason = reason
}

func (t *toggle) IsEnabled() bool { return !t.disabled }

func (t *toggle) DisabledReason() string { return t.reason }

type extractSkillsStep struct{ toggle }

// NewExtractSkills creates the step that summarizes the job description.
// Without a configured extractor the keyword extractor is used.
func NewExtractSkills() Step {
	return &extractSkillsStep{}
}

func (s *extractSkillsStep) Name() string { return StepExtractSkills }

func (s *extractSkillsStep) Apply(ctx context.Context, deps Deps, state *State) error {
	extractor := deps.Extractor
	if extractor == nil {
		extractor = roadmap.NewKeywordExtractor()
	}

	skills := extractor.Extract(ctx, state.Input.JobDescription, state.Input.Role)
	state.Skills = &skills

	deps.Logger.Info("extracted technical skills",
		zap.Int("count", len(skills.TechnicalSkills)),
		zap.String("experience_level", skills.ExperienceLevel),
	)

	return nil
}

// Skip stores the default skills so assembly can still run.
func (s *extractSkillsStep) Skip(state *State) {
	skills := roadmap.DefaultSkills()
	state.Skills = &skills
}

type researchCompanyStep struct{ toggle }

// NewResearchCompany creates the step that looks up the company profile.
func NewResearchCompany() Step {
	return &researchCompanyStep{}
}

func (s *researchCompanyStep) Name() string { return StepResearchCompany }

func (s *researchCompanyStep) Apply(_ context.Context, deps Deps, state *State) error {
	insights := roadmap.Profile(state.Input.CompanyName)
	state.Company = &insights

	deps.Logger.Info("identified company",
		zap.String("company_type", insights.CompanyType),
		zap.String("difficulty", insights.DifficultyLevel),
	)

	return nil
}

type assembleRoadmapStep struct{ toggle }

// NewAssembleRoadmap creates the step that builds the final roadmap.
func NewAssembleRoadmap() Step {
	return &assembleRoadmapStep{}
}

func (s *assembleRoadmapStep) Name() string { return StepAssembleRoadmap }

func (s *assembleRoadmapStep) Apply(_ context.Context, deps Deps, state *State) error {
	if state.Skills == nil {
		return errors.New("extracted skills are required")
	}
	if state.Company == nil {
		return errors.New("company insights are required")
	}

	state.Roadmap = roadmap.Assemble(*state.Skills, *state.Company, state.Input.Role)

	deps.Logger.Info("roadmap assembled",
		zap.Int("rounds", len(state.Roadmap.Rounds)),
		zap.String("timeline", state.Roadmap.PreparationTimeline),
	)

	return nil
}
