// Package pipeline runs a roadmap request through its named steps.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spigell/prep-roadmap/internal/logger"
	"github.com/spigell/prep-roadmap/internal/roadmap"
)

// Step is a single stage of roadmap generation.
type Step interface {
	Name() string
	Disable(reason string)
	IsEnabled() bool

	Apply(ctx context.Context, deps Deps, state *State) error
}

// Deps aggregates dependencies shared across all steps.
type Deps struct {
	Extractor roadmap.Extractor
	Logger    *zap.Logger
}

// State is filled in by the steps as they run.
type State struct {
	RunID   string
	Input   roadmap.JobInput
	Skills  *roadmap.ExtractedSkills
	Company *roadmap.CompanyInsights
	Roadmap *roadmap.Roadmap
}

// Status represents runtime information about a step.
type Status struct {
	Name    string
	Enabled bool
	Reason  string
}

var ErrNoRoadmap = errors.New("pipeline finished without a roadmap")

// DefaultSteps returns extraction, company research and assembly in order.
func DefaultSteps() []Step {
	return []Step{
		NewExtractSkills(),
		NewResearchCompany(),
		NewAssembleRoadmap(),
	}
}

// DisableByName marks a step with the provided name as disabled while keeping
// it in the list. A disabled step that has a Skip method still fills in its
// part of the state.
func DisableByName(steps []Step, name, reason string) {
	for _, step := range steps {
		if step.Name() == name {
			step.Disable(reason)
		}
	}
}

// Run validates the input and executes the steps sequentially.
func Run(ctx context.Context, deps Deps, steps []Step, input roadmap.JobInput) (*roadmap.Roadmap, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("invalid job input: %w", err)
	}

	state := &State{
		RunID: uuid.NewString(),
		Input: input,
	}

	deps.Logger = logger.WithRun(deps.Logger, state.RunID, input.CompanyName, input.Role)
	deps.Logger.Info("analyzing job")

	for _, step := range steps {
		if !step.IsEnabled() {
			deps.Logger.Info("step disabled", logger.Step(step.Name()), zap.String("reason", disabledReason(step)))
			if skipper, ok := step.(interface{ Skip(*State) }); ok {
				skipper.Skip(state)
			}
			continue
		}

		stepDeps := deps
		stepDeps.Logger = deps.Logger.With(logger.Step(step.Name()))

		if err := step.Apply(ctx, stepDeps, state); err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}

		deps.Logger.Debug("step finished", logger.Step(step.Name()))
	}

	if state.Roadmap == nil {
		return nil, ErrNoRoadmap
	}

	return state.Roadmap, nil
}

// Describe returns status entries for the provided steps.
func Describe(steps []Step) []Status {
	statuses := make([]Status, 0, len(steps))
	for _, step := range steps {
		status := Status{Name: step.Name(), Enabled: step.IsEnabled()}
		status.Reason = disabledReason(step)
		statuses = append(statuses, status)
	}
	return statuses
}

func disabledReason(step Step) string {
	if reporter, ok := step.(interface{ DisabledReason() string }); ok {
		return reporter.DisabledReason()
	}
	return ""
}
