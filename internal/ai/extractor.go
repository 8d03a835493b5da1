package ai

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	"github.com/spigell/prep-roadmap/internal/logger"
	"github.com/spigell/prep-roadmap/internal/roadmap"
	"github.com/spigell/prep-roadmap/internal/utils"
)

// Generator is a text-generation provider.
type Generator interface {
	GenerateContent(ctx context.Context, system, prompt string) (string, error)
	Model() string
}

//go:embed prompt.md
var promptTemplate string

const (
	defaultMaxLogLength = 200
	systemInstruction   = "You are a precise skill extraction assistant. Extract only what the job description states."
)

// jsonObject is greedy on purpose: it spans from the first '{' to the last '}'.
var jsonObject = regexp.MustCompile(`(?s)\{.*\}`)

var errNoJSON = errors.New("no json object in response")

var errNullField = errors.New("null value in response")

// skillKeys are the fields every response must carry with non-null values.
var skillKeys = []string{"technical_skills", "soft_skills", "tools_technologies", "responsibilities", "experience_level"}

// Extractor asks a Generator to summarize a job description. Any failure is
// logged and replaced with roadmap.DefaultSkills.
type Extractor struct {
	generator Generator
	provider  string
	logger    *zap.Logger
	maxLogLen int
}

func NewExtractor(generator Generator, provider string, maxLogLength int, log *zap.Logger) *Extractor {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	model := ""
	if generator != nil {
		model = generator.Model()
	}

	return &Extractor{
		generator: generator,
		provider:  provider,
		logger:    logger.WithAgent(log, provider, model),
		maxLogLen: maxLogLength,
	}
}

func (e *Extractor) Extract(ctx context.Context, jobDescription, role string) roadmap.ExtractedSkills {
	skills, err := e.extract(ctx, jobDescription, role)
	if err != nil {
		e.logger.Warn("parsing job description failed, using default skills",
			zap.String("role", role),
			zap.Error(err),
		)
		return roadmap.DefaultSkills()
	}

	return skills
}

func (e *Extractor) extract(ctx context.Context, jobDescription, role string) (roadmap.ExtractedSkills, error) {
	if e.generator == nil {
		return roadmap.ExtractedSkills{}, errors.New("generator is not configured")
	}

	prompt := buildPrompt(jobDescription, role)

	e.logger.Debug("generate content request",
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, e.maxLogLen)),
	)

	raw, err := e.generator.GenerateContent(ctx, systemInstruction, prompt)
	if err != nil {
		return roadmap.ExtractedSkills{}, err
	}

	e.logger.Debug("generate content response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, e.maxLogLen)),
	)

	return parseResponse(raw)
}

func buildPrompt(jobDescription, role string) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Role: {{ROLE}}\n\nJob description:\n{{JOB_DESCRIPTION}}\n\nJSON Response:"
	}
	prompt := strings.ReplaceAll(template, "{{ROLE}}", role)
	return strings.ReplaceAll(prompt, "{{JOB_DESCRIPTION}}", jobDescription)
}

func parseResponse(raw string) (roadmap.ExtractedSkills, error) {
	var skills roadmap.ExtractedSkills

	match := jsonObject.FindString(raw)
	if match == "" {
		return skills, errNoJSON
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(match), &data); err != nil {
		return skills, fmt.Errorf("parse response json: %w", err)
	}

	// mapstructure treats a null value as set, so ErrorUnset misses it.
	if err := rejectNulls(data); err != nil {
		return roadmap.ExtractedSkills{}, err
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnset:       true,
		Result:           &skills,
	})
	if err != nil {
		return skills, err
	}

	if err := decoder.Decode(data); err != nil {
		return roadmap.ExtractedSkills{}, fmt.Errorf("decode extracted skills: %w", err)
	}

	return skills, nil
}

func rejectNulls(data map[string]any) error {
	for _, key := range skillKeys {
		value, ok := data[key]
		if !ok {
			continue
		}
		if value == nil {
			return fmt.Errorf("%w: %s", errNullField, key)
		}
		if items, ok := value.([]any); ok {
			for _, item := range items {
				if item == nil {
					return fmt.Errorf("%w: %s item", errNullField, key)
				}
			}
		}
	}
	return nil
}
