package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/prep-roadmap/internal/ai"
	"github.com/spigell/prep-roadmap/internal/ai/gemini"
	"github.com/spigell/prep-roadmap/internal/ai/openai"
	"github.com/spigell/prep-roadmap/internal/logger"
	"github.com/spigell/prep-roadmap/internal/roadmap"
	"github.com/spigell/prep-roadmap/internal/secrets"
)

const (
	providerGemini = "gemini"
	providerOpenAI = "openai"

	// placeholderAPIKey is the value shipped in the sample .env file.
	placeholderAPIKey = "YOUR_GEMINI_API_KEY_HERE"

	modeAgent         = "AI agent"
	modeSelfContained = "self-contained"
)

// newExtractor returns the AI backed extractor when it can be initialized
// and the keyword extractor otherwise.
func newExtractor(ctx context.Context, cfg *AIConfig, log *zap.Logger) (roadmap.Extractor, string) {
	fallback := roadmap.NewKeywordExtractor()

	if cfg == nil || !cfg.Enabled {
		log.Info("running in self-contained mode", zap.String("reason", "ai is disabled"))
		return fallback, modeSelfContained
	}

	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider == "" {
		provider = providerGemini
	}

	generator, maxLogLength, err := newGenerator(ctx, provider, cfg, log)
	if err != nil {
		if errors.Is(err, secrets.ErrNotConfigured) {
			log.Info("running in self-contained mode",
				zap.String("reason", err.Error()),
				zap.String("hint", "set GEMINI_API_KEY (or OPENAI_API_KEY with ai.provider=openai) to enable the AI agent"),
			)
			return fallback, modeSelfContained
		}

		log.Warn("initializing AI agent, falling back to self-contained mode",
			zap.Error(err),
			zap.String("hint", "check the API key and internet connection"),
		)
		return fallback, modeSelfContained
	}

	return ai.NewExtractor(generator, provider, maxLogLength, log), modeAgent
}

func newGenerator(ctx context.Context, provider string, cfg *AIConfig, log *zap.Logger) (ai.Generator, int, error) {
	switch provider {
	case providerGemini:
		if cfg.Gemini == nil {
			return nil, 0, fmt.Errorf("gemini: %w", secrets.ErrNotConfigured)
		}

		apiKey, err := secrets.Load(secrets.Source{
			Name:        "gemini api key",
			Value:       cfg.Gemini.APIKey,
			File:        cfg.Gemini.APIKeyFile,
			Placeholder: placeholderAPIKey,
		})
		if err != nil {
			return nil, 0, err
		}

		genLogger := generatorLogger(log, providerGemini, cfg.Gemini.Model,
			zap.Int("ai_retry_attempts", cfg.Gemini.MaxRetries),
		)

		generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model, cfg.Gemini.MaxRetries, genLogger)
		if err != nil {
			return nil, 0, err
		}

		return generator, cfg.Gemini.MaxLogLength, nil
	case providerOpenAI:
		if cfg.OpenAI == nil {
			return nil, 0, fmt.Errorf("openai: %w", secrets.ErrNotConfigured)
		}

		apiKey, err := secrets.Load(secrets.Source{
			Name:  "openai api key",
			Value: cfg.OpenAI.APIKey,
			File:  cfg.OpenAI.APIKeyFile,
			Env:   "OPENAI_API_KEY",
		})
		if err != nil {
			return nil, 0, err
		}

		genLogger := generatorLogger(log, providerOpenAI, cfg.OpenAI.Model)

		generator, err := openai.NewGenerator(apiKey, cfg.OpenAI.Model, cfg.OpenAI.BaseURL, genLogger)
		if err != nil {
			return nil, 0, err
		}

		return generator, 0, nil
	default:
		return nil, 0, fmt.Errorf("unsupported ai provider: %s", provider)
	}
}

// generatorLogger tags provider clients with the same ai_provider and ai_model
// fields the extractor uses.
func generatorLogger(log *zap.Logger, provider, model string, fields ...zap.Field) *zap.Logger {
	return logger.WithFields(logger.WithAgent(log, provider, model), fields...)
}
