package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/prep-roadmap/internal/console"
	"github.com/spigell/prep-roadmap/internal/logger"
	"github.com/spigell/prep-roadmap/internal/pipeline"
	"github.com/spigell/prep-roadmap/internal/roadmap"
)

// application holds everything a command needs to produce roadmaps.
type application struct {
	ctx       context.Context
	config    *Config
	logger    *zap.Logger
	store     *roadmap.Store
	presenter *console.Presenter

	extractor   roadmap.Extractor
	mode        string
	skipExtract bool
}

// newApplication builds the logger and config. The extractor is created only
// when withAgent is set.
func newApplication(ctx context.Context, withAgent bool) *application {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	if config == nil {
		config = &Config{}
	}

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(redacted(config), "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	a := &application{
		ctx:       ctx,
		config:    config,
		logger:    logger,
		store:     roadmap.NewStore(config.OutputDir),
		presenter: console.NewPresenter(os.Stdout),
	}

	if withAgent {
		a.extractor, a.mode = newExtractor(ctx, config.AI, logger)
		logger.Info("starting the prep-roadmap", zap.String("version", version), zap.String("mode", a.mode))
	}

	return a
}

// generate runs the pipeline, prints the summary and saves the roadmap.
func (a *application) generate(input roadmap.JobInput, filename string) (string, error) {
	steps := pipeline.DefaultSteps()
	if a.skipExtract {
		pipeline.DisableByName(steps, pipeline.StepExtractSkills, "--skip-extract is set")
	}
	a.logger.Debug("pipeline steps", zap.Any("steps", pipeline.Describe(steps)))

	deps := pipeline.Deps{
		Extractor: a.extractor,
		Logger:    a.logger,
	}

	r, err := pipeline.Run(a.ctx, deps, steps, input)
	if err != nil {
		return "", err
	}

	a.presenter.Summary(r)

	path, err := a.store.Save(r, filename)
	if err != nil {
		return "", fmt.Errorf("saving roadmap: %w", err)
	}

	a.logger.Info("roadmap saved", zap.String("filename", path))

	return path, nil
}

// show prints the roadmap stored at path, or the newest one when path is empty.
func (a *application) show(path string) error {
	if path == "" {
		latest, err := a.store.Latest()
		if err != nil {
			return err
		}
		path = latest
	}

	r, err := a.store.Load(path)
	if err != nil {
		return err
	}

	return a.presenter.JSON(path, r)
}

// redacted returns a copy of the config that is safe to log.
func redacted(config *Config) *Config {
	c := *config
	if config.AI == nil {
		return &c
	}

	aiConfig := *config.AI
	if aiConfig.Gemini != nil {
		gemini := *aiConfig.Gemini
		gemini.APIKey = mask(gemini.APIKey)
		aiConfig.Gemini = &gemini
	}
	if aiConfig.OpenAI != nil {
		openAI := *aiConfig.OpenAI
		openAI.APIKey = mask(openAI.APIKey)
		aiConfig.OpenAI = &openAI
	}
	c.AI = &aiConfig

	return &c
}

func mask(secret string) string {
	if secret == "" || secret == placeholderAPIKey {
		return secret
	}
	return "***"
}
