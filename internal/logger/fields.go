package logger

import (
	"strings"

	"go.uber.org/zap"
)

// Field keys shared by all log entries.
const (
	FieldProvider = "ai_provider"
	FieldModel    = "ai_model"
	FieldRunID    = "run_id"
	FieldCompany  = "company"
	FieldRole     = "role"
	FieldStep     = "pipeline_step"
)

// compact turns alternating keys and values into string fields. Pairs with a
// blank value are dropped so entries stay short when data is missing.
func compact(kv ...string) []zap.Field {
	fields := make([]zap.Field, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		if value := strings.TrimSpace(kv[i+1]); value != "" {
			fields = append(fields, zap.String(kv[i], value))
		}
	}
	return fields
}

// WithFields attaches fields to logger. A nil logger is replaced with a no-op
// one.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// WithAgent tags logger with the AI provider and model.
func WithAgent(logger *zap.Logger, provider, model string) *zap.Logger {
	return WithFields(logger, compact(FieldProvider, provider, FieldModel, model)...)
}

// WithRun tags logger with the identity of one roadmap request.
func WithRun(logger *zap.Logger, runID, company, role string) *zap.Logger {
	return WithFields(logger, compact(FieldRunID, runID, FieldCompany, company, FieldRole, role)...)
}

// Step names the pipeline step an entry belongs to.
func Step(name string) zap.Field {
	return zap.String(FieldStep, name)
}
