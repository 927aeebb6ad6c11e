// Package config loads lingodrill's YAML configuration, layering .env and
// LINGODRILL_* environment overrides on top.
package config

import (
	"io"
	"log/slog"
	"strings"

	"github.com/abhisek/lingodrill/internal/exercise"
	"github.com/abhisek/lingodrill/internal/extract"
	"github.com/abhisek/lingodrill/internal/llm"
	"github.com/abhisek/lingodrill/internal/pipeline"
)

// LogLevel controls log verbosity.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// IsValid reports whether l is a recognised log level.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return true
	}
	return false
}

// Level maps l onto a slog level. Unknown values mean info.
func (l LogLevel) Level() slog.Level {
	switch l {
	case LogDebug:
		return slog.LevelDebug
	case LogWarn:
		return slog.LevelWarn
	case LogError:
		return slog.LevelError
	}
	return slog.LevelInfo
}

// LogFormat selects the slog handler.
type LogFormat string

const (
	FormatText LogFormat = "text"
	FormatJSON LogFormat = "json"
)

// Config is the root configuration.
type Config struct {
	LogLevel  LogLevel  `yaml:"log_level"`
	LogFormat LogFormat `yaml:"log_format"`

	// Database is the sqlite file for LLM events and the run log. Empty
	// means the platform default.
	Database string `yaml:"database"`

	Pipeline PipelineConfig `yaml:"pipeline"`
	AI       AIConfig       `yaml:"ai"`
	LLM      llm.Config     `yaml:"llm"`
}

// PipelineConfig tunes exercise generation.
type PipelineConfig struct {
	// Seed makes runs reproducible. Zero means the pipeline default.
	Seed uint64 `yaml:"seed"`

	// Language is the learner's language for translations.
	Language string `yaml:"language"`

	Extract   extract.Limits  `yaml:"extract"`
	Exercises exercise.Limits `yaml:"exercises"`
}

// AIConfig switches the LLM-backed collaborators. Nothing is sent to a
// provider unless Enabled is set.
type AIConfig struct {
	Enabled    bool `yaml:"enabled"`
	Vocabulary bool `yaml:"vocabulary"`
	Sentences  bool `yaml:"sentences"`
	Translate  bool `yaml:"translate"`
	Enhance    bool `yaml:"enhance"`
}

// Default returns the built-in configuration: rule-based only, Spanish
// translations, default limits.
func Default() Config {
	return Config{
		LogLevel:  LogWarn,
		LogFormat: FormatText,
		Pipeline: PipelineConfig{
			Seed:      pipeline.DefaultSeed,
			Language:  "Spanish",
			Extract:   extract.DefaultLimits(),
			Exercises: exercise.DefaultLimits(),
		},
		AI: AIConfig{
			Vocabulary: true,
			Sentences:  true,
			Translate:  true,
		},
		LLM: llm.DefaultConfig(),
	}
}

// NewLogger returns a logger writing to w in the configured format and
// level.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel.Level()}
	if strings.EqualFold(string(c.LogFormat), string(FormatJSON)) {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// PipelineOptions returns pipeline options for c without collaborators.
func (c *Config) PipelineOptions(logger *slog.Logger) pipeline.Options {
	return pipeline.Options{
		Seed:          c.Pipeline.Seed,
		ExtractLimits: c.Pipeline.Extract,
		Limits:        c.Pipeline.Exercises,
		Language:      c.Pipeline.Language,
		Logger:        logger,
	}
}
