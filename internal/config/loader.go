package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/lingodrill/internal/llm"
)

// Load builds the configuration: defaults, then the YAML file at path (if
// path is non-empty), then environment overrides. A .env file in the
// working directory is loaded first when present. The result is validated.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("config: open %q: %w", path, err)
		}
		defer f.Close()
		if err := decode(f, &cfg); err != nil {
			return nil, fmt.Errorf("config: parse %q: %w", path, err)
		}
	}
	ApplyEnv(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromReader decodes YAML from r over the defaults and validates the
// result. The environment is not consulted.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := Default()
	if err := decode(r, &cfg); err != nil {
		return nil, err
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: decode yaml: %w", err)
	}
	return nil
}

// ApplyEnv overrides cfg with LINGODRILL_* variables. LLM settings use the
// llm package's variables; setting LINGODRILL_LLM_PROVIDER also enables AI.
// Unparseable numeric values are ignored.
func ApplyEnv(cfg *Config) {
	if v := os.Getenv("LINGODRILL_LOG_LEVEL"); v != "" {
		cfg.LogLevel = LogLevel(v)
	}
	if v := os.Getenv("LINGODRILL_LOG_FORMAT"); v != "" {
		cfg.LogFormat = LogFormat(v)
	}
	if v := os.Getenv("LINGODRILL_DB"); v != "" {
		cfg.Database = v
	}
	if v := os.Getenv("LINGODRILL_LANGUAGE"); v != "" {
		cfg.Pipeline.Language = v
	}
	if v := os.Getenv("LINGODRILL_SEED"); v != "" {
		if seed, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Pipeline.Seed = seed
		}
	}
	if v := os.Getenv("LINGODRILL_AI"); v != "" {
		if on, err := strconv.ParseBool(v); err == nil {
			cfg.AI.Enabled = on
		}
	}
	llm.ApplyEnv(&cfg.LLM)
	if llm.HasEnvProvider() {
		cfg.AI.Enabled = true
	}
}

// Validate checks that cfg is coherent. It returns a joined error listing
// every failure.
func Validate(cfg *Config) error {
	var errs []error

	if cfg.LogLevel != "" && !cfg.LogLevel.IsValid() {
		errs = append(errs, fmt.Errorf("log_level %q is invalid; valid values: debug, info, warn, error", cfg.LogLevel))
	}
	switch cfg.LogFormat {
	case "", FormatText, FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("log_format %q is invalid; valid values: text, json", cfg.LogFormat))
	}
	if cfg.Pipeline.Language == "" {
		errs = append(errs, errors.New("pipeline.language must not be empty"))
	}

	limits := []struct {
		name string
		n    int
	}{
		{"pipeline.extract.vocabulary", cfg.Pipeline.Extract.Vocabulary},
		{"pipeline.extract.mistakes", cfg.Pipeline.Extract.Mistakes},
		{"pipeline.extract.sentences", cfg.Pipeline.Extract.Sentences},
		{"pipeline.exercises.flashcards", cfg.Pipeline.Exercises.Flashcards},
		{"pipeline.exercises.spelling", cfg.Pipeline.Exercises.Spelling},
		{"pipeline.exercises.fill_blank", cfg.Pipeline.Exercises.FillBlank},
		{"pipeline.exercises.grammar_challenge", cfg.Pipeline.Exercises.GrammarChallenge},
		{"pipeline.exercises.sentence_builder", cfg.Pipeline.Exercises.SentenceBuilder},
		{"pipeline.exercises.advanced_cloze", cfg.Pipeline.Exercises.AdvancedCloze},
	}
	for _, l := range limits {
		if l.n < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %d", l.name, l.n))
		}
	}

	if cfg.AI.Enabled {
		if err := cfg.LLM.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("llm: %w", err))
		}
	}
	if cfg.LLM.Timeout < 0 {
		errs = append(errs, fmt.Errorf("llm.timeout must not be negative, got %s", cfg.LLM.Timeout))
	}

	return errors.Join(errs...)
}
