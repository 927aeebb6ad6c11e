package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/lingodrill/internal/assist"
	"github.com/abhisek/lingodrill/internal/config"
	"github.com/abhisek/lingodrill/internal/llm"
	"github.com/abhisek/lingodrill/internal/observe"
	"github.com/abhisek/lingodrill/internal/pipeline"
	"github.com/abhisek/lingodrill/internal/store"
)

// loadConfig reads the config file named by --config and applies the global
// flag overrides. The returned logger writes to the command's stderr.
func loadConfig(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}

	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		if !config.LogLevel(lvl).IsValid() {
			return nil, nil, fmt.Errorf("invalid --log-level %q", lvl)
		}
		cfg.LogLevel = config.LogLevel(lvl)
	}
	if db, _ := cmd.Flags().GetString("db"); db != "" {
		cfg.Database = db
	}
	if noAI, _ := cmd.Flags().GetBool("no-ai"); noAI {
		cfg.AI.Enabled = false
	}

	logger := cfg.NewLogger(cmd.ErrOrStderr())
	slog.SetDefault(logger)
	return cfg, logger, nil
}

// resolveDBPath returns the database path from --db or the config file,
// falling back to LINGODRILL_DB and then the default XDG path.
func resolveDBPath(cfg *config.Config) (string, error) {
	if cfg.Database != "" {
		return cfg.Database, store.EnsureDir(cfg.Database)
	}
	return store.DefaultDBPath()
}

func openStore(cfg *config.Config) (*store.Store, error) {
	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// newPipeline builds a pipeline from cfg. When AI is enabled the configured
// collaborators share one provider whose requests are logged to events. A
// provider that cannot be created is reported and the run stays rule-based.
func newPipeline(ctx context.Context, cfg *config.Config, events store.EventRepo, logger *slog.Logger, metrics *observe.Metrics) *pipeline.Pipeline {
	opts := cfg.PipelineOptions(logger)
	opts.Metrics = metrics
	if !cfg.AI.Enabled {
		return pipeline.New(opts)
	}

	provider, err := llm.NewProvider(ctx, cfg.LLM, events, logger)
	if err != nil {
		logger.Warn("LLM provider not configured, using rule-based extraction only", "error", err)
		return pipeline.New(opts)
	}

	aopts := assist.DefaultOptions()
	aopts.Language = cfg.Pipeline.Language
	if cfg.AI.Vocabulary {
		opts.Vocabulary = assist.NewVocabulary(provider, aopts)
	}
	if cfg.AI.Sentences {
		opts.Sentences = assist.NewSentences(provider, aopts)
	}
	if cfg.AI.Translate {
		opts.Translator = assist.NewTranslator(provider, aopts)
	}
	if cfg.AI.Enhance {
		opts.Enhancer = assist.NewEnhancer(provider, aopts)
	}
	logger.Debug("LLM collaborators enabled", "provider", cfg.LLM.Provider,
		"vocabulary", cfg.AI.Vocabulary, "sentences", cfg.AI.Sentences,
		"translate", cfg.AI.Translate, "enhance", cfg.AI.Enhance)
	return pipeline.New(opts)
}

// readTranscript reads the file at path, or stdin when path is "-".
func readTranscript(cmd *cobra.Command, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read transcript: %w", err)
	}
	return string(data), nil
}
