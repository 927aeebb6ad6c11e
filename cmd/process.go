package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/lingodrill/internal/observe"
	"github.com/abhisek/lingodrill/internal/pipeline"
	"github.com/abhisek/lingodrill/internal/store"
)

var processCmd = &cobra.Command{
	Use:   "process <transcript|->",
	Short: "Generate an exercise bundle from a lesson transcript",
	Long: `Process reads a lesson transcript from a file (or stdin with "-") and
prints the generated exercise bundle as JSON. Each run is recorded in the
local database.`,
	Args: cobra.ExactArgs(1),
	RunE: runProcess,
}

func runProcess(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("seed") {
		cfg.Pipeline.Seed, _ = cmd.Flags().GetUint64("seed")
	}
	lesson, _ := cmd.Flags().GetInt("lesson")
	pretty, _ := cmd.Flags().GetBool("pretty")
	outPath, _ := cmd.Flags().GetString("out")
	showMetrics, _ := cmd.Flags().GetBool("metrics")

	transcript, err := readTranscript(cmd, args[0])
	if err != nil {
		return err
	}

	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := cmd.Context()
	metrics := observe.DefaultMetrics()
	var dump *metricsDump
	if showMetrics {
		if dump, err = newMetricsDump(); err != nil {
			return err
		}
		defer dump.Shutdown(context.Background())
		metrics = dump.metrics
	}

	p := newPipeline(ctx, cfg, s.EventRepo(), logger, metrics)
	start := time.Now()
	bundle := p.Process(ctx, transcript, lesson)
	recordRun(ctx, s.RunRepo(), bundle, time.Since(start), logger)

	out := cmd.OutOrStdout()
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}
	if err := writeBundle(out, bundle, pretty); err != nil {
		return err
	}

	if dump != nil {
		if err := dump.Write(ctx, cmd.ErrOrStderr()); err != nil {
			return err
		}
	}

	if bundle.Metadata.Status == pipeline.StatusError {
		return fmt.Errorf("lesson %d failed: %s", lesson, bundle.Metadata.Error)
	}
	return nil
}

func writeBundle(w io.Writer, b pipeline.Bundle, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(b); err != nil {
		return fmt.Errorf("encode bundle: %w", err)
	}
	return nil
}

// recordRun stores a summary of the run. A failed write is logged and does
// not fail the command.
func recordRun(ctx context.Context, runs store.RunRepo, b pipeline.Bundle, d time.Duration, logger *slog.Logger) {
	md := b.Metadata
	rec := store.RunRecord{
		LessonNumber:    md.LessonNumber,
		Status:          string(md.Status),
		QualityPassed:   md.QualityPassed,
		VocabularyCount: md.VocabularyCount,
		MistakesCount:   md.MistakesCount,
		SentencesCount:  md.SentencesCount,
		TotalExercises:  md.TotalExercises,
		ErrorMessage:    md.Error,
		Duration:        d,
	}
	if err := runs.RecordRun(context.WithoutCancel(ctx), rec); err != nil {
		logger.Warn("failed to record run", "error", err)
	}
}

func init() {
	processCmd.Flags().IntP("lesson", "l", 1, "Lesson number")
	processCmd.Flags().Uint64("seed", 0, "Seed for exercise shuffling (overrides config)")
	processCmd.Flags().Bool("pretty", false, "Indent the JSON output")
	processCmd.Flags().StringP("out", "o", "", "Write the bundle to a file instead of stdout")
	processCmd.Flags().Bool("metrics", false, "Print pipeline metrics to stderr when done")
}
