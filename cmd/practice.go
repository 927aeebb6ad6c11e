package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/lingodrill/internal/app"
	"github.com/abhisek/lingodrill/internal/observe"
	"github.com/abhisek/lingodrill/internal/pipeline"
)

var practiceCmd = &cobra.Command{
	Use:   "practice <transcript|bundle.json|->",
	Short: "Drill a lesson interactively in the terminal",
	Long: `Practice opens the interactive drill. The argument is either a lesson
transcript, which is processed first, or a bundle previously written by
"lingodrill process".`,
	Args: cobra.ExactArgs(1),
	RunE: runPractice,
}

func runPractice(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	lesson, _ := cmd.Flags().GetInt("lesson")

	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := cmd.Context()
	var bundle pipeline.Bundle
	if strings.EqualFold(filepath.Ext(args[0]), ".json") {
		if bundle, err = readBundle(args[0]); err != nil {
			return err
		}
	} else {
		transcript, err := readTranscript(cmd, args[0])
		if err != nil {
			return err
		}
		p := newPipeline(ctx, cfg, s.EventRepo(), logger, observe.DefaultMetrics())
		start := time.Now()
		bundle = p.Process(ctx, transcript, lesson)
		recordRun(ctx, s.RunRepo(), bundle, time.Since(start), logger)
	}

	if bundle.Metadata.Status == pipeline.StatusError {
		return fmt.Errorf("lesson %d failed: %s", bundle.Metadata.LessonNumber, bundle.Metadata.Error)
	}

	return app.Run(ctx, app.Options{
		Bundle:    bundle,
		DrillRepo: s.DrillRepo(),
	})
}

func readBundle(path string) (pipeline.Bundle, error) {
	var b pipeline.Bundle
	data, err := os.ReadFile(path)
	if err != nil {
		return b, fmt.Errorf("read bundle: %w", err)
	}
	if err := json.Unmarshal(data, &b); err != nil {
		return b, fmt.Errorf("decode bundle %s: %w", path, err)
	}
	return b, nil
}

func init() {
	practiceCmd.Flags().IntP("lesson", "l", 1, "Lesson number (transcripts only)")
}
