package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lingodrill",
	Short: "Turn language lesson transcripts into practice exercises",
	Long: `Lingodrill reads the transcript of a language lesson, pulls out the
vocabulary, the student's corrected mistakes and reusable sentences, and
builds flashcards, spelling, fill-in-the-blank, grammar, sentence-builder
and cloze exercises from them.`,
	SilenceUsage: true,
}

// Execute runs the root command, cancelling on SIGINT or SIGTERM.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LINGODRILL_DB env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().Bool("no-ai", false, "Disable the LLM collaborators for this run")

	rootCmd.AddCommand(processCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(drillsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}
