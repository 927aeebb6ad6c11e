package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recent pipeline runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		cfg, _, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		s, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer s.Close()

		runs, err := s.RunRepo().RecentRuns(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("query runs: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(runs) == 0 {
			fmt.Fprintln(out, "No runs recorded yet.")
			return nil
		}

		fmt.Fprintf(out, "%-5s  %-19s  %6s  %-7s  %-7s  %5s  %5s  %5s  %9s  %8s\n",
			"Seq", "Timestamp", "Lesson", "Status", "Quality", "Vocab", "Mist", "Sent", "Exercises", "Ms")
		fmt.Fprintln(out, strings.Repeat("─", 94))
		for _, r := range runs {
			q := "pass"
			if !r.QualityPassed {
				q = "fail"
			}
			fmt.Fprintf(out, "%-5d  %-19s  %6d  %-7s  %-7s  %5d  %5d  %5d  %9d  %8d\n",
				r.Sequence,
				r.Timestamp.Local().Format("2006-01-02 15:04:05"),
				r.LessonNumber,
				r.Status,
				q,
				r.VocabularyCount,
				r.MistakesCount,
				r.SentencesCount,
				r.TotalExercises,
				r.Duration.Milliseconds(),
			)
			if r.ErrorMessage != "" {
				fmt.Fprintf(out, "       error: %s\n", r.ErrorMessage)
			}
		}
		return nil
	},
}

var drillsCmd = &cobra.Command{
	Use:   "drills",
	Short: "List recent interactive drills",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		cfg, _, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		s, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer s.Close()

		drills, err := s.DrillRepo().RecentDrills(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("query drills: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(drills) == 0 {
			fmt.Fprintln(out, "No drills recorded yet.")
			return nil
		}

		fmt.Fprintf(out, "%-5s  %-19s  %6s  %9s  %8s  %7s  %8s\n",
			"Seq", "Timestamp", "Lesson", "Questions", "Answered", "Correct", "Accuracy")
		fmt.Fprintln(out, strings.Repeat("─", 76))
		for _, d := range drills {
			fmt.Fprintf(out, "%-5d  %-19s  %6d  %9d  %8d  %7d  %8s\n",
				d.Sequence,
				d.Timestamp.Local().Format("2006-01-02 15:04:05"),
				d.LessonNumber,
				d.Questions,
				d.Answered,
				d.Correct,
				accuracy(d.Correct, d.Answered),
			)
		}
		return nil
	},
}

func accuracy(correct, answered int) string {
	if answered == 0 {
		return "-"
	}
	return fmt.Sprintf("%d%%", correct*100/answered)
}

func init() {
	runsCmd.Flags().IntP("limit", "n", 20, "Number of runs to show")
	drillsCmd.Flags().IntP("limit", "n", 20, "Number of drills to show")
}
