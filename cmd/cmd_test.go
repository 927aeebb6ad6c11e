package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/lingodrill/internal/pipeline"
	"github.com/abhisek/lingodrill/internal/store"
)

const transcript = `Teacher: Good morning! Today we will practise the past tense and travel vocabulary.
Student: Yesterday I go to the airport with my family.
Teacher: Correction: Yesterday I went to the airport with my family.
Student: She have a beautiful suitcase.
Teacher: Not 'have', say 'has'. She has a beautiful suitcase.
Teacher: Vocabulary: passport, luggage and departure.
Teacher: The children were playing outside happily near the station.`

// execute runs the root command with args and returns stdout and stderr.
// Flags are reset first since the commands are package-level.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func writeTranscript(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lesson.txt")
	require.NoError(t, os.WriteFile(path, []byte(transcript), 0o644))
	return path
}

func TestProcessWritesBundleAndRecordsRun(t *testing.T) {
	db := filepath.Join(t.TempDir(), "test.db")
	path := writeTranscript(t)

	stdout, _, err := execute(t, "process", "--db", db, "--no-ai", "--lesson", "3", path)
	require.NoError(t, err)

	var b pipeline.Bundle
	require.NoError(t, json.Unmarshal([]byte(stdout), &b))
	assert.Equal(t, 3, b.Metadata.LessonNumber)
	assert.NotEqual(t, pipeline.StatusError, b.Metadata.Status)
	assert.Positive(t, b.Metadata.TotalExercises)

	s, err := store.Open(db)
	require.NoError(t, err)
	defer s.Close()
	runs, err := s.RunRepo().RecentRuns(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, 3, runs[0].LessonNumber)
	assert.Equal(t, b.Metadata.TotalExercises, runs[0].TotalExercises)
}

func TestProcessIsDeterministicForSeed(t *testing.T) {
	db := filepath.Join(t.TempDir(), "test.db")
	path := writeTranscript(t)

	first, _, err := execute(t, "process", "--db", db, "--no-ai", "--seed", "7", path)
	require.NoError(t, err)
	second, _, err := execute(t, "process", "--db", db, "--no-ai", "--seed", "7", path)
	require.NoError(t, err)
	assert.JSONEq(t, first, second)
}

func TestProcessFromStdinToFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "bundle.json")

	resetFlags(rootCmd)
	rootCmd.SetIn(bytes.NewBufferString(transcript))
	defer rootCmd.SetIn(nil)

	stdout, _, err := execute(t, "process", "--db", filepath.Join(dir, "test.db"), "--no-ai", "--pretty", "--out", out, "-")
	require.NoError(t, err)
	assert.Empty(t, stdout)

	b, err := readBundle(out)
	require.NoError(t, err)
	assert.Equal(t, 1, b.Metadata.LessonNumber)
	assert.NotNil(t, b.Flashcards)
}

func TestProcessMetricsDump(t *testing.T) {
	db := filepath.Join(t.TempDir(), "test.db")
	_, stderr, err := execute(t, "process", "--db", db, "--no-ai", "--metrics", writeTranscript(t))
	require.NoError(t, err)
	assert.Contains(t, stderr, "lingodrill.pipeline.runs{status=")
	assert.Contains(t, stderr, "lingodrill.pipeline.stage.duration{stage=")
}

func TestProcessMissingFile(t *testing.T) {
	db := filepath.Join(t.TempDir(), "test.db")
	_, _, err := execute(t, "process", "--db", db, "--no-ai", filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read transcript")
}

func TestInvalidLogLevel(t *testing.T) {
	_, _, err := execute(t, "runs", "--db", filepath.Join(t.TempDir(), "test.db"), "--log-level", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --log-level")
}

func TestRunsAndDrillsEmpty(t *testing.T) {
	db := filepath.Join(t.TempDir(), "test.db")

	stdout, _, err := execute(t, "runs", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, stdout, "No runs recorded yet.")

	stdout, _, err = execute(t, "drills", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, stdout, "No drills recorded yet.")
}

func TestRunsListsProcessedLesson(t *testing.T) {
	db := filepath.Join(t.TempDir(), "test.db")
	_, _, err := execute(t, "process", "--db", db, "--no-ai", "--lesson", "12", writeTranscript(t))
	require.NoError(t, err)

	stdout, _, err := execute(t, "runs", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Lesson")
	assert.Contains(t, stdout, " 12 ")
}

func TestDrillsListsRecordedDrill(t *testing.T) {
	db := filepath.Join(t.TempDir(), "test.db")
	s, err := store.Open(db)
	require.NoError(t, err)
	require.NoError(t, s.DrillRepo().RecordDrill(context.Background(), store.DrillRecord{
		DrillID: "d1", LessonNumber: 4, Questions: 10, Answered: 8, Correct: 6,
	}))
	require.NoError(t, s.Close())

	stdout, _, err := execute(t, "drills", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, stdout, "75%")
}

func TestLLMCommands(t *testing.T) {
	db := filepath.Join(t.TempDir(), "test.db")

	stdout, _, err := execute(t, "llm", "list", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, stdout, "No LLM events found.")

	s, err := store.Open(db)
	require.NoError(t, err)
	require.NoError(t, s.EventRepo().AppendLLMRequest(context.Background(), store.LLMRequestEventData{
		Provider: "anthropic", Model: "claude-haiku-4-5", Purpose: "vocabulary",
		InputTokens: 1200, OutputTokens: 300, LatencyMs: 850, Success: true,
		RequestBody: `{"prompt":"hola"}`,
	}))
	require.NoError(t, s.Close())

	stdout, _, err = execute(t, "llm", "list", "--db", db, "--purpose", "vocabulary")
	require.NoError(t, err)
	assert.Contains(t, stdout, "claude-haiku-4-5")

	stdout, _, err = execute(t, "llm", "list", "--db", db, "--purpose", "translation")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No LLM events found.")

	stdout, _, err = execute(t, "llm", "view", "--db", db, "1")
	require.NoError(t, err)
	assert.Contains(t, stdout, `{"prompt":"hola"}`)
	assert.Contains(t, stdout, "(not captured)")

	_, _, err = execute(t, "llm", "view", "--db", db, "99")
	assert.ErrorContains(t, err, "event 99 not found")

	stdout, _, err = execute(t, "llm", "stats", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, stdout, "vocabulary")
	assert.Contains(t, stdout, "Estimated Cost (USD)")
}

func TestReadBundleRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, err := readBundle(path)
	assert.ErrorContains(t, err, "decode bundle")
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "$0.0012", formatCost(0.0012))
	assert.Equal(t, "$1.50", formatCost(1.5))
	assert.Equal(t, "abc", truncate("abcdef", 3))
	assert.Equal(t, "-", accuracy(0, 0))
	assert.Equal(t, "50%", accuracy(1, 2))
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "lingodrill ")
	assert.Contains(t, stdout, runtime.GOOS)
}
