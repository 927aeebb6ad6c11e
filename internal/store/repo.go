package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	After   int64     // sequence > After
	Before  int64     // sequence < Before
	From    time.Time // timestamp >= From
	To      time.Time // timestamp <= To
	Purpose string    // exact purpose match when set
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request.
type LLMEvent struct {
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// PurposeUsage aggregates LLM requests for one purpose.
type PurposeUsage struct {
	Purpose      string
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates LLM requests for one model.
type ModelUsage struct {
	Model        string
	Requests     int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns the event with the given sequence, or nil.
	GetLLMEvent(ctx context.Context, sequence int64) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates all events by purpose, busiest first.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// LLMUsageByModel aggregates all events by model, busiest first.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)
}

// RunRecord summarises one pipeline run.
type RunRecord struct {
	Sequence        int64
	Timestamp       time.Time
	LessonNumber    int
	Status          string
	QualityPassed   bool
	VocabularyCount int
	MistakesCount   int
	SentencesCount  int
	TotalExercises  int
	ErrorMessage    string
	Duration        time.Duration
}

// RunRepo records pipeline runs.
type RunRepo interface {
	// RecordRun stores rec. Sequence and a zero Timestamp are filled in.
	RecordRun(ctx context.Context, rec RunRecord) error

	// RecentRuns returns up to limit runs, newest first.
	RecentRuns(ctx context.Context, limit int) ([]RunRecord, error)
}

// DrillRecord is the outcome of one interactive drill.
type DrillRecord struct {
	Sequence     int64
	Timestamp    time.Time
	DrillID      string
	LessonNumber int
	Questions    int
	Answered     int
	Correct      int
	Duration     time.Duration
}

// DrillRepo records finished drills.
type DrillRepo interface {
	RecordDrill(ctx context.Context, rec DrillRecord) error

	// RecentDrills returns up to limit drills, newest first.
	RecentDrills(ctx context.Context, limit int) ([]DrillRecord, error)
}
