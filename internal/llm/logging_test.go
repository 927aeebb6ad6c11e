package llm

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/lingodrill/internal/store"
)

type recordingRepo struct {
	mu     sync.Mutex
	events []store.LLMRequestEventData
	err    error
}

func (r *recordingRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, data)
	return r.err
}

func (r *recordingRepo) QueryLLMEvents(context.Context, store.QueryOpts) ([]store.LLMEvent, error) {
	return nil, nil
}

func (r *recordingRepo) GetLLMEvent(context.Context, int64) (*store.LLMEvent, error) {
	return nil, nil
}

func (r *recordingRepo) LLMUsageByPurpose(context.Context) ([]store.PurposeUsage, error) {
	return nil, nil
}

func (r *recordingRepo) LLMUsageByModel(context.Context) ([]store.ModelUsage, error) {
	return nil, nil
}

func TestLoggingProvider_RecordsEvents(t *testing.T) {
	repo := &recordingRepo{}
	mock := NewMockProvider(
		MockResponse{Content: []byte(`{"translation":"tren"}`), Usage: Usage{InputTokens: 12, OutputTokens: 3}},
		MockResponse{Err: &ErrRateLimit{Err: errors.New("slow down")}},
	)
	p := WithLogging(mock, "mock", repo, nil)
	ctx := WithPurpose(context.Background(), PurposeTranslation)

	if _, err := p.Generate(ctx, UserRequest("Translate.", "train", translationTestSchema, 64)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := p.Generate(ctx, UserRequest("Translate.", "bus", translationTestSchema, 64)); err == nil {
		t.Fatal("expected error")
	}

	if len(repo.events) != 2 {
		t.Fatalf("got %d events, want 2", len(repo.events))
	}
	ok, failed := repo.events[0], repo.events[1]
	if !ok.Success || ok.Purpose != PurposeTranslation || ok.InputTokens != 12 || ok.ResponseBody != `{"translation":"tren"}` {
		t.Errorf("success event = %+v", ok)
	}
	if !strings.Contains(ok.RequestBody, "[system]\nTranslate.") || !strings.Contains(ok.RequestBody, "[schema: test-translation]") {
		t.Errorf("request body = %q", ok.RequestBody)
	}
	if failed.Success || !strings.Contains(failed.ErrorMessage, "slow down") {
		t.Errorf("failure event = %+v", failed)
	}
}

func TestLoggingProvider_RepoFailureDoesNotFailRequest(t *testing.T) {
	repo := &recordingRepo{err: errors.New("disk full")}
	p := WithLogging(NewMockProvider(MockResponse{Content: []byte(`"ok"`)}), "mock", repo, nil)
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

type blockingProvider struct{}

func (blockingProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (blockingProvider) ModelID() string { return "blocking" }

func TestWithTimeout(t *testing.T) {
	p := WithTimeout(blockingProvider{}, 10*time.Millisecond)
	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if WithTimeout(blockingProvider{}, 0) != (blockingProvider{}) {
		t.Error("zero timeout should return the provider unchanged")
	}
}

func TestLookupCost(t *testing.T) {
	tests := []struct {
		model string
		want  float64
	}{
		{"claude-haiku-4-5-20251001", 1},
		{"google/gemini-2.5-flash", 0.3},
		{"gpt-4o-mini", 0.15},
	}
	for _, tt := range tests {
		c := LookupCost(tt.model)
		if c == nil || c.InputPerMTok != tt.want {
			t.Errorf("LookupCost(%q) = %v, want input %v", tt.model, c, tt.want)
		}
	}
	if LookupCost("mock") != nil {
		t.Error("expected no pricing for mock")
	}
	if got := (ModelCost{InputPerMTok: 1, OutputPerMTok: 5}).Cost(1_000_000, 200_000); got != 2 {
		t.Errorf("Cost() = %v, want 2", got)
	}
}
