package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetry() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2,
	}
}

var translated = MockResponse{Content: json.RawMessage(`{"translation":"aeropuerto"}`)}

func down() MockResponse {
	return MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}}
}

func garbled() MockResponse {
	return MockResponse{Err: &ErrInvalidResponse{Content: json.RawMessage(`{"transl`), Err: errors.New("truncated JSON")}}
}

func TestRetryProvider(t *testing.T) {
	tests := []struct {
		name      string
		responses []MockResponse
		wantErr   bool
		wantCalls int
	}{
		{"first attempt succeeds", []MockResponse{translated}, false, 1},
		{"outage then success", []MockResponse{down(), translated}, false, 2},
		{"outage on every attempt", []MockResponse{down(), down(), down()}, true, 3},
		{"rate limit honours RetryAfter", []MockResponse{
			{Err: &ErrRateLimit{RetryAfter: time.Millisecond, Err: errors.New("429")}},
			translated,
		}, false, 2},
		{"invalid response retried once", []MockResponse{garbled(), translated}, false, 2},
		{"second invalid response gives up", []MockResponse{garbled(), garbled(), translated}, true, 2},
		{"truncated reply is not retried", []MockResponse{
			{Err: &ErrMaxTokensExceeded{Content: json.RawMessage(`{"transl`)}},
			translated,
		}, true, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(tt.responses...)
			resp, err := WithRetry(mock, fastRetry()).Generate(context.Background(), Request{})
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.JSONEq(t, `{"translation":"aeropuerto"}`, string(resp.Content))
			}
			assert.Equal(t, tt.wantCalls, mock.CallCount())
		})
	}
}

func TestRetryProviderStopsOnCancelledContext(t *testing.T) {
	mock := NewMockProvider(down(), down(), translated)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := WithRetry(mock, fastRetry()).Generate(ctx, Request{})
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, mock.CallCount())
}

func TestRetryProviderReportsEachRetry(t *testing.T) {
	var attempts []int
	cfg := fastRetry()
	cfg.OnRetry = func(attempt int, err error, wait time.Duration) {
		attempts = append(attempts, attempt)
		assert.LessOrEqual(t, wait, 12*time.Millisecond)
	}
	mock := NewMockProvider(down(), down(), translated)

	_, err := WithRetry(mock, cfg).Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, attempts)
}

func TestWithRetryDisabled(t *testing.T) {
	mock := NewMockProvider(down(), translated)
	p := WithRetry(mock, RetryConfig{MaxAttempts: 1})

	_, err := p.Generate(context.Background(), Request{})
	require.Error(t, err)
	assert.Equal(t, 1, mock.CallCount())
	assert.Equal(t, "mock", p.ModelID())
}

func TestBackoffGrowsAndCaps(t *testing.T) {
	r := &RetryProvider{cfg: RetryConfig{InitialWait: 100 * time.Millisecond, MaxWait: 300 * time.Millisecond, Multiplier: 2}}
	cause := errors.New("down")

	assert.InDelta(t, float64(100*time.Millisecond), float64(r.wait(1, cause)), float64(20*time.Millisecond))
	assert.InDelta(t, float64(200*time.Millisecond), float64(r.wait(2, cause)), float64(40*time.Millisecond))
	assert.InDelta(t, float64(300*time.Millisecond), float64(r.wait(5, cause)), float64(60*time.Millisecond))
	assert.Equal(t, 2*time.Second, r.wait(1, &ErrRateLimit{RetryAfter: 2 * time.Second}))
}

func TestMapStatus(t *testing.T) {
	cause := errors.New("boom")

	var rl *ErrRateLimit
	require.ErrorAs(t, mapStatus(http.StatusTooManyRequests, 3*time.Second, cause), &rl)
	assert.Equal(t, 3*time.Second, rl.RetryAfter)

	var inv *ErrInvalidResponse
	assert.ErrorAs(t, mapStatus(http.StatusBadRequest, 0, cause), &inv)

	var down *ErrProviderUnavailable
	assert.ErrorAs(t, mapStatus(http.StatusBadGateway, 0, cause), &down)
	assert.ErrorIs(t, mapStatus(http.StatusBadGateway, 0, cause), cause)
}

func TestRetryAfterHeader(t *testing.T) {
	resp := func(v string) *http.Response {
		return &http.Response{Header: http.Header{"Retry-After": []string{v}}}
	}
	assert.Equal(t, 7*time.Second, retryAfter(resp("7")))
	assert.Zero(t, retryAfter(resp("Wed, 21 Oct 2026 07:28:00 GMT")))
	assert.Zero(t, retryAfter(resp("")))
	assert.Zero(t, retryAfter(nil))
}
