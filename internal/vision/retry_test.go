package vision

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func retryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 1 * time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetry_DetectSucceedsOnFirstAttempt(t *testing.T) {
	mock := NewMockProvider()
	mock.AddDetection(MockDetection{Detection: &Detection{AnchorsCreated: 1, Objects: []DetectedObject{{Name: "mug", Confidence: 0.9}}}})
	p := WithRetry(mock, retryConfig())

	det, err := p.DetectObjects(context.Background(), SceneRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(det.Objects) != 1 || det.Objects[0].Name != "mug" {
		t.Fatalf("unexpected detection: %+v", det)
	}
	if len(mock.DetectCalls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(mock.DetectCalls))
	}
}

func TestRetry_DetectTransientThenSuccess(t *testing.T) {
	mock := NewMockProvider()
	mock.AddDetection(MockDetection{Err: &ErrProviderUnavailable{Err: errors.New("down")}})
	mock.AddDetection(MockDetection{Detection: &Detection{AnchorsCreated: 0}})
	p := WithRetry(mock, retryConfig())

	det, err := p.DetectObjects(context.Background(), SceneRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if det == nil {
		t.Fatal("expected detection after retry")
	}
	if len(mock.DetectCalls) != 2 {
		t.Fatalf("expected 2 calls, got %d", len(mock.DetectCalls))
	}
}

func TestRetry_DetectInvalidRetriesOnce(t *testing.T) {
	mock := NewMockProvider()
	mock.AddDetection(MockDetection{Err: &ErrInvalidDetection{Content: json.RawMessage(`{}`), Err: errors.New("missing objects")}})
	mock.AddDetection(MockDetection{Err: &ErrInvalidDetection{Content: json.RawMessage(`{}`), Err: errors.New("missing objects")}})
	mock.AddDetection(MockDetection{Detection: &Detection{}})
	p := WithRetry(mock, retryConfig())

	_, err := p.DetectObjects(context.Background(), SceneRequest{})
	var invalid *ErrInvalidDetection
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidDetection after single retry, got: %v", err)
	}
	if len(mock.DetectCalls) != 2 {
		t.Fatalf("expected exactly 2 calls, got %d", len(mock.DetectCalls))
	}
}

func TestRetry_DescribeRetriesBeforeFirstToken(t *testing.T) {
	mock := NewMockProvider()
	mock.AddScene(MockScene{Err: &ErrProviderUnavailable{Err: errors.New("down")}})
	mock.AddScene(MockScene{Tokens: []string{"a ", "desk"}})
	p := WithRetry(mock, retryConfig())

	var got string
	res, err := p.DescribeScene(context.Background(), SceneRequest{}, func(tok string) {
		got += tok
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Text != "a desk" || got != "a desk" {
		t.Fatalf("text = %q, tokens = %q, want 'a desk'", res.Text, got)
	}
	if len(mock.DescribeCalls) != 2 {
		t.Fatalf("expected 2 calls, got %d", len(mock.DescribeCalls))
	}
}

// failAfterTokenProvider emits one token and then fails, every call.
type failAfterTokenProvider struct {
	calls int
}

func (f *failAfterTokenProvider) DescribeScene(_ context.Context, _ SceneRequest, onToken func(string)) (*SceneResult, error) {
	f.calls++
	onToken("partial ")
	return nil, &ErrProviderUnavailable{Err: errors.New("dropped mid-stream")}
}

func (f *failAfterTokenProvider) DetectObjects(context.Context, SceneRequest) (*Detection, error) {
	return nil, &ErrProviderUnavailable{}
}

func (f *failAfterTokenProvider) ModelID() string { return "fail-after-token" }

func TestRetry_DescribeDoesNotRetryAfterTokenDelivered(t *testing.T) {
	inner := &failAfterTokenProvider{}
	p := WithRetry(inner, retryConfig())

	_, err := p.DescribeScene(context.Background(), SceneRequest{}, func(string) {})
	if err == nil {
		t.Fatal("expected error")
	}
	if inner.calls != 1 {
		t.Fatalf("expected no retry once a token was delivered, got %d calls", inner.calls)
	}
}

func TestRetry_AllAttemptsFail(t *testing.T) {
	mock := NewMockProvider()
	for i := 0; i < 3; i++ {
		mock.AddDetection(MockDetection{Err: &ErrProviderUnavailable{Err: errors.New("down")}})
	}
	p := WithRetry(mock, retryConfig())

	_, err := p.DetectObjects(context.Background(), SceneRequest{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %v", err)
	}
	if len(mock.DetectCalls) != 3 {
		t.Fatalf("expected 3 calls, got %d", len(mock.DetectCalls))
	}
}

func TestRetry_ContextCanceledNotRetried(t *testing.T) {
	mock := NewMockProvider()
	mock.AddDetection(MockDetection{Err: context.Canceled})
	p := WithRetry(mock, retryConfig())

	_, err := p.DetectObjects(context.Background(), SceneRequest{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got: %v", err)
	}
	if len(mock.DetectCalls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(mock.DetectCalls))
	}
}

func TestRetry_RateLimitRespectsRetryAfter(t *testing.T) {
	mock := NewMockProvider()
	mock.AddDetection(MockDetection{Err: &ErrRateLimit{RetryAfter: 2 * time.Millisecond, Err: errors.New("429")}})
	mock.AddDetection(MockDetection{Detection: &Detection{}})
	p := WithRetry(mock, retryConfig())

	start := time.Now()
	_, err := p.DetectObjects(context.Background(), SceneRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 2*time.Millisecond {
		t.Errorf("expected wait of at least RetryAfter, got %s", elapsed)
	}
}
