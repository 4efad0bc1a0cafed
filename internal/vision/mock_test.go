package vision

import (
	"context"
	"errors"
	"testing"
)

func TestMockProviderStreamsTokens(t *testing.T) {
	mock := NewMockProvider()
	mock.AddScene(MockScene{Tokens: []string{"a quiet ", "desk ", "scene"}})

	var tokens []string
	res, err := mock.DescribeScene(context.Background(), SceneRequest{Frame: "desk"}, func(tok string) {
		tokens = append(tokens, tok)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Text != "a quiet desk scene" {
		t.Errorf("text = %q", res.Text)
	}
	if len(tokens) != 3 || tokens[0] != "a quiet " {
		t.Errorf("tokens = %v, want delivered in order", tokens)
	}
	if len(mock.DescribeCalls) != 1 || mock.DescribeCalls[0].Frame != "desk" {
		t.Errorf("describe calls = %+v", mock.DescribeCalls)
	}
}

func TestMockProviderEmptyQueue(t *testing.T) {
	mock := NewMockProvider()

	_, err := mock.DescribeScene(context.Background(), SceneRequest{}, func(string) {})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %v", err)
	}

	_, err = mock.DetectObjects(context.Background(), SceneRequest{})
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %v", err)
	}
}

func TestMockProviderFIFO(t *testing.T) {
	mock := NewMockProvider()
	mock.AddDetection(MockDetection{Detection: &Detection{AnchorsCreated: 1}})
	mock.AddDetection(MockDetection{Detection: &Detection{AnchorsCreated: 2}})

	first, _ := mock.DetectObjects(context.Background(), SceneRequest{})
	second, _ := mock.DetectObjects(context.Background(), SceneRequest{})
	if first.AnchorsCreated != 1 || second.AnchorsCreated != 2 {
		t.Errorf("detections out of order: %d then %d", first.AnchorsCreated, second.AnchorsCreated)
	}
}
