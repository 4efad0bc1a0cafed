package vision

import (
	"context"
	"sync"
)

// MockScene is a canned DescribeScene response: tokens delivered in
// order, then Err or a result assembled from the tokens.
type MockScene struct {
	Tokens []string
	Err    error
}

// MockDetection is a canned DetectObjects response.
type MockDetection struct {
	Detection *Detection
	Err       error
}

// MockProvider is a deterministic Provider for tests and offline play.
// It returns canned responses in FIFO order and records all requests.
type MockProvider struct {
	mu         sync.Mutex
	scenes     []MockScene
	detections []MockDetection

	DescribeCalls []SceneRequest
	DetectCalls   []SceneRequest
}

// NewMockProvider creates an empty MockProvider. Responses are queued
// with AddScene / AddDetection.
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

// AddScene queues a canned description stream.
func (m *MockProvider) AddScene(s MockScene) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scenes = append(m.scenes, s)
}

// AddDetection queues a canned detection result.
func (m *MockProvider) AddDetection(d MockDetection) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.detections = append(m.detections, d)
}

// DescribeScene replays the next canned stream through onToken, or
// ErrProviderUnavailable when the queue is empty.
func (m *MockProvider) DescribeScene(_ context.Context, req SceneRequest, onToken func(string)) (*SceneResult, error) {
	m.mu.Lock()
	m.DescribeCalls = append(m.DescribeCalls, req)
	if len(m.scenes) == 0 {
		m.mu.Unlock()
		return nil, &ErrProviderUnavailable{}
	}
	scene := m.scenes[0]
	m.scenes = m.scenes[1:]
	m.mu.Unlock()

	if scene.Err != nil {
		return nil, scene.Err
	}

	var text string
	for _, tok := range scene.Tokens {
		text += tok
		onToken(tok)
	}

	return &SceneResult{
		Text:       text,
		Model:      "mock",
		StopReason: "end",
	}, nil
}

// DetectObjects returns the next canned detection, or
// ErrProviderUnavailable when the queue is empty.
func (m *MockProvider) DetectObjects(_ context.Context, req SceneRequest) (*Detection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.DetectCalls = append(m.DetectCalls, req)

	if len(m.detections) == 0 {
		return nil, &ErrProviderUnavailable{}
	}

	det := m.detections[0]
	m.detections = m.detections[1:]

	if det.Err != nil {
		return nil, det.Err
	}
	return det.Detection, nil
}

// ModelID returns "mock".
func (m *MockProvider) ModelID() string {
	return "mock"
}
