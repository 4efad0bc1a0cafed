package vision

import "context"

// Provider is the scene-understanding boundary for the scan screen. It
// delivers two things: a streamed natural-language description of the
// scene and a one-shot structured detection pass. Implementations call
// onToken once per fragment, in the order the model emitted them; the
// screen marshals those callbacks onto its own update loop.
type Provider interface {
	// DescribeScene streams description tokens via onToken and returns
	// the assembled result when the stream ends.
	DescribeScene(ctx context.Context, req SceneRequest, onToken func(string)) (*SceneResult, error)

	// DetectObjects runs a structured detection pass over the scene.
	// The response is schema-validated before it is returned; malformed
	// model output never reaches the caller as partial state.
	DetectObjects(ctx context.Context, req SceneRequest) (*Detection, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// SceneRequest describes one frame handed over by the camera boundary.
type SceneRequest struct {
	// Frame is the serialized frame summary (the mobile shell sends an
	// encoded capture; the terminal harness sends a textual scene seed).
	Frame string

	// MaxTokens caps the streamed description length.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64
}

// SceneResult is the completed description stream.
type SceneResult struct {
	// Text is the full description, the concatenation of every token
	// delivered to onToken.
	Text string

	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason is normalized to: "end", "max_tokens", "error".
	StopReason string
}

// DetectedObject is one object the detection pass recognized.
type DetectedObject struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

// Detection is the structured result of one detection pass. Zero objects
// is a normal outcome, not an error.
type Detection struct {
	AnchorsCreated int              `json:"anchors_created"`
	Objects        []DetectedObject `json:"objects"`
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
