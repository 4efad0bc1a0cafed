package vision

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseDetection_Valid(t *testing.T) {
	raw := json.RawMessage(`{
		"anchors_created": 2,
		"objects": [
			{"name": "coffee mug", "confidence": 0.92},
			{"name": "laptop", "confidence": 0.87}
		]
	}`)

	det, err := parseDetection(raw)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if det.AnchorsCreated != 2 {
		t.Errorf("anchors = %d, want 2", det.AnchorsCreated)
	}
	if len(det.Objects) != 2 || det.Objects[0].Name != "coffee mug" {
		t.Errorf("objects = %+v", det.Objects)
	}
}

func TestParseDetection_EmptyObjects(t *testing.T) {
	raw := json.RawMessage(`{"anchors_created": 0, "objects": []}`)

	det, err := parseDetection(raw)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(det.Objects) != 0 {
		t.Errorf("objects = %+v, want empty", det.Objects)
	}
}

func TestParseDetection_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing anchors", `{"objects": []}`},
		{"missing objects", `{"anchors_created": 1}`},
		{"negative anchors", `{"anchors_created": -1, "objects": []}`},
		{"confidence above one", `{"anchors_created": 0, "objects": [{"name": "mug", "confidence": 1.5}]}`},
		{"empty object name", `{"anchors_created": 0, "objects": [{"name": "", "confidence": 0.5}]}`},
		{"extra field", `{"anchors_created": 0, "objects": [], "extra": true}`},
		{"not json", `detected a mug`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseDetection(json.RawMessage(tt.raw))
			if err == nil {
				t.Fatal("expected error")
			}
			var invalid *ErrInvalidDetection
			if !errors.As(err, &invalid) {
				t.Fatalf("expected ErrInvalidDetection, got: %T", err)
			}
		})
	}
}
