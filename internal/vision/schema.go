package vision

import "encoding/json"

// describeSystem frames the streamed scene description. The stream is
// shown to the user token by token, so the prompt asks for plain prose.
const describeSystem = `You are the narrator of an object-hunting game. Describe the scene in
front of the camera in two or three plain sentences. Mention the
distinct objects you can identify. No lists, no markdown.`

// detectSystem frames the structured detection pass.
const detectSystem = `You are the object detector of an object-hunting game. Identify the
distinct physical objects in the scene. Report each object once with a
confidence between 0 and 1, and the number of spatial anchors to place
(one per confidently located object).`

// Schema defines the JSON structure expected from the model.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// DetectionSchema is the contract for detection responses. Every
// provider validates against it before a Detection is built.
var DetectionSchema = &Schema{
	Name:        "scene-detection",
	Description: "Objects detected in a camera scene with anchor count",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"anchors_created": map[string]any{
				"type":    "integer",
				"minimum": 0,
			},
			"objects": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name": map[string]any{
							"type":      "string",
							"minLength": 1,
						},
						"confidence": map[string]any{
							"type":    "number",
							"minimum": 0,
							"maximum": 1,
						},
					},
					"required":             []any{"name", "confidence"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"anchors_created", "objects"},
		"additionalProperties": false,
	},
}

// parseDetection validates raw model output against DetectionSchema and
// unmarshals it. Invalid payloads come back as *ErrInvalidDetection.
func parseDetection(raw json.RawMessage) (*Detection, error) {
	if err := validateDetection(DetectionSchema, raw); err != nil {
		return nil, err
	}

	var det Detection
	if err := json.Unmarshal(raw, &det); err != nil {
		return nil, &ErrInvalidDetection{Content: raw, Err: err}
	}
	return &det, nil
}
