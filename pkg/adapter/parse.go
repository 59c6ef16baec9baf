package adapter

import (
	"encoding/json"
	"strings"

	"github.com/lluichi/ticket-classifier/pkg/schema"
)

// decodeStructured parses a model text reply into a raw payload. Models
// occasionally wrap JSON in markdown fences despite instructions, so fences
// are stripped before decoding. Anything that does not decode to a JSON
// object is a malformed-response transport error.
func decodeStructured(content string) (schema.RawOutput, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	var raw schema.RawOutput
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, &TransportError{Malformed: true, Err: err}
	}
	if raw == nil {
		return nil, &TransportError{Malformed: true}
	}
	return raw, nil
}
