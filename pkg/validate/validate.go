// Package validate checks raw gateway payloads against the classification
// contract. It is a pure check-and-transform: no retries, no partial
// results.
package validate

import (
	"errors"
	"fmt"

	"github.com/lluichi/ticket-classifier/pkg/schema"
)

// SchemaViolation reports the first contract violation found in a payload.
type SchemaViolation struct {
	Field  string
	Reason string
}

func (e *SchemaViolation) Error() string {
	return fmt.Sprintf("schema violation on %q: %s", e.Field, e.Reason)
}

// IsSchemaViolation reports whether err is a contract violation.
func IsSchemaViolation(err error) bool {
	var sv *SchemaViolation
	return errors.As(err, &sv)
}

// Validate checks raw against the classification contract and builds a
// Classification from it. It fails fast with the first violation found,
// checking per field: presence, JSON type, enum membership, then the
// confidence range and language syntax constraints.
//
// NeedsHuman is taken as-is from the payload; the escalation rule engine,
// not the model, has the final word on it.
func Validate(raw schema.RawOutput) (*schema.Classification, error) {
	values := make(map[string]any, len(raw))

	for _, field := range schema.Describe() {
		value, ok := raw[field.Name]
		if !ok {
			return nil, &SchemaViolation{Field: field.Name, Reason: "missing required field"}
		}

		switch field.Type {
		case schema.TypeString:
			s, ok := value.(string)
			if !ok {
				return nil, &SchemaViolation{Field: field.Name, Reason: fmt.Sprintf("expected string, got %T", value)}
			}
			if len(field.Enum) > 0 && !enumContains(field.Enum, s) {
				return nil, &SchemaViolation{Field: field.Name, Reason: fmt.Sprintf("value %q not in allowed set", s)}
			}
		case schema.TypeNumber:
			if _, ok := value.(float64); !ok {
				return nil, &SchemaViolation{Field: field.Name, Reason: fmt.Sprintf("expected number, got %T", value)}
			}
		case schema.TypeBoolean:
			if _, ok := value.(bool); !ok {
				return nil, &SchemaViolation{Field: field.Name, Reason: fmt.Sprintf("expected boolean, got %T", value)}
			}
		}

		values[field.Name] = value
	}

	confidence := values["confidence"].(float64)
	if confidence < 0 || confidence > 1 {
		return nil, &SchemaViolation{Field: "confidence", Reason: fmt.Sprintf("%v outside [0,1]", confidence)}
	}

	language := values["language"].(string)
	if !validLanguageCode(language) {
		return nil, &SchemaViolation{Field: "language", Reason: fmt.Sprintf("%q is not a valid ISO 639-1 code", language)}
	}

	return &schema.Classification{
		Urgency:        schema.Urgency(values["urgency"].(string)),
		Intent:         schema.Intent(values["intent"].(string)),
		ProductArea:    schema.ProductArea(values["product_area"].(string)),
		Language:       language,
		Confidence:     confidence,
		SuggestedReply: values["suggested_reply"].(string),
		NeedsHuman:     values["needs_human"].(bool),
	}, nil
}

func enumContains(enum []string, value string) bool {
	for _, e := range enum {
		if e == value {
			return true
		}
	}
	return false
}

// validLanguageCode accepts only two-letter ISO 639-1 codes. The fallback's
// "und" sentinel is constructed by the pipeline and never passes through
// here.
func validLanguageCode(code string) bool {
	if len(code) != 2 {
		return false
	}
	for i := 0; i < len(code); i++ {
		c := code[i]
		if c < 'a' || c > 'z' {
			return false
		}
	}
	return true
}
