package validate

import (
	"errors"
	"testing"

	"github.com/lluichi/ticket-classifier/pkg/schema"
)

func validPayload() schema.RawOutput {
	return schema.RawOutput{
		"urgency":         "low",
		"intent":          "question",
		"product_area":    "technical",
		"language":        "en",
		"confidence":      0.85,
		"suggested_reply": "Here is how to export your report.",
		"needs_human":     false,
	}
}

func TestValidateSuccess(t *testing.T) {
	c, err := Validate(validPayload())
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if c.Urgency != schema.UrgencyLow || c.Intent != schema.IntentQuestion || c.ProductArea != schema.AreaTechnical {
		t.Fatalf("unexpected enums: %+v", c)
	}
	if c.Language != "en" || c.Confidence != 0.85 || c.NeedsHuman {
		t.Fatalf("unexpected fields: %+v", c)
	}
}

func TestValidatePreservesModelEscalationFlag(t *testing.T) {
	raw := validPayload()
	raw["needs_human"] = true

	c, err := Validate(raw)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !c.NeedsHuman {
		t.Fatalf("expected needs_human carried through from the payload")
	}
}

func TestValidateMissingField(t *testing.T) {
	raw := validPayload()
	delete(raw, "confidence")

	_, err := Validate(raw)
	assertViolation(t, err, "confidence")
}

func TestValidateEnumOutOfRange(t *testing.T) {
	raw := validPayload()
	raw["urgency"] = "urgent"

	_, err := Validate(raw)
	assertViolation(t, err, "urgency")
}

func TestValidateRejectsFallbackSentinelFromModel(t *testing.T) {
	raw := validPayload()
	raw["intent"] = "unknown"

	_, err := Validate(raw)
	assertViolation(t, err, "intent")
}

func TestValidateConfidenceBounds(t *testing.T) {
	for _, confidence := range []float64{-0.1, 1.01} {
		raw := validPayload()
		raw["confidence"] = confidence

		_, err := Validate(raw)
		assertViolation(t, err, "confidence")
	}

	for _, confidence := range []float64{0, 1} {
		raw := validPayload()
		raw["confidence"] = confidence

		if _, err := Validate(raw); err != nil {
			t.Fatalf("confidence %v should be accepted: %v", confidence, err)
		}
	}
}

func TestValidateTypeMismatch(t *testing.T) {
	raw := validPayload()
	raw["confidence"] = "0.9"
	_, err := Validate(raw)
	assertViolation(t, err, "confidence")

	raw = validPayload()
	raw["needs_human"] = "false"
	_, err = Validate(raw)
	assertViolation(t, err, "needs_human")
}

func TestValidateLanguageSyntax(t *testing.T) {
	for _, lang := range []string{"english", "E", "ES", "e1", ""} {
		raw := validPayload()
		raw["language"] = lang

		_, err := Validate(raw)
		assertViolation(t, err, "language")
	}

	for _, lang := range []string{"es", "de"} {
		raw := validPayload()
		raw["language"] = lang

		if _, err := Validate(raw); err != nil {
			t.Fatalf("language %q should be accepted: %v", lang, err)
		}
	}
}

func TestValidateRejectsThreeLetterLanguageCodes(t *testing.T) {
	// ISO 639-2 codes, including the fallback's "und" sentinel, are not
	// acceptable from the model; only the pipeline-built fallback may
	// carry them.
	for _, lang := range []string{"und", "spa"} {
		raw := validPayload()
		raw["language"] = lang

		_, err := Validate(raw)
		assertViolation(t, err, "language")
	}
}

func TestValidateFailsFastOnFirstViolation(t *testing.T) {
	raw := validPayload()
	delete(raw, "urgency")
	raw["confidence"] = 2.0

	_, err := Validate(raw)
	// urgency is checked before confidence
	assertViolation(t, err, "urgency")
}

func assertViolation(t *testing.T, err error, field string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected schema violation on %q", field)
	}
	var sv *SchemaViolation
	if !errors.As(err, &sv) {
		t.Fatalf("expected *SchemaViolation, got %T: %v", err, err)
	}
	if sv.Field != field {
		t.Fatalf("expected violation on %q, got %q (%s)", field, sv.Field, sv.Reason)
	}
}
