package adapter

import (
	"context"
	"errors"
	"testing"

	"github.com/lluichi/ticket-classifier/pkg/schema"
)

func TestMockAdapterScript(t *testing.T) {
	scriptErr := &TransportError{Status: 500}
	mock := NewMockAdapterWithScript([]MockResult{
		{Err: scriptErr},
		{Output: schema.RawOutput{"urgency": "high"}},
	})

	_, err := mock.ClassifyRaw(context.Background(), "mock-1", "msg")
	if !errors.Is(err, scriptErr) {
		t.Fatalf("expected scripted error, got %v", err)
	}

	raw, err := mock.ClassifyRaw(context.Background(), "mock-1", "msg")
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if raw["urgency"] != "high" {
		t.Fatalf("unexpected payload: %+v", raw)
	}

	// Beyond the script, the default payload takes over.
	raw, err = mock.ClassifyRaw(context.Background(), "mock-1", "msg")
	if err != nil {
		t.Fatalf("third call: %v", err)
	}
	if raw["urgency"] != string(schema.UrgencyLow) {
		t.Fatalf("expected default payload, got %+v", raw)
	}

	if mock.Calls() != 3 {
		t.Fatalf("expected 3 calls, got %d", mock.Calls())
	}
}
