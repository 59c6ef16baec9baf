package adapter

import (
	"context"
	"sync"

	"github.com/lluichi/ticket-classifier/pkg/schema"
)

// MockResult scripts the outcome of one ClassifyRaw call.
type MockResult struct {
	Output schema.RawOutput
	Err    error
}

// MockAdapter returns scripted payloads for local runs and tests. Calls
// consume the script in order; once exhausted, every call returns the
// default payload.
type MockAdapter struct {
	mu     sync.Mutex
	script []MockResult
	calls  int
}

// NewMockAdapter creates a mock adapter that always returns the default
// payload.
func NewMockAdapter() *MockAdapter {
	return &MockAdapter{}
}

// NewMockAdapterWithScript creates a mock adapter with per-call scripted
// results.
func NewMockAdapterWithScript(script []MockResult) *MockAdapter {
	return &MockAdapter{script: script}
}

// Name returns the adapter identifier.
func (a *MockAdapter) Name() string {
	return "mock"
}

// Models returns the list of supported mock models.
func (a *MockAdapter) Models() []string {
	return []string{"mock-1"}
}

// Calls returns how many times ClassifyRaw has been invoked.
func (a *MockAdapter) Calls() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.calls
}

// ClassifyRaw returns the next scripted result, or the default payload once
// the script is exhausted.
func (a *MockAdapter) ClassifyRaw(_ context.Context, _ string, _ string) (schema.RawOutput, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	idx := a.calls
	a.calls++

	if idx < len(a.script) {
		result := a.script[idx]
		return result.Output, result.Err
	}
	return defaultMockPayload(), nil
}

func defaultMockPayload() schema.RawOutput {
	return schema.RawOutput{
		"urgency":         string(schema.UrgencyLow),
		"intent":          string(schema.IntentQuestion),
		"product_area":    string(schema.AreaGeneral),
		"language":        "en",
		"confidence":      0.95,
		"suggested_reply": "Thanks for reaching out! A teammate will follow up shortly.",
		"needs_human":     false,
	}
}
