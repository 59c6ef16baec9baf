package adapter

import (
	"context"

	"github.com/lluichi/ticket-classifier/pkg/schema"
)

// Adapter defines the interface for model gateway implementations.
//
// ClassifyRaw issues exactly one outbound request per call. Implementations
// do not retry and do not validate field semantics; they only guarantee that
// a structurally parseable payload was obtained.
type Adapter interface {
	// ClassifyRaw sends one support message to the model and returns the
	// decoded, untrusted payload.
	ClassifyRaw(ctx context.Context, model string, message string) (schema.RawOutput, error)

	// Name returns the adapter's identifier.
	Name() string

	// Models returns the list of supported models.
	Models() []string
}
