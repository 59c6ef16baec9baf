// Package pipeline orchestrates the classification attempt loop: bounded
// retries with exponential backoff over one model gateway, validation of
// every payload, the deterministic escalation override, and a conservative
// fallback when all attempts are exhausted.
package pipeline

import (
	"context"
	"time"

	"github.com/lluichi/ticket-classifier/pkg/adapter"
	"github.com/lluichi/ticket-classifier/pkg/escalate"
	"github.com/lluichi/ticket-classifier/pkg/schema"
	"github.com/lluichi/ticket-classifier/pkg/validate"
)

const (
	// DefaultMaxAttempts bounds gateway invocations per Classify call.
	DefaultMaxAttempts = 3

	// DefaultBackoffUnit is the backoff time unit; the delay after failed
	// attempt n is 2^n units.
	DefaultBackoffUnit = time.Second
)

// Options configures a Classifier.
type Options struct {
	// MaxAttempts bounds gateway invocations per message. Defaults to
	// DefaultMaxAttempts when zero or negative.
	MaxAttempts int

	// BackoffUnit scales the exponential backoff schedule. Defaults to
	// DefaultBackoffUnit when zero or negative.
	BackoffUnit time.Duration

	// Logger receives attempt-level diagnostics. Nil discards them.
	Logger func(format string, args ...any)
}

// Classifier runs the structured classification pipeline against a single
// model gateway. It holds no mutable state between calls and is safe for
// concurrent use.
type Classifier struct {
	adapter     adapter.Adapter
	model       string
	maxAttempts int
	backoffUnit time.Duration
	logf        func(format string, args ...any)
	sleep       func(ctx context.Context, d time.Duration) error
}

type attemptOutcome string

const (
	outcomeSuccess       attemptOutcome = "success"
	outcomeSchemaInvalid attemptOutcome = "schema_invalid"
	outcomeTransportErr  attemptOutcome = "transport_error"
)

// attemptRecord is retry bookkeeping, scoped to one Classify call and
// surfaced only through the logger.
type attemptRecord struct {
	attempt int
	outcome attemptOutcome
	err     error
}

// New creates a Classifier over the given gateway and model.
func New(a adapter.Adapter, model string, opts Options) *Classifier {
	maxAttempts := opts.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = DefaultMaxAttempts
	}
	backoffUnit := opts.BackoffUnit
	if backoffUnit <= 0 {
		backoffUnit = DefaultBackoffUnit
	}
	logf := opts.Logger
	if logf == nil {
		logf = func(string, ...any) {}
	}

	return &Classifier{
		adapter:     a,
		model:       model,
		maxAttempts: maxAttempts,
		backoffUnit: backoffUnit,
		logf:        logf,
		sleep:       sleepWithContext,
	}
}

// Classify runs the attempt loop for one message and always returns a
// well-formed classification: either a validated model result or the
// conservative fallback with escalation forced on. Transport errors and
// schema violations never escape to the caller.
func (c *Classifier) Classify(ctx context.Context, message string) schema.Classification {
	var records []attemptRecord

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		result, record := c.attempt(ctx, attempt, message)
		records = append(records, record)

		if record.outcome == outcomeSuccess {
			c.logf("classified on attempt %d/%d", attempt, c.maxAttempts)
			return escalate.Apply(*result)
		}

		c.logf("attempt %d/%d failed (%s): %v", attempt, c.maxAttempts, record.outcome, record.err)

		if attempt == c.maxAttempts {
			break
		}
		if err := c.sleep(ctx, c.backoff(attempt)); err != nil {
			c.logf("backoff interrupted: %v", err)
			break
		}
	}

	c.logf("all %d attempts failed, returning fallback classification", len(records))
	return escalate.Apply(schema.Fallback())
}

// attempt performs one gateway call plus validation.
func (c *Classifier) attempt(ctx context.Context, attempt int, message string) (*schema.Classification, attemptRecord) {
	raw, err := c.adapter.ClassifyRaw(ctx, c.model, message)
	if err != nil {
		return nil, attemptRecord{attempt: attempt, outcome: outcomeTransportErr, err: err}
	}

	result, err := validate.Validate(raw)
	if err != nil {
		return nil, attemptRecord{attempt: attempt, outcome: outcomeSchemaInvalid, err: err}
	}

	return result, attemptRecord{attempt: attempt, outcome: outcomeSuccess}
}

// backoff returns the delay after failed attempt n: 2^n backoff units.
func (c *Classifier) backoff(attempt int) time.Duration {
	delay := c.backoffUnit
	for i := 0; i < attempt; i++ {
		delay *= 2
	}
	return delay
}

func sleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
