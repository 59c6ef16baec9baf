// Package escalate holds the deterministic escalation override. The model's
// own needs_human judgment is advisory; this rule is authoritative and runs
// on every classification the pipeline returns, fallbacks included.
package escalate

import "github.com/lluichi/ticket-classifier/pkg/schema"

// ConfidenceFloor is the confidence below which escalation is forced.
// Exactly ConfidenceFloor does not trigger the override.
const ConfidenceFloor = 0.7

// Apply forces NeedsHuman when urgency is critical or confidence falls
// below the floor, and otherwise leaves the validated flag untouched.
// Total function, no failure mode.
func Apply(c schema.Classification) schema.Classification {
	if c.Urgency == schema.UrgencyCritical || c.Confidence < ConfidenceFloor {
		c.NeedsHuman = true
	}
	return c
}
