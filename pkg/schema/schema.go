// Package schema defines the classification contract: the shape of a valid
// classification result and the field descriptors shared by the model
// gateways (to instruct the provider) and the validator (to check
// conformance).
package schema

// Urgency indicates how quickly a ticket needs attention.
type Urgency string

const (
	UrgencyCritical Urgency = "critical"
	UrgencyHigh     Urgency = "high"
	UrgencyMedium   Urgency = "medium"
	UrgencyLow      Urgency = "low"
)

// Intent is the primary intent of the customer message.
type Intent string

const (
	IntentComplaint Intent = "complaint"
	IntentQuestion  Intent = "question"
	IntentRequest   Intent = "request"
	IntentFeedback  Intent = "feedback"
	IntentBugReport Intent = "bug_report"

	// IntentUnknown is the fallback sentinel. It is never offered to the
	// model and only appears in pipeline-constructed fallbacks.
	IntentUnknown Intent = "unknown"
)

// ProductArea is the product surface a ticket concerns.
type ProductArea string

const (
	AreaBilling    ProductArea = "billing"
	AreaTechnical  ProductArea = "technical"
	AreaOnboarding ProductArea = "onboarding"
	AreaGeneral    ProductArea = "general"

	// AreaUnknown is the fallback sentinel, see IntentUnknown.
	AreaUnknown ProductArea = "unknown"
)

// LanguageUndetermined is the ISO 639-2 code for an undetermined language,
// used by pipeline-constructed fallbacks.
const LanguageUndetermined = "und"

// Classification is a validated, structured label set for one support
// message. It serializes to the flat seven-field record consumed downstream.
type Classification struct {
	Urgency        Urgency     `json:"urgency"`
	Intent         Intent      `json:"intent"`
	ProductArea    ProductArea `json:"product_area"`
	Language       string      `json:"language"`
	Confidence     float64     `json:"confidence"`
	SuggestedReply string      `json:"suggested_reply"`
	NeedsHuman     bool        `json:"needs_human"`
}

// RawOutput is an untrusted decoded payload from a model gateway. It is
// expected to conform to Describe but must not be used before validation.
type RawOutput map[string]any

// Valid reports whether u is a member of the urgency enum.
func (u Urgency) Valid() bool {
	switch u {
	case UrgencyCritical, UrgencyHigh, UrgencyMedium, UrgencyLow:
		return true
	}
	return false
}

// Valid reports whether i is a member of the intent enum, including the
// fallback sentinel.
func (i Intent) Valid() bool {
	switch i {
	case IntentComplaint, IntentQuestion, IntentRequest, IntentFeedback, IntentBugReport, IntentUnknown:
		return true
	}
	return false
}

// Valid reports whether p is a member of the product area enum, including
// the fallback sentinel.
func (p ProductArea) Valid() bool {
	switch p {
	case AreaBilling, AreaTechnical, AreaOnboarding, AreaGeneral, AreaUnknown:
		return true
	}
	return false
}

// Fallback returns the conservative classification used when every model
// attempt has failed: nothing is claimed about the message beyond the forced
// escalation, and confidence zero keeps the escalation rule engaged.
func Fallback() Classification {
	return Classification{
		Urgency:        UrgencyLow,
		Intent:         IntentUnknown,
		ProductArea:    AreaUnknown,
		Language:       LanguageUndetermined,
		Confidence:     0,
		SuggestedReply: "",
		NeedsHuman:     true,
	}
}
