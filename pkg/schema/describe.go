package schema

// FieldType is the JSON type expected for a field value.
type FieldType string

const (
	TypeString  FieldType = "string"
	TypeNumber  FieldType = "number"
	TypeBoolean FieldType = "boolean"
)

// FieldSpec describes one required field of a classification payload.
type FieldSpec struct {
	Name        string
	Type        FieldType
	Enum        []string
	Description string
}

// Describe returns the field descriptors for a classification payload, in
// validation order. Enum lists contain only model-facing values; fallback
// sentinels are deliberately absent so providers never emit them.
func Describe() []FieldSpec {
	return []FieldSpec{
		{
			Name: "urgency",
			Type: TypeString,
			Enum: []string{
				string(UrgencyCritical),
				string(UrgencyHigh),
				string(UrgencyMedium),
				string(UrgencyLow),
			},
			Description: "Urgency level of the ticket",
		},
		{
			Name: "intent",
			Type: TypeString,
			Enum: []string{
				string(IntentComplaint),
				string(IntentQuestion),
				string(IntentRequest),
				string(IntentFeedback),
				string(IntentBugReport),
			},
			Description: "Primary intent of the message",
		},
		{
			Name: "product_area",
			Type: TypeString,
			Enum: []string{
				string(AreaBilling),
				string(AreaTechnical),
				string(AreaOnboarding),
				string(AreaGeneral),
			},
			Description: "Product area the ticket concerns",
		},
		{
			Name:        "language",
			Type:        TypeString,
			Description: "Detected language as a two-letter ISO 639-1 code",
		},
		{
			Name:        "confidence",
			Type:        TypeNumber,
			Description: "Classification confidence between 0 and 1",
		},
		{
			Name:        "suggested_reply",
			Type:        TypeString,
			Description: "Draft reply for the customer",
		},
		{
			Name:        "needs_human",
			Type:        TypeBoolean,
			Description: "Whether human review is needed",
		},
	}
}
