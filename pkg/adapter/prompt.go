package adapter

import (
	"fmt"
	"strings"

	"github.com/lluichi/ticket-classifier/pkg/schema"
)

// systemPrompt instructs the model on its classification role. The caller's
// message is sent as the user content unchanged. The escalation criteria
// here are advisory; deterministic code has the last word on needs_human.
const systemPrompt = `You are a B2B SaaS customer support classifier.
Analyze each ticket and classify it accurately.
For suggested_reply: write a professional, empathetic response.
Set needs_human=true if: urgency is critical, confidence < 0.7,
or the issue requires account-specific investigation.`

// buildSchemaInstructions renders the schema contract as prompt text for
// providers without native structured-output support.
func buildSchemaInstructions() string {
	var sb strings.Builder
	sb.WriteString(systemPrompt)
	sb.WriteString("\n\nReturn ONLY a JSON object with exactly these fields:\n")

	for _, field := range schema.Describe() {
		sb.WriteString(fmt.Sprintf("- %q (%s)", field.Name, field.Type))
		if len(field.Enum) > 0 {
			sb.WriteString(fmt.Sprintf(", one of: %s", strings.Join(field.Enum, ", ")))
		}
		if field.Description != "" {
			sb.WriteString(" — " + field.Description)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\nNo prose, no markdown fences, JSON only.")
	return sb.String()
}
