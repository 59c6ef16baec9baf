package adapter

import (
	"context"
	"fmt"

	"github.com/lluichi/ticket-classifier/pkg/schema"
	"google.golang.org/genai"
)

// GoogleAdapter implements the Adapter interface for Gemini models. It is
// the primary gateway: Gemini enforces the classification schema natively
// through structured output.
type GoogleAdapter struct {
	client *genai.Client
}

// NewGoogleAdapter creates a new Google Gemini adapter.
func NewGoogleAdapter(apiKey string) (*GoogleAdapter, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("google API key is required")
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create google client: %w", err)
	}

	return &GoogleAdapter{
		client: client,
	}, nil
}

// Name returns the adapter identifier.
func (a *GoogleAdapter) Name() string {
	return "google"
}

// Models returns the list of supported Gemini models.
func (a *GoogleAdapter) Models() []string {
	return []string{
		"gemini-2.0-flash",
		"gemini-2.0-pro",
	}
}

// ClassifyRaw sends one message to Gemini and returns the decoded payload.
func (a *GoogleAdapter) ClassifyRaw(ctx context.Context, model string, message string) (schema.RawOutput, error) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		Temperature:       genai.Ptr[float32](0.2),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    responseSchema(),
	}

	resp, err := a.client.Models.GenerateContent(ctx, model, genai.Text(message), cfg)
	if err != nil {
		return nil, transportErrf("google API error: %w", err)
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return nil, transportErrf("google returned no candidates")
	}

	var content string
	if resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if part.Text != "" {
				content += part.Text
			}
		}
	}

	return decodeStructured(content)
}

// responseSchema maps the classification contract onto a Gemini response
// schema so the provider constrains output shape server-side.
func responseSchema() *genai.Schema {
	properties := make(map[string]*genai.Schema)
	var required []string

	for _, field := range schema.Describe() {
		prop := &genai.Schema{
			Type:        genaiType(field.Type),
			Description: field.Description,
		}
		if len(field.Enum) > 0 {
			prop.Enum = field.Enum
		}
		properties[field.Name] = prop
		required = append(required, field.Name)
	}

	return &genai.Schema{
		Type:       genai.TypeObject,
		Properties: properties,
		Required:   required,
	}
}

func genaiType(t schema.FieldType) genai.Type {
	switch t {
	case schema.TypeNumber:
		return genai.TypeNumber
	case schema.TypeBoolean:
		return genai.TypeBoolean
	default:
		return genai.TypeString
	}
}
