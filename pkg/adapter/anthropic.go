package adapter

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/lluichi/ticket-classifier/pkg/schema"
)

// AnthropicAdapter implements the Adapter interface for Claude models.
// Claude has no server-side response schema here, so the contract is
// rendered into the system prompt and the reply is decoded as JSON.
type AnthropicAdapter struct {
	apiKey string
	client anthropic.Client
}

// NewAnthropicAdapter creates a new Anthropic adapter. The key is wired
// into the client explicitly so file-configured credentials work without
// the SDK's env var.
func NewAnthropicAdapter(apiKey string) (*AnthropicAdapter, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("anthropic API key is required")
	}

	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &AnthropicAdapter{apiKey: apiKey, client: client}, nil
}

// Name returns the adapter identifier.
func (a *AnthropicAdapter) Name() string {
	return "anthropic"
}

// Models returns the list of supported Claude models.
func (a *AnthropicAdapter) Models() []string {
	return []string{
		"claude-sonnet-4-20250514",
		"claude-opus-4-20250514",
	}
}

// ClassifyRaw sends one message to Claude and returns the decoded payload.
func (a *AnthropicAdapter) ClassifyRaw(ctx context.Context, model string, message string) (schema.RawOutput, error) {
	resp, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: 1024,
		System: []anthropic.TextBlockParam{
			{Text: buildSchemaInstructions()},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(message)),
		},
	})
	if err != nil {
		return nil, transportErrf("anthropic API error: %w", err)
	}

	var content string
	for _, block := range resp.Content {
		if block.Type == "text" {
			content += block.Text
		}
	}

	return decodeStructured(content)
}
