package adapter

import (
	"context"
	"fmt"

	"github.com/lluichi/ticket-classifier/pkg/schema"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIAdapter implements the Adapter interface for OpenAI models, using
// the same prompt-rendered schema contract as the Anthropic gateway.
type OpenAIAdapter struct {
	apiKey string
	client openai.Client
}

// NewOpenAIAdapter creates a new OpenAI adapter. The key is wired into the
// client explicitly so file-configured credentials work without the SDK's
// env var.
func NewOpenAIAdapter(apiKey string) (*OpenAIAdapter, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai API key is required")
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIAdapter{apiKey: apiKey, client: client}, nil
}

// Name returns the adapter identifier.
func (a *OpenAIAdapter) Name() string {
	return "openai"
}

// Models returns the list of supported OpenAI models.
func (a *OpenAIAdapter) Models() []string {
	return []string{
		"gpt-4o-mini",
		"gpt-4o",
	}
}

// ClassifyRaw sends one message to OpenAI and returns the decoded payload.
func (a *OpenAIAdapter) ClassifyRaw(ctx context.Context, model string, message string) (schema.RawOutput, error) {
	resp, err := a.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(buildSchemaInstructions()),
			openai.UserMessage(message),
		},
		MaxCompletionTokens: openai.Int(1024),
	})
	if err != nil {
		return nil, transportErrf("openai API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, transportErrf("openai returned no choices")
	}

	return decodeStructured(resp.Choices[0].Message.Content)
}
