package perception

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiUpstream implements Upstream using the Google GenAI SDK.
type GeminiUpstream struct {
	client *genai.Client
	model  string
}

// NewGeminiUpstream creates a Gemini-backed upstream source.
func NewGeminiUpstream(ctx context.Context, apiKey, model string) (*GeminiUpstream, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GeminiUpstream{client: client, model: model}, nil
}

// Generate sends the prompt and returns the raw model text.
func (g *GeminiUpstream) Generate(ctx context.Context, prompt string, ops []OperationSpec) (string, error) {
	result, err := g.client.Models.GenerateContent(ctx,
		g.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			Temperature: genai.Ptr[float32](0),
		},
	)
	if err != nil {
		return "", fmt.Errorf("GenAI generate failed: %w", err)
	}

	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("no text in response")
	}
	return text, nil
}
