package enrich

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// maxCompletionTokens bounds every OpenAI completion.
const maxCompletionTokens = 2000

// OpenAIClient implements Client for OpenAI chat models.
type OpenAIClient struct {
	client *openai.Client
	config *ClientConfig
}

// NewOpenAIClient creates a new OpenAI client.
func NewOpenAIClient(config *ClientConfig, apiKey string) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		config: config,
	}, nil
}

// GenerateContent generates text content using the specified model tier.
func (c *OpenAIClient) GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	return c.complete(ctx, prompt, tier, "")
}

// GenerateJSON generates JSON content using the specified model tier.
func (c *OpenAIClient) GenerateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	text, err := c.complete(ctx, prompt, tier, openai.ChatCompletionResponseFormatTypeJSONObject)
	if err != nil {
		return "", err
	}
	return CleanJSONBlock(text), nil
}

func (c *OpenAIClient) complete(ctx context.Context, prompt string, tier ModelTier, format openai.ChatCompletionResponseFormatType) (string, error) {
	modelName := c.config.GetModel(tier)
	if modelName == "" {
		return "", fmt.Errorf("no model configured for tier %s", tier)
	}

	req := openai.ChatCompletionRequest{
		Model: modelName,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		MaxTokens:   maxCompletionTokens,
		Temperature: 0.1, // Low temperature for consistent output
	}
	if format != "" {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{Type: format}
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	return resp.Choices[0].Message.Content, nil
}

// GetModel returns the model name for a tier.
func (c *OpenAIClient) GetModel(tier ModelTier) string {
	return c.config.GetModel(tier)
}

// Close releases resources held by the client.
func (c *OpenAIClient) Close() error {
	return nil
}
