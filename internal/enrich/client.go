// Package enrich provides the enrichment gateway and its LLM client
// abstraction. The gateway structures scraped text, supplies background-
// knowledge fallbacks, and synthesizes narratives; every operation returns a
// typed default on failure so callers never special-case errors.
package enrich

import (
	"context"
	"fmt"
)

// ModelTier represents the complexity/capability level of a model.
type ModelTier string

const (
	// TierLite is for simple tasks: post summarization, justification text.
	TierLite ModelTier = "lite"
	// TierStandard is for moderate reasoning: structuring scraped content.
	TierStandard ModelTier = "standard"
	// TierAdvanced is for recall-heavy tasks: knowledge fallback, synthesis.
	TierAdvanced ModelTier = "advanced"
)

// Provider represents an LLM provider.
type Provider string

// Provider constants define supported LLM providers.
const (
	// ProviderGemini is the Google Gemini provider.
	ProviderGemini Provider = "gemini"
	// ProviderOpenAI is the OpenAI provider.
	ProviderOpenAI Provider = "openai"
)

// Client is an abstraction over LLM providers.
type Client interface {
	// GenerateContent generates text content using the specified model tier
	GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error)
	// GenerateJSON generates JSON content using the specified model tier
	GenerateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error)
	// GetModel returns the underlying provider model for a tier
	GetModel(tier ModelTier) string
	// Close releases any resources held by the client
	Close() error
}

// ClientConfig holds the model configuration for a client.
type ClientConfig struct {
	Provider Provider
	Models   map[ModelTier]string
}

// DefaultClientConfig returns the configuration for a provider name.
func DefaultClientConfig(provider string) *ClientConfig {
	if Provider(provider) == ProviderOpenAI {
		return DefaultOpenAIConfig()
	}
	return DefaultGeminiConfig()
}

// DefaultGeminiConfig returns the default Gemini configuration.
func DefaultGeminiConfig() *ClientConfig {
	return &ClientConfig{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
	}
}

// DefaultOpenAIConfig returns the default OpenAI configuration.
func DefaultOpenAIConfig() *ClientConfig {
	return &ClientConfig{
		Provider: ProviderOpenAI,
		Models: map[ModelTier]string{
			TierLite:     "gpt-4o-mini",
			TierStandard: "gpt-4o-mini",
			TierAdvanced: "gpt-4o",
		},
	}
}

// GetModel returns the model name for a given tier.
func (c *ClientConfig) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	// Fallback chain: try standard, then lite
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}

// NewClient creates a new LLM client based on configuration.
func NewClient(ctx context.Context, config *ClientConfig, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultGeminiConfig()
	}

	switch config.Provider {
	case ProviderOpenAI:
		return NewOpenAIClient(config, apiKey)
	case ProviderGemini:
		return NewGeminiClient(ctx, config, apiKey)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", config.Provider)
	}
}
