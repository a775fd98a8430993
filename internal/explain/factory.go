package explain

import (
	"context"
	"fmt"
)

// New creates an Explainer from configuration. It returns (nil, nil)
// when no provider is configured: explanations are an optional feature.
func New(ctx context.Context, cfg Config) (Explainer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Provider {
	case "":
		return nil, nil
	case "anthropic":
		return NewAnthropicExplainer(cfg.Anthropic)
	case "openai":
		return NewOpenAIExplainer(cfg.OpenAI)
	case "gemini":
		return NewGeminiExplainer(ctx, cfg.Gemini)
	case "mock":
		return NewMockExplainer(), nil
	default:
		return nil, fmt.Errorf("unknown explanation provider: %q", cfg.Provider)
	}
}
