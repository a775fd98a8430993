package explain

import (
	"fmt"
	"os"
)

// maxExplainTokens caps the response length for every provider.
const maxExplainTokens = 512

// Config holds explanation provider configuration.
type Config struct {
	// Provider selects which backend to use.
	// Values: "anthropic", "openai", "gemini", "mock", "" (disabled)
	Provider string

	Anthropic AnthropicConfig
	OpenAI    OpenAIConfig
	Gemini    GeminiConfig
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional. Override for compatible APIs.
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// DefaultConfig returns a Config with sensible defaults.
// The provider is left empty: explanations are opt-in.
func DefaultConfig() Config {
	return Config{
		Anthropic: AnthropicConfig{Model: "claude-haiku"},
		OpenAI:    OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:    GeminiConfig{Model: "gemini-flash"},
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("QUIZDECK_EXPLAIN_PROVIDER"); p != "" {
		cfg.Provider = p
	}

	if k := os.Getenv("QUIZDECK_ANTHROPIC_API_KEY"); k != "" {
		cfg.Anthropic.APIKey = k
	}
	if m := os.Getenv("QUIZDECK_ANTHROPIC_MODEL"); m != "" {
		cfg.Anthropic.Model = m
	}

	if k := os.Getenv("QUIZDECK_OPENAI_API_KEY"); k != "" {
		cfg.OpenAI.APIKey = k
	}
	if m := os.Getenv("QUIZDECK_OPENAI_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}
	if u := os.Getenv("QUIZDECK_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}

	if k := os.Getenv("QUIZDECK_GEMINI_API_KEY"); k != "" {
		cfg.Gemini.APIKey = k
	}
	if m := os.Getenv("QUIZDECK_GEMINI_MODEL"); m != "" {
		cfg.Gemini.Model = m
	}

	// Without an explicit provider, probe the standard key env vars so a
	// machine already set up for one of the SDKs works out of the box.
	if cfg.Provider == "" {
		switch {
		case cfg.Gemini.APIKey != "" || os.Getenv("GEMINI_API_KEY") != "":
			cfg.Provider = "gemini"
			if cfg.Gemini.APIKey == "" {
				cfg.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
			}
		case cfg.OpenAI.APIKey != "" || os.Getenv("OPENAI_API_KEY") != "":
			cfg.Provider = "openai"
			if cfg.OpenAI.APIKey == "" {
				cfg.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
			}
		case cfg.Anthropic.APIKey != "" || os.Getenv("ANTHROPIC_API_KEY") != "":
			cfg.Provider = "anthropic"
			if cfg.Anthropic.APIKey == "" {
				cfg.Anthropic.APIKey = os.Getenv("ANTHROPIC_API_KEY")
			}
		}
	}

	return cfg
}

// Enabled reports whether an explanation provider is configured.
func (c Config) Enabled() bool {
	return c.Provider != ""
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "":
		// Disabled.
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("QUIZDECK_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("QUIZDECK_OPENAI_API_KEY is required for the openai provider")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("QUIZDECK_GEMINI_API_KEY is required for the gemini provider")
		}
	case "mock":
		// No API key needed.
	default:
		return fmt.Errorf("unknown explanation provider: %q", c.Provider)
	}
	return nil
}
