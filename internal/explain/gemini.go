package explain

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

// geminiModels maps friendly names to Gemini model IDs.
var geminiModels = map[string]string{
	"gemini-flash": "gemini-2.0-flash",
	"gemini-pro":   "gemini-2.0-pro",
}

// GeminiExplainer implements Explainer using the Google Gemini SDK.
type GeminiExplainer struct {
	client *genai.Client
	model  string
}

// NewGeminiExplainer creates a new Gemini-backed explainer.
func NewGeminiExplainer(ctx context.Context, cfg GeminiConfig) (*GeminiExplainer, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	return &GeminiExplainer{
		client: client,
		model:  resolveModel(cfg.Model, geminiModels),
	}, nil
}

func (p *GeminiExplainer) Explain(ctx context.Context, req Request) (string, error) {
	prompt, err := buildPrompt(req)
	if err != nil {
		return "", err
	}

	config := &genai.GenerateContentConfig{
		MaxOutputTokens: maxExplainTokens,
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		},
	}

	contents := []*genai.Content{
		{Role: "user", Parts: []*genai.Part{{Text: prompt}}},
	}

	result, err := p.client.Models.GenerateContent(ctx, p.model, contents, config)
	if err != nil {
		return "", mapGeminiError(err)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", &ErrEmptyResponse{Model: p.model}
	}
	return text, nil
}

func (p *GeminiExplainer) ModelID() string {
	return p.model
}

func mapGeminiError(err error) error {
	var apiErr *genai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Code == http.StatusTooManyRequests {
			return &ErrRateLimit{Err: err}
		}
	}
	return &ErrUnavailable{Err: err}
}
