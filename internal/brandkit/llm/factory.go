package llm

import (
	"context"
	"fmt"
	"time"
)

// DefaultGeminiModel replaces profile models when the provider is gemini and no
// model override is configured; built-in profiles name OpenAI models.
const DefaultGeminiModel = "gemini-2.5-flash"

// Config selects and configures a provider.
type Config struct {
	Provider string
	APIKey   string
	BaseURL  string
	// Model, when set, replaces the model named by the profile.
	Model   string
	Timeout time.Duration
}

// New builds the Generator for cfg.Provider. It is called once at startup.
func New(ctx context.Context, cfg Config) (Generator, error) {
	switch cfg.Provider {
	case ProviderOpenAI, "":
		if cfg.APIKey == "" {
			return nil, ErrNoAPIKey
		}
		c := NewOpenAIClient(OpenAIConfig{
			APIKey:  cfg.APIKey,
			BaseURL: cfg.BaseURL,
			Timeout: cfg.Timeout,
		})
		return withModel(c, cfg.Model), nil
	case ProviderGemini:
		c, err := NewGeminiClient(ctx, cfg.APIKey, cfg.Timeout)
		if err != nil {
			return nil, err
		}
		model := cfg.Model
		if model == "" {
			model = DefaultGeminiModel
		}
		return withModel(c, model), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrBadProvider, cfg.Provider)
	}
}

func withModel(g Generator, model string) Generator {
	if model == "" {
		return g
	}
	return modelOverride{next: g, model: model}
}

type modelOverride struct {
	next  Generator
	model string
}

func (m modelOverride) Generate(ctx context.Context, req Request) (string, error) {
	req.Model = m.model
	return m.next.Generate(ctx, req)
}
