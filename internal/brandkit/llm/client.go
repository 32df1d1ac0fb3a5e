package llm

import (
	"context"
	"errors"
	"time"
)

// Request is one blocking completion call.
type Request struct {
	System      string
	User        string
	Model       string
	Temperature float64
	MaxTokens   int
	// JSONMode asks the provider to constrain output to a JSON object when it supports it.
	JSONMode bool
}

// Generator returns the raw completion text for a request.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"

	DefaultTimeout = 120 * time.Second
)

var (
	ErrNoAPIKey    = errors.New("generation API key not configured")
	ErrEmptyOutput = errors.New("generation returned no content")
	ErrBadProvider = errors.New("unsupported generation provider")
)
