package llm

import (
	"context"
	"fmt"

	"github.com/kapu/paderewski-ai-go/internal/config"
	"go.uber.org/zap"
)

// GenerateRequest is a single system + user text completion.
type GenerateRequest struct {
	System      string
	User        string
	Temperature float64
	MaxTokens   int
}

type ProviderResult struct {
	Text  string
	Model string
}

// Provider is one language-model vendor.
type Provider interface {
	// Name is the display name used in error rationales.
	Name() string
	Model() string
	Generate(ctx context.Context, req GenerateRequest) (ProviderResult, error)
	// RetriesASCII reports whether an empty parse is retried once with a
	// diacritic-free prompt.
	RetriesASCII() bool
}

// NewProvider builds the configured provider. It returns nil when no provider
// is selected or its API key is missing; callers then use the non-LLM fallback.
func NewProvider(ctx context.Context, cfg *config.Config, logger *zap.Logger) (Provider, error) {
	model := ResolveModelID(cfg.LLM.Provider, cfg.LLM.Model)

	switch cfg.LLM.Provider {
	case config.ProviderAnthropic:
		if cfg.Anthropic.APIKey == "" {
			logger.Warn("Anthropic selected but ANTHROPIC_API_KEY is empty, using fallback")
			return nil, nil
		}
		return NewAnthropicProvider(cfg.Anthropic.APIKey, model, logger), nil
	case config.ProviderOpenAI:
		if cfg.OpenAI.APIKey == "" {
			logger.Warn("OpenAI selected but OPENAI_API_KEY is empty, using fallback")
			return nil, nil
		}
		return NewOpenAIProvider(cfg.OpenAI.APIKey, model, logger), nil
	case config.ProviderGemini:
		if cfg.Gemini.APIKey == "" {
			logger.Warn("Gemini selected but GEMINI_API_KEY is empty, using fallback")
			return nil, nil
		}
		p, err := NewGeminiProvider(ctx, cfg.Gemini.APIKey, model, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini provider: %w", err)
		}
		return p, nil
	default:
		logger.Info("No LLM provider configured, using fallback")
		return nil, nil
	}
}
