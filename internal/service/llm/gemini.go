package llm

import (
	"context"
	"strings"

	"github.com/kapu/paderewski-ai-go/internal/util"
	apperrors "github.com/kapu/paderewski-ai-go/pkg/errors"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// GeminiProvider wraps the Gemini generate-content client.
type GeminiProvider struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

// NewGeminiProvider creates a Gemini API client. A non-empty baseURL
// overrides the API endpoint.
func NewGeminiProvider(ctx context.Context, apiKey, model string, logger *zap.Logger, baseURL ...string) (*GeminiProvider, error) {
	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if len(baseURL) > 0 && baseURL[0] != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL[0]}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &GeminiProvider{
		client: client,
		model:  model,
		logger: util.OrNop(logger),
	}, nil
}

func (g *GeminiProvider) Name() string {
	return "Gemini"
}

func (g *GeminiProvider) Model() string {
	return g.model
}

func (g *GeminiProvider) RetriesASCII() bool {
	return false
}

func (g *GeminiProvider) Generate(ctx context.Context, req GenerateRequest) (ProviderResult, error) {
	temperature := float32(req.Temperature)
	genConfig := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: int32(req.MaxTokens),
	}
	if req.System != "" {
		genConfig.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.System}},
		}
	}

	g.logger.Debug("Generating with Gemini", zap.String("model", g.model))

	resp, err := g.client.Models.GenerateContent(ctx, g.model, []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: req.User}},
		},
	}, genConfig)
	if err != nil {
		return ProviderResult{}, apperrors.NewProviderError("gemini: generate content", g.Name(), "models.generate_content", err)
	}

	text := extractTextFromGeminiResponse(resp)
	if text == "" {
		g.logger.Warn("Empty response from Gemini", zap.String("model", g.model))
	}

	g.logger.Debug("Gemini response received", zap.Int("length", len(text)))
	return ProviderResult{Text: text, Model: g.model}, nil
}

func extractTextFromGeminiResponse(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return ""
	}

	var texts []string
	for _, part := range candidate.Content.Parts {
		if part.Text != "" {
			texts = append(texts, part.Text)
		}
	}

	return strings.Join(texts, "")
}
