package llm

import (
	"context"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/kapu/paderewski-ai-go/internal/util"
	apperrors "github.com/kapu/paderewski-ai-go/pkg/errors"
	"go.uber.org/zap"
)

// AnthropicProvider calls the Messages API.
type AnthropicProvider struct {
	client sdk.Client
	model  string
	logger *zap.Logger
}

func NewAnthropicProvider(apiKey, model string, logger *zap.Logger, opts ...option.RequestOption) *AnthropicProvider {
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	return &AnthropicProvider{
		client: sdk.NewClient(opts...),
		model:  model,
		logger: util.OrNop(logger),
	}
}

func (a *AnthropicProvider) Name() string {
	return "Anthropic"
}

func (a *AnthropicProvider) Model() string {
	return a.model
}

func (a *AnthropicProvider) RetriesASCII() bool {
	return true
}

func (a *AnthropicProvider) Generate(ctx context.Context, req GenerateRequest) (ProviderResult, error) {
	params := sdk.MessageNewParams{
		Model:     sdk.Model(a.model),
		MaxTokens: int64(req.MaxTokens),
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(req.User)),
		},
		Temperature: sdk.Float(req.Temperature),
	}
	if req.System != "" {
		params.System = []sdk.TextBlockParam{{Text: req.System}}
	}

	a.logger.Debug("Generating with Anthropic",
		zap.String("model", a.model),
		zap.Int("prompt_length", len(req.User)))

	msg, err := a.client.Messages.New(ctx, params)
	if err != nil {
		return ProviderResult{}, apperrors.NewProviderError("anthropic: create message", a.Name(), "messages.new", err)
	}

	var text strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}

	a.logger.Debug("Anthropic response received",
		zap.Int("length", text.Len()),
		zap.Int64("input_tokens", msg.Usage.InputTokens),
		zap.Int64("output_tokens", msg.Usage.OutputTokens))

	return ProviderResult{Text: text.String(), Model: string(msg.Model)}, nil
}
