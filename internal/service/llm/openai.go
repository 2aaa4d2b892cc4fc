package llm

import (
	"context"
	"fmt"

	"github.com/kapu/paderewski-ai-go/internal/util"
	apperrors "github.com/kapu/paderewski-ai-go/pkg/errors"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"go.uber.org/zap"
)

// OpenAIProvider wraps the chat completion client.
type OpenAIProvider struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

func NewOpenAIProvider(apiKey, model string, logger *zap.Logger, opts ...option.RequestOption) *OpenAIProvider {
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	client := openai.NewClient(opts...)
	return &OpenAIProvider{
		client: &client,
		model:  model,
		logger: util.OrNop(logger),
	}
}

func (o *OpenAIProvider) Name() string {
	return "OpenAI"
}

func (o *OpenAIProvider) Model() string {
	return o.model
}

func (o *OpenAIProvider) RetriesASCII() bool {
	return false
}

func (o *OpenAIProvider) Generate(ctx context.Context, req GenerateRequest) (ProviderResult, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if req.System != "" {
		messages = append(messages, openai.SystemMessage(req.System))
	}
	messages = append(messages, openai.UserMessage(req.User))

	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(o.model),
		Messages:    messages,
		Temperature: openai.Float(req.Temperature),
	}
	if req.MaxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(int64(req.MaxTokens))
	}

	o.logger.Debug("Generating with OpenAI", zap.String("model", o.model))

	resp, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return ProviderResult{}, apperrors.NewProviderError("openai: chat completion", o.Name(), "chat.completions.new", err)
	}

	if len(resp.Choices) == 0 {
		return ProviderResult{}, apperrors.NewProviderError("openai: chat completion", o.Name(), "chat.completions.new",
			fmt.Errorf("no choices in OpenAI response"))
	}

	text := resp.Choices[0].Message.Content

	o.logger.Debug("OpenAI response received",
		zap.Int("length", len(text)),
		zap.Int64("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int64("completion_tokens", resp.Usage.CompletionTokens))

	return ProviderResult{Text: text, Model: resp.Model}, nil
}
