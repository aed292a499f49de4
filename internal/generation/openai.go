package generation

import (
	"context"
	"fmt"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"socialcopilot/internal/common"
	"socialcopilot/internal/config"
)

// OpenAIProvider talks to any chat-completions-compatible endpoint; with the
// default base URL that is OpenRouter.
type OpenAIProvider struct {
	model string
	opts  []option.RequestOption
}

func NewOpenAIProvider(cfg *config.LLMConfig) *OpenAIProvider {
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &OpenAIProvider{model: cfg.Model, opts: opts}
}

func (o *OpenAIProvider) Complete(ctx context.Context, prompt Prompt) (string, error) {
	client := openai.NewClient(o.opts...)

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(prompt.System),
			openai.UserMessage(prompt.User),
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrProviderUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty choices", common.ErrProviderUnavailable)
	}
	return resp.Choices[0].Message.Content, nil
}
