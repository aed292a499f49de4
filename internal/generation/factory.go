package generation

import (
	"context"

	"go.uber.org/zap"

	"socialcopilot/internal/config"
)

// NewProviderFromConfig selects the provider implementation at wiring time.
// A missing API key returns nil instead of failing startup; the service
// surfaces ProviderUnavailable per call so the rest of the API keeps working.
func NewProviderFromConfig(ctx context.Context, cfg *config.LLMConfig, logger *zap.Logger) Provider {
	if cfg.APIKey == "" {
		logger.Warn("LLM_API_KEY not set, generation disabled")
		return nil
	}

	switch cfg.Provider {
	case "gemini":
		p, err := NewGeminiProvider(ctx, cfg)
		if err != nil {
			logger.Error("gemini provider init failed", zap.Error(err))
			return nil
		}
		return p
	case "openrouter", "openai", "":
		return NewOpenAIProvider(cfg)
	default:
		logger.Error("unknown LLM provider", zap.String("provider", cfg.Provider))
		return nil
	}
}
