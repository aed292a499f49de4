package generation

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"socialcopilot/internal/common"
)

// GenerateRequest is transient: it is never persisted, only turned into a
// prompt. The profile, when present, comes from the request body.
type GenerateRequest struct {
	Platform  common.Platform        `json:"platform"`
	Objective common.Objective       `json:"objective"`
	Topic     string                 `json:"topic"`
	Profile   *common.CreatorProfile `json:"creatorProfile,omitempty"`
}

type GenerationService interface {
	Generate(ctx context.Context, accountID uint64, req GenerateRequest) (*common.GeneratedContent, error)
}

type generationService struct {
	provider Provider
	limiter  *AccountLimiter
	logger   *zap.Logger
}

func NewGenerationService(provider Provider, limiter *AccountLimiter, logger *zap.Logger) GenerationService {
	return &generationService{provider: provider, limiter: limiter, logger: logger}
}

// Generate runs the whole pipeline: validate (free), check quota (before any
// provider spend), compose, execute, parse. Nothing is retried here; a retry
// is a new client call.
func (s *generationService) Generate(ctx context.Context, accountID uint64, req GenerateRequest) (*common.GeneratedContent, error) {
	prompt, err := ComposePrompt(req.Platform, req.Objective, req.Topic, req.Profile)
	if err != nil {
		return nil, err
	}

	if !s.limiter.Allow(accountID) {
		return nil, fmt.Errorf("%w: generation quota exceeded", common.ErrRateLimited)
	}

	if s.provider == nil {
		return nil, fmt.Errorf("%w: no provider configured", common.ErrProviderUnavailable)
	}

	raw, err := s.provider.Complete(ctx, prompt)
	if err != nil {
		s.logWarn("provider call failed", accountID, err)
		return nil, err
	}

	content, err := ParseGeneratedContent(raw)
	if err != nil {
		s.logWarn("unusable provider payload", accountID, err)
		return nil, err
	}
	return content, nil
}

func (s *generationService) logWarn(msg string, accountID uint64, err error) {
	if s.logger != nil {
		s.logger.Warn(msg, zap.Uint64("account_id", accountID), zap.Error(err))
	}
}
