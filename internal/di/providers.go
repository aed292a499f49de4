package di

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"socialcopilot/internal/auth"
	"socialcopilot/internal/config"
	"socialcopilot/internal/generation"
	"socialcopilot/internal/post"
	"socialcopilot/internal/profile"
	"socialcopilot/internal/template"
)

// Application bundles everything cmd/server needs to assemble routes.
type Application struct {
	Config            *config.Config
	DB                *gorm.DB
	Logger            *zap.Logger
	AuthHandler       *auth.Handler
	GenerationHandler *generation.Handler
	PostHandler       *post.Handler
	ProfileHandler    *profile.Handler
	TemplateHandler   *template.Handler
}

func ProvideConfig() *config.Config {
	return config.Load()
}

func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Server.Environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func ProvideLLMConfig(cfg *config.Config) *config.LLMConfig {
	return &cfg.LLM
}

func ProvideLimiter(cfg *config.Config) *generation.AccountLimiter {
	return generation.NewAccountLimiter(cfg.LLM.RatePerMinute, time.Minute)
}
