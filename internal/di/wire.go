//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"github.com/google/wire"

	"socialcopilot/internal/auth"
	"socialcopilot/internal/dbmysql"
	"socialcopilot/internal/generation"
	"socialcopilot/internal/post"
	"socialcopilot/internal/profile"
	"socialcopilot/internal/template"
)

// InitializeApplication wires the whole service graph; wire generates the
// real body in wire_gen.go.
func InitializeApplication(ctx context.Context) (*Application, error) {
	wire.Build(
		ProvideConfig,
		ProvideLogger,
		ProvideLLMConfig,
		ProvideLimiter,
		dbmysql.NewMySQL,
		auth.NewAccountRepository,
		auth.NewAuthService,
		auth.NewHandler,
		profile.NewProfileRepository,
		profile.NewProfileService,
		profile.NewHandler,
		post.NewPostRepository,
		post.NewPostService,
		post.NewHandler,
		template.NewTemplateRepository,
		template.NewTemplateService,
		template.NewHandler,
		generation.NewProviderFromConfig,
		generation.NewGenerationService,
		generation.NewHandler,
		wire.Struct(new(Application), "*"),
	)
	return &Application{}, nil
}
