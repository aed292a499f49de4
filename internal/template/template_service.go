package template

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"socialcopilot/internal/common"
	"socialcopilot/internal/dbmysql"
)

// SaveInput is the snapshot taken of a generated bundle. Templates are
// immutable after creation; only deletion is supported.
type SaveInput struct {
	Name      string
	Platform  common.Platform
	Objective common.Objective
	Topic     string
	Content   common.GeneratedContent
}

type TemplateService interface {
	SaveTemplate(ctx context.Context, accountID uint64, input SaveInput) (*dbmysql.SavedTemplate, error)
	ListTemplates(ctx context.Context, accountID uint64) ([]dbmysql.SavedTemplate, error)
	DeleteTemplate(ctx context.Context, templateID string, accountID uint64) error
}

type templateService struct {
	templates TemplateRepository
}

func NewTemplateService(templates TemplateRepository) TemplateService {
	return &templateService{templates: templates}
}

func (s *templateService) SaveTemplate(ctx context.Context, accountID uint64, input SaveInput) (*dbmysql.SavedTemplate, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: template name required", common.ErrInvalidRequest)
	}
	if len(name) > 200 {
		return nil, fmt.Errorf("%w: template name too long", common.ErrInvalidRequest)
	}
	if !input.Platform.IsValid() {
		return nil, fmt.Errorf("%w: unknown platform %q", common.ErrInvalidRequest, input.Platform)
	}
	if !input.Objective.IsValid() {
		return nil, fmt.Errorf("%w: unknown objective %q", common.ErrInvalidRequest, input.Objective)
	}

	tpl := &dbmysql.SavedTemplate{
		TemplateID: uuid.NewString(),
		AccountID:  accountID,
		Name:       name,
		Platform:   input.Platform.String(),
		Objective:  input.Objective.String(),
		Topic:      input.Topic,
		Hook:       input.Content.Hook,
		Body:       input.Content.Body,
		CTA:        input.Content.CTA,
		Tip:        input.Content.Tip,
		Hashtags:   input.Content.Hashtags,
	}
	if tpl.Hashtags == nil {
		tpl.Hashtags = []string{}
	}

	if err := s.templates.CreateTemplate(ctx, tpl); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrPersistence, err)
	}
	return tpl, nil
}

func (s *templateService) ListTemplates(ctx context.Context, accountID uint64) ([]dbmysql.SavedTemplate, error) {
	templates, err := s.templates.ListTemplates(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrPersistence, err)
	}
	return templates, nil
}

// DeleteTemplate mirrors post deletion: scoped by owner, silently succeeds
// when the row is already gone.
func (s *templateService) DeleteTemplate(ctx context.Context, templateID string, accountID uint64) error {
	if err := s.templates.DeleteTemplate(ctx, templateID, accountID); err != nil {
		return fmt.Errorf("%w: %v", common.ErrPersistence, err)
	}
	return nil
}
