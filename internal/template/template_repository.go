package template

import (
	"context"

	"gorm.io/gorm"

	"socialcopilot/internal/dbmysql"
)

type TemplateRepository interface {
	CreateTemplate(ctx context.Context, tpl *dbmysql.SavedTemplate) error
	ListTemplates(ctx context.Context, accountID uint64) ([]dbmysql.SavedTemplate, error)
	DeleteTemplate(ctx context.Context, templateID string, accountID uint64) error
}

type templateRepository struct {
	db *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) TemplateRepository {
	return &templateRepository{db: db}
}

func (r *templateRepository) CreateTemplate(ctx context.Context, tpl *dbmysql.SavedTemplate) error {
	return r.db.WithContext(ctx).Create(tpl).Error
}

func (r *templateRepository) ListTemplates(ctx context.Context, accountID uint64) ([]dbmysql.SavedTemplate, error) {
	var templates []dbmysql.SavedTemplate
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&templates).Error
	return templates, err
}

func (r *templateRepository) DeleteTemplate(ctx context.Context, templateID string, accountID uint64) error {
	return r.db.WithContext(ctx).
		Where("template_id = ? AND account_id = ?", templateID, accountID).
		Delete(&dbmysql.SavedTemplate{}).Error
}
