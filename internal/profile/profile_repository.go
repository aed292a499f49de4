package profile

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"socialcopilot/internal/dbmysql"
)

type ProfileRepository interface {
	ReplaceProfile(ctx context.Context, profile *dbmysql.CreatorProfile) error
	GetProfileByAccount(ctx context.Context, accountID uint64) (*dbmysql.CreatorProfile, error)
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// ReplaceProfile upserts on the account_id unique index: one current profile
// per account, saving replaces rather than appends.
func (r *profileRepository) ReplaceProfile(ctx context.Context, profile *dbmysql.CreatorProfile) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "account_id"}},
			UpdateAll: true,
		}).
		Create(profile).Error
}

func (r *profileRepository) GetProfileByAccount(ctx context.Context, accountID uint64) (*dbmysql.CreatorProfile, error) {
	var profile dbmysql.CreatorProfile
	err := r.db.WithContext(ctx).Where("account_id = ?", accountID).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
