package auth

import (
	"context"

	"gorm.io/gorm"

	"socialcopilot/internal/dbmysql"
)

type AccountRepository interface {
	CreateAccount(ctx context.Context, account *dbmysql.Account) error
	GetAccountByEmail(ctx context.Context, email string) (*dbmysql.Account, error)
	GetAccountByID(ctx context.Context, accountID uint64) (*dbmysql.Account, error)
	CheckEmailExists(ctx context.Context, email string) (bool, error)
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) CreateAccount(ctx context.Context, account *dbmysql.Account) error {
	return r.db.WithContext(ctx).Create(account).Error
}

func (r *accountRepository) GetAccountByEmail(ctx context.Context, email string) (*dbmysql.Account, error) {
	var account dbmysql.Account
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) GetAccountByID(ctx context.Context, accountID uint64) (*dbmysql.Account, error) {
	var account dbmysql.Account
	err := r.db.WithContext(ctx).Where("account_id = ?", accountID).First(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&dbmysql.Account{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}
