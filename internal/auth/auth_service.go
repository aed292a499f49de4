package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"socialcopilot/internal/common"
	"socialcopilot/internal/dbmysql"
)

type AuthService interface {
	Signup(ctx context.Context, email, password, confirmPassword string) (*dbmysql.Account, string, error)
	Login(ctx context.Context, email, password string) (*dbmysql.Account, string, error)
	GetAccount(ctx context.Context, accountID uint64) (*dbmysql.Account, error)
}

type authService struct {
	accounts AccountRepository
}

func NewAuthService(accounts AccountRepository) AuthService {
	return &authService{accounts: accounts}
}

func (s *authService) Signup(ctx context.Context, email, password, confirmPassword string) (*dbmysql.Account, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if err := common.ValidateEmail(email); err != nil {
		return nil, "", err
	}
	if err := common.ValidatePassword(password); err != nil {
		return nil, "", err
	}
	if password != confirmPassword {
		return nil, "", fmt.Errorf("%w: passwords do not match", common.ErrInvalidRequest)
	}

	exists, err := s.accounts.CheckEmailExists(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", common.ErrPersistence, err)
	}
	if exists {
		return nil, "", fmt.Errorf("%w: email already registered", common.ErrInvalidRequest)
	}

	hashed, err := common.HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", common.ErrPersistence, err)
	}

	account := &dbmysql.Account{
		Email:        email,
		PasswordHash: hashed,
	}
	if err := s.accounts.CreateAccount(ctx, account); err != nil {
		return nil, "", fmt.Errorf("%w: %v", common.ErrPersistence, err)
	}

	token, err := common.GenerateToken(account.AccountID, account.Email)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", common.ErrPersistence, err)
	}

	return account, token, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*dbmysql.Account, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: email and password required", common.ErrInvalidRequest)
	}

	account, err := s.accounts.GetAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", fmt.Errorf("%w: invalid email or password", common.ErrUnauthorized)
		}
		return nil, "", fmt.Errorf("%w: %v", common.ErrPersistence, err)
	}

	if err := common.CheckPassword(password, account.PasswordHash); err != nil {
		return nil, "", fmt.Errorf("%w: invalid email or password", common.ErrUnauthorized)
	}

	token, err := common.GenerateToken(account.AccountID, account.Email)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", common.ErrPersistence, err)
	}

	return account, token, nil
}

func (s *authService) GetAccount(ctx context.Context, accountID uint64) (*dbmysql.Account, error) {
	account, err := s.accounts.GetAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: account not found", common.ErrNotFound)
		}
		return nil, fmt.Errorf("%w: %v", common.ErrPersistence, err)
	}
	return account, nil
}
