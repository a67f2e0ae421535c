package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"travelguide/internal/models/db_models"
	"travelguide/internal/models/request_models"
	"travelguide/internal/models/response_models"
	"travelguide/internal/repositories"
	mem "travelguide/pkg/memcache"
	"travelguide/pkg/utils"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.RegisterRequest) (*response_models.AccountResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error)
	Logout(tokenID string, expiresAt time.Time)
	Me(ctx context.Context, userID uuid.UUID) (*response_models.AccountResponse, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	tokens      *utils.TokenIssuer
	revoked     mem.RevokedTokenStore
}

func NewAccountService(accountRepo repositories.AccountRepository, tokens *utils.TokenIssuer, revoked mem.RevokedTokenStore) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		tokens:      tokens,
		revoked:     revoked,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (a *AccountService) Register(ctx context.Context, request request_models.RegisterRequest) (*response_models.AccountResponse, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, err
	}
	email := normalizeEmail(request.Email)

	existingAccount, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.DatabaseError(err)
	}
	if existingAccount != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, err
	}

	newAccount := &db_models.Account{
		Name:         strings.TrimSpace(request.Name),
		Email:        email,
		PasswordHash: hashedPassword,
	}

	if err := a.accountRepo.InsertTx(ctx, newAccount); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrEmailAlreadyExists
		}
		return nil, utils.DatabaseError(err)
	}

	logrus.WithField("account_id", newAccount.ID).Info("account registered")
	resp := toAccountResponse(*newAccount)
	return &resp, nil
}

// Login answers ErrInvalidCredentials for an unknown email and for a wrong
// password alike.
func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, err
	}

	account, err := a.accountRepo.FindByEmail(ctx, normalizeEmail(request.Email))
	if err != nil {
		return nil, utils.DatabaseError(err)
	}
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, claims, err := a.tokens.CreateToken(account.ID, account.Name)
	if err != nil {
		return nil, err
	}

	return &response_models.AccountLoginResponse{
		Token:     token,
		ExpiresAt: utils.FormatRFC3339(claims.ExpiresAt.Time),
		User:      toAccountResponse(*account),
	}, nil
}

func (a *AccountService) Logout(tokenID string, expiresAt time.Time) {
	a.revoked.Revoke(tokenID, expiresAt)
}

func (a *AccountService) Me(ctx context.Context, userID uuid.UUID) (*response_models.AccountResponse, error) {
	account, err := a.accountRepo.FindById(ctx, userID)
	if err != nil {
		return nil, utils.DatabaseError(err)
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	resp := toAccountResponse(*account)
	return &resp, nil
}
