package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInactiveAccount    = errors.New("account is inactive")
	ErrInvalidRefresh     = errors.New("invalid refresh token")
)

type Service struct {
	store      StoreAPI
	secret     string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewService(store StoreAPI, secret string, accessTTL, refreshTTL time.Duration) *Service {
	return &Service{store: store, secret: secret, accessTTL: accessTTL, refreshTTL: refreshTTL}
}

type LoginResult struct {
	Tokens  TokenPair
	Account Account
}

func (s *Service) Login(ctx context.Context, email, password string) (LoginResult, error) {
	account, err := s.store.AccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, err
	}
	if err := CheckPassword(account.PasswordHash, password); err != nil {
		return LoginResult{}, ErrInvalidCredentials
	}
	if !account.Active {
		return LoginResult{}, ErrInactiveAccount
	}

	access, err := GenerateToken(s.secret, Claims{UserID: account.ID, Role: account.Role}, s.accessTTL)
	if err != nil {
		return LoginResult{}, err
	}

	refresh := uuid.NewString()
	if err := s.store.InsertRefreshToken(ctx, refresh, account.ID, time.Now().Add(s.refreshTTL)); err != nil {
		return LoginResult{}, err
	}

	account.PasswordHash = ""
	return LoginResult{
		Tokens:  TokenPair{AccessToken: access, RefreshToken: refresh},
		Account: account,
	}, nil
}

func (s *Service) Refresh(ctx context.Context, refreshToken string) (string, error) {
	row, err := s.store.RefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return "", ErrInvalidRefresh
		}
		return "", err
	}
	if row.Revoked || time.Now().After(row.ExpiresAt) {
		return "", ErrInvalidRefresh
	}

	account, err := s.store.AccountByID(ctx, row.EmployeeID)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return "", ErrInvalidRefresh
		}
		return "", err
	}
	if !account.Active {
		return "", ErrInactiveAccount
	}

	return GenerateToken(s.secret, Claims{UserID: account.ID, Role: account.Role}, s.accessTTL)
}

func (s *Service) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return s.store.RevokeRefreshToken(ctx, refreshToken)
}
