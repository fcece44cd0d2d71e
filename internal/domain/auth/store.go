package auth

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type StoreAPI interface {
	AccountByEmail(ctx context.Context, email string) (Account, error)
	AccountByID(ctx context.Context, id string) (Account, error)
	InsertRefreshToken(ctx context.Context, token, employeeID string, expiresAt time.Time) error
	RefreshToken(ctx context.Context, token string) (RefreshTokenRow, error)
	RevokeRefreshToken(ctx context.Context, token string) error
	RevokeRefreshTokensFor(ctx context.Context, employeeID string) error
}

var ErrAccountNotFound = errors.New("account not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) AccountByEmail(ctx context.Context, email string) (Account, error) {
	return s.scanAccount(s.DB.QueryRow(ctx, `
    SELECT id, email, password_hash, role, active, first_name, last_name, page_access
    FROM employees
    WHERE lower(email) = lower($1)
  `, email))
}

func (s *Store) AccountByID(ctx context.Context, id string) (Account, error) {
	return s.scanAccount(s.DB.QueryRow(ctx, `
    SELECT id, email, password_hash, role, active, first_name, last_name, page_access
    FROM employees
    WHERE id = $1
  `, id))
}

func (s *Store) scanAccount(row pgx.Row) (Account, error) {
	var account Account
	var pageAccess []byte
	err := row.Scan(&account.ID, &account.Email, &account.PasswordHash, &account.Role, &account.Active, &account.FirstName, &account.LastName, &pageAccess)
	if errors.Is(err, pgx.ErrNoRows) {
		return Account{}, ErrAccountNotFound
	}
	if err != nil {
		return Account{}, err
	}
	if len(pageAccess) > 0 {
		var access PageAccess
		if err := json.Unmarshal(pageAccess, &access); err == nil {
			account.PageAccess = &access
		}
	}
	return account, nil
}

func (s *Store) InsertRefreshToken(ctx context.Context, token, employeeID string, expiresAt time.Time) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO refresh_tokens (token, employee_id, expires_at)
    VALUES ($1,$2,$3)
  `, token, employeeID, expiresAt)
	return err
}

func (s *Store) RefreshToken(ctx context.Context, token string) (RefreshTokenRow, error) {
	var row RefreshTokenRow
	err := s.DB.QueryRow(ctx, `
    SELECT token, employee_id, expires_at, revoked
    FROM refresh_tokens
    WHERE token = $1
  `, token).Scan(&row.Token, &row.EmployeeID, &row.ExpiresAt, &row.Revoked)
	if errors.Is(err, pgx.ErrNoRows) {
		return RefreshTokenRow{}, ErrAccountNotFound
	}
	return row, err
}

func (s *Store) RevokeRefreshToken(ctx context.Context, token string) error {
	_, err := s.DB.Exec(ctx, "UPDATE refresh_tokens SET revoked = true WHERE token = $1", token)
	return err
}

func (s *Store) RevokeRefreshTokensFor(ctx context.Context, employeeID string) error {
	_, err := s.DB.Exec(ctx, "UPDATE refresh_tokens SET revoked = true WHERE employee_id = $1", employeeID)
	return err
}

// HasPermission satisfies the transport permission middleware. Role grants
// are static; office accounts are further narrowed by their stored page
// access.
func (s *Store) HasPermission(ctx context.Context, userID, role, permission string) (bool, error) {
	if !RoleHasPermission(role, permission) {
		return false, nil
	}
	if role != RoleOffice {
		return true, nil
	}
	account, err := s.AccountByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return false, nil
		}
		return false, err
	}
	if account.PageAccess == nil {
		return true, nil
	}
	return pageAllows(*account.PageAccess, permission), nil
}
