package auth

import "time"

// UserContext is the authenticated caller attached to request context.
type UserContext struct {
	UserID string
	Role   string
}

type Account struct {
	ID           string
	Email        string
	PasswordHash string
	Role         string
	Active       bool
	FirstName    string
	LastName     string
	PageAccess   *PageAccess
}

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type RefreshTokenRow struct {
	Token      string
	EmployeeID string
	ExpiresAt  time.Time
	Revoked    bool
}
