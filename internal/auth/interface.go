package auth

import (
	"context"
	"time"

	"vantage/pkg/domain"
)

// Token is an issued access token.
type Token struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"-"`
}

// Claims are the verified claims of an access token.
type Claims struct {
	UserID    domain.UserID
	JTI       string
	ExpiresAt time.Time
}

// Principal is an authenticated caller.
type Principal struct {
	User   domain.User
	Claims Claims
}

// Service authenticates users and manages their access tokens.
//
//go:generate mockgen -package mockauth -source=interface.go -destination=mock/mockauth.go *
type Service interface {
	// Login checks the credentials and issues a token.
	Login(ctx context.Context, email, password string) (*Token, error)
	// Authenticate verifies a raw token and loads its active user.
	Authenticate(ctx context.Context, rawToken string) (*Principal, error)
	// Refresh issues a fresh token for the user.
	Refresh(ctx context.Context, userID domain.UserID) (*Token, error)
	// Logout revokes the token described by claims until it expires.
	Logout(ctx context.Context, claims Claims) error
	// ChangePassword replaces the user's password after verifying the current one.
	ChangePassword(ctx context.Context, userID domain.UserID, current, next string) error
}
