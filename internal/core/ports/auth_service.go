package ports

import (
	"context"

	"github.com/gkbjregency/membership-system/internal/core/domain"
)

// AuthService authenticates operators and gates every protected operation.
type AuthService interface {
	// Login verifies credentials and issues a signed session token. Unknown
	// email and wrong password fail identically with ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// VerifyToken checks signature and expiry. Stateless; safe for
	// concurrent use. Any failure means the caller is unauthorized.
	VerifyToken(token string) (*domain.SessionClaims, error)
	// SeedAdmin upserts the admin account so a fresh deployment can log in.
	SeedAdmin(ctx context.Context, email, password, name string) error
}

// TokenVerifier is the subset of AuthService the HTTP middleware needs.
type TokenVerifier interface {
	VerifyToken(token string) (*domain.SessionClaims, error)
}
