package domain

import (
	"errors"
	"time"
)

const RoleAdmin = "admin"

var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidToken covers every token verification failure: malformed,
// tampered, or expired. Callers must not distinguish the reason.
var ErrInvalidToken = errors.New("invalid token")

// User models an operator allowed into the dashboard.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SessionClaims is the verified payload of a session token.
type SessionClaims struct {
	UserID    string
	Email     string
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
