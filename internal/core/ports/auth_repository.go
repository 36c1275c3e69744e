package ports

import (
	"context"

	"github.com/gkbjregency/membership-system/internal/core/domain"
)

// AuthRepository defines the interface for operator-account persistence.
type AuthRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Upsert creates the user or updates it in place, keyed by email.
	// Used by startup seeding.
	Upsert(ctx context.Context, user *domain.User) (*domain.User, error)
}
