package ports

import (
	"context"

	"github.com/gkbjregency/membership-system/internal/core/domain"
)

// MemberRepository defines persistence operations for members. Create and
// Update return domain.ErrEmailExists when the unique email index is violated.
type MemberRepository interface {
	List(ctx context.Context) ([]*domain.Member, error)
	FindByID(ctx context.Context, id string) (*domain.Member, error)
	FindByEmail(ctx context.Context, email string) (*domain.Member, error)
	Create(ctx context.Context, m *domain.Member) (*domain.Member, error)
	Update(ctx context.Context, id string, m *domain.Member) (*domain.Member, error)
	// UpdateProfileByEmail overwrites only the profile fields of the member
	// with the given email. Role and join date are left untouched.
	UpdateProfileByEmail(ctx context.Context, email string, p domain.MemberProfile) (*domain.Member, error)
	Delete(ctx context.Context, id string) error
}
