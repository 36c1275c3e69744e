package ports

import (
	"context"

	"github.com/gkbjregency/membership-system/internal/core/domain"
)

// MemberInput carries the operator-supplied member fields for create/update.
type MemberInput struct {
	Name    string
	Age     *int
	Gender  string
	Email   string
	Phone   string
	Role    string
	Address string
}

// MemberService defines operator CRUD over members.
type MemberService interface {
	List(ctx context.Context) ([]*domain.Member, error)
	Create(ctx context.Context, in MemberInput) (*domain.Member, error)
	Update(ctx context.Context, id string, in MemberInput) (*domain.Member, error)
	Delete(ctx context.Context, id string) error
}
