package ports

import (
	"context"
	"time"

	"github.com/gkbjregency/membership-system/internal/core/domain"
)

// RegistrationRepository defines persistence for registration requests.
type RegistrationRepository interface {
	Create(ctx context.Context, r *domain.RegistrationRequest) (*domain.RegistrationRequest, error)
	List(ctx context.Context) ([]*domain.RegistrationRequest, error)
	// UpdateStatus durably sets status plus the processed_at/processed_by
	// audit fields and returns the updated request, or
	// domain.ErrRegistrationNotFound when id does not exist.
	UpdateStatus(ctx context.Context, id string, status domain.RegistrationStatus, processedAt time.Time, processedBy string) (*domain.RegistrationRequest, error)
	Delete(ctx context.Context, id string) error
}
