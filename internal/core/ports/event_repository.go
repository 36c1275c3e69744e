package ports

import (
	"context"

	"github.com/gkbjregency/membership-system/internal/core/domain"
)

// EventRepository defines persistence for congregation events.
type EventRepository interface {
	// List returns events ordered by event date ascending.
	List(ctx context.Context) ([]*domain.Event, error)
	Create(ctx context.Context, e *domain.Event) (*domain.Event, error)
	Update(ctx context.Context, id string, e *domain.Event) (*domain.Event, error)
	Delete(ctx context.Context, id string) error
}
