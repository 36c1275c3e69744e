package ports

import (
	"context"
	"time"

	"github.com/gkbjregency/membership-system/internal/core/domain"
)

// EventInput carries the fields for creating or updating an event.
type EventInput struct {
	Title       string
	Description string
	Date        time.Time
	Time        string
	Location    string
	Type        string
}

// EventService defines operator CRUD over events.
type EventService interface {
	List(ctx context.Context) ([]*domain.Event, error)
	Create(ctx context.Context, in EventInput, actor *domain.SessionClaims) (*domain.Event, error)
	Update(ctx context.Context, id string, in EventInput) (*domain.Event, error)
	Delete(ctx context.Context, id string) error
}
