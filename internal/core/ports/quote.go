package ports

import (
	"context"

	"github.com/gkbjregency/membership-system/internal/core/domain"
)

// QuoteRepository serves the active quote pool.
type QuoteRepository interface {
	// FindActive returns one active quote, or (nil, nil) when the pool
	// is empty.
	FindActive(ctx context.Context) (*domain.Quote, error)
}

// QuoteService returns the quote of the day.
type QuoteService interface {
	Daily(ctx context.Context) (*domain.Quote, error)
}
