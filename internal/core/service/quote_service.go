package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/gkbjregency/membership-system/internal/core/domain"
	"github.com/gkbjregency/membership-system/internal/core/ports"
)

// QuoteCache abstracts the daily-quote cache (Redis).
type QuoteCache interface {
	// Get returns the cached quote or (nil, nil) on a miss.
	Get(ctx context.Context) (*domain.Quote, error)
	Set(ctx context.Context, q *domain.Quote) error
}

// QuoteService serves the quote of the day, cache first.
type QuoteService struct {
	repo  ports.QuoteRepository
	cache QuoteCache
	log   zerolog.Logger
}

func NewQuoteService(repo ports.QuoteRepository, cache QuoteCache, log zerolog.Logger) *QuoteService {
	return &QuoteService{repo: repo, cache: cache, log: log}
}

// Daily returns one active quote, falling back to a fixed scripture verse
// when the pool is empty. Cache failures are logged, never surfaced.
func (s *QuoteService) Daily(ctx context.Context) (*domain.Quote, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("quote cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	quote, err := s.repo.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		quote = domain.FallbackQuote()
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, quote); err != nil {
			s.log.Warn().Err(err).Msg("quote cache write failed")
		}
	}

	return quote, nil
}
