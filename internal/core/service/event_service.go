package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/gkbjregency/membership-system/internal/core/domain"
	"github.com/gkbjregency/membership-system/internal/core/ports"
)

// EventService implements operator CRUD over congregation events.
type EventService struct {
	repo  ports.EventRepository
	audit ports.AuditRecorder
	log   zerolog.Logger
}

func NewEventService(repo ports.EventRepository, audit ports.AuditRecorder, log zerolog.Logger) *EventService {
	return &EventService{repo: repo, audit: audit, log: log}
}

func (s *EventService) List(ctx context.Context) ([]*domain.Event, error) {
	return s.repo.List(ctx)
}

func (s *EventService) Create(ctx context.Context, in ports.EventInput, actor *domain.SessionClaims) (*domain.Event, error) {
	if in.Title == "" || in.Date.IsZero() || in.Time == "" {
		return nil, fmt.Errorf("%w: title, date, and time required", domain.ErrValidation)
	}

	eventType := in.Type
	if eventType == "" {
		eventType = domain.DefaultEventType
	}

	created, err := s.repo.Create(ctx, &domain.Event{
		Title:       in.Title,
		Description: in.Description,
		EventDate:   in.Date,
		EventTime:   in.Time,
		Location:    in.Location,
		EventType:   eventType,
		CreatedBy:   actor.UserID,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	if s.audit != nil {
		s.audit.Record(domain.AuditEntry{
			Actor:     actor.UserID,
			Action:    "event.create",
			Entity:    "event",
			EntityID:  created.ID,
			Timestamp: time.Now().UTC(),
		})
	}

	s.log.Info().Str("event_id", created.ID).Str("title", created.Title).Msg("event created")
	return created, nil
}

func (s *EventService) Update(ctx context.Context, id string, in ports.EventInput) (*domain.Event, error) {
	if in.Title == "" || in.Date.IsZero() || in.Time == "" {
		return nil, fmt.Errorf("%w: title, date, and time required", domain.ErrValidation)
	}

	eventType := in.Type
	if eventType == "" {
		eventType = domain.DefaultEventType
	}

	return s.repo.Update(ctx, id, &domain.Event{
		Title:       in.Title,
		Description: in.Description,
		EventDate:   in.Date,
		EventTime:   in.Time,
		Location:    in.Location,
		EventType:   eventType,
	})
}

func (s *EventService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
