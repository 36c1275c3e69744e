package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/gkbjregency/membership-system/internal/core/domain"
	"github.com/gkbjregency/membership-system/internal/core/ports"
)

type stubEventService struct {
	listFn   func(ctx context.Context) ([]*domain.Event, error)
	createFn func(ctx context.Context, in ports.EventInput, actor *domain.SessionClaims) (*domain.Event, error)
	updateFn func(ctx context.Context, id string, in ports.EventInput) (*domain.Event, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubEventService) List(ctx context.Context) ([]*domain.Event, error) {
	return s.listFn(ctx)
}

func (s *stubEventService) Create(ctx context.Context, in ports.EventInput, actor *domain.SessionClaims) (*domain.Event, error) {
	return s.createFn(ctx, in, actor)
}

func (s *stubEventService) Update(ctx context.Context, id string, in ports.EventInput) (*domain.Event, error) {
	return s.updateFn(ctx, id, in)
}

func (s *stubEventService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func TestEventHandler_Create_Success(t *testing.T) {
	stub := &stubEventService{
		createFn: func(ctx context.Context, in ports.EventInput, actor *domain.SessionClaims) (*domain.Event, error) {
			if in.Title != "Sunday Service" || in.Date.Format(dateLayout) != "2026-09-06" {
				t.Fatalf("unexpected input: %+v", in)
			}
			if actor == nil || actor.UserID != "user_1" {
				t.Fatalf("expected actor from session, got %+v", actor)
			}
			return &domain.Event{ID: "event_1", Title: in.Title, EventDate: in.Date, EventTime: in.Time}, nil
		},
	}
	handler := NewEventHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/v1/events", `{"title":"Sunday Service","date":"2026-09-06","time":"09:30"}`)
	c.Set("user_id", "user_1")

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestEventHandler_Create_BadDate(t *testing.T) {
	handler := NewEventHandler(&stubEventService{
		createFn: func(ctx context.Context, in ports.EventInput, actor *domain.SessionClaims) (*domain.Event, error) {
			t.Fatalf("service must not be called for an unparseable date")
			return nil, nil
		},
	})

	c, _ := newTestContext(t, http.MethodPost, "/v1/events", `{"title":"X","date":"06/09/2026","time":"09:30"}`)
	c.Set("user_id", "user_1")

	err := handler.Create(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestEventHandler_Create_NoClaims(t *testing.T) {
	handler := NewEventHandler(&stubEventService{})

	c, _ := newTestContext(t, http.MethodPost, "/v1/events", `{"title":"X","date":"2026-09-06","time":"09:30"}`)

	err := handler.Create(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestEventHandler_Update_NotFound(t *testing.T) {
	handler := NewEventHandler(&stubEventService{
		updateFn: func(ctx context.Context, id string, in ports.EventInput) (*domain.Event, error) {
			return nil, domain.ErrEventNotFound
		},
	})

	c, _ := newTestContext(t, http.MethodPut, "/v1/events/missing", `{"title":"X","date":"2026-09-06","time":"09:30"}`)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := handler.Update(c); !errors.Is(err, domain.ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound to propagate, got %v", err)
	}
}
