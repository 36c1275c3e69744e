package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/gkbjregency/membership-system/internal/api/middleware"
	"github.com/gkbjregency/membership-system/internal/core/domain"
)

type stubAuthService struct {
	loginFn func(ctx context.Context, email, password string) (string, *domain.User, error)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) VerifyToken(_ string) (*domain.SessionClaims, error) {
	return nil, domain.ErrInvalidToken
}

func (s *stubAuthService) SeedAdmin(_ context.Context, _, _, _ string) error {
	return nil
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			if email != "admin@example.com" || password != "secret" {
				t.Fatalf("unexpected credentials: %s / %s", email, password)
			}
			return "signed-token", &domain.User{ID: "user_1", Name: "Admin", Role: domain.RoleAdmin}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/auth/login", `{"email":"admin@example.com","password":"secret"}`)
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "signed-token" {
		t.Fatalf("expected token in response, got %+v", resp)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response")
	}
	if user["id"] != "user_1" || user["role"] != domain.RoleAdmin {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	if _, hasHash := user["password_hash"]; hasHash {
		t.Fatalf("password hash must never be returned")
	}

	cookies := rec.Result().Cookies()
	var session *http.Cookie
	for _, ck := range cookies {
		if ck.Name == middleware.SessionCookie {
			session = ck
		}
	}
	if session == nil {
		t.Fatalf("expected %s cookie to be set", middleware.SessionCookie)
	}
	if session.Value != "signed-token" || !session.HttpOnly {
		t.Fatalf("unexpected session cookie: %+v", session)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/auth/login", `{"email":"ghost@example.com","password":"wrong"}`)
	err := handler.Login(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{})

	c, _ := newTestContext(t, http.MethodPost, "/auth/login", `{not json`)
	err := handler.Login(c)

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			t.Fatalf("service must not be called on validation failure")
			return "", nil, nil
		},
	})

	c, _ := newTestContext(t, http.MethodPost, "/auth/login", `{"email":"admin@example.com"}`)
	err := handler.Login(c)

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
	if msg, _ := httpErr.Message.(string); !strings.Contains(msg, "password") {
		t.Fatalf("expected message to name password, got %v", httpErr.Message)
	}
}
