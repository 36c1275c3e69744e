package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/gkbjregency/membership-system/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json body: %q", rec.Body.String())
	}
	return rec.Code, resp["error"]
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err  error
		code int
		msg  string
	}{
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{domain.ErrInvalidToken, http.StatusUnauthorized, "invalid or expired session"},
		{domain.ErrEmailExists, http.StatusBadRequest, "email already exists"},
		{domain.ErrMemberNotFound, http.StatusNotFound, "member not found"},
		{domain.ErrRegistrationNotFound, http.StatusNotFound, "registration not found"},
		{domain.ErrEventNotFound, http.StatusNotFound, "event not found"},
	}

	for _, tc := range cases {
		code, msg := renderError(t, tc.err)
		if code != tc.code || msg != tc.msg {
			t.Fatalf("%v: expected %d %q, got %d %q", tc.err, tc.code, tc.msg, code, msg)
		}
	}
}

func TestHTTPErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := fmt.Errorf("promote registration reg_1: %w", domain.ErrMemberNotFound)
	code, msg := renderError(t, wrapped)
	if code != http.StatusNotFound || msg != "member not found" {
		t.Fatalf("expected wrapped error to resolve, got %d %q", code, msg)
	}
}

func TestHTTPErrorHandler_ValidationKeepsMessage(t *testing.T) {
	err := fmt.Errorf("%w: email, phone required", domain.ErrValidation)
	code, msg := renderError(t, err)
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if !strings.Contains(msg, "email, phone") {
		t.Fatalf("expected validation detail to survive, got %q", msg)
	}
}

func TestHTTPErrorHandler_EchoHTTPError(t *testing.T) {
	code, msg := renderError(t, echo.NewHTTPError(http.StatusUnauthorized, "missing session token"))
	if code != http.StatusUnauthorized || msg != "missing session token" {
		t.Fatalf("expected echo error passthrough, got %d %q", code, msg)
	}
}

func TestHTTPErrorHandler_UnknownErrorIsOpaque(t *testing.T) {
	code, msg := renderError(t, errors.New("mongo: connection reset by peer"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if msg != "internal server error" {
		t.Fatalf("internal detail leaked: %q", msg)
	}
}
