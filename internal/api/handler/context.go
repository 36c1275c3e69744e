package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gkbjregency/membership-system/internal/core/domain"
)

// ctxClaims rebuilds the session claims injected by the Auth middleware and
// performs a fast-fail check before any service call: a non-empty user id
// proves the middleware ran on this route.
func ctxClaims(c echo.Context) (*domain.SessionClaims, error) {
	userID, _ := c.Get("user_id").(string)
	if userID == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	email, _ := c.Get("email").(string)
	role, _ := c.Get("role").(string)

	return &domain.SessionClaims{UserID: userID, Email: email, Role: role}, nil
}
