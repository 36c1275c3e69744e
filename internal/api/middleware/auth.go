package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/gkbjregency/membership-system/internal/core/ports"
)

// SessionCookie is the cookie the dashboard uses to carry the session token.
// A bearer Authorization header is accepted as an alternative for API clients.
const SessionCookie = "auth-token"

// Auth verifies the session token and injects the caller's identity into the
// request context. It runs before any storage access on protected routes.
func Auth(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := tokenFromRequest(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing session token")
			}

			claims, err := verifier.VerifyToken(token)
			if err != nil {
				// One message for every failure mode; the caller must
				// not learn whether signature or expiry was at fault.
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired session")
			}

			c.Set("user_id", claims.UserID)
			c.Set("email", claims.Email)
			c.Set("role", claims.Role)

			return next(c)
		}
	}
}

func tokenFromRequest(c echo.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	parts := strings.SplitN(c.Request().Header.Get("Authorization"), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return ""
}
