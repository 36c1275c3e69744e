package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gkbjregency/membership-system/internal/core/ports"
)

// QuoteHandler serves the public quote of the day.
type QuoteHandler struct {
	service ports.QuoteService
}

func NewQuoteHandler(service ports.QuoteService) *QuoteHandler {
	return &QuoteHandler{service: service}
}

// Daily handles GET /v1/quotes/daily — public, no auth required.
//
// @Summary      Quote of the day
// @Tags         quotes
// @Produce      json
// @Success      200  {object}  domain.Quote
// @Router       /v1/quotes/daily [get]
func (h *QuoteHandler) Daily(c echo.Context) error {
	quote, err := h.service.Daily(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, quote)
}
