package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gkbjregency/membership-system/internal/core/domain"
	"github.com/gkbjregency/membership-system/internal/core/ports"
)

// dateLayout is the wire format for calendar dates.
const dateLayout = "2006-01-02"

// EventHandler handles operator CRUD over congregation events.
type EventHandler struct {
	service ports.EventService
}

func NewEventHandler(service ports.EventService) *EventHandler {
	return &EventHandler{service: service}
}

// List handles GET /v1/events.
//
// @Summary      List events
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Event
// @Failure      401  {object}  errorResponse
// @Router       /v1/events [get]
func (h *EventHandler) List(c echo.Context) error {
	events, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return c.JSON(http.StatusOK, events)
}

// Create handles POST /v1/events.
//
// @Summary      Create an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      eventRequest  true  "Event details"
// @Success      201   {object}  domain.Event
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/events [post]
func (h *EventHandler) Create(c echo.Context) error {
	actor, err := ctxClaims(c)
	if err != nil {
		return err
	}

	in, err := bindEventInput(c)
	if err != nil {
		return err
	}

	event, err := h.service.Create(c.Request().Context(), in, actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, event)
}

// Update handles PUT /v1/events/:id.
//
// @Summary      Update an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "Event id"
// @Param        body  body      eventRequest  true  "Event details"
// @Success      200   {object}  domain.Event
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/events/{id} [put]
func (h *EventHandler) Update(c echo.Context) error {
	in, err := bindEventInput(c)
	if err != nil {
		return err
	}

	event, err := h.service.Update(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, event)
}

// Delete handles DELETE /v1/events/:id.
//
// @Summary      Delete an event
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Event id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/events/{id} [delete]
func (h *EventHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "event deleted"})
}

func bindEventInput(c echo.Context) (ports.EventInput, error) {
	var req eventRequest
	if err := c.Bind(&req); err != nil {
		return ports.EventInput{}, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return ports.EventInput{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return ports.EventInput{}, echo.NewHTTPError(http.StatusBadRequest, "date must be formatted as YYYY-MM-DD")
	}

	return ports.EventInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
		Time:        req.Time,
		Location:    req.Location,
		Type:        req.Type,
	}, nil
}
