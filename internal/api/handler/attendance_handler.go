package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gkbjregency/membership-system/internal/core/domain"
	"github.com/gkbjregency/membership-system/internal/core/ports"
)

// AttendanceHandler records attendance sheets and serves summaries.
type AttendanceHandler struct {
	service ports.AttendanceService
}

func NewAttendanceHandler(service ports.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{service: service}
}

// Summary handles GET /v1/attendance.
//
// @Summary      Attendance summary grouped by date and event type
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.AttendanceSummary
// @Failure      401  {object}  errorResponse
// @Router       /v1/attendance [get]
func (h *AttendanceHandler) Summary(c echo.Context) error {
	summaries, err := h.service.Summary(c.Request().Context())
	if err != nil {
		return err
	}
	if summaries == nil {
		summaries = []*domain.AttendanceSummary{}
	}
	return c.JSON(http.StatusOK, summaries)
}

// Record handles POST /v1/attendance — one sheet per (date, event type).
//
// @Summary      Record an attendance sheet
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      recordAttendanceRequest  true  "Attendance sheet"
// @Success      201   {object}  recordAttendanceResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/attendance [post]
func (h *AttendanceHandler) Record(c echo.Context) error {
	actor, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req recordAttendanceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "date must be formatted as YYYY-MM-DD")
	}

	event, err := h.service.Record(c.Request().Context(), ports.RecordAttendanceInput{
		Date:      date,
		EventType: req.EventType,
		MemberIDs: req.MemberIDs,
	}, actor)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, recordAttendanceResponse{
		Message: "attendance recorded",
		EventID: event.ID,
		Count:   len(req.MemberIDs),
	})
}
