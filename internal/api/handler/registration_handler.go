package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gkbjregency/membership-system/internal/core/domain"
	"github.com/gkbjregency/membership-system/internal/core/ports"
)

// RegistrationHandler handles public submissions and the operator workflow
// over registration requests.
type RegistrationHandler struct {
	service ports.RegistrationService
}

func NewRegistrationHandler(service ports.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{service: service}
}

// Submit handles POST /v1/registrations — public, unauthenticated.
//
// @Summary      Submit a registration request
// @Tags         registrations
// @Accept       json
// @Produce      json
// @Param        body  body      submitRegistrationRequest  true  "Registration details"
// @Success      201   {object}  domain.RegistrationRequest
// @Failure      400   {object}  errorResponse
// @Router       /v1/registrations [post]
func (h *RegistrationHandler) Submit(c echo.Context) error {
	var req submitRegistrationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	reg, err := h.service.Submit(c.Request().Context(), ports.SubmitRegistrationInput{
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		Age:              req.Age,
		Gender:           req.Gender,
		Address:          req.Address,
		MinistryInterest: req.MinistryInterest,
		HearAbout:        req.HearAbout,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, reg)
}

// List handles GET /v1/registrations.
//
// @Summary      List registration requests
// @Tags         registrations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.RegistrationRequest
// @Failure      401  {object}  errorResponse
// @Router       /v1/registrations [get]
func (h *RegistrationHandler) List(c echo.Context) error {
	regs, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if regs == nil {
		regs = []*domain.RegistrationRequest{}
	}
	return c.JSON(http.StatusOK, regs)
}

// SetStatus handles PUT /v1/registrations/:id/status. A transition into
// "approved" promotes the registrant to a member as a side effect visible
// only through the member collection.
//
// @Summary      Update registration status
// @Tags         registrations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Registration id"
// @Param        body  body      updateStatusRequest  true  "Target status"
// @Success      200   {object}  domain.RegistrationRequest
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/registrations/{id}/status [put]
func (h *RegistrationHandler) SetStatus(c echo.Context) error {
	actor, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	reg, err := h.service.SetStatus(c.Request().Context(), c.Param("id"), domain.RegistrationStatus(req.Status), actor)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, reg)
}

// Delete handles DELETE /v1/registrations/:id.
//
// @Summary      Delete a registration request
// @Tags         registrations
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Registration id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/registrations/{id} [delete]
func (h *RegistrationHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "registration deleted"})
}
