package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gkbjregency/membership-system/internal/core/domain"
	"github.com/gkbjregency/membership-system/internal/core/ports"
)

// MemberHandler handles operator CRUD over members.
type MemberHandler struct {
	service ports.MemberService
}

func NewMemberHandler(service ports.MemberService) *MemberHandler {
	return &MemberHandler{service: service}
}

// List handles GET /v1/members.
//
// @Summary      List members
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Member
// @Failure      401  {object}  errorResponse
// @Router       /v1/members [get]
func (h *MemberHandler) List(c echo.Context) error {
	members, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if members == nil {
		members = []*domain.Member{}
	}
	return c.JSON(http.StatusOK, members)
}

// Create handles POST /v1/members.
//
// @Summary      Create a member
// @Tags         members
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      memberRequest  true  "Member details"
// @Success      201   {object}  domain.Member
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/members [post]
func (h *MemberHandler) Create(c echo.Context) error {
	var req memberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	member, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, member)
}

// Update handles PUT /v1/members/:id.
//
// @Summary      Update a member
// @Tags         members
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Member id"
// @Param        body  body      memberRequest  true  "Member details"
// @Success      200   {object}  domain.Member
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/members/{id} [put]
func (h *MemberHandler) Update(c echo.Context) error {
	var req memberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	member, err := h.service.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, member)
}

// Delete handles DELETE /v1/members/:id.
//
// @Summary      Delete a member
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Member id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/members/{id} [delete]
func (h *MemberHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "member deleted"})
}
