package member

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stefa-ie/buecheria-library-app/app/echoServer/httperr"
	"github.com/stefa-ie/buecheria-library-app/app/echoServer/validation"
	"github.com/stefa-ie/buecheria-library-app/model"
	membersvc "github.com/stefa-ie/buecheria-library-app/service/member"
)

type Controller struct {
	Svc membersvc.Service
	V   *validation.Validator
	Log *slog.Logger
}

// GET /api/members (authenticated)
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context())
	if err != nil {
		return httperr.Respond(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /api/members/:id (authenticated)
func (h *Controller) Get(c echo.Context) error {
	id, err := validation.PathID(c, "id")
	if err != nil {
		return httperr.Respond(c, h.Log, err)
	}
	m, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		return httperr.Respond(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, m)
}

// Create member
// @Summary      Register member (admin)
// @Description  JoinDate defaults to today when omitted
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        payload  body  model.CreateMemberReq  true  "Member"
// @Success      201  {object}  model.Member
// @Failure      400  {object}  httperr.Body
// @Failure      409  {object}  httperr.Body  "email already registered"
// @Security     BearerAuth
// @Router       /api/members [post]
func (h *Controller) Create(c echo.Context) error {
	var req model.CreateMemberReq
	if err := validation.Bind(c, h.V, &req); err != nil {
		return httperr.Respond(c, h.Log, err)
	}
	m, err := h.Svc.Create(c.Request().Context(), req)
	if err != nil {
		return httperr.Respond(c, h.Log, err)
	}
	return c.JSON(http.StatusCreated, m)
}

// PUT /api/members/:id (admin)
func (h *Controller) Update(c echo.Context) error {
	id, err := validation.PathID(c, "id")
	if err != nil {
		return httperr.Respond(c, h.Log, err)
	}
	var req model.UpdateMemberReq
	if err := validation.Bind(c, h.V, &req); err != nil {
		return httperr.Respond(c, h.Log, err)
	}
	m, err := h.Svc.Update(c.Request().Context(), id, req)
	if err != nil {
		return httperr.Respond(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, m)
}

// Delete answers 409 while the member still has loans.
func (h *Controller) Delete(c echo.Context) error {
	id, err := validation.PathID(c, "id")
	if err != nil {
		return httperr.Respond(c, h.Log, err)
	}
	m, err := h.Svc.Delete(c.Request().Context(), id)
	if err != nil {
		return httperr.Respond(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, m)
}
