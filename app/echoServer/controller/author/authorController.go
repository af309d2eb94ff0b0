package author

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stefa-ie/buecheria-library-app/app/echoServer/httperr"
	"github.com/stefa-ie/buecheria-library-app/app/echoServer/validation"
	"github.com/stefa-ie/buecheria-library-app/model"
	authorsvc "github.com/stefa-ie/buecheria-library-app/service/author"
)

type Controller struct {
	Svc authorsvc.Service
	V   *validation.Validator
	Log *slog.Logger
}

// List authors
// @Summary  List authors
// @Tags     authors
// @Produce  json
// @Success  200  {array}  model.Author
// @Router   /api/authors [get]
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context())
	if err != nil {
		return httperr.Respond(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /api/authors/:id
func (h *Controller) Get(c echo.Context) error {
	id, err := validation.PathID(c, "id")
	if err != nil {
		return httperr.Respond(c, h.Log, err)
	}
	a, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		return httperr.Respond(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, a)
}

// Create author
// @Summary  Create author (admin)
// @Tags     authors
// @Accept   json
// @Produce  json
// @Param    payload  body  model.CreateAuthorReq  true  "Author"
// @Success  201  {object}  model.Author
// @Failure  400  {object}  httperr.Body
// @Security BearerAuth
// @Router   /api/authors [post]
func (h *Controller) Create(c echo.Context) error {
	var req model.CreateAuthorReq
	if err := validation.Bind(c, h.V, &req); err != nil {
		return httperr.Respond(c, h.Log, err)
	}
	a, err := h.Svc.Create(c.Request().Context(), req)
	if err != nil {
		return httperr.Respond(c, h.Log, err)
	}
	return c.JSON(http.StatusCreated, a)
}

// PUT /api/authors/:id (admin)
func (h *Controller) Update(c echo.Context) error {
	id, err := validation.PathID(c, "id")
	if err != nil {
		return httperr.Respond(c, h.Log, err)
	}
	var req model.UpdateAuthorReq
	if err := validation.Bind(c, h.V, &req); err != nil {
		return httperr.Respond(c, h.Log, err)
	}
	a, err := h.Svc.Update(c.Request().Context(), id, req)
	if err != nil {
		return httperr.Respond(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, a)
}

// DELETE /api/authors/:id (admin)
func (h *Controller) Delete(c echo.Context) error {
	id, err := validation.PathID(c, "id")
	if err != nil {
		return httperr.Respond(c, h.Log, err)
	}
	a, err := h.Svc.Delete(c.Request().Context(), id)
	if err != nil {
		return httperr.Respond(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, a)
}
