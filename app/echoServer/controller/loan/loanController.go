package loan

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stefa-ie/buecheria-library-app/app/echoServer/httperr"
	"github.com/stefa-ie/buecheria-library-app/app/echoServer/validation"
	"github.com/stefa-ie/buecheria-library-app/model"
	loansvc "github.com/stefa-ie/buecheria-library-app/service/loan"
)

type Controller struct {
	Svc loansvc.Service
	V   *validation.Validator
	Log *slog.Logger
}

// List loans
// @Summary      List loans
// @Description  Each loan embeds its book, author and member plus BorrowerName and Returned
// @Tags         loans
// @Produce      json
// @Success      200  {array}  model.LoanView
// @Security     BearerAuth
// @Router       /api/loans [get]
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context())
	if err != nil {
		return httperr.Respond(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /api/loans/:id (authenticated)
func (h *Controller) Get(c echo.Context) error {
	id, err := validation.PathID(c, "id")
	if err != nil {
		return httperr.Respond(c, h.Log, err)
	}
	l, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		return httperr.Respond(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, l)
}

// Create loan
// @Summary  Issue a loan (admin)
// @Tags     loans
// @Accept   json
// @Produce  json
// @Param    payload  body  model.CreateLoanReq  true  "Loan"
// @Success  201  {object}  model.LoanView
// @Failure  400  {object}  httperr.Body
// @Failure  422  {object}  httperr.Body  "unknown book or member"
// @Security BearerAuth
// @Router   /api/loans [post]
func (h *Controller) Create(c echo.Context) error {
	var req model.CreateLoanReq
	if err := validation.Bind(c, h.V, &req); err != nil {
		return httperr.Respond(c, h.Log, err)
	}
	l, err := h.Svc.Create(c.Request().Context(), req)
	if err != nil {
		return httperr.Respond(c, h.Log, err)
	}
	return c.JSON(http.StatusCreated, l)
}

// PUT /api/loans/:id (admin). Send ReturnDate to mark a loan returned.
func (h *Controller) Update(c echo.Context) error {
	id, err := validation.PathID(c, "id")
	if err != nil {
		return httperr.Respond(c, h.Log, err)
	}
	var req model.UpdateLoanReq
	if err := validation.Bind(c, h.V, &req); err != nil {
		return httperr.Respond(c, h.Log, err)
	}
	l, err := h.Svc.Update(c.Request().Context(), id, req)
	if err != nil {
		return httperr.Respond(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, l)
}

// DELETE /api/loans/:id (admin)
func (h *Controller) Delete(c echo.Context) error {
	id, err := validation.PathID(c, "id")
	if err != nil {
		return httperr.Respond(c, h.Log, err)
	}
	l, err := h.Svc.Delete(c.Request().Context(), id)
	if err != nil {
		return httperr.Respond(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, l)
}
