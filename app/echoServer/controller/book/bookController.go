package book

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stefa-ie/buecheria-library-app/app/echoServer/httperr"
	"github.com/stefa-ie/buecheria-library-app/app/echoServer/validation"
	"github.com/stefa-ie/buecheria-library-app/model"
	booksvc "github.com/stefa-ie/buecheria-library-app/service/book"
)

type Controller struct {
	Svc booksvc.Service
	V   *validation.Validator
	Log *slog.Logger
}

// List books
// @Summary      List books
// @Description  Books that have an author, with the author embedded
// @Tags         books
// @Produce      json
// @Success      200  {array}  model.BookView
// @Router       /api/books [get]
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context())
	if err != nil {
		return httperr.Respond(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, rows)
}

// Get book
// @Summary  Book detail
// @Tags     books
// @Produce  json
// @Param    id   path  int  true  "Book ID"
// @Success  200  {object}  model.BookView
// @Failure  404  {object}  httperr.Body
// @Router   /api/books/{id} [get]
func (h *Controller) Get(c echo.Context) error {
	id, err := validation.PathID(c, "id")
	if err != nil {
		return httperr.Respond(c, h.Log, err)
	}
	b, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		return httperr.Respond(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, b)
}

// Create book
// @Summary      Create book (admin)
// @Description  Reference an existing author with AuthorID or create one with NewAuthor
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        payload  body  model.CreateBookReq  true  "Book"
// @Success      201  {object}  model.BookView
// @Failure      400  {object}  httperr.Body
// @Failure      409  {object}  httperr.Body  "isbn already exists"
// @Failure      422  {object}  httperr.Body  "unknown author"
// @Security     BearerAuth
// @Router       /api/books [post]
func (h *Controller) Create(c echo.Context) error {
	var req model.CreateBookReq
	if err := validation.Bind(c, h.V, &req); err != nil {
		return httperr.Respond(c, h.Log, err)
	}
	b, err := h.Svc.Create(c.Request().Context(), req)
	if err != nil {
		return httperr.Respond(c, h.Log, err)
	}
	return c.JSON(http.StatusCreated, b)
}

// PUT /api/books/:id (admin)
func (h *Controller) Update(c echo.Context) error {
	id, err := validation.PathID(c, "id")
	if err != nil {
		return httperr.Respond(c, h.Log, err)
	}
	var req model.UpdateBookReq
	if err := validation.Bind(c, h.V, &req); err != nil {
		return httperr.Respond(c, h.Log, err)
	}
	b, err := h.Svc.Update(c.Request().Context(), id, req)
	if err != nil {
		return httperr.Respond(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, b)
}

// DELETE /api/books/:id (admin)
func (h *Controller) Delete(c echo.Context) error {
	id, err := validation.PathID(c, "id")
	if err != nil {
		return httperr.Respond(c, h.Log, err)
	}
	b, err := h.Svc.Delete(c.Request().Context(), id)
	if err != nil {
		return httperr.Respond(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, b)
}
