// Package httperr turns service errors into HTTP responses.
package httperr

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stefa-ie/buecheria-library-app/util/apperr"
)

// Body is the JSON error payload. Detail mirrors Message for clients that
// read the FastAPI-style field.
type Body struct {
	Message string `json:"message"`
	Detail  string `json:"detail"`
}

func Status(err error) int {
	switch apperr.Code(err) {
	case apperr.ErrNotFound:
		return http.StatusNotFound
	case apperr.ErrInvalidReference:
		return http.StatusUnprocessableEntity
	case apperr.ErrConflict:
		return http.StatusConflict
	case apperr.ErrValidation:
		return http.StatusBadRequest
	case apperr.ErrUnauthorized:
		return http.StatusUnauthorized
	case apperr.ErrForbidden:
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}

// Respond writes err with its mapped status. Uncoded errors are logged and
// answered with a generic message.
func Respond(c echo.Context, log *slog.Logger, err error) error {
	status := Status(err)
	if status == http.StatusInternalServerError {
		if log == nil {
			log = slog.Default()
		}
		log.Error("request failed",
			"err", err,
			"req_id", c.Response().Header().Get(echo.HeaderXRequestID),
			"path", c.Path(),
			"method", c.Request().Method,
		)
		return JSON(c, status, "internal server error")
	}
	if status == http.StatusUnauthorized {
		c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	}
	return JSON(c, status, err.Error())
}

func JSON(c echo.Context, status int, msg string) error {
	return c.JSON(status, Body{Message: msg, Detail: msg})
}
