package auth

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stefa-ie/buecheria-library-app/app/echoServer/httperr"
	"github.com/stefa-ie/buecheria-library-app/app/echoServer/jwtx"
	"github.com/stefa-ie/buecheria-library-app/app/echoServer/validation"
	"github.com/stefa-ie/buecheria-library-app/model"
	authsvc "github.com/stefa-ie/buecheria-library-app/service/auth"
	"github.com/stefa-ie/buecheria-library-app/util/apperr"
)

type Controller struct {
	Svc authsvc.Service
	V   *validation.Validator
	Log *slog.Logger
}

// Login
// @Summary      Login
// @Description  Login with username + password, returns a bearer token valid for 30 minutes
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body  model.LoginReq  true  "Login payload"
// @Success      200  {object}  model.TokenResp
// @Failure      400  {object}  httperr.Body
// @Failure      401  {object}  httperr.Body
// @Router       /api/auth/login [post]
func (ct *Controller) Login(c echo.Context) error {
	var req model.LoginReq
	if err := validation.Bind(c, ct.V, &req); err != nil {
		if ct.Log != nil {
			ct.Log.Warn("validation failed", "path", c.Path(), "err", err)
		}
		return httperr.Respond(c, ct.Log, err)
	}

	resp, err := ct.Svc.Login(c.Request().Context(), req)
	if err != nil {
		if apperr.Is(err, apperr.ErrUnauthorized) && ct.Log != nil {
			ct.Log.Warn("login rejected", "username", req.Username, "ip", c.RealIP())
		}
		return httperr.Respond(c, ct.Log, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// GET /api/protected
func (ct *Controller) Protected(c echo.Context) error {
	id, err := jwtx.IdentityFromContext(c)
	if err != nil {
		return httperr.Respond(c, ct.Log, apperr.Wrap(apperr.ErrUnauthorized, "could not validate credentials", err))
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Hello " + id.Username + ", you are logged in and can access this route.",
		"user":    id,
	})
}

// GET /api/adminonly
func (ct *Controller) AdminOnly(c echo.Context) error {
	id, err := jwtx.IdentityFromContext(c)
	if err != nil {
		return httperr.Respond(c, ct.Log, apperr.Wrap(apperr.ErrUnauthorized, "could not validate credentials", err))
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Welcome, admin. This is an admin-only endpoint.",
		"user":    id,
	})
}
