package echoServer

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	authctrl "github.com/stefa-ie/buecheria-library-app/app/echoServer/controller/auth"
	authorctrl "github.com/stefa-ie/buecheria-library-app/app/echoServer/controller/author"
	bookctrl "github.com/stefa-ie/buecheria-library-app/app/echoServer/controller/book"
	feedctrl "github.com/stefa-ie/buecheria-library-app/app/echoServer/controller/feed"
	loanctrl "github.com/stefa-ie/buecheria-library-app/app/echoServer/controller/loan"
	memberctrl "github.com/stefa-ie/buecheria-library-app/app/echoServer/controller/member"
	"github.com/stefa-ie/buecheria-library-app/app/echoServer/httperr"
	"github.com/stefa-ie/buecheria-library-app/app/echoServer/validation"
	"github.com/stefa-ie/buecheria-library-app/config"
	authorrepo "github.com/stefa-ie/buecheria-library-app/repository/author"
	bookrepo "github.com/stefa-ie/buecheria-library-app/repository/book"
	instagramrepo "github.com/stefa-ie/buecheria-library-app/repository/instagram"
	loanrepo "github.com/stefa-ie/buecheria-library-app/repository/loan"
	memberrepo "github.com/stefa-ie/buecheria-library-app/repository/member"
	userrepo "github.com/stefa-ie/buecheria-library-app/repository/user"
	authsvc "github.com/stefa-ie/buecheria-library-app/service/auth"
	authorsvc "github.com/stefa-ie/buecheria-library-app/service/author"
	booksvc "github.com/stefa-ie/buecheria-library-app/service/book"
	feedsvc "github.com/stefa-ie/buecheria-library-app/service/feed"
	loansvc "github.com/stefa-ie/buecheria-library-app/service/loan"
	membersvc "github.com/stefa-ie/buecheria-library-app/service/member"
	"github.com/stefa-ie/buecheria-library-app/util/database"
	"github.com/stefa-ie/buecheria-library-app/util/httpx"
)

// Deps lets callers replace the outbound Instagram client, mainly in tests.
type Deps struct {
	Instagram instagramrepo.Repo
}

// New wires repositories, services and controllers onto a fresh echo instance.
func New(cfg config.App, db database.Runner, log *slog.Logger, deps Deps) *echo.Echo {
	// repos
	ar := authorrepo.New()
	br := bookrepo.New()
	mr := memberrepo.New()
	lr := loanrepo.New()
	ur := userrepo.New()
	ig := deps.Instagram
	if ig == nil {
		ig = instagramrepo.NewHTTP(cfg.InstagramToken, cfg.InstagramUserID, httpx.NewClient(cfg.InstagramTimeout))
	}

	// services
	as := authsvc.New(db, ur, cfg.JWTSecret, cfg.TokenTTL)
	aus := authorsvc.New(db, ar)
	bs := booksvc.New(db, br, ar)
	ms := membersvc.New(db, mr)
	ls := loansvc.New(db, lr, br, mr)
	fs := feedsvc.New(ig, cfg.InstagramConfigured(), log)

	// controllers
	v := validation.New()

	e := echo.New()
	e.HideBanner = true
	e.Validator = v
	e.HTTPErrorHandler = errorHandler(log)
	RegisterMiddlewares(e, log, cfg.CORSOrigins)

	Register(e, C{
		Auth:      &authctrl.Controller{Svc: as, V: v, Log: log},
		Author:    &authorctrl.Controller{Svc: aus, V: v, Log: log},
		Book:      &bookctrl.Controller{Svc: bs, V: v, Log: log},
		Member:    &memberctrl.Controller{Svc: ms, V: v, Log: log},
		Loan:      &loanctrl.Controller{Svc: ls, V: v, Log: log},
		Feed:      &feedctrl.Controller{Svc: fs},
		JWTSecret: cfg.JWTSecret,
	})
	return e
}

// errorHandler renders echo's own errors (unknown route, wrong method) in
// the same body shape as service errors.
func errorHandler(log *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg := http.StatusText(he.Code)
			if s, isStr := he.Message.(string); isStr {
				msg = s
			}
			_ = httperr.JSON(c, he.Code, msg)
			return
		}
		_ = httperr.Respond(c, log, err)
	}
}
