package echoServer

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/stefa-ie/buecheria-library-app/app/echoServer/controller/auth"
	"github.com/stefa-ie/buecheria-library-app/app/echoServer/controller/author"
	"github.com/stefa-ie/buecheria-library-app/app/echoServer/controller/book"
	"github.com/stefa-ie/buecheria-library-app/app/echoServer/controller/feed"
	"github.com/stefa-ie/buecheria-library-app/app/echoServer/controller/loan"
	"github.com/stefa-ie/buecheria-library-app/app/echoServer/controller/member"
)

type C struct {
	Auth      *auth.Controller
	Author    *author.Controller
	Book      *book.Controller
	Member    *member.Controller
	Loan      *loan.Controller
	Feed      *feed.Controller
	JWTSecret string
}

func Register(e *echo.Echo, c C) {
	e.GET("/", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, echo.Map{"message": "Buecheria library API"})
	})
	e.GET("/health", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")
	authn := JWTAuth(c.JWTSecret)
	admin := []echo.MiddlewareFunc{authn, AdminOnly()}

	// Public
	api.POST("/auth/login", c.Auth.Login)
	api.POST("/login", c.Auth.Login)
	api.GET("/instagram-feed", c.Feed.Instagram)
	api.GET("/authors", c.Author.List)
	api.GET("/authors/:id", c.Author.Get)
	api.GET("/books", c.Book.List)
	api.GET("/books/:id", c.Book.Get)

	// Authenticated
	api.GET("/protected", c.Auth.Protected, authn)
	api.GET("/members", c.Member.List, authn)
	api.GET("/members/:id", c.Member.Get, authn)
	api.GET("/loans", c.Loan.List, authn)
	api.GET("/loans/:id", c.Loan.Get, authn)

	// Admin
	api.GET("/adminonly", c.Auth.AdminOnly, admin...)

	api.POST("/authors", c.Author.Create, admin...)
	api.PUT("/authors/:id", c.Author.Update, admin...)
	api.DELETE("/authors/:id", c.Author.Delete, admin...)

	api.POST("/books", c.Book.Create, admin...)
	api.PUT("/books/:id", c.Book.Update, admin...)
	api.DELETE("/books/:id", c.Book.Delete, admin...)

	api.POST("/members", c.Member.Create, admin...)
	api.PUT("/members/:id", c.Member.Update, admin...)
	api.DELETE("/members/:id", c.Member.Delete, admin...)

	api.POST("/loans", c.Loan.Create, admin...)
	api.PUT("/loans/:id", c.Loan.Update, admin...)
	api.DELETE("/loans/:id", c.Loan.Delete, admin...)
}
