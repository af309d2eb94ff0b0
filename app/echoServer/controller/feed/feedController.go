package feed

import (
	"net/http"

	"github.com/labstack/echo/v4"

	feedsvc "github.com/stefa-ie/buecheria-library-app/service/feed"
)

type Controller struct {
	Svc feedsvc.Service
}

// Instagram feed
// @Summary      Recent Instagram media
// @Description  Passes the Graph API media listing through; {"data": []} when unavailable
// @Tags         feed
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /api/instagram-feed [get]
func (h *Controller) Instagram(c echo.Context) error {
	return c.JSONBlob(http.StatusOK, h.Svc.Feed(c.Request().Context()))
}
