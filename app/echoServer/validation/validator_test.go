package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/stefa-ie/buecheria-library-app/model"
	"github.com/stefa-ie/buecheria-library-app/util/apperr"
)

func TestValidate_UsesJSONNames(t *testing.T) {
	v := New()
	err := v.Validate(&model.CreateMemberReq{LastName: "x", Email: "nope"})
	require.Equal(t, apperr.ErrValidation, apperr.Code(err))
	require.Contains(t, err.Error(), "FirstName: required")
	require.Contains(t, err.Error(), "Email: email")
}

func TestValidate_CoverURL(t *testing.T) {
	v := New()
	empty := ""
	require.NoError(t, v.Validate(&model.CreateBookReq{Title: "t", Isbn: "1", CoverURL: &empty}))
	bad := "not a url"
	require.Error(t, v.Validate(&model.CreateBookReq{Title: "t", Isbn: "1", CoverURL: &bad}))
	good := "https://covers.example/1.jpg"
	require.NoError(t, v.Validate(&model.CreateBookReq{Title: "t", Isbn: "1", CoverURL: &good}))

	require.NoError(t, v.Validate(&model.UpdateBookReq{CoverURL: &empty}))
	require.NoError(t, v.Validate(&model.UpdateBookReq{}))
	require.Error(t, v.Validate(&model.UpdateBookReq{CoverURL: &bad}))
}

func TestBind(t *testing.T) {
	e := echo.New()
	v := New()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"username":"admin","password":"pw"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	var ok model.LoginReq
	require.NoError(t, Bind(e.NewContext(req, httptest.NewRecorder()), v, &ok))
	require.Equal(t, "admin", ok.Username)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"username":`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	var broken model.LoginReq
	err := Bind(e.NewContext(req, httptest.NewRecorder()), v, &broken)
	require.Equal(t, apperr.ErrValidation, apperr.Code(err))
}

func TestPathID(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	c.SetParamNames("id")

	c.SetParamValues("12")
	id, err := PathID(c, "id")
	require.NoError(t, err)
	require.Equal(t, int64(12), id)

	for _, bad := range []string{"0", "-1", "abc"} {
		c.SetParamValues(bad)
		_, err := PathID(c, "id")
		require.Equal(t, apperr.ErrValidation, apperr.Code(err), bad)
	}
}
