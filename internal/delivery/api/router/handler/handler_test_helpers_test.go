package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"creatorhub/internal/delivery/api/middleware"
	"creatorhub/internal/delivery/api/render"
	"creatorhub/internal/delivery/api/validator"
	"creatorhub/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

var testUser = &entity.User{
	ID:         "user-1",
	Username:   "creator",
	Email:      "creator@example.com",
	Name:       "Creator",
	ThemeColor: entity.DefaultThemeColor,
	Theme:      entity.DefaultTheme,
}

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	renderer, err := render.New()
	require.NoError(t, err)
	e.Renderer = renderer
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError

	return e
}

type requestOption func(c echo.Context)

func withUser(user *entity.User) requestOption {
	return func(c echo.Context) {
		middleware.SetUser(c, user)
	}
}

func withParam(name, value string) requestOption {
	return func(c echo.Context) {
		c.SetParamNames(append(c.ParamNames(), name)...)
		c.SetParamValues(append(c.ParamValues(), value)...)
	}
}

// serve runs handler against req the way echo does, error handler included.
func serve(t *testing.T, e *echo.Echo, handler echo.HandlerFunc, req *http.Request, opts ...requestOption) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	for _, opt := range opts {
		opt(c)
	}

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	return rec
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}
