package echoutil_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"backend/insurance-platform/app/internal/config"
	"backend/insurance-platform/app/internal/runtime"
	echoUtil "backend/insurance-platform/app/pkg/util/echo"
)

func newCORSServer(routerCfg config.RouterConfig) *echo.Echo {
	res := runtime.Resource{Config: config.ApplicationConfig{RouterConfig: routerCfg}}
	e := echo.New()
	e.Use(echoUtil.SetupCORSMiddleware(res))
	e.GET("/ping", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	return e
}

func preflight(e *echo.Echo) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set(echo.HeaderOrigin, "http://localhost:3000")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodGet)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestSetupCORSMiddleware_ConfiguredHeaders(t *testing.T) {
	e := newCORSServer(config.RouterConfig{
		AllowedOrigins: "http://localhost:3000",
		AllowedHeaders: "Content-Type,X-Request-Source",
	})

	rec := preflight(e)

	assert.Equal(t, "http://localhost:3000", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Contains(t, rec.Header().Get(echo.HeaderAccessControlAllowHeaders), "X-Request-Source")
	assert.NotContains(t, rec.Header().Get(echo.HeaderAccessControlAllowHeaders), "Cookie")
}

func TestSetupCORSMiddleware_DefaultHeaders(t *testing.T) {
	e := newCORSServer(config.RouterConfig{
		AllowedOrigins: "http://localhost:3000",
	})

	rec := preflight(e)

	assert.Contains(t, rec.Header().Get(echo.HeaderAccessControlAllowHeaders), echo.HeaderAuthorization)
}
