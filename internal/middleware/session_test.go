package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"app/internal/middleware"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionEcho() *echo.Echo {
	e := echo.New()
	e.Use(middleware.Session())
	e.GET("/whoami", func(c echo.Context) error {
		sid, _ := c.Get(middleware.CtxSessionIDKey).(string)
		return c.String(http.StatusOK, sid)
	})
	return e
}

// Test: cookieが無ければ発行され、contextにセッションIDが入る
func TestSession_MintsCookie(t *testing.T) {
	e := newSessionEcho()

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	sid := rec.Body.String()
	assert.NoError(t, uuid.Validate(sid))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "gentle_session", cookies[0].Name)
	assert.Equal(t, sid, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

// Test: 有効なcookieはそのまま使われ、再発行されない
func TestSession_KeepsValidCookie(t *testing.T) {
	e := newSessionEcho()

	sid := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: "gentle_session", Value: sid})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, sid, rec.Body.String())
	assert.Empty(t, rec.Result().Cookies())
}

// Test: 不正なcookie値は作り直される
func TestSession_ReplacesInvalidCookie(t *testing.T) {
	e := newSessionEcho()

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: "gentle_session", Value: "not-a-uuid"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	sid := rec.Body.String()
	assert.NoError(t, uuid.Validate(sid))
	assert.NotEqual(t, "not-a-uuid", sid)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, sid, cookies[0].Value)
}
