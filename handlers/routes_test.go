package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"trace_app_go/middleware"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoutedEcho(t *testing.T) (*echo.Echo, *testEnv) {
	t.Helper()
	env := newTestEnv(t)
	e := echo.New()
	RegisterRoutes(e, env.handler, env.auth)
	return e, env
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRoutesAdminRequiresSession(t *testing.T) {
	e, _ := newRoutedEcho(t)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/admin", nil))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/login", rec.Header().Get(echo.HeaderLocation))

	rec = serve(e, httptest.NewRequest(http.MethodGet, "/admin/export", nil))
	assert.Equal(t, http.StatusSeeOther, rec.Code)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/complaints/1", strings.NewReader(`{"status":"Closed"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = serve(e, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRoutesLoginThenAdmin(t *testing.T) {
	e, env := newRoutedEcho(t)
	env.seedComplaint(t, "Asha", "9990001111")

	form := url.Values{"username": {testAdminUsername}, "password": {testAdminPassword}}
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := serve(e, req)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	var session *http.Cookie
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == middleware.SessionCookieName {
			session = cookie
		}
	}
	require.NotNil(t, session)

	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(session)
	rec = serve(e, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<td>Asha</td>")

	req = httptest.NewRequest(http.MethodPatch, "/api/v1/admin/complaints/1", strings.NewReader(`{"status":"Closed"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.AddCookie(session)
	rec = serve(e, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"Closed"`)
}

func TestRoutesPublic(t *testing.T) {
	e, _ := newRoutedEcho(t)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/api/v1/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	for _, path := range []string{"/complaints/new", "/track", "/officer", "/admin/login"} {
		rec = serve(e, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}

	rec = serve(e, httptest.NewRequest(http.MethodGet, "/api/v1/complaints/1", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
