package app

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sva-insights/founder-dashboard/internal/shared"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSessionMiddlewareCommitsBeforeBody(t *testing.T) {
	sm := shared.NewSessionManager("test_session", "secret", time.Hour, false)
	handler := SessionMiddleware(sm, discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := shared.SessionFromContext(r.Context())
		require.NotNil(t, sess)
		sess.SetAuthenticated(true)
		_, _ = w.Write([]byte("ok"))
		// Changes after the first byte are not persisted.
		sess.Set("late", "value")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	sess, err := sm.Load(req)
	require.NoError(t, err)
	assert.True(t, sess.Authenticated())
	assert.Empty(t, sess.Get("late"))
}

func TestSessionMiddlewareCommitsWithoutBody(t *testing.T) {
	sm := shared.NewSessionManager("test_session", "secret", time.Hour, false)
	handler := SessionMiddleware(sm, discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		shared.SessionFromContext(r.Context()).Set("k", "v")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, rr.Result().Cookies(), 1)
}

func TestCSRFMiddleware(t *testing.T) {
	csrf := shared.NewCSRFManager("csrf-secret")
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	handler := CSRFMiddleware(csrf, discardLogger())(next)

	sess := &shared.Session{ID: "s-1"}
	token, err := csrf.EnsureToken(t.Context(), sess)
	require.NoError(t, err)

	tests := []struct {
		name   string
		build  func() *http.Request
		status int
	}{
		{
			name:   "get passes",
			build:  func() *http.Request { return httptest.NewRequest(http.MethodGet, "/", nil) },
			status: http.StatusNoContent,
		},
		{
			name: "form token",
			build: func() *http.Request {
				form := url.Values{shared.CSRFFormField: {token}}
				req := httptest.NewRequest(http.MethodPost, "/logout", strings.NewReader(form.Encode()))
				req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
				return req
			},
			status: http.StatusNoContent,
		},
		{
			name: "header token",
			build: func() *http.Request {
				req := httptest.NewRequest(http.MethodPost, "/logout", nil)
				req.Header.Set(shared.CSRFHeader, token)
				return req
			},
			status: http.StatusNoContent,
		},
		{
			name: "missing token",
			build: func() *http.Request {
				return httptest.NewRequest(http.MethodPost, "/logout", nil)
			},
			status: http.StatusForbidden,
		},
		{
			name: "wrong token",
			build: func() *http.Request {
				req := httptest.NewRequest(http.MethodPost, "/logout", nil)
				req.Header.Set(shared.CSRFHeader, "forged")
				return req
			},
			status: http.StatusForbidden,
		},
		{
			name: "json api exempt",
			build: func() *http.Request {
				req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{}`))
				req.Header.Set("Content-Type", "application/json; charset=utf-8")
				return req
			},
			status: http.StatusNoContent,
		},
		{
			name: "api form not exempt",
			build: func() *http.Request {
				req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("password=x"))
				req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
				return req
			},
			status: http.StatusForbidden,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := tc.build()
			req = req.WithContext(shared.ContextWithSession(req.Context(), sess))
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)
			assert.Equal(t, tc.status, rr.Code)
		})
	}
}

func TestCSRFMiddlewareWithoutSession(t *testing.T) {
	handler := CSRFMiddleware(shared.NewCSRFManager("x"), discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/logout", nil))
	assert.Equal(t, http.StatusForbidden, rr.Code)
}
