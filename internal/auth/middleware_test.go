package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sva-insights/founder-dashboard/internal/shared"
)

func TestRequireAuth(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	handler := RequireAuth(ok)

	cases := []struct {
		name     string
		method   string
		path     string
		authed   bool
		status   int
		location string
	}{
		{name: "dashboard anonymous", method: http.MethodGet, path: "/", status: http.StatusSeeOther, location: "/login"},
		{name: "nested anonymous", method: http.MethodGet, path: "/partner-roi", status: http.StatusSeeOther, location: "/login"},
		{name: "dashboard signed in", method: http.MethodGet, path: "/advisors", authed: true, status: http.StatusOK},
		{name: "login anonymous", method: http.MethodGet, path: "/login", status: http.StatusOK},
		{name: "login signed in", method: http.MethodGet, path: "/login", authed: true, status: http.StatusSeeOther, location: "/"},
		{name: "api", method: http.MethodPost, path: "/api/auth/login", status: http.StatusOK},
		{name: "static", method: http.MethodGet, path: "/static/css/app.css", status: http.StatusOK},
		{name: "health", method: http.MethodGet, path: "/healthz", status: http.StatusOK},
		{name: "metrics", method: http.MethodGet, path: "/metrics", status: http.StatusOK},
		{name: "jobs health", method: http.MethodGet, path: "/jobs/health", status: http.StatusSeeOther, location: "/login"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sess := &shared.Session{ID: "s1"}
			sess.SetAuthenticated(tc.authed)
			req := httptest.NewRequest(tc.method, tc.path, nil)
			req = req.WithContext(shared.ContextWithSession(req.Context(), sess))
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.status, rr.Code)
			assert.Equal(t, tc.location, rr.Header().Get("Location"))
		})
	}
}

func TestRequireAuthWithoutSession(t *testing.T) {
	handler := RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/cohorts", nil))
	assert.Equal(t, http.StatusSeeOther, rr.Code)
}
