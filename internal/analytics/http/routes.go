package analytichttp

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"

	"github.com/sva-insights/founder-dashboard/internal/shared"
)

// MountRoutes registers the dashboard pages onto the router.
func (h *Handler) MountRoutes(r chi.Router) {
	if h == nil {
		return
	}
	limiter := httprate.Limit(120, time.Minute,
		httprate.WithKeyFuncs(rateLimitKey),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		}),
	)

	r.Group(func(gr chi.Router) {
		gr.Use(limiter)
		gr.Get("/", h.handleFounder)
		gr.Get("/applications", h.handleApplications)
		gr.Get("/advisors", h.handleAdvisors)
		gr.Get("/partner-roi", h.handlePartners)
		gr.Get("/cycle-snapshot", h.handleCycle)
		gr.Get("/portfolio-trends", h.handlePortfolio)
		gr.Get("/operational-health", h.handleOperations)
		gr.Get("/sample-data", h.handleSampleData)
	})
}

func rateLimitKey(r *http.Request) (string, error) {
	if sess := shared.SessionFromContext(r.Context()); sess != nil && sess.ID != "" {
		return "session:" + sess.ID, nil
	}
	key, err := httprate.KeyByIP(r)
	if err != nil {
		return "", err
	}
	return "ip:" + key, nil
}
