package insightshttp

import "github.com/go-chi/chi/v5"

// MountRoutes registers the cohort comparison page.
func (h *Handler) MountRoutes(r chi.Router) {
	if h == nil {
		return
	}
	r.Get("/cohorts", h.handleCohorts)
}
