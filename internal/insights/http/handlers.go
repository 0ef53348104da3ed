package insightshttp

import (
	"context"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/sva-insights/founder-dashboard/internal/analytics"
	"github.com/sva-insights/founder-dashboard/internal/analytics/svg"
	"github.com/sva-insights/founder-dashboard/internal/insights"
	"github.com/sva-insights/founder-dashboard/internal/shared"
	"github.com/sva-insights/founder-dashboard/internal/view"
)

const (
	chartWidth     = 720
	chartHeight    = 260
	requestTimeout = 2 * time.Second
)

// Service exposes the cohort comparison required by the handler.
type Service interface {
	Load(ctx context.Context, filters insights.CohortFilters) (insights.Result, error)
}

type chartFunc func(width, height int, values []float64, labels []string, opts svg.Opts) (template.HTML, error)

// Handler serves the cohort comparison page.
type Handler struct {
	logger    *slog.Logger
	service   Service
	templates *view.Engine
	csrf      *shared.CSRFManager
	chart     chartFunc
	validate  *validator.Validate
}

// NewHandler builds a cohort comparison handler.
func NewHandler(logger *slog.Logger, service Service, templates *view.Engine, csrf *shared.CSRFManager) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		logger:    logger,
		service:   service,
		templates: templates,
		csrf:      csrf,
		chart:     svg.Bars,
		validate:  validator.New(),
	}
}

// cohortQuery bounds the two cycle parameters.
type cohortQuery struct {
	Earlier string `validate:"max=64"`
	Later   string `validate:"max=64"`
}

func (h *Handler) handleCohorts(w http.ResponseWriter, r *http.Request) {
	if h.templates == nil || h.service == nil || h.chart == nil {
		http.Error(w, http.StatusText(http.StatusNotImplemented), http.StatusNotImplemented)
		return
	}

	filters, err := h.parseFilters(r)
	if err != nil {
		h.handleFilterError(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := h.service.Load(ctx, filters)
	if err != nil {
		if errors.Is(err, insights.ErrUnknownCycle) {
			h.handleFilterError(w, validationError{field: "cycle"})
			return
		}
		h.handleServerError(w, "load cohorts", err)
		return
	}

	vm, err := h.buildViewModel(result)
	if err != nil {
		h.handleServerError(w, "build view model", err)
		return
	}

	sess := shared.SessionFromContext(r.Context())
	var flash *shared.FlashMessage
	csrfToken := ""
	if sess != nil {
		flash = sess.PopFlash()
		if h.csrf != nil {
			if csrfToken, err = h.csrf.EnsureToken(r.Context(), sess); err != nil {
				h.logger.Error("csrf token", slog.Any("error", err))
			}
		}
	}

	data := view.TemplateData{
		Title:       "Cohort Compare",
		Flash:       flash,
		CSRFToken:   csrfToken,
		CurrentPath: r.URL.Path,
		Data:        vm,
	}
	if err := h.templates.Render(w, "pages/cohorts.html", data); err != nil {
		h.handleServerError(w, "render template", err)
	}
}

func (h *Handler) parseFilters(r *http.Request) (insights.CohortFilters, error) {
	q := cohortQuery{
		Earlier: strings.TrimSpace(r.URL.Query().Get("earlier")),
		Later:   strings.TrimSpace(r.URL.Query().Get("later")),
	}
	if err := h.validate.Struct(q); err != nil {
		return insights.CohortFilters{}, validationError{field: "cycle"}
	}
	return insights.CohortFilters{Earlier: q.Earlier, Later: q.Later}, nil
}

func (h *Handler) buildViewModel(result insights.Result) (insights.ViewModel, error) {
	vm := insights.NewViewModel(result)
	if len(result.Variance) == 0 {
		return vm, nil
	}
	labels := make([]string, len(result.Variance))
	changes := make([]float64, len(result.Variance))
	for i, v := range result.Variance {
		labels[i] = v.Metric
		changes[i] = v.ChangePct
	}
	chart, err := h.chart(chartWidth, chartHeight, changes, labels, svg.Opts{
		Title:       "Change by Metric",
		Description: result.Filters.Earlier + " to " + result.Filters.Later + " percent change per KPI",
		Format:      func(f float64) string { return analytics.FormatPercent(f, 0) },
	})
	if err != nil {
		return insights.ViewModel{}, err
	}
	vm.Chart = chart
	return vm, nil
}

func (h *Handler) handleFilterError(w http.ResponseWriter, err error) {
	var v validationError
	if errors.As(err, &v) {
		http.Error(w, "Invalid filter parameter", http.StatusBadRequest)
		return
	}
	h.handleServerError(w, "validate filters", err)
}

func (h *Handler) handleServerError(w http.ResponseWriter, message string, err error) {
	if h.logger != nil {
		h.logger.Error(message, slog.Any("error", err))
	}
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

type validationError struct {
	field string
}

func (v validationError) Error() string {
	return "invalid " + v.field
}
