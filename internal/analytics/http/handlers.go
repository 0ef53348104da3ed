package analytichttp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"github.com/sva-insights/founder-dashboard/internal/analytics"
	"github.com/sva-insights/founder-dashboard/internal/analytics/ui"
	"github.com/sva-insights/founder-dashboard/internal/dataset"
	"github.com/sva-insights/founder-dashboard/internal/insights"
	"github.com/sva-insights/founder-dashboard/internal/shared"
	"github.com/sva-insights/founder-dashboard/internal/view"
)

const (
	requestTimeout = 2 * time.Second
	// filterMarker distinguishes a submitted empty filter form from a first
	// visit, which preselects the compared cohorts.
	filterMarker = "f"
	allOption    = "All"
)

// AnalyticsService defines the dashboard data contract used by the handler.
type AnalyticsService interface {
	FounderFilter() analytics.Filter[dataset.CompanyRecord]
	PartnerFilter() analytics.Filter[dataset.PartnerRecord]
	AdvisorFilter() analytics.Filter[dataset.AdvisorRecord]
	Founder(ctx context.Context, f analytics.Filter[dataset.CompanyRecord]) (analytics.FounderView, error)
	Applications(ctx context.Context, cohort string) (analytics.ApplicationsView, error)
	Advisors(ctx context.Context, f analytics.Filter[dataset.AdvisorRecord]) (analytics.AdvisorsView, error)
	Partners(ctx context.Context, f analytics.Filter[dataset.PartnerRecord]) (analytics.PartnerView, error)
	Cycle(ctx context.Context, id string) (analytics.CycleView, error)
	Portfolio(ctx context.Context) (analytics.PortfolioView, error)
	Operations(ctx context.Context) (analytics.OperationsView, error)
}

// NarrativeService summarizes the compared founder cohorts.
type NarrativeService interface {
	Defaults() insights.CohortFilters
	Narrate(ctx context.Context) ([]string, error)
}

// RecordSource exposes raw company records for the sample data page.
type RecordSource interface {
	Companies() []dataset.CompanyRecord
}

// Handler coordinates HTTP requests for the dashboard pages.
type Handler struct {
	logger    *slog.Logger
	service   AnalyticsService
	narrative NarrativeService
	records   RecordSource
	templates *view.Engine
	charts    ui.ChartRenderer
	csrf      *shared.CSRFManager
	validate  *validator.Validate
}

// NewHandler constructs the dashboard HTTP handler.
func NewHandler(logger *slog.Logger, service AnalyticsService, narrative NarrativeService, records RecordSource, templates *view.Engine, charts ui.ChartRenderer, csrf *shared.CSRFManager) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		logger:    logger,
		service:   service,
		narrative: narrative,
		records:   records,
		templates: templates,
		charts:    charts,
		csrf:      csrf,
		validate:  validator.New(),
	}
}

func (h *Handler) pageContext(r *http.Request) ui.PageContext {
	return ui.PageContext{Path: r.URL.Path, Expand: ui.ParseExpand(r.URL.Query()), Charts: h.charts}
}

func (h *Handler) handleFounder(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseQuery(r)
	if err != nil {
		h.handleFilterError(w, err)
		return
	}
	defaults := h.narrative.Defaults()
	f := h.service.FounderFilter().FromQuery(q)
	if q.Get(filterMarker) == "" && !f.Active() {
		f = f.With("cycle", defaults.Earlier, defaults.Later)
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	var (
		founder   analytics.FounderView
		narrative []string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := h.service.Founder(gctx, f)
		founder = v
		return err
	})
	g.Go(func() error {
		n, err := h.narrative.Narrate(gctx)
		narrative = n
		return err
	})
	if err := g.Wait(); err != nil {
		h.handleServerError(w, "load founder dashboard", err)
		return
	}

	page, err := ui.BuildFounderPage(h.pageContext(r), founder, narrative, defaults.Earlier, defaults.Later)
	if err != nil {
		h.handleServerError(w, "render charts", err)
		return
	}
	h.render(w, r, "pages/founder.html", "Founder Success", page)
}

func (h *Handler) handleApplications(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseQuery(r)
	if err != nil {
		h.handleFilterError(w, err)
		return
	}
	cohort := q.Get("cohort")

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	v, err := h.service.Applications(ctx, cohort)
	if errors.Is(err, analytics.ErrUnknownCohort) {
		h.handleFilterError(w, validationError{field: "cohort"})
		return
	}
	if err != nil {
		h.handleServerError(w, "load applications", err)
		return
	}
	page, err := ui.BuildApplicationsPage(h.pageContext(r), v)
	if err != nil {
		h.handleServerError(w, "render charts", err)
		return
	}
	h.render(w, r, "pages/applications.html", "Applications", page)
}

func (h *Handler) handleAdvisors(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseQuery(r)
	if err != nil {
		h.handleFilterError(w, err)
		return
	}
	f := h.service.AdvisorFilter()
	for _, d := range f.Dimensions() {
		if v := q.Get(d.Name); v != "" && v != allOption {
			f = f.With(d.Name, v)
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	v, err := h.service.Advisors(ctx, f)
	if err != nil {
		h.handleServerError(w, "load advisors", err)
		return
	}
	page, err := ui.BuildAdvisorsPage(h.pageContext(r), v)
	if err != nil {
		h.handleServerError(w, "render charts", err)
		return
	}
	h.render(w, r, "pages/advisors.html", "Advisors", page)
}

func (h *Handler) handlePartners(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseQuery(r)
	if err != nil {
		h.handleFilterError(w, err)
		return
	}
	f := h.service.PartnerFilter().FromQuery(q)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	v, err := h.service.Partners(ctx, f)
	if err != nil {
		h.handleServerError(w, "load partners", err)
		return
	}
	narrative := insights.PartnerNarrative(v.KPIs, len(v.Partners))
	page, err := ui.BuildPartnerPage(h.pageContext(r), v, narrative)
	if err != nil {
		h.handleServerError(w, "render charts", err)
		return
	}
	h.render(w, r, "pages/partners.html", "Partner ROI", page)
}

func (h *Handler) handleCycle(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseQuery(r)
	if err != nil {
		h.handleFilterError(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	v, err := h.service.Cycle(ctx, q.Get("cycle"))
	if err != nil {
		h.handleServerError(w, "load cycle snapshot", err)
		return
	}
	h.render(w, r, "pages/cycle.html", "Cycle Snapshot", ui.BuildCyclePage(h.pageContext(r), v))
}

func (h *Handler) handlePortfolio(w http.ResponseWriter, r *http.Request) {
	if _, err := h.parseQuery(r); err != nil {
		h.handleFilterError(w, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	v, err := h.service.Portfolio(ctx)
	if err != nil {
		h.handleServerError(w, "load portfolio", err)
		return
	}
	page, err := ui.BuildPortfolioPage(h.pageContext(r), v)
	if err != nil {
		h.handleServerError(w, "render charts", err)
		return
	}
	h.render(w, r, "pages/portfolio.html", "Portfolio Trends", page)
}

func (h *Handler) handleOperations(w http.ResponseWriter, r *http.Request) {
	if _, err := h.parseQuery(r); err != nil {
		h.handleFilterError(w, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	v, err := h.service.Operations(ctx)
	if err != nil {
		h.handleServerError(w, "load operations", err)
		return
	}
	page, err := ui.BuildOperationsPage(h.pageContext(r), v)
	if err != nil {
		h.handleServerError(w, "render charts", err)
		return
	}
	h.render(w, r, "pages/operations.html", "Operational Health", page)
}

func (h *Handler) handleSampleData(w http.ResponseWriter, r *http.Request) {
	if _, err := h.parseQuery(r); err != nil {
		h.handleFilterError(w, err)
		return
	}
	if h.records == nil {
		h.handleServerError(w, "sample data", errors.New("record source not configured"))
		return
	}
	h.render(w, r, "pages/sample_data.html", "Sample Data", ui.BuildSampleDataPage(h.pageContext(r), h.records.Companies()))
}

// queryValue bounds one query parameter value.
type queryValue struct {
	Value string `validate:"max=128"`
}

func (h *Handler) parseQuery(r *http.Request) (url.Values, error) {
	q := r.URL.Query()
	for name, values := range q {
		if len(values) > 64 {
			return nil, validationError{field: name}
		}
		for _, v := range values {
			if err := h.validate.Struct(queryValue{Value: v}); err != nil {
				return nil, validationError{field: name}
			}
		}
	}
	return q, nil
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, name, title string, data any) {
	sess := shared.SessionFromContext(r.Context())
	var flash *shared.FlashMessage
	csrfToken := ""
	if sess != nil {
		flash = sess.PopFlash()
		if h.csrf != nil {
			token, err := h.csrf.EnsureToken(r.Context(), sess)
			if err != nil {
				h.logError("csrf token", err)
			}
			csrfToken = token
		}
	}
	viewData := view.TemplateData{
		Title:       title,
		Flash:       flash,
		CSRFToken:   csrfToken,
		CurrentPath: r.URL.Path,
		Data:        data,
	}
	if err := h.templates.Render(w, name, viewData); err != nil {
		h.handleServerError(w, "render template", err)
	}
}

func (h *Handler) handleFilterError(w http.ResponseWriter, err error) {
	var vErr validationError
	if errors.As(err, &vErr) {
		http.Error(w, "Invalid filter parameter", http.StatusBadRequest)
		return
	}
	h.handleServerError(w, "parse filters", err)
}

func (h *Handler) handleServerError(w http.ResponseWriter, context string, err error) {
	h.logError(context, err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func (h *Handler) logError(context string, err error) {
	if h.logger != nil {
		h.logger.Error(context, slog.Any("error", err))
	}
}

type validationError struct {
	field string
}

func (v validationError) Error() string {
	return fmt.Sprintf("invalid %s", v.field)
}
