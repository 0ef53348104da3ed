package analytichttp_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sva-insights/founder-dashboard/internal/analytics"
	analytichttp "github.com/sva-insights/founder-dashboard/internal/analytics/http"
	"github.com/sva-insights/founder-dashboard/internal/analytics/svg"
	"github.com/sva-insights/founder-dashboard/internal/dataset"
	"github.com/sva-insights/founder-dashboard/internal/insights"
	"github.com/sva-insights/founder-dashboard/internal/shared"
	"github.com/sva-insights/founder-dashboard/internal/view"
	_ "github.com/sva-insights/founder-dashboard/testing"
)

func fixtureStore() *dataset.Store {
	submitted := "2025-02-10T09:00:00Z"
	return dataset.NewStore(dataset.Snapshot{
		Companies: []dataset.CompanyRecord{
			{ProgramCycleUID: "ACC-2024-Fall", CompanyUID: "c-1", CanonicalName: "Legacy Works", Sector: "Climate", RevenueGrowthPct: 5, FollowOnFundingUSD: 100000, SessionsAttendancePct: 80},
			{ProgramCycleUID: "ACC-2025-Spring", CompanyUID: "c-2", CanonicalName: "Spring Labs", Sector: "Fintech", RevenueGrowthPct: 12, PilotsInitiated: 2, FollowOnFundingUSD: 500000, FounderNPS: 70, SessionsAttendancePct: 90, MentorHours: 20},
			{ProgramCycleUID: "ACC-2025-Fall", CompanyUID: "c-3", CanonicalName: "Fall Robotics", Sector: "Fintech", RevenueGrowthPct: -3, PilotsInitiated: 1, FollowOnFundingUSD: 250000, FounderNPS: 60, SessionsAttendancePct: 85, MentorHours: 14},
		},
		Applications: []dataset.ApplicationRecord{
			{ApplicationUID: "a-1", CompanyName: "Applicant One", Cohort: "Cohort 1", ApplicationStatus: "PASSED", YearFounded: dataset.YearOf(2020), CurrentlyFundraising: true, ReferralSource: "LinkedIn", SubmittedAt: &submitted},
			{ApplicationUID: "a-2", CompanyName: "Applicant Two", Cohort: "Cohort 2", ApplicationStatus: "PENDING"},
		},
		Advisors: []dataset.AdvisorRecord{
			{AdvisorUID: "adv-1", FullName: "Ava Martin", Role: "Executive Advisor", Location: "Austin, TX"},
			{AdvisorUID: "adv-2", FullName: "Ben Okafor", Role: "Insights Advisor", Location: "Boston, MA"},
		},
		Partners: []dataset.PartnerRecord{
			{PartnerUID: "p-1", PartnerName: "Atlas Bank", Industry: "Financial Services", TotalCommercialValueUSD: 400000, ROIMultiple: 2.5, ActivePilots: 1},
			{PartnerUID: "p-2", PartnerName: "Beacon Health", Industry: "Healthcare", TotalCommercialValueUSD: 150000, ROIMultiple: 1.2},
		},
		Cycles: []dataset.CycleSnapshotRecord{
			{ProgramCycleUID: "ACC-2025-Spring", CycleName: "Spring 2025 Cohort", Status: "Completed", StartDate: "2025-01-15", EndDate: "2025-04-30", TotalCompanies: 1},
			{ProgramCycleUID: "ACC-2025-Fall", CycleName: "Fall 2025 Cohort", Status: "In Progress", StartDate: "2025-09-08", EndDate: "2025-12-12", TotalCompanies: 1},
		},
		Sectors: []dataset.PortfolioSectorRecord{
			{Sector: "Fintech", TotalCompanies: 2, SuccessRatePct: 60, MarketTractionScore: 7, ProductReadinessScore: 8, TeamStrengthScore: 7},
		},
		Operations: []dataset.OperationalHealthRecord{
			{ProgramCycleUID: "ACC-2025-Spring", CycleName: "Spring 2025 Cohort", OperationalEfficiencyScore: 8.2, BudgetUtilizationPct: 96, BudgetAllocatedUSD: 500000, BudgetSpentUSD: 480000},
		},
	})
}

type failingService struct {
	*analytics.Service
}

func (failingService) Portfolio(context.Context) (analytics.PortfolioView, error) {
	return analytics.PortfolioView{}, errors.New("boom")
}

func newRouter(t *testing.T, service analytichttp.AnalyticsService) http.Handler {
	t.Helper()
	templates, err := view.NewEngine()
	require.NoError(t, err)
	store := fixtureStore()
	if service == nil {
		service = analytics.NewService(store, analytics.NewCache(nil, time.Minute))
	}
	narrative := insights.NewService(store, insights.CohortFilters{})
	handler := analytichttp.NewHandler(nil, service, narrative, store, templates, svg.Renderer{}, shared.NewCSRFManager("secret"))

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := &shared.Session{ID: "test-session"}
			sess.SetAuthenticated(true)
			next.ServeHTTP(w, r.WithContext(shared.ContextWithSession(r.Context(), sess)))
		})
	})
	handler.MountRoutes(r)
	return r
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr
}

func TestPagesRender(t *testing.T) {
	router := newRouter(t, nil)
	tests := []struct {
		path  string
		title string
		want  string
	}{
		{path: "/applications", title: "Applications", want: "Applicant One"},
		{path: "/applications?cohort=Cohort+2", title: "Applications", want: "Applicant Two"},
		{path: "/advisors", title: "Advisors", want: "Ava Martin"},
		{path: "/partner-roi", title: "Partner ROI", want: "Atlas Bank"},
		{path: "/cycle-snapshot", title: "Cycle Snapshot", want: "Spring 2025 Cohort"},
		{path: "/portfolio-trends", title: "Portfolio Trends", want: "Fintech"},
		{path: "/operational-health", title: "Operational Health", want: "Spring 2025 Cohort"},
		{path: "/sample-data", title: "Sample Data", want: "Legacy Works"},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			rr := get(t, router, tc.path)
			require.Equal(t, http.StatusOK, rr.Code)
			body := rr.Body.String()
			assert.Contains(t, body, "<h1>"+tc.title+"</h1>")
			assert.Contains(t, body, tc.want)
			assert.True(t, strings.HasPrefix(rr.Header().Get("Content-Type"), "text/html"))
		})
	}
}

func TestFounderPreselectsComparedCohorts(t *testing.T) {
	router := newRouter(t, nil)

	rr := get(t, router, "/")
	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "Spring Labs")
	assert.Contains(t, body, "Fall Robotics")
	assert.NotContains(t, body, "Legacy Works")
	assert.Contains(t, body, "ACC-2025-Spring vs ACC-2025-Fall")

	rr = get(t, router, "/?f=1")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Legacy Works")
}

func TestPartnerFilterNarrowsRows(t *testing.T) {
	router := newRouter(t, nil)

	rr := get(t, router, "/partner-roi?industry=Healthcare")
	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "Partners (1)")
	assert.NotContains(t, body, "<td>Atlas Bank</td>")
}

func TestUnknownCohortIsBadRequest(t *testing.T) {
	router := newRouter(t, nil)
	rr := get(t, router, "/applications?cohort=Cohort+9")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Invalid filter parameter")
}

func TestOversizedQueryIsBadRequest(t *testing.T) {
	router := newRouter(t, nil)
	rr := get(t, router, "/advisors?role="+strings.Repeat("x", 200))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestServiceFailureIsServerError(t *testing.T) {
	store := fixtureStore()
	router := newRouter(t, failingService{analytics.NewService(store, analytics.NewCache(nil, time.Minute))})

	rr := get(t, router, "/portfolio-trends")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	rr = get(t, router, "/advisors")
	assert.Equal(t, http.StatusOK, rr.Code)
}
