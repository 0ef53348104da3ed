package insights

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/sva-insights/founder-dashboard/internal/analytics"
	"github.com/sva-insights/founder-dashboard/internal/dataset"
)

// ErrUnknownCycle is returned when a requested cohort has no records.
var ErrUnknownCycle = errors.New("insights: unknown cycle")

// Source exposes the company records the comparison reads.
type Source interface {
	Companies() []dataset.CompanyRecord
}

// VarianceMetric is one KPI compared across cohorts.
type VarianceMetric struct {
	Key       string  `json:"key"`
	Metric    string  `json:"metric"`
	Kind      string  `json:"kind"`
	Earlier   float64 `json:"earlier"`
	Later     float64 `json:"later"`
	Delta     float64 `json:"delta"`
	ChangePct float64 `json:"change_pct"`
}

// Result aggregates everything the cohort views need.
type Result struct {
	Filters   CohortFilters         `json:"filters"`
	Earlier   analytics.FounderKPIs `json:"earlier"`
	Later     analytics.FounderKPIs `json:"later"`
	Delta     CohortDelta           `json:"delta"`
	Narrative []string              `json:"narrative"`
	Variance  []VarianceMetric      `json:"variance"`
	Cycles    []string              `json:"cycles"`
}

// Service coordinates cohort comparison over the loaded datasets.
type Service struct {
	source   Source
	defaults CohortFilters
}

// NewService constructs a Service comparing defaults when no cohorts are
// requested.
func NewService(source Source, defaults CohortFilters) *Service {
	if defaults.Earlier == "" {
		defaults.Earlier = DefaultEarlierCohort
	}
	if defaults.Later == "" {
		defaults.Later = DefaultLaterCohort
	}
	return &Service{source: source, defaults: defaults}
}

// Defaults returns the configured cohort pair.
func (s *Service) Defaults() CohortFilters {
	return s.defaults
}

// Cycles lists the program cycles present in the data, first-seen order.
func (s *Service) Cycles() []string {
	if s.source == nil {
		return nil
	}
	return analytics.Unique(s.source.Companies(), func(c dataset.CompanyRecord) string {
		return c.ProgramCycleUID
	})
}

// Load compares two cohorts. Empty filter fields fall back to the defaults.
func (s *Service) Load(ctx context.Context, filters CohortFilters) (Result, error) {
	if s.source == nil {
		return Result{}, fmt.Errorf("insights: source not configured")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if filters.Earlier == "" {
		filters.Earlier = s.defaults.Earlier
	}
	if filters.Later == "" {
		filters.Later = s.defaults.Later
	}
	cycles := s.Cycles()
	for _, c := range []string{filters.Earlier, filters.Later} {
		if !slices.Contains(cycles, c) {
			return Result{}, fmt.Errorf("%w %q", ErrUnknownCycle, c)
		}
	}

	earlier, later, delta := CompareCohorts(s.source.Companies(), filters)
	return Result{
		Filters:   filters,
		Earlier:   earlier,
		Later:     later,
		Delta:     delta,
		Narrative: Narrative(delta),
		Variance:  computeVariance(earlier, later),
		Cycles:    cycles,
	}, nil
}

// Narrate summarizes the default cohort pair for the founder dashboard. A
// cohort with no records compares as all zeros instead of failing.
func (s *Service) Narrate(ctx context.Context) ([]string, error) {
	if s.source == nil {
		return nil, fmt.Errorf("insights: source not configured")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	_, _, delta := CompareCohorts(s.source.Companies(), s.defaults)
	return Narrative(delta), nil
}

func computeVariance(earlier, later analytics.FounderKPIs) []VarianceMetric {
	out := make([]VarianceMetric, 0, len(analytics.FounderMetrics))
	for _, m := range analytics.FounderMetrics {
		a := founderField(earlier, m.Key)
		b := founderField(later, m.Key)
		out = append(out, VarianceMetric{
			Key:       m.Key,
			Metric:    m.Label,
			Kind:      m.Kind.String(),
			Earlier:   a,
			Later:     b,
			Delta:     b - a,
			ChangePct: variancePercent(a, b),
		})
	}
	return out
}

func founderField(k analytics.FounderKPIs, key string) float64 {
	switch key {
	case "avg_revenue_growth_pct":
		return k.AvgRevenueGrowthPct
	case "follow_on_funding_usd":
		return k.FollowOnFundingUSD
	case "pilots_initiated":
		return float64(k.PilotsInitiated)
	case "partnerships_signed":
		return float64(k.PartnershipsSigned)
	case "avg_founder_nps":
		return k.AvgFounderNPS
	case "avg_attendance_pct":
		return k.AvgAttendancePct
	case "mentor_hours":
		return k.MentorHours
	default:
		return 0
	}
}

func variancePercent(base, current float64) float64 {
	if almostZero(base) {
		if almostZero(current) {
			return 0
		}
		return 100
	}
	return (current - base) / math.Abs(base) * 100
}

func almostZero(v float64) bool {
	return v > -0.0001 && v < 0.0001
}
