package insights

import (
	"github.com/sva-insights/founder-dashboard/internal/analytics"
	"github.com/sva-insights/founder-dashboard/internal/dataset"
)

// Default cohorts compared on the founder dashboard.
const (
	DefaultEarlierCohort = "ACC-2025-Spring"
	DefaultLaterCohort   = "ACC-2025-Fall"
)

// CohortFilters names the two program cycles to compare.
type CohortFilters struct {
	Earlier string
	Later   string
}

// CohortDelta holds later minus earlier for every founder KPI field.
type CohortDelta struct {
	RevenueGrowthPct   float64 `json:"revenue_growth_pct"`
	FollowOnFundingUSD float64 `json:"follow_on_funding_usd"`
	Pilots             int     `json:"pilots"`
	Partnerships       int     `json:"partnerships"`
	FounderNPS         float64 `json:"founder_nps"`
	AttendancePct      float64 `json:"attendance_pct"`
	MentorHours        float64 `json:"mentor_hours"`
}

// CompareFounderKPIs returns later - earlier per field. The raw difference
// is kept; rounding happens only when rendering.
func CompareFounderKPIs(earlier, later analytics.FounderKPIs) CohortDelta {
	return CohortDelta{
		RevenueGrowthPct:   later.AvgRevenueGrowthPct - earlier.AvgRevenueGrowthPct,
		FollowOnFundingUSD: later.FollowOnFundingUSD - earlier.FollowOnFundingUSD,
		Pilots:             later.PilotsInitiated - earlier.PilotsInitiated,
		Partnerships:       later.PartnershipsSigned - earlier.PartnershipsSigned,
		FounderNPS:         later.AvgFounderNPS - earlier.AvgFounderNPS,
		AttendancePct:      later.AvgAttendancePct - earlier.AvgAttendancePct,
		MentorHours:        later.MentorHours - earlier.MentorHours,
	}
}

// CohortRecords returns the companies of one program cycle.
func CohortRecords(records []dataset.CompanyRecord, cycle string) []dataset.CompanyRecord {
	return analytics.NewFilter(analytics.FounderDimensions()...).With("cycle", cycle).Apply(records)
}

// CompareCohorts summarises both cycles and diffs them. A cycle with no
// records summarises to zeros.
func CompareCohorts(records []dataset.CompanyRecord, filters CohortFilters) (earlier, later analytics.FounderKPIs, delta CohortDelta) {
	earlier = analytics.ComputeFounderKPIs(CohortRecords(records, filters.Earlier))
	later = analytics.ComputeFounderKPIs(CohortRecords(records, filters.Later))
	return earlier, later, CompareFounderKPIs(earlier, later)
}

// IsZero reports whether no field changed.
func (d CohortDelta) IsZero() bool {
	return d == CohortDelta{}
}
