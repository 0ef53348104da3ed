package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sva-insights/founder-dashboard/internal/dataset"
)

func companies() []dataset.CompanyRecord {
	return []dataset.CompanyRecord{
		{ProgramCycleUID: "ACC-2025-Spring", CompanyUID: "c1", CanonicalName: "Acme", Sector: "Fintech", Stage: "Seed",
			RevenueGrowthPct: 10, FollowOnFundingUSD: 1_000_000, PilotsInitiated: 2, PartnershipsSignedCount: 1,
			FounderNPS: 60, SessionsAttendancePct: 90, MentorHours: 12},
		{ProgramCycleUID: "ACC-2025-Spring", CompanyUID: "c2", CanonicalName: "Borealis", Sector: "Health", Stage: "Series A",
			RevenueGrowthPct: 20, FollowOnFundingUSD: 2_000_000, PilotsInitiated: 3, PartnershipsSignedCount: 0,
			FounderNPS: 70, SessionsAttendancePct: 80, MentorHours: 8},
		{ProgramCycleUID: "ACC-2025-Fall", CompanyUID: "c3", CanonicalName: "Cobalt", Sector: "Fintech", Stage: "Seed",
			RevenueGrowthPct: -5, FollowOnFundingUSD: 0, PilotsInitiated: 0, PartnershipsSignedCount: 4,
			FounderNPS: 50, SessionsAttendancePct: 100, MentorHours: 5},
	}
}

func TestComputeFounderKPIsScenario(t *testing.T) {
	k := ComputeFounderKPIs(companies())

	assert.InDelta(t, 8.333, k.AvgRevenueGrowthPct, 0.001)
	assert.Equal(t, 3_000_000.0, k.FollowOnFundingUSD)
	assert.Equal(t, 5, k.PilotsInitiated)
	assert.Equal(t, 5, k.PartnershipsSigned)
	assert.InDelta(t, 60, k.AvgFounderNPS, 0.0001)
	assert.InDelta(t, 90, k.AvgAttendancePct, 0.0001)
	assert.Equal(t, 25.0, k.MentorHours)
}

func TestComputeFounderKPIsEmpty(t *testing.T) {
	assert.Equal(t, FounderKPIs{}, ComputeFounderKPIs(nil))
	assert.Equal(t, FounderKPIs{}, ComputeFounderKPIs([]dataset.CompanyRecord{}))
}

func TestMetricReduceMatchesArithmetic(t *testing.T) {
	records := companies()
	for _, m := range FounderMetrics {
		var total float64
		for _, rec := range records {
			total += m.Value(rec)
		}
		want := total
		if m.Kind == KindMean {
			want = total / float64(len(records))
		}
		assert.InDelta(t, want, m.reduce(records), 1e-9, m.Key)
	}
}

func TestMetricTablesDeclareEveryField(t *testing.T) {
	require.Len(t, FounderMetrics, 7)
	require.Len(t, PartnerMetrics, 10)
	require.Len(t, PortfolioMetrics, 4)
	require.Len(t, OperationsMetrics, 4)
	require.Len(t, CycleMetrics, 6)

	kinds := map[string]MetricKind{}
	for _, m := range FounderMetrics {
		kinds[m.Key] = m.Kind
	}
	assert.Equal(t, KindSum, kinds["follow_on_funding_usd"])
	assert.Equal(t, KindSum, kinds["mentor_hours"])
	assert.Equal(t, KindMean, kinds["avg_revenue_growth_pct"])
	assert.Equal(t, KindMean, kinds["avg_founder_nps"])
}

func TestMeanOptionalSkipsNulls(t *testing.T) {
	rate := func(v float64) *float64 { return &v }
	cycles := []dataset.CycleSnapshotRecord{
		{ProgramCycleUID: "a", CycleName: "A", TotalCompanies: 10, GraduationRatePct: rate(80)},
		{ProgramCycleUID: "b", CycleName: "B", TotalCompanies: 12, GraduationRatePct: nil},
		{ProgramCycleUID: "c", CycleName: "C", TotalCompanies: 8, GraduationRatePct: rate(90)},
	}
	k := ComputeCycleKPIs(cycles)
	assert.Equal(t, 30, k.TotalCompanies)
	assert.InDelta(t, 85, k.AvgGraduationRatePct, 0.0001)

	k = ComputeCycleKPIs(cycles[1:2])
	assert.Equal(t, 0.0, k.AvgGraduationRatePct)
}

func TestComputePartnerKPIs(t *testing.T) {
	partners := []dataset.PartnerRecord{
		{PartnerUID: "p1", PartnerName: "Atlas", TotalCommercialValueUSD: 1_500_000, CostSavingsUSD: 200_000,
			ROIMultiple: 3, ActivePilots: 2, CompletedPilots: 1, AvgInnovationScore: 8, PartnerSatisfactionScore: 90,
			TimeToPilotDays: 30, NewCapabilitiesGained: 3, PatentsFiled: 1},
		{PartnerUID: "p2", PartnerName: "Beacon", TotalCommercialValueUSD: 500_000, CostSavingsUSD: 100_000,
			ROIMultiple: 1.5, ActivePilots: 1, CompletedPilots: 3, AvgInnovationScore: 6, PartnerSatisfactionScore: 70,
			TimeToPilotDays: 60, NewCapabilitiesGained: 1, PatentsFiled: 0},
	}
	k := ComputePartnerKPIs(partners)
	assert.Equal(t, 2_000_000.0, k.TotalCommercialValueUSD)
	assert.Equal(t, 150_000.0, k.AvgCostSavingsUSD)
	assert.InDelta(t, 2.25, k.AvgROIMultiple, 0.0001)
	assert.Equal(t, 3, k.ActivePilots)
	assert.Equal(t, 4, k.CompletedPilots)
	assert.InDelta(t, 7, k.AvgInnovationScore, 0.0001)
	assert.InDelta(t, 80, k.AvgSatisfactionScore, 0.0001)
	assert.InDelta(t, 45, k.AvgTimeToPilotDays, 0.0001)
	assert.Equal(t, 4, k.CapabilitiesGained)
	assert.Equal(t, 1, k.PatentsFiled)
}

func TestComputePortfolioAndOperationsKPIs(t *testing.T) {
	sectors := []dataset.PortfolioSectorRecord{
		{Sector: "Fintech", TotalCompanies: 5, TotalFundingUSD: 4_000_000, SuccessRatePct: 80, AvgRevenueGrowthPct: 30},
		{Sector: "Health", TotalCompanies: 3, TotalFundingUSD: 1_000_000, SuccessRatePct: 70, AvgRevenueGrowthPct: 10},
	}
	p := ComputePortfolioKPIs(sectors)
	assert.Equal(t, 8, p.TotalCompanies)
	assert.Equal(t, 5_000_000.0, p.TotalFundingUSD)
	assert.InDelta(t, 75, p.AvgSuccessRatePct, 0.0001)
	assert.InDelta(t, 20, p.AvgRevenueGrowthPct, 0.0001)
	assert.Equal(t, PortfolioKPIs{}, ComputePortfolioKPIs(nil))

	ops := []dataset.OperationalHealthRecord{
		{ProgramCycleUID: "a", CycleName: "A", OperationalEfficiencyScore: 8, BudgetUtilizationPct: 92, ROIOnInvestment: 3, TotalMentorHours: 400},
		{ProgramCycleUID: "b", CycleName: "B", OperationalEfficiencyScore: 9, BudgetUtilizationPct: 88, ROIOnInvestment: 4, TotalMentorHours: 600},
	}
	o := ComputeOperationsKPIs(ops)
	assert.InDelta(t, 8.5, o.AvgEfficiencyScore, 0.0001)
	assert.InDelta(t, 90, o.AvgBudgetUtilization, 0.0001)
	assert.InDelta(t, 3.5, o.AvgROI, 0.0001)
	assert.Equal(t, 1000.0, o.TotalMentorHours)
}

func TestRateAndCountIf(t *testing.T) {
	assert.Equal(t, 0.0, Rate(3, 0))
	assert.InDelta(t, 50, Rate(1, 2), 0.0001)
	assert.Equal(t, 2, CountIf([]int{1, 2, 3, 4}, func(v int) bool { return v%2 == 0 }))
	assert.Equal(t, 0.0, Mean([]int{}, func(v int) float64 { return float64(v) }))
}
