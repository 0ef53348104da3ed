package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sva-insights/founder-dashboard/internal/analytics"
)

func TestNarrativeFallbackOnlyWhenAllZero(t *testing.T) {
	assert.Equal(t, []string{StableNarrative}, Narrative(CohortDelta{}))

	nonZero := []CohortDelta{
		{RevenueGrowthPct: 0.01},
		{FollowOnFundingUSD: -1},
		{Pilots: 1},
		{Partnerships: -2},
		{FounderNPS: 0.5},
		{AttendancePct: -3},
		{MentorHours: 4},
	}
	for _, d := range nonZero {
		got := Narrative(d)
		require.Len(t, got, 1, "%+v", d)
		assert.NotEqual(t, StableNarrative, got[0])
	}
}

func TestNarrativeOrderAndWording(t *testing.T) {
	got := Narrative(CohortDelta{
		RevenueGrowthPct:   -2.46,
		FollowOnFundingUSD: 1_250_000,
		Pilots:             -3,
		Partnerships:       4,
		FounderNPS:         1.3,
		AttendancePct:      2.5,
		MentorHours:        1200,
	})
	assert.Equal(t, []string{
		"Revenue growth decreased by 2.5 pts.",
		"Follow-on funding increased by $1.25M.",
		"Pilots decreased by 3.",
		"Partnerships increased by 4.",
		"Founder NPS increased by 1.3.",
		"Session attendance increased by 2.5 pts.",
		"Mentor hours increased by 1,200.",
	}, got)
}

func TestNarrativeSmallDeltasStayNonZero(t *testing.T) {
	cases := []struct {
		delta CohortDelta
		want  string
	}{
		{CohortDelta{MentorHours: 0.4}, "Mentor hours increased by 0.4."},
		{CohortDelta{MentorHours: -12.5}, "Mentor hours decreased by 12.5."},
		{CohortDelta{RevenueGrowthPct: 0.01}, "Revenue growth increased by 0.01 pts."},
		{CohortDelta{FounderNPS: -0.04}, "Founder NPS decreased by 0.04."},
		{CohortDelta{AttendancePct: 0.3}, "Session attendance increased by 0.3 pts."},
		{CohortDelta{FollowOnFundingUSD: -1}, "Follow-on funding decreased by $1."},
		{CohortDelta{FollowOnFundingUSD: 0.26}, "Follow-on funding increased by $0.3."},
		{CohortDelta{FollowOnFundingUSD: 4000}, "Follow-on funding increased by $4,000."},
	}
	for _, tc := range cases {
		assert.Equal(t, []string{tc.want}, Narrative(tc.delta))
	}
}

func TestNPSTieProducesNoNPSSentence(t *testing.T) {
	earlier := analytics.FounderKPIs{AvgFounderNPS: 50, PilotsInitiated: 3}
	later := analytics.FounderKPIs{AvgFounderNPS: 50, PilotsInitiated: 4}
	got := Narrative(CompareFounderKPIs(earlier, later))
	assert.Equal(t, []string{"Pilots increased by 1."}, got)

	later.PilotsInitiated = 3
	assert.Equal(t, []string{StableNarrative}, Narrative(CompareFounderKPIs(earlier, later)))
}

func TestDeltaIsAntisymmetric(t *testing.T) {
	a := analytics.FounderKPIs{AvgRevenueGrowthPct: 12.5, FollowOnFundingUSD: 3e6, PilotsInitiated: 4,
		PartnershipsSigned: 2, AvgFounderNPS: 61, AvgAttendancePct: 88, MentorHours: 140}
	b := analytics.FounderKPIs{AvgRevenueGrowthPct: -3, FollowOnFundingUSD: 1e6, PilotsInitiated: 9,
		PartnershipsSigned: 2, AvgFounderNPS: 70.5, AvgAttendancePct: 92, MentorHours: 100}

	ab := CompareFounderKPIs(a, b)
	ba := CompareFounderKPIs(b, a)
	assert.Equal(t, ab.RevenueGrowthPct, -ba.RevenueGrowthPct)
	assert.Equal(t, ab.FollowOnFundingUSD, -ba.FollowOnFundingUSD)
	assert.Equal(t, ab.Pilots, -ba.Pilots)
	assert.Equal(t, ab.Partnerships, -ba.Partnerships)
	assert.Equal(t, ab.FounderNPS, -ba.FounderNPS)
	assert.Equal(t, ab.AttendancePct, -ba.AttendancePct)
	assert.Equal(t, ab.MentorHours, -ba.MentorHours)
	assert.True(t, CompareFounderKPIs(a, a).IsZero())
}

func TestJoinNarrative(t *testing.T) {
	assert.Equal(t, "A. B.", JoinNarrative([]string{"A.", "B."}))
}

func TestPartnerNarrative(t *testing.T) {
	assert.Equal(t, []string{NoPartnerData}, PartnerNarrative(analytics.PartnerKPIs{}, 0))

	got := PartnerNarrative(analytics.PartnerKPIs{
		AvgROIMultiple:          2.25,
		TotalCommercialValueUSD: 2_000_000,
		AvgCostSavingsUSD:       150_000,
		ActivePilots:            3,
		CompletedPilots:         4,
		CapabilitiesGained:      0,
		PatentsFiled:            1,
	}, 2)
	assert.Equal(t, []string{
		"Partners are achieving an average ROI of 2.25x on their investments.",
		"Total commercial value generated: $2.00M with average cost savings of $150K per partner.",
		"Currently 3 active pilots with 4 successfully completed.",
		"1 patents filed as a result of partner collaborations.",
	}, got)
}
