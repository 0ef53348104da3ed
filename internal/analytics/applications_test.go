package analytics

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sva-insights/founder-dashboard/internal/dataset"
)

func mixedCohorts() []dataset.ApplicationRecord {
	apps := make([]dataset.ApplicationRecord, 0, 164)
	for i := 0; i < 164; i++ {
		cohort := "Cohort 2"
		if i%4 == 0 && i < 148 {
			cohort = "Cohort 1"
		}
		status := "PENDING"
		if i%3 == 0 {
			status = StatusPassed
		}
		apps = append(apps, dataset.ApplicationRecord{
			ApplicationUID:       fmt.Sprintf("app-%03d", i),
			CompanyName:          fmt.Sprintf("Company %d", i),
			Cohort:               cohort,
			ApplicationStatus:    status,
			CurrentlyFundraising: i%2 == 0,
		})
	}
	return apps
}

func TestCohortFilterAcceptanceRate(t *testing.T) {
	apps := mixedCohorts()
	filtered := NewFilter(ApplicationDimensions()...).With("cohort", "Cohort 2").Apply(apps)
	require.Len(t, filtered, 127)

	passed := 0
	for _, a := range filtered {
		require.Equal(t, "Cohort 2", a.Cohort)
		if a.ApplicationStatus == StatusPassed {
			passed++
		}
	}
	k := ComputeApplicationKPIs(filtered, 2025)
	assert.Equal(t, 127, k.Total)
	assert.Equal(t, passed, k.Passed)
	assert.InDelta(t, float64(passed)/127*100, k.AcceptanceRatePct, 1e-9)
}

func TestApplicationKPIsEmpty(t *testing.T) {
	k := ComputeApplicationKPIs(nil, 2025)
	assert.Equal(t, 0.0, k.AcceptanceRatePct)
	assert.Equal(t, 0.0, k.FundraisingRatePct)
	assert.Nil(t, k.AvgCompanyAgeYears)
}

func TestAverageCompanyAge(t *testing.T) {
	apps := []dataset.ApplicationRecord{
		{ApplicationUID: "1", YearFounded: dataset.YearOf(2019), CurrentlyFundraising: true},
		{ApplicationUID: "2", YearFounded: dataset.YearOf(2022)},
		{ApplicationUID: "3"},
	}
	k := ComputeApplicationKPIs(apps, 2025)
	require.NotNil(t, k.AvgCompanyAgeYears)
	// mean 2020.5 rounds to 2021
	assert.Equal(t, 4, *k.AvgCompanyAgeYears)
	assert.Equal(t, 2, k.WithYearFounded)
	assert.InDelta(t, 33.333, k.FundraisingRatePct, 0.001)

	k = ComputeApplicationKPIs(apps[2:], 2025)
	assert.Nil(t, k.AvgCompanyAgeYears)
}

func TestFundraisingSplit(t *testing.T) {
	split := FundraisingSplit(ApplicationKPIs{Total: 10, Fundraising: 4})
	assert.Equal(t, 4, split[0].Count)
	assert.Equal(t, 6, split[1].Count)
}

func TestAdvisorKPIs(t *testing.T) {
	advisors := []dataset.AdvisorRecord{
		{AdvisorUID: "1", Role: RoleHRVenture, Female: true, PortcoAdvisor: "Acme"},
		{AdvisorUID: "2", Role: RoleExecutive, URM: true},
		{AdvisorUID: "3", Role: RoleExec, PortcoAdvisor: "  "},
		{AdvisorUID: "4", Role: RoleInsights, Female: true},
	}
	k := ComputeAdvisorKPIs(advisors)
	assert.Equal(t, AdvisorKPIs{
		Total: 4, HRVenture: 1, Executive: 2, Insights: 1,
		PortcoConnections: 1, Female: 2, URM: 1,
	}, k)
	assert.Equal(t, AdvisorKPIs{}, ComputeAdvisorKPIs(nil))
}
