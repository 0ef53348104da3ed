package analytics

import (
	"math"
	"strconv"

	"github.com/sva-insights/founder-dashboard/internal/dataset"
)

// StatusPassed marks an accepted application.
const StatusPassed = "PASSED"

// ApplicationKPIs summarises an application pool.
type ApplicationKPIs struct {
	Total              int     `json:"total"`
	Passed             int     `json:"passed"`
	AcceptanceRatePct  float64 `json:"acceptance_rate_pct"`
	Fundraising        int     `json:"fundraising"`
	FundraisingRatePct float64 `json:"fundraising_rate_pct"`
	AvgCompanyAgeYears *int    `json:"avg_company_age_years"`
	AvgYearFounded     float64 `json:"avg_year_founded"`
	WithYearFounded    int     `json:"with_year_founded"`
}

// ComputeApplicationKPIs reduces applications. currentYear anchors the
// average company age.
func ComputeApplicationKPIs(records []dataset.ApplicationRecord, currentYear int) ApplicationKPIs {
	var k ApplicationKPIs
	if len(records) == 0 {
		return k
	}
	k.Total = len(records)
	k.Passed = CountIf(records, func(a dataset.ApplicationRecord) bool {
		return a.ApplicationStatus == StatusPassed
	})
	k.Fundraising = CountIf(records, func(a dataset.ApplicationRecord) bool {
		return a.CurrentlyFundraising
	})
	k.AcceptanceRatePct = Rate(k.Passed, k.Total)
	k.FundraisingRatePct = Rate(k.Fundraising, k.Total)

	k.WithYearFounded = CountIf(records, func(a dataset.ApplicationRecord) bool {
		return a.YearFounded.Valid
	})
	if mean, ok := MeanOptional(records, foundedYear); ok {
		k.AvgYearFounded = mean
		age := currentYear - int(math.Round(mean))
		k.AvgCompanyAgeYears = &age
	}
	return k
}

func foundedYear(a dataset.ApplicationRecord) (float64, bool) {
	if !a.YearFounded.Valid {
		return 0, false
	}
	return float64(a.YearFounded.Year), true
}

// YearFoundedDistribution lists the ten most recent founding years.
func YearFoundedDistribution(records []dataset.ApplicationRecord) []Bucket {
	return Distribution(records, DistributionSpec[dataset.ApplicationRecord]{
		Key: func(a dataset.ApplicationRecord) (string, bool) {
			if !a.YearFounded.Valid {
				return "", false
			}
			return strconv.Itoa(a.YearFounded.Year), true
		},
		Order: OrderNumericKeyDesc,
		TopK:  10,
	})
}

// ReferralDistribution lists the eight most common referral sources, each
// truncated to 30 characters.
func ReferralDistribution(records []dataset.ApplicationRecord) []Bucket {
	return Distribution(records, DistributionSpec[dataset.ApplicationRecord]{
		Key: Truncate(30, Field(func(a dataset.ApplicationRecord) string {
			return a.ReferralSource
		})),
		Order: OrderCountDesc,
		TopK:  8,
	})
}

// FundraisingSplit buckets applications into fundraising and not.
func FundraisingSplit(k ApplicationKPIs) []Bucket {
	return []Bucket{
		{Key: "Fundraising", Count: k.Fundraising, Value: float64(k.Fundraising)},
		{Key: "Not Fundraising", Count: k.Total - k.Fundraising, Value: float64(k.Total - k.Fundraising)},
	}
}

// CohortOf returns the application's cohort.
func CohortOf(a dataset.ApplicationRecord) string { return a.Cohort }

// ApplicationDimensions are the filters of the applications dashboard.
func ApplicationDimensions() []Dimension[dataset.ApplicationRecord] {
	return []Dimension[dataset.ApplicationRecord]{
		{Name: "cohort", Label: "Cohort", Value: CohortOf},
	}
}
