package analytics

import (
	"strings"

	"github.com/sva-insights/founder-dashboard/internal/dataset"
)

// Advisor roles counted on the advisors dashboard.
const (
	RoleHRVenture = "HR Venture Advisor"
	RoleExecutive = "Executive Advisor"
	RoleExec      = "Exec Advisor"
	RoleInsights  = "Insights Advisor"
)

// AdvisorKPIs counts advisors by role and profile.
type AdvisorKPIs struct {
	Total             int `json:"total"`
	HRVenture         int `json:"hr_venture"`
	Executive         int `json:"executive"`
	Insights          int `json:"insights"`
	PortcoConnections int `json:"portco_connections"`
	Female            int `json:"female"`
	URM               int `json:"urm"`
}

// ComputeAdvisorKPIs counts advisors.
func ComputeAdvisorKPIs(records []dataset.AdvisorRecord) AdvisorKPIs {
	var k AdvisorKPIs
	if len(records) == 0 {
		return k
	}
	k.Total = len(records)
	k.HRVenture = CountIf(records, func(a dataset.AdvisorRecord) bool { return a.Role == RoleHRVenture })
	k.Executive = CountIf(records, func(a dataset.AdvisorRecord) bool {
		return a.Role == RoleExecutive || a.Role == RoleExec
	})
	k.Insights = CountIf(records, func(a dataset.AdvisorRecord) bool { return a.Role == RoleInsights })
	k.PortcoConnections = CountIf(records, func(a dataset.AdvisorRecord) bool {
		return strings.TrimSpace(a.PortcoAdvisor) != ""
	})
	k.Female = CountIf(records, func(a dataset.AdvisorRecord) bool { return a.Female })
	k.URM = CountIf(records, func(a dataset.AdvisorRecord) bool { return a.URM })
	return k
}

// RoleDistribution counts advisors per role in first-seen order.
func RoleDistribution(records []dataset.AdvisorRecord) []Bucket {
	return Distribution(records, DistributionSpec[dataset.AdvisorRecord]{
		Key:   Field(func(a dataset.AdvisorRecord) string { return a.Role }),
		Order: OrderFirstSeen,
	})
}

// LocationDistribution lists the ten most common advisor locations.
func LocationDistribution(records []dataset.AdvisorRecord) []Bucket {
	return Distribution(records, DistributionSpec[dataset.AdvisorRecord]{
		Key:   Field(func(a dataset.AdvisorRecord) string { return a.Location }),
		Order: OrderCountDesc,
		TopK:  10,
	})
}

// AdvisorDimensions are the filters of the advisors dashboard.
func AdvisorDimensions() []Dimension[dataset.AdvisorRecord] {
	return []Dimension[dataset.AdvisorRecord]{
		{Name: "role", Label: "Role", Value: func(a dataset.AdvisorRecord) string { return a.Role }},
		{Name: "location", Label: "Location", Value: func(a dataset.AdvisorRecord) string { return a.Location }},
	}
}
