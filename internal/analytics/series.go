package analytics

import (
	"sort"

	"github.com/sva-insights/founder-dashboard/internal/dataset"
)

// StackedPoint is one category of a two-series stacked bar chart.
type StackedPoint struct {
	Label string  `json:"label"`
	A     float64 `json:"a"`
	B     float64 `json:"b"`
}

// Total returns A+B.
func (p StackedPoint) Total() float64 { return p.A + p.B }

// SortedBy returns a copy of records ordered by key descending. Equal keys
// keep their input order.
func SortedBy[T any](records []T, key func(T) float64) []T {
	out := make([]T, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		return key(out[i]) > key(out[j])
	})
	return out
}

// RankBy labels and values each record, sorted by value descending.
func RankBy[T any](records []T, label func(T) string, value func(T) float64) []Bucket {
	out := make([]Bucket, 0, len(records))
	for _, rec := range records {
		out = append(out, Bucket{Key: label(rec), Count: 1, Value: value(rec)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value > out[j].Value
	})
	return out
}

// RankStacked builds stacked points sorted by A+B descending.
func RankStacked[T any](records []T, label func(T) string, a, b func(T) float64) []StackedPoint {
	out := make([]StackedPoint, 0, len(records))
	for _, rec := range records {
		out = append(out, StackedPoint{Label: label(rec), A: a(rec), B: b(rec)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total() > out[j].Total()
	})
	return out
}

func companyName(c dataset.CompanyRecord) string { return c.CanonicalName }

// FundingByCompany ranks companies by follow-on funding.
func FundingByCompany(records []dataset.CompanyRecord) []Bucket {
	return RankBy(records, companyName, func(c dataset.CompanyRecord) float64 {
		return c.FollowOnFundingUSD
	})
}

// RevenueGrowthBySector averages revenue growth per sector in first-seen
// sector order.
func RevenueGrowthBySector(records []dataset.CompanyRecord) []Bucket {
	return Distribution(records, DistributionSpec[dataset.CompanyRecord]{
		Key:    Field(func(c dataset.CompanyRecord) string { return c.Sector }),
		Value:  func(c dataset.CompanyRecord) float64 { return c.RevenueGrowthPct },
		Reduce: ReduceMean,
		Order:  OrderFirstSeen,
	})
}

// PilotsAndPartnerships stacks pilots and partnerships per company.
func PilotsAndPartnerships(records []dataset.CompanyRecord) []StackedPoint {
	return RankStacked(records, companyName,
		func(c dataset.CompanyRecord) float64 { return float64(c.PilotsInitiated) },
		func(c dataset.CompanyRecord) float64 { return float64(c.PartnershipsSignedCount) },
	)
}

// CompaniesByFunding orders the company table.
func CompaniesByFunding(records []dataset.CompanyRecord) []dataset.CompanyRecord {
	return SortedBy(records, func(c dataset.CompanyRecord) float64 { return c.FollowOnFundingUSD })
}

// FounderDimensions are the filters of the founder success dashboard.
func FounderDimensions() []Dimension[dataset.CompanyRecord] {
	return []Dimension[dataset.CompanyRecord]{
		{Name: "cycle", Label: "Program Cycle", Value: func(c dataset.CompanyRecord) string { return c.ProgramCycleUID }},
		{Name: "sector", Label: "Sector", Value: func(c dataset.CompanyRecord) string { return c.Sector }},
		{Name: "stage", Label: "Stage", Value: func(c dataset.CompanyRecord) string { return c.Stage }},
	}
}

func partnerName(p dataset.PartnerRecord) string { return p.PartnerName }

// ROIByPartner ranks partners by ROI multiple.
func ROIByPartner(records []dataset.PartnerRecord) []Bucket {
	return RankBy(records, partnerName, func(p dataset.PartnerRecord) float64 { return p.ROIMultiple })
}

// ValueVsSavings pairs commercial value with cost savings per partner.
func ValueVsSavings(records []dataset.PartnerRecord) []StackedPoint {
	return RankStacked(records, partnerName,
		func(p dataset.PartnerRecord) float64 { return p.TotalCommercialValueUSD },
		func(p dataset.PartnerRecord) float64 { return p.CostSavingsUSD },
	)
}

// PilotsByPartner stacks active and completed pilots per partner.
func PilotsByPartner(records []dataset.PartnerRecord) []StackedPoint {
	return RankStacked(records, partnerName,
		func(p dataset.PartnerRecord) float64 { return float64(p.ActivePilots) },
		func(p dataset.PartnerRecord) float64 { return float64(p.CompletedPilots) },
	)
}

// PartnersByValue orders the partner table.
func PartnersByValue(records []dataset.PartnerRecord) []dataset.PartnerRecord {
	return SortedBy(records, func(p dataset.PartnerRecord) float64 { return p.TotalCommercialValueUSD })
}

// PartnerDimensions are the filters of the partner ROI dashboard.
func PartnerDimensions() []Dimension[dataset.PartnerRecord] {
	return []Dimension[dataset.PartnerRecord]{
		{Name: "industry", Label: "Industry", Value: func(p dataset.PartnerRecord) string { return p.Industry }},
		{Name: "tier", Label: "Partnership Tier", Value: func(p dataset.PartnerRecord) string { return p.PartnershipTier }},
		{Name: "size", Label: "Company Size", Value: func(p dataset.PartnerRecord) string { return p.CompanySize }},
	}
}

func sectorName(s dataset.PortfolioSectorRecord) string { return s.Sector }

// SuccessBySector ranks sectors by success rate.
func SuccessBySector(records []dataset.PortfolioSectorRecord) []Bucket {
	return RankBy(records, sectorName, func(s dataset.PortfolioSectorRecord) float64 { return s.SuccessRatePct })
}

// FundingBySector ranks sectors by total funding.
func FundingBySector(records []dataset.PortfolioSectorRecord) []Bucket {
	return RankBy(records, sectorName, func(s dataset.PortfolioSectorRecord) float64 { return s.TotalFundingUSD })
}

// ConversionBySector stacks pilot conversion and partnership rates.
func ConversionBySector(records []dataset.PortfolioSectorRecord) []StackedPoint {
	return RankStacked(records, sectorName,
		func(s dataset.PortfolioSectorRecord) float64 { return s.PilotConversionRatePct },
		func(s dataset.PortfolioSectorRecord) float64 { return s.PartnershipRatePct },
	)
}

// EfficiencyByCycle lists efficiency scores in dataset (chronological)
// order.
func EfficiencyByCycle(records []dataset.OperationalHealthRecord) []Bucket {
	out := make([]Bucket, 0, len(records))
	for _, o := range records {
		out = append(out, Bucket{Key: o.CycleName, Count: 1, Value: o.OperationalEfficiencyScore})
	}
	return out
}

// BudgetByCycle pairs allocated and spent budget per cycle in dataset
// order.
func BudgetByCycle(records []dataset.OperationalHealthRecord) []StackedPoint {
	out := make([]StackedPoint, 0, len(records))
	for _, o := range records {
		out = append(out, StackedPoint{Label: o.CycleName, A: o.BudgetAllocatedUSD, B: o.BudgetSpentUSD})
	}
	return out
}
