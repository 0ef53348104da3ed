package analytics

import "github.com/sva-insights/founder-dashboard/internal/dataset"

// FounderKPIs summarises a set of company records.
type FounderKPIs struct {
	AvgRevenueGrowthPct float64 `json:"avg_revenue_growth_pct"`
	FollowOnFundingUSD  float64 `json:"follow_on_funding_usd"`
	PilotsInitiated     int     `json:"pilots_initiated"`
	PartnershipsSigned  int     `json:"partnerships_signed"`
	AvgFounderNPS       float64 `json:"avg_founder_nps"`
	AvgAttendancePct    float64 `json:"avg_attendance_pct"`
	MentorHours         float64 `json:"mentor_hours"`
}

type companyMetric = Metric[dataset.CompanyRecord, FounderKPIs]

// FounderMetrics declares how each FounderKPIs field is reduced.
var FounderMetrics = []companyMetric{
	{
		Key: "avg_revenue_growth_pct", Label: "Avg Revenue Growth", Kind: KindMean,
		Value: func(c dataset.CompanyRecord) float64 { return c.RevenueGrowthPct },
		Set:   func(k *FounderKPIs, v float64) { k.AvgRevenueGrowthPct = v },
	},
	{
		Key: "follow_on_funding_usd", Label: "Follow-on Funding", Kind: KindSum,
		Value: func(c dataset.CompanyRecord) float64 { return c.FollowOnFundingUSD },
		Set:   func(k *FounderKPIs, v float64) { k.FollowOnFundingUSD = v },
	},
	{
		Key: "pilots_initiated", Label: "Pilots Initiated", Kind: KindSum,
		Value: func(c dataset.CompanyRecord) float64 { return float64(c.PilotsInitiated) },
		Set:   func(k *FounderKPIs, v float64) { k.PilotsInitiated = int(v) },
	},
	{
		Key: "partnerships_signed", Label: "Partnerships Signed", Kind: KindSum,
		Value: func(c dataset.CompanyRecord) float64 { return float64(c.PartnershipsSignedCount) },
		Set:   func(k *FounderKPIs, v float64) { k.PartnershipsSigned = int(v) },
	},
	{
		Key: "avg_founder_nps", Label: "Founder NPS", Kind: KindMean,
		Value: func(c dataset.CompanyRecord) float64 { return c.FounderNPS },
		Set:   func(k *FounderKPIs, v float64) { k.AvgFounderNPS = v },
	},
	{
		Key: "avg_attendance_pct", Label: "Session Attendance", Kind: KindMean,
		Value: func(c dataset.CompanyRecord) float64 { return c.SessionsAttendancePct },
		Set:   func(k *FounderKPIs, v float64) { k.AvgAttendancePct = v },
	},
	{
		Key: "mentor_hours", Label: "Mentor Hours", Kind: KindSum,
		Value: func(c dataset.CompanyRecord) float64 { return c.MentorHours },
		Set:   func(k *FounderKPIs, v float64) { k.MentorHours = v },
	},
}

// ComputeFounderKPIs reduces company records.
func ComputeFounderKPIs(records []dataset.CompanyRecord) FounderKPIs {
	return Summarize(records, FounderMetrics)
}

// PartnerKPIs summarises corporate partners.
type PartnerKPIs struct {
	TotalCommercialValueUSD float64 `json:"total_commercial_value_usd"`
	AvgCostSavingsUSD       float64 `json:"avg_cost_savings_usd"`
	AvgROIMultiple          float64 `json:"avg_roi_multiple"`
	ActivePilots            int     `json:"active_pilots"`
	CompletedPilots         int     `json:"completed_pilots"`
	AvgInnovationScore      float64 `json:"avg_innovation_score"`
	AvgSatisfactionScore    float64 `json:"avg_satisfaction_score"`
	AvgTimeToPilotDays      float64 `json:"avg_time_to_pilot_days"`
	CapabilitiesGained      int     `json:"capabilities_gained"`
	PatentsFiled            int     `json:"patents_filed"`
}

type partnerMetric = Metric[dataset.PartnerRecord, PartnerKPIs]

// PartnerMetrics declares how each PartnerKPIs field is reduced. ROI is the
// unweighted mean of per-partner multiples.
var PartnerMetrics = []partnerMetric{
	{
		Key: "total_commercial_value_usd", Label: "Commercial Value", Kind: KindSum,
		Value: func(p dataset.PartnerRecord) float64 { return p.TotalCommercialValueUSD },
		Set:   func(k *PartnerKPIs, v float64) { k.TotalCommercialValueUSD = v },
	},
	{
		Key: "avg_cost_savings_usd", Label: "Avg Cost Savings", Kind: KindMean,
		Value: func(p dataset.PartnerRecord) float64 { return p.CostSavingsUSD },
		Set:   func(k *PartnerKPIs, v float64) { k.AvgCostSavingsUSD = v },
	},
	{
		Key: "avg_roi_multiple", Label: "Avg ROI Multiple", Kind: KindMean,
		Value: func(p dataset.PartnerRecord) float64 { return p.ROIMultiple },
		Set:   func(k *PartnerKPIs, v float64) { k.AvgROIMultiple = v },
	},
	{
		Key: "active_pilots", Label: "Active Pilots", Kind: KindSum,
		Value: func(p dataset.PartnerRecord) float64 { return float64(p.ActivePilots) },
		Set:   func(k *PartnerKPIs, v float64) { k.ActivePilots = int(v) },
	},
	{
		Key: "completed_pilots", Label: "Completed Pilots", Kind: KindSum,
		Value: func(p dataset.PartnerRecord) float64 { return float64(p.CompletedPilots) },
		Set:   func(k *PartnerKPIs, v float64) { k.CompletedPilots = int(v) },
	},
	{
		Key: "avg_innovation_score", Label: "Innovation Score", Kind: KindMean,
		Value: func(p dataset.PartnerRecord) float64 { return p.AvgInnovationScore },
		Set:   func(k *PartnerKPIs, v float64) { k.AvgInnovationScore = v },
	},
	{
		Key: "avg_satisfaction_score", Label: "Partner Satisfaction", Kind: KindMean,
		Value: func(p dataset.PartnerRecord) float64 { return p.PartnerSatisfactionScore },
		Set:   func(k *PartnerKPIs, v float64) { k.AvgSatisfactionScore = v },
	},
	{
		Key: "avg_time_to_pilot_days", Label: "Time to Pilot", Kind: KindMean,
		Value: func(p dataset.PartnerRecord) float64 { return p.TimeToPilotDays },
		Set:   func(k *PartnerKPIs, v float64) { k.AvgTimeToPilotDays = v },
	},
	{
		Key: "capabilities_gained", Label: "Capabilities Gained", Kind: KindSum,
		Value: func(p dataset.PartnerRecord) float64 { return float64(p.NewCapabilitiesGained) },
		Set:   func(k *PartnerKPIs, v float64) { k.CapabilitiesGained = int(v) },
	},
	{
		Key: "patents_filed", Label: "Patents Filed", Kind: KindSum,
		Value: func(p dataset.PartnerRecord) float64 { return float64(p.PatentsFiled) },
		Set:   func(k *PartnerKPIs, v float64) { k.PatentsFiled = int(v) },
	},
}

// ComputePartnerKPIs reduces partner records.
func ComputePartnerKPIs(records []dataset.PartnerRecord) PartnerKPIs {
	return Summarize(records, PartnerMetrics)
}

// PortfolioKPIs summarises sector rows.
type PortfolioKPIs struct {
	TotalCompanies      int     `json:"total_companies"`
	TotalFundingUSD     float64 `json:"total_funding_usd"`
	AvgSuccessRatePct   float64 `json:"avg_success_rate_pct"`
	AvgRevenueGrowthPct float64 `json:"avg_revenue_growth_pct"`
}

type sectorMetric = Metric[dataset.PortfolioSectorRecord, PortfolioKPIs]

// PortfolioMetrics declares how each PortfolioKPIs field is reduced.
var PortfolioMetrics = []sectorMetric{
	{
		Key: "total_companies", Label: "Portfolio Companies", Kind: KindSum,
		Value: func(s dataset.PortfolioSectorRecord) float64 { return float64(s.TotalCompanies) },
		Set:   func(k *PortfolioKPIs, v float64) { k.TotalCompanies = int(v) },
	},
	{
		Key: "total_funding_usd", Label: "Total Funding", Kind: KindSum,
		Value: func(s dataset.PortfolioSectorRecord) float64 { return s.TotalFundingUSD },
		Set:   func(k *PortfolioKPIs, v float64) { k.TotalFundingUSD = v },
	},
	{
		Key: "avg_success_rate_pct", Label: "Avg Success Rate", Kind: KindMean,
		Value: func(s dataset.PortfolioSectorRecord) float64 { return s.SuccessRatePct },
		Set:   func(k *PortfolioKPIs, v float64) { k.AvgSuccessRatePct = v },
	},
	{
		Key: "avg_revenue_growth_pct", Label: "Avg Revenue Growth", Kind: KindMean,
		Value: func(s dataset.PortfolioSectorRecord) float64 { return s.AvgRevenueGrowthPct },
		Set:   func(k *PortfolioKPIs, v float64) { k.AvgRevenueGrowthPct = v },
	},
}

// ComputePortfolioKPIs reduces sector records.
func ComputePortfolioKPIs(records []dataset.PortfolioSectorRecord) PortfolioKPIs {
	return Summarize(records, PortfolioMetrics)
}

// OperationsKPIs summarises operational health rows.
type OperationsKPIs struct {
	AvgEfficiencyScore   float64 `json:"avg_efficiency_score"`
	AvgBudgetUtilization float64 `json:"avg_budget_utilization"`
	AvgROI               float64 `json:"avg_roi"`
	TotalMentorHours     float64 `json:"total_mentor_hours"`
}

type operationsMetric = Metric[dataset.OperationalHealthRecord, OperationsKPIs]

// OperationsMetrics declares how each OperationsKPIs field is reduced.
var OperationsMetrics = []operationsMetric{
	{
		Key: "avg_efficiency_score", Label: "Operational Efficiency", Kind: KindMean,
		Value: func(o dataset.OperationalHealthRecord) float64 { return o.OperationalEfficiencyScore },
		Set:   func(k *OperationsKPIs, v float64) { k.AvgEfficiencyScore = v },
	},
	{
		Key: "avg_budget_utilization", Label: "Budget Utilization", Kind: KindMean,
		Value: func(o dataset.OperationalHealthRecord) float64 { return o.BudgetUtilizationPct },
		Set:   func(k *OperationsKPIs, v float64) { k.AvgBudgetUtilization = v },
	},
	{
		Key: "avg_roi", Label: "Program ROI", Kind: KindMean,
		Value: func(o dataset.OperationalHealthRecord) float64 { return o.ROIOnInvestment },
		Set:   func(k *OperationsKPIs, v float64) { k.AvgROI = v },
	},
	{
		Key: "total_mentor_hours", Label: "Total Mentor Hours", Kind: KindSum,
		Value: func(o dataset.OperationalHealthRecord) float64 { return o.TotalMentorHours },
		Set:   func(k *OperationsKPIs, v float64) { k.TotalMentorHours = v },
	},
}

// ComputeOperationsKPIs reduces operational health records.
func ComputeOperationsKPIs(records []dataset.OperationalHealthRecord) OperationsKPIs {
	return Summarize(records, OperationsMetrics)
}

// CycleKPIs summarises pre-aggregated cycle snapshots.
type CycleKPIs struct {
	TotalCompanies       int     `json:"total_companies"`
	TotalFundingUSD      float64 `json:"total_funding_usd"`
	TotalPilots          int     `json:"total_pilots"`
	TotalPartnerships    int     `json:"total_partnerships"`
	AvgFounderNPS        float64 `json:"avg_founder_nps"`
	AvgGraduationRatePct float64 `json:"avg_graduation_rate_pct"`
}

type cycleMetric = Metric[dataset.CycleSnapshotRecord, CycleKPIs]

// CycleMetrics declares how each CycleKPIs field is reduced. Cycles without
// a graduation rate are left out of its mean.
var CycleMetrics = []cycleMetric{
	{
		Key: "total_companies", Label: "Companies", Kind: KindSum,
		Value: func(c dataset.CycleSnapshotRecord) float64 { return float64(c.TotalCompanies) },
		Set:   func(k *CycleKPIs, v float64) { k.TotalCompanies = int(v) },
	},
	{
		Key: "total_funding_usd", Label: "Funding Raised", Kind: KindSum,
		Value: func(c dataset.CycleSnapshotRecord) float64 { return c.TotalFundingRaisedUSD },
		Set:   func(k *CycleKPIs, v float64) { k.TotalFundingUSD = v },
	},
	{
		Key: "total_pilots", Label: "Pilots", Kind: KindSum,
		Value: func(c dataset.CycleSnapshotRecord) float64 { return float64(c.TotalPilots) },
		Set:   func(k *CycleKPIs, v float64) { k.TotalPilots = int(v) },
	},
	{
		Key: "total_partnerships", Label: "Partnerships", Kind: KindSum,
		Value: func(c dataset.CycleSnapshotRecord) float64 { return float64(c.TotalPartnerships) },
		Set:   func(k *CycleKPIs, v float64) { k.TotalPartnerships = int(v) },
	},
	{
		Key: "avg_founder_nps", Label: "Avg Founder NPS", Kind: KindMean,
		Value: func(c dataset.CycleSnapshotRecord) float64 { return c.AvgFounderNPS },
		Set:   func(k *CycleKPIs, v float64) { k.AvgFounderNPS = v },
	},
	{
		Key: "avg_graduation_rate_pct", Label: "Graduation Rate", Kind: KindMean,
		Optional: func(c dataset.CycleSnapshotRecord) (float64, bool) {
			if c.GraduationRatePct == nil {
				return 0, false
			}
			return *c.GraduationRatePct, true
		},
		Set: func(k *CycleKPIs, v float64) { k.AvgGraduationRatePct = v },
	},
}

// ComputeCycleKPIs reduces cycle snapshot records.
func ComputeCycleKPIs(records []dataset.CycleSnapshotRecord) CycleKPIs {
	return Summarize(records, CycleMetrics)
}
