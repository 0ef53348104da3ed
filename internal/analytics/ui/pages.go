package ui

import (
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"github.com/sva-insights/founder-dashboard/internal/analytics"
	"github.com/sva-insights/founder-dashboard/internal/analytics/svg"
	"github.com/sva-insights/founder-dashboard/internal/dataset"
)

// PageContext carries the request state every page builder needs.
type PageContext struct {
	Path   string
	Expand ExpandState
	Charts ChartRenderer
}

// Row is the expandable part shared by every table row.
type Row struct {
	ID      string
	Open    bool
	Toggle  string
	Details []Detail
}

func (pc PageContext) row(id string, details func() []Detail) Row {
	r := Row{ID: id, Open: pc.Expand.IsOpen(id), Toggle: pc.Expand.Link(pc.Path, id)}
	if r.Open {
		r.Details = details()
	}
	return r
}

// Tab is one entry of a single-select tab strip.
type Tab struct {
	Label  string
	Href   string
	Active bool
	Status analytics.Rating
}

// FounderPage is the founder success dashboard.
type FounderPage struct {
	Filters      []analytics.FilterGroup
	Cards        []KPICard
	Companies    []CompanyRow
	FundingChart template.HTML
	GrowthChart  template.HTML
	PilotsChart  template.HTML
	Narrative    []string
	Earlier      string
	Later        string
}

// CompanyRow is one company table row.
type CompanyRow struct {
	Row
	Record     dataset.CompanyRecord
	Growth     string
	GrowthTone analytics.Tone
	Funding    string
	NPS        string
	Attendance string
}

// FounderCards renders the founder KPI tiles.
func FounderCards(k analytics.FounderKPIs) []KPICard {
	return []KPICard{
		card("Avg Rev Growth", analytics.FormatPercent(k.AvgRevenueGrowthPct, 1)),
		card("Follow-on Funding", analytics.FormatCurrency(k.FollowOnFundingUSD)),
		card("Pilots", strconv.Itoa(k.PilotsInitiated)),
		card("Partnerships", strconv.Itoa(k.PartnershipsSigned)),
		card("Founder NPS", analytics.FormatDecimal(k.AvgFounderNPS, 1)),
		card("Attendance", analytics.FormatPercent(k.AvgAttendancePct, 1)),
		card("Mentor Hours", analytics.FormatNumber(k.MentorHours)),
	}
}

// BuildFounderPage assembles the founder dashboard.
func BuildFounderPage(pc PageContext, v analytics.FounderView, narrative []string, earlier, later string) (FounderPage, error) {
	c := charts{r: pc.Charts}
	page := FounderPage{
		Filters:   v.Filters,
		Cards:     FounderCards(v.KPIs),
		Narrative: narrative,
		Earlier:   earlier,
		Later:     later,
	}
	page.FundingChart = c.bars(v.Funding, bucketValue, svg.Opts{
		Title:       "Follow-on Funding by Company",
		Description: "Follow-on funding raised per company",
		Format:      analytics.FormatCurrency,
	})
	page.GrowthChart = c.bars(v.SectorGrowth, bucketValue, svg.Opts{
		Title:       "Avg Revenue Growth by Sector",
		Description: "Mean revenue growth per sector",
		Format:      func(f float64) string { return analytics.FormatPercent(f, 0) },
	})
	page.PilotsChart = c.stacked(v.PilotsPartnerships, svg.Opts{
		Title:        "Pilots and Partnerships",
		Description:  "Pilots and partnerships per company",
		SeriesLabels: []string{"Pilots", "Partnerships"},
	})
	page.Companies = make([]CompanyRow, 0, len(v.Companies))
	for _, rec := range v.Companies {
		page.Companies = append(page.Companies, companyRow(pc, rec))
	}
	return page, c.err
}

func companyRow(pc PageContext, rec dataset.CompanyRecord) CompanyRow {
	tone := analytics.TonePositive
	if rec.RevenueGrowthPct < 0 {
		tone = analytics.ToneNegative
	}
	return CompanyRow{
		Row: pc.row(rec.CompanyUID, func() []Detail {
			return []Detail{
				{"Cycle", rec.ProgramCycleUID},
				{"Stage", orNA(rec.Stage)},
				{"Product Readiness", orNA(rec.ProductReadiness)},
				{"GTM Maturity", orNA(rec.GTMMaturity)},
				{"ICP Clarity", orNA(rec.ICPClarity)},
				{"Sales Motion", orNA(rec.SalesMotion)},
				{"Goal Progress", analytics.FormatDecimal(rec.GoalProgressScore, 1)},
				{"Mentor Hours", analytics.FormatNumber(rec.MentorHours)},
				{"Advisor Relationships", strconv.Itoa(rec.AdvisorRelationshipsFormed)},
				{"Notable Outcomes", orNA(rec.NotableOutcomes)},
			}
		}),
		Record:     rec,
		Growth:     analytics.FormatPercent(rec.RevenueGrowthPct, 1),
		GrowthTone: tone,
		Funding:    analytics.FormatCurrency(rec.FollowOnFundingUSD),
		NPS:        analytics.FormatDecimal(rec.FounderNPS, 0),
		Attendance: analytics.FormatPercent(rec.SessionsAttendancePct, 0),
	}
}

// ApplicationsPage is the applications dashboard for one cohort.
type ApplicationsPage struct {
	Cohort       string
	Tabs         []Tab
	Cards        []KPICard
	YearChart    template.HTML
	ReferralList template.HTML
	FundChart    template.HTML
	Applications []ApplicationRow
}

// ApplicationRow is one application table row.
type ApplicationRow struct {
	Row
	Record      dataset.ApplicationRecord
	StatusTone  analytics.Tone
	Founded     string
	Fundraising string
	Submitted   string
}

// ApplicationCards renders the application KPI tiles.
func ApplicationCards(k analytics.ApplicationKPIs) []KPICard {
	age := analytics.NotApplicable
	if k.AvgCompanyAgeYears != nil {
		age = fmt.Sprintf("%d years", *k.AvgCompanyAgeYears)
	}
	return []KPICard{
		card("Total Applications", analytics.FormatNumber(float64(k.Total))),
		cardWith("Acceptance Rate", analytics.FormatPercent(k.AcceptanceRatePct, 1), fmt.Sprintf("%d passed", k.Passed)),
		cardWith("Currently Fundraising", analytics.FormatPercent(k.FundraisingRatePct, 1), fmt.Sprintf("%d companies", k.Fundraising)),
		cardWith("Avg Company Age", age, fmt.Sprintf("%d with founding year", k.WithYearFounded)),
	}
}

// BuildApplicationsPage assembles the applications dashboard.
func BuildApplicationsPage(pc PageContext, v analytics.ApplicationsView) (ApplicationsPage, error) {
	c := charts{r: pc.Charts}
	page := ApplicationsPage{Cohort: v.Cohort, Cards: ApplicationCards(v.KPIs)}
	for _, cohort := range v.Cohorts {
		page.Tabs = append(page.Tabs, Tab{
			Label:  cohort,
			Href:   pc.Path + "?cohort=" + urlEscape(cohort),
			Active: cohort == v.Cohort,
		})
	}
	page.YearChart = c.bars(v.YearFounded, bucketCount, svg.Opts{
		Title:       "Year Founded",
		Description: "Applications by founding year, most recent first",
	})
	page.ReferralList = c.hbars(v.Referrals, bucketCount, svg.Opts{
		Title:       "Referral Sources",
		Description: "Top referral sources",
	})
	page.FundChart = c.donut(v.Fundraising, svg.Opts{
		Title:       "Currently Fundraising",
		Description: "Share of applicants currently fundraising",
		Colors:      []string{"#6bcf7f", "#ff6b6b"},
	})
	for _, rec := range v.Applications {
		page.Applications = append(page.Applications, applicationRow(pc, rec))
	}
	return page, c.err
}

func applicationRow(pc PageContext, rec dataset.ApplicationRecord) ApplicationRow {
	submitted := analytics.NotApplicable
	if rec.SubmittedAt != nil {
		submitted = analytics.FormatDate(*rec.SubmittedAt)
	}
	founded := analytics.NotApplicable
	if rec.YearFounded.Valid {
		founded = strconv.Itoa(rec.YearFounded.Year)
	}
	return ApplicationRow{
		Row: pc.row(rec.ApplicationUID, func() []Detail {
			return []Detail{
				{"Description", orNA(rec.CompanyDescription)},
				{"Problem", orNA(rec.ProblemStatement)},
				{"Target Customer", orNA(rec.TargetCustomer)},
				{"Market Size", orNA(rec.MarketSize)},
				{"Traction", orNA(rec.Traction)},
				{"Runway (months)", orNA(rec.RunwayMonths)},
				{"Founders", orNA(rec.Founders)},
				{"Team Size", orNA(rec.TeamSize)},
				{"Referral", orNA(rec.ReferralSource)},
				{"Website", orNA(rec.CompanyWebsite)},
				{"Pitch Deck", orNA(rec.PitchDeck)},
				{"Demo", orNA(rec.DemoLink)},
			}
		}),
		Record:      rec,
		StatusTone:  analytics.ApplicationStatusTone(rec.ApplicationStatus),
		Founded:     founded,
		Fundraising: yesNo(rec.CurrentlyFundraising),
		Submitted:   submitted,
	}
}

// AdvisorsPage is the advisors dashboard.
type AdvisorsPage struct {
	Filters       []analytics.FilterGroup
	Cards         []KPICard
	RoleChart     template.HTML
	LocationChart template.HTML
	Advisors      []AdvisorRow
}

// AdvisorRow is one advisor table row.
type AdvisorRow struct {
	Row
	Record dataset.AdvisorRecord
	Female string
	URM    string
}

// AdvisorCards renders the advisor KPI tiles.
func AdvisorCards(k analytics.AdvisorKPIs) []KPICard {
	return []KPICard{
		card("Total Advisors", strconv.Itoa(k.Total)),
		card("HR / Venture", strconv.Itoa(k.HRVenture)),
		card("Executives", strconv.Itoa(k.Executive)),
		card("SVA Insights", strconv.Itoa(k.Insights)),
		cardWith("Portco Connections", strconv.Itoa(k.PortcoConnections), "assigned to a portfolio company"),
		card("Female", strconv.Itoa(k.Female)),
		card("URM", strconv.Itoa(k.URM)),
	}
}

// BuildAdvisorsPage assembles the advisors dashboard.
func BuildAdvisorsPage(pc PageContext, v analytics.AdvisorsView) (AdvisorsPage, error) {
	c := charts{r: pc.Charts}
	page := AdvisorsPage{Filters: v.Filters, Cards: AdvisorCards(v.KPIs)}
	page.RoleChart = c.donut(v.Roles, svg.Opts{
		Title:       "Advisors by Role",
		Description: "Advisor count per role",
	})
	page.LocationChart = c.hbars(v.Locations, bucketCount, svg.Opts{
		Title:       "Top Locations",
		Description: "Advisor count per location",
	})
	for _, rec := range v.Advisors {
		rec := rec
		page.Advisors = append(page.Advisors, AdvisorRow{
			Row: pc.row(rec.AdvisorUID, func() []Detail {
				added := analytics.NotApplicable
				if rec.DateAdded != nil {
					added = analytics.FormatDate(*rec.DateAdded)
				}
				return []Detail{
					{"Email", orNA(rec.Email)},
					{"LinkedIn", orNA(rec.LinkedInURL)},
					{"Expertise", orNA(rec.Expertise)},
					{"Engagement", orNA(rec.Engagement)},
					{"Company Size", orNA(rec.CompanySize)},
					{"Annual Revenue", orNA(rec.AnnualRevenue)},
					{"Portco Advisor", orNA(rec.PortcoAdvisor)},
					{"Referred By", orNA(rec.ReferredBy)},
					{"Onboarded", orNA(rec.Onboarded)},
					{"Date Added", added},
				}
			}),
			Record: rec,
			Female: yesNo(rec.Female),
			URM:    yesNo(rec.URM),
		})
	}
	return page, c.err
}

// PartnerPage is the partner ROI dashboard.
type PartnerPage struct {
	Filters      []analytics.FilterGroup
	Cards        []KPICard
	Narrative    []string
	ROIChart     template.HTML
	ValueChart   template.HTML
	PilotsChart  template.HTML
	Partners     []PartnerRow
	PartnerCount int
}

// PartnerRow is one partner table row.
type PartnerRow struct {
	Row
	Record       dataset.PartnerRecord
	Value        string
	Savings      string
	ROI          string
	Satisfaction string
}

// PartnerCards renders the partner KPI tiles.
func PartnerCards(k analytics.PartnerKPIs) []KPICard {
	return []KPICard{
		card("Total Commercial Value", analytics.FormatCurrency(k.TotalCommercialValueUSD)),
		card("Avg ROI Multiple", analytics.FormatDecimal(k.AvgROIMultiple, 2)+"x"),
		card("Active Pilots", strconv.Itoa(k.ActivePilots)),
		card("Completed Pilots", strconv.Itoa(k.CompletedPilots)),
		card("Avg Cost Savings", analytics.FormatCurrency(k.AvgCostSavingsUSD)),
		cardWith("Innovation Score", analytics.FormatDecimal(k.AvgInnovationScore, 1), "out of 10"),
		cardWith("Partner Satisfaction", analytics.FormatDecimal(k.AvgSatisfactionScore, 0), "out of 100"),
		cardWith("Time to Pilot", analytics.FormatDecimal(k.AvgTimeToPilotDays, 0), "days"),
	}
}

// BuildPartnerPage assembles the partner ROI dashboard.
func BuildPartnerPage(pc PageContext, v analytics.PartnerView, narrative []string) (PartnerPage, error) {
	c := charts{r: pc.Charts}
	page := PartnerPage{
		Filters:      v.Filters,
		Cards:        PartnerCards(v.KPIs),
		Narrative:    narrative,
		PartnerCount: len(v.Partners),
	}
	page.ROIChart = c.bars(v.ROI, bucketValue, svg.Opts{
		Title:       "ROI Multiple by Partner",
		Description: "Return multiple per partner",
		Format:      func(f float64) string { return analytics.FormatDecimal(f, 1) + "x" },
	})
	page.ValueChart = c.grouped(v.ValueVsSavings, svg.Opts{
		Title:        "Commercial Value vs Cost Savings",
		Description:  "Commercial value and cost savings per partner",
		SeriesLabels: []string{"Commercial Value", "Cost Savings"},
		Format:       analytics.FormatCurrency,
	})
	page.PilotsChart = c.stacked(v.Pilots, svg.Opts{
		Title:        "Pilots by Partner",
		Description:  "Active and completed pilots per partner",
		SeriesLabels: []string{"Active", "Completed"},
	})
	for _, rec := range v.Partners {
		rec := rec
		page.Partners = append(page.Partners, PartnerRow{
			Row: pc.row(rec.PartnerUID, func() []Detail {
				return []Detail{
					{"Quarter", orNA(rec.Quarter)},
					{"BU Focus", orNA(rec.BUFocus)},
					{"Primary Contact", orNA(rec.PrimaryContact)},
					{"Participation", orNA(strings.Join(rec.ParticipationType, ", "))},
					{"Thematic Interest", orNA(strings.Join(rec.ThematicInterest, ", "))},
					{"Sessions Attended", strconv.Itoa(rec.SessionsAttended)},
					{"Founders Met", strconv.Itoa(rec.FoundersMet)},
					{"Investments Made", strconv.Itoa(rec.InvestmentsMade)},
					{"Integrations", strconv.Itoa(rec.IntegrationsCompleted)},
					{"Capabilities Gained", strconv.Itoa(rec.NewCapabilitiesGained)},
					{"Patents Filed", strconv.Itoa(rec.PatentsFiled)},
					{"Employee Hours", analytics.FormatNumber(rec.EmployeeEngagementHours)},
					{"Strategic Alignment", analytics.FormatDecimal(rec.StrategicAlignmentScore, 1)},
				}
			}),
			Record:       rec,
			Value:        analytics.FormatCurrency(rec.TotalCommercialValueUSD),
			Savings:      analytics.FormatCurrency(rec.CostSavingsUSD),
			ROI:          analytics.FormatDecimal(rec.ROIMultiple, 2) + "x",
			Satisfaction: analytics.FormatDecimal(rec.PartnerSatisfactionScore, 0),
		})
	}
	return page, c.err
}

// CyclePage is the cycle snapshot dashboard.
type CyclePage struct {
	Tabs         []Tab
	Overview     []KPICard
	Selected     dataset.CycleSnapshotRecord
	Status       analytics.Rating
	Duration     string
	Summary      []Detail
	Cards        []KPICard
	Achievements []string
	Sectors      []string
}

// CycleOverviewCards renders the program-wide tiles.
func CycleOverviewCards(k analytics.CycleKPIs) []KPICard {
	return []KPICard{
		card("Total Companies", strconv.Itoa(k.TotalCompanies)),
		card("Total Funding", analytics.FormatCurrency(k.TotalFundingUSD)),
		card("Total Pilots", strconv.Itoa(k.TotalPilots)),
		card("Total Partnerships", strconv.Itoa(k.TotalPartnerships)),
		cardWith("Avg Founder NPS", analytics.FormatDecimal(k.AvgFounderNPS, 1), "out of 100"),
		card("Avg Graduation Rate", analytics.FormatPercent(k.AvgGraduationRatePct, 1)),
	}
}

// BuildCyclePage assembles the cycle snapshot dashboard.
func BuildCyclePage(pc PageContext, v analytics.CycleView) CyclePage {
	sel := v.Selected
	page := CyclePage{
		Overview:     CycleOverviewCards(v.Overview),
		Selected:     sel,
		Status:       v.Status,
		Duration:     analytics.FormatDate(sel.StartDate) + " - " + analytics.FormatDate(sel.EndDate),
		Achievements: sel.TopAchievements,
		Sectors:      sel.SectorsRepresented,
	}
	for _, c := range v.Cycles {
		page.Tabs = append(page.Tabs, Tab{
			Label:  c.CycleName,
			Href:   pc.Path + "?cycle=" + urlEscape(c.ProgramCycleUID),
			Active: c.ProgramCycleUID == sel.ProgramCycleUID,
			Status: analytics.CycleStatus(c.Status),
		})
	}
	page.Summary = []Detail{
		{"Companies", strconv.Itoa(sel.TotalCompanies)},
		{"Founders", strconv.Itoa(sel.TotalFounders)},
		{"Sectors", strconv.Itoa(len(sel.SectorsRepresented))},
		{"Graduation Rate", analytics.FormatOptionalPercent(sel.GraduationRatePct, 1)},
		{"Demo Day Attendance", analytics.FormatOptionalNumber(sel.DemoDayAttendance)},
		{"Mentor Hours", analytics.FormatNumber(sel.MentorHoursTotal)},
		{"Session Attendance", analytics.FormatPercent(sel.AvgSessionAttendancePct, 1)},
	}
	page.Cards = []KPICard{
		card("Avg Revenue Growth", analytics.FormatPercent(sel.AvgRevenueGrowthPct, 1)),
		card("Total Funding Raised", analytics.FormatCurrency(sel.TotalFundingRaisedUSD)),
		card("Pilots Initiated", strconv.Itoa(sel.TotalPilots)),
		card("Partnerships Signed", strconv.Itoa(sel.TotalPartnerships)),
		cardWith("Founder NPS", analytics.FormatDecimal(sel.AvgFounderNPS, 0), "out of 100"),
		cardWith("Job Creation", strconv.Itoa(sel.JobCreation), "new jobs"),
		card("Media Mentions", strconv.Itoa(sel.MediaMentions)),
		card("Investor Connections", strconv.Itoa(sel.InvestorConnections)),
	}
	return page
}

// PortfolioPage is the portfolio trends dashboard.
type PortfolioPage struct {
	Cards           []KPICard
	SuccessChart    template.HTML
	FundingChart    template.HTML
	ConversionChart template.HTML
	Sectors         []SectorRowView
}

// SectorRowView is one sector table row.
type SectorRowView struct {
	Row
	analytics.SectorRow
	Funding   string
	Valuation string
	Success   string
	Score     string
}

// PortfolioCards renders the portfolio KPI tiles.
func PortfolioCards(k analytics.PortfolioKPIs) []KPICard {
	return []KPICard{
		card("Total Companies", strconv.Itoa(k.TotalCompanies)),
		card("Total Funding", analytics.FormatCurrency(k.TotalFundingUSD)),
		card("Avg Success Rate", analytics.FormatPercent(k.AvgSuccessRatePct, 1)),
		card("Avg Revenue Growth", analytics.FormatPercent(k.AvgRevenueGrowthPct, 1)),
	}
}

// BuildPortfolioPage assembles the portfolio trends dashboard.
func BuildPortfolioPage(pc PageContext, v analytics.PortfolioView) (PortfolioPage, error) {
	c := charts{r: pc.Charts}
	page := PortfolioPage{Cards: PortfolioCards(v.KPIs)}
	page.SuccessChart = c.bars(v.Success, bucketValue, svg.Opts{
		Title:       "Success Rate by Sector",
		Description: "Success rate per sector",
		Format:      func(f float64) string { return analytics.FormatPercent(f, 0) },
	})
	page.FundingChart = c.hbars(v.Funding, bucketValue, svg.Opts{
		Title:       "Funding by Sector",
		Description: "Total funding per sector",
		Format:      analytics.FormatCurrency,
	})
	page.ConversionChart = c.grouped(v.Conversion, svg.Opts{
		Title:        "Pilot Conversion and Partnership Rate",
		Description:  "Pilot conversion and partnership rates per sector",
		SeriesLabels: []string{"Pilot Conversion", "Partnership Rate"},
		Format:       func(f float64) string { return analytics.FormatPercent(f, 0) },
	})
	for _, s := range v.Sectors {
		s := s
		rec := s.Record
		page.Sectors = append(page.Sectors, SectorRowView{
			Row: pc.row(rec.Sector, func() []Detail {
				return []Detail{
					{"Investment Thesis", orNA(rec.InvestmentThesis)},
					{"Risk Factors", orNA(strings.Join(rec.RiskFactors, ", "))},
					{"Top Performers", orNA(strings.Join(rec.TopPerformers, ", "))},
					{"Time to Funding", analytics.FormatDecimal(rec.AvgTimeToFundingDays, 0) + " days"},
					{"Market Traction", analytics.FormatDecimal(rec.MarketTractionScore, 1)},
					{"Product Readiness", analytics.FormatDecimal(rec.ProductReadinessScore, 1)},
					{"Team Strength", analytics.FormatDecimal(rec.TeamStrengthScore, 1)},
					{"Founder NPS", analytics.FormatDecimal(rec.AvgFounderNPS, 0)},
				}
			}),
			SectorRow: s,
			Funding:   analytics.FormatCurrency(rec.TotalFundingUSD),
			Valuation: analytics.FormatCurrency(rec.AvgValuationUSD),
			Success:   analytics.FormatPercent(rec.SuccessRatePct, 1),
			Score:     analytics.FormatDecimal(s.Score, 1),
		})
	}
	return page, c.err
}

// OperationsPage is the operational health dashboard.
type OperationsPage struct {
	Cards           []KPICard
	EfficiencyChart template.HTML
	BudgetChart     template.HTML
	Rows            []OperationsRowView
}

// OperationsRowView is one cycle row of the operations table.
type OperationsRowView struct {
	Row
	analytics.OperationsRow
	Allocated    string
	Spent        string
	VarianceText string
	VarianceTone analytics.Tone
}

// OperationsCards renders the operations KPI tiles.
func OperationsCards(k analytics.OperationsKPIs) []KPICard {
	return []KPICard{
		cardWith("Operational Efficiency", analytics.FormatDecimal(k.AvgEfficiencyScore, 1), "out of 10"),
		card("Budget Utilization", analytics.FormatPercent(k.AvgBudgetUtilization, 1)),
		card("Avg ROI", analytics.FormatDecimal(k.AvgROI, 1)+"x"),
		card("Total Mentor Hours", analytics.FormatNumber(k.TotalMentorHours)),
	}
}

// BuildOperationsPage assembles the operational health dashboard.
func BuildOperationsPage(pc PageContext, v analytics.OperationsView) (OperationsPage, error) {
	c := charts{r: pc.Charts}
	page := OperationsPage{Cards: OperationsCards(v.KPIs)}
	page.EfficiencyChart = c.line(v.Efficiency, svg.Opts{
		Title:       "Operational Efficiency by Cycle",
		Description: "Efficiency score per program cycle",
		ShowDots:    true,
	})
	page.BudgetChart = c.grouped(v.Budget, svg.Opts{
		Title:        "Budget Allocated vs Spent",
		Description:  "Budget allocated and spent per cycle",
		SeriesLabels: []string{"Allocated", "Spent"},
		Format:       analytics.FormatCurrency,
	})
	for _, r := range v.Rows {
		r := r
		rec := r.Record
		tone := analytics.TonePositive
		if r.Variance < 0 {
			tone = analytics.ToneNegative
		}
		page.Rows = append(page.Rows, OperationsRowView{
			Row: pc.row(rec.ProgramCycleUID, func() []Detail {
				return []Detail{
					{"Cost per Company", analytics.FormatCurrency(rec.CostPerCompanyUSD)},
					{"Cost per Outcome", analytics.FormatCurrency(rec.CostPerOutcomeUSD)},
					{"Mentor Utilization", analytics.FormatPercent(rec.MentorUtilizationRatePct, 1)},
					{"Mentor Hours per Company", analytics.FormatDecimal(rec.AvgMentorHoursPerCompany, 1)},
					{"Sessions", fmt.Sprintf("%d of %d (%s)", rec.TotalSessionsCompleted, rec.TotalSessionsPlanned, analytics.FormatPercent(rec.SessionCompletionRatePct, 1))},
					{"Attendance", analytics.FormatPercent(rec.AvgAttendanceRatePct, 1)},
					{"Resource Satisfaction", analytics.FormatDecimal(rec.ResourceSatisfactionScore, 1)},
					{"Platform Uptime", analytics.FormatPercent(rec.PlatformUptimePct, 2)},
					{"Ticket Resolution", analytics.FormatDecimal(rec.SupportTicketResolutionTimeHours, 1) + " h"},
					{"Curriculum Completion", analytics.FormatPercent(rec.CurriculumCompletionRatePct, 1)},
					{"Milestone Achievement", analytics.FormatPercent(rec.MilestoneAchievementRatePct, 1)},
					{"Staff Hours", analytics.FormatNumber(rec.StaffHoursInvested)},
					{"Partner Engagement", analytics.FormatDecimal(rec.PartnerEngagementScore, 1)},
					{"Alumni Engagement", analytics.FormatDecimal(rec.AlumniEngagementScore, 1)},
				}
			}),
			OperationsRow: r,
			Allocated:     analytics.FormatCurrency(rec.BudgetAllocatedUSD),
			Spent:         analytics.FormatCurrency(rec.BudgetSpentUSD),
			VarianceText:  analytics.FormatCurrency(r.Variance),
			VarianceTone:  tone,
		})
	}
	return page, c.err
}

// SampleDataPage lists raw company records grouped by program cycle.
type SampleDataPage struct {
	Groups []SampleGroup
	Total  int
}

// SampleGroup is the companies of one cycle.
type SampleGroup struct {
	Cycle     string
	Companies []CompanyRow
}

// BuildSampleDataPage groups companies by cycle in first-seen order.
func BuildSampleDataPage(pc PageContext, companies []dataset.CompanyRecord) SampleDataPage {
	cycleOf := func(c dataset.CompanyRecord) string { return c.ProgramCycleUID }
	page := SampleDataPage{Total: len(companies)}
	for _, cycle := range analytics.Unique(companies, cycleOf) {
		group := SampleGroup{Cycle: cycle}
		for _, rec := range companies {
			if rec.ProgramCycleUID == cycle {
				group.Companies = append(group.Companies, companyRow(pc, rec))
			}
		}
		page.Groups = append(page.Groups, group)
	}
	return page
}
