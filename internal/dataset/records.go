package dataset

// Kind identifies one of the static datasets.
type Kind string

const (
	KindFounderSuccess    Kind = "founder_success"
	KindApplications      Kind = "applications"
	KindAdvisors          Kind = "advisors"
	KindPartnerROI        Kind = "partner_roi"
	KindCycleSnapshot     Kind = "cycle_snapshot"
	KindPortfolioTrends   Kind = "portfolio_trends"
	KindOperationalHealth Kind = "operational_health"
)

// Record is implemented by every dataset row type.
type Record interface {
	DatasetKind() Kind
}

// CompanyRecord is one company in one program cycle.
type CompanyRecord struct {
	ProgramCycleUID            string  `json:"program_cycle_uid" validate:"required"`
	CompanyUID                 string  `json:"company_uid" validate:"required"`
	CanonicalName              string  `json:"canonical_name" validate:"required"`
	Sector                     string  `json:"sector"`
	Stage                      string  `json:"stage"`
	ProductReadiness           string  `json:"product_readiness"`
	GTMMaturity                string  `json:"gtm_maturity"`
	ICPClarity                 string  `json:"icp_clarity"`
	SalesMotion                string  `json:"sales_motion"`
	RevenueGrowthPct           float64 `json:"revenue_growth_pct"`
	PilotsInitiated            int     `json:"pilots_initiated" validate:"gte=0"`
	PartnershipsSignedCount    int     `json:"partnerships_signed_count" validate:"gte=0"`
	FollowOnFundingUSD         float64 `json:"follow_on_funding_usd" validate:"gte=0"`
	GoalProgressScore          float64 `json:"goal_progress_score" validate:"gte=0"`
	FounderNPS                 float64 `json:"founder_nps" validate:"gte=0"`
	SessionsAttendancePct      float64 `json:"sessions_attendance_pct" validate:"gte=0,lte=100"`
	MentorHours                float64 `json:"mentor_hours" validate:"gte=0"`
	AdvisorRelationshipsFormed int     `json:"advisor_relationships_formed" validate:"gte=0"`
	NotableOutcomes            string  `json:"notable_outcomes"`
}

// ApplicationRecord is one submitted program application.
type ApplicationRecord struct {
	ApplicationUID       string       `json:"application_uid" validate:"required"`
	CompanyName          string       `json:"company_name" validate:"required"`
	Cohort               string       `json:"cohort" validate:"required"`
	ApplicationStatus    string       `json:"application_status"`
	YearFounded          NullableYear `json:"year_founded"`
	CurrentlyFundraising bool         `json:"currently_fundraising"`
	ReferralSource       string       `json:"referral_source"`
	CompanyDescription   string       `json:"company_description"`
	ProblemStatement     string       `json:"problem_statement"`
	TargetCustomer       string       `json:"target_customer"`
	MarketSize           string       `json:"market_size"`
	Traction             string       `json:"traction"`
	RunwayMonths         string       `json:"runway_months"`
	SubmittedAt          *string      `json:"submitted_at"`
	CompanyWebsite       string       `json:"company_website"`
	PitchDeck            string       `json:"pitch_deck"`
	DemoLink             string       `json:"demo_link"`
	Founders             string       `json:"founders"`
	TeamSize             string       `json:"team_size"`
}

// AdvisorRecord is one advisor in the network.
type AdvisorRecord struct {
	AdvisorUID    string  `json:"advisor_uid" validate:"required"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	FullName      string  `json:"full_name" validate:"required"`
	Email         string  `json:"email" validate:"omitempty,email"`
	Role          string  `json:"role"`
	Company       string  `json:"company"`
	Title         string  `json:"title"`
	LinkedInURL   string  `json:"linkedin_url"`
	Location      string  `json:"location"`
	Engagement    string  `json:"engagement"`
	Expertise     string  `json:"expertise"`
	CompanySize   string  `json:"company_size"`
	AnnualRevenue string  `json:"annual_revenue"`
	PortcoAdvisor string  `json:"portco_advisor"`
	DateAdded     *string `json:"date_added"`
	Female        bool    `json:"female"`
	URM           bool    `json:"urm"`
	ReferredBy    string  `json:"referred_by"`
	Onboarded     string  `json:"onboarded"`
}

// PartnerRecord is one corporate partner with its ROI metrics.
type PartnerRecord struct {
	PartnerUID               string   `json:"partner_uid" validate:"required"`
	PartnerName              string   `json:"partner_name" validate:"required"`
	Industry                 string   `json:"industry"`
	CompanySize              string   `json:"company_size"`
	PartnershipTier          string   `json:"partnership_tier"`
	Quarter                  string   `json:"quarter"`
	BUFocus                  string   `json:"bu_focus"`
	PrimaryContact           string   `json:"primary_contact"`
	ParticipationType        []string `json:"participation_type"`
	SessionsAttended         int      `json:"sessions_attended" validate:"gte=0"`
	FoundersMet              int      `json:"founders_met" validate:"gte=0"`
	InvestmentsMade          int      `json:"investments_made" validate:"gte=0"`
	IntegrationsCompleted    int      `json:"integrations_completed" validate:"gte=0"`
	RepeatEngagement         string   `json:"repeat_engagement"`
	ThematicInterest         []string `json:"thematic_interest"`
	TotalEngagements         int      `json:"total_engagements" validate:"gte=0"`
	ActivePilots             int      `json:"active_pilots" validate:"gte=0"`
	CompletedPilots          int      `json:"completed_pilots" validate:"gte=0"`
	TotalCommercialValueUSD  float64  `json:"total_commercial_value_usd" validate:"gte=0"`
	AvgInnovationScore       float64  `json:"avg_innovation_score" validate:"gte=0,lte=10"`
	TimeToPilotDays          float64  `json:"time_to_pilot_days" validate:"gte=0"`
	CostSavingsUSD           float64  `json:"cost_savings_usd" validate:"gte=0"`
	NewCapabilitiesGained    int      `json:"new_capabilities_gained" validate:"gte=0"`
	EmployeeEngagementHours  float64  `json:"employee_engagement_hours" validate:"gte=0"`
	PatentsFiled             int      `json:"patents_filed" validate:"gte=0"`
	MarketInsightsGained     int      `json:"market_insights_gained" validate:"gte=0"`
	PartnerSatisfactionScore float64  `json:"partner_satisfaction_score" validate:"gte=0,lte=100"`
	StrategicAlignmentScore  float64  `json:"strategic_alignment_score" validate:"gte=0"`
	ROIMultiple              float64  `json:"roi_multiple" validate:"gte=0"`
}

// CycleSnapshotRecord holds pre-aggregated metrics for one program cycle.
type CycleSnapshotRecord struct {
	ProgramCycleUID         string   `json:"program_cycle_uid" validate:"required"`
	CycleName               string   `json:"cycle_name" validate:"required"`
	StartDate               string   `json:"start_date"`
	EndDate                 string   `json:"end_date"`
	Status                  string   `json:"status"`
	TotalCompanies          int      `json:"total_companies" validate:"gte=0"`
	TotalFounders           int      `json:"total_founders" validate:"gte=0"`
	AvgRevenueGrowthPct     float64  `json:"avg_revenue_growth_pct"`
	TotalFundingRaisedUSD   float64  `json:"total_funding_raised_usd" validate:"gte=0"`
	TotalPilots             int      `json:"total_pilots" validate:"gte=0"`
	TotalPartnerships       int      `json:"total_partnerships" validate:"gte=0"`
	AvgFounderNPS           float64  `json:"avg_founder_nps" validate:"gte=0"`
	GraduationRatePct       *float64 `json:"graduation_rate_pct" validate:"omitempty,gte=0,lte=100"`
	JobCreation             int      `json:"job_creation" validate:"gte=0"`
	SectorsRepresented      []string `json:"sectors_represented"`
	TopAchievements         []string `json:"top_achievements"`
	MediaMentions           int      `json:"media_mentions" validate:"gte=0"`
	DemoDayAttendance       *int     `json:"demo_day_attendance" validate:"omitempty,gte=0"`
	InvestorConnections     int      `json:"investor_connections" validate:"gte=0"`
	MentorHoursTotal        float64  `json:"mentor_hours_total" validate:"gte=0"`
	AvgSessionAttendancePct float64  `json:"avg_session_attendance_pct" validate:"gte=0,lte=100"`
}

// PortfolioSectorRecord holds portfolio performance for one sector.
type PortfolioSectorRecord struct {
	Sector                 string   `json:"sector" validate:"required"`
	TotalCompanies         int      `json:"total_companies" validate:"gte=0"`
	AvgRevenueGrowthPct    float64  `json:"avg_revenue_growth_pct"`
	TotalFundingUSD        float64  `json:"total_funding_usd" validate:"gte=0"`
	AvgValuationUSD        float64  `json:"avg_valuation_usd" validate:"gte=0"`
	SuccessRatePct         float64  `json:"success_rate_pct" validate:"gte=0,lte=100"`
	AvgTimeToFundingDays   float64  `json:"avg_time_to_funding_days" validate:"gte=0"`
	PilotConversionRatePct float64  `json:"pilot_conversion_rate_pct" validate:"gte=0,lte=100"`
	PartnershipRatePct     float64  `json:"partnership_rate_pct" validate:"gte=0,lte=100"`
	AvgFounderNPS          float64  `json:"avg_founder_nps" validate:"gte=0"`
	MarketTractionScore    float64  `json:"market_traction_score" validate:"gte=0,lte=10"`
	ProductReadinessScore  float64  `json:"product_readiness_score" validate:"gte=0,lte=10"`
	TeamStrengthScore      float64  `json:"team_strength_score" validate:"gte=0,lte=10"`
	InvestmentThesis       string   `json:"investment_thesis"`
	RiskFactors            []string `json:"risk_factors"`
	TopPerformers          []string `json:"top_performers"`
}

// OperationalHealthRecord holds program operations metrics for one cycle.
type OperationalHealthRecord struct {
	ProgramCycleUID                  string  `json:"program_cycle_uid" validate:"required"`
	CycleName                        string  `json:"cycle_name" validate:"required"`
	OperationalEfficiencyScore       float64 `json:"operational_efficiency_score" validate:"gte=0,lte=10"`
	BudgetUtilizationPct             float64 `json:"budget_utilization_pct" validate:"gte=0"`
	BudgetAllocatedUSD               float64 `json:"budget_allocated_usd" validate:"gte=0"`
	BudgetSpentUSD                   float64 `json:"budget_spent_usd" validate:"gte=0"`
	CostPerCompanyUSD                float64 `json:"cost_per_company_usd" validate:"gte=0"`
	MentorUtilizationRatePct         float64 `json:"mentor_utilization_rate_pct" validate:"gte=0"`
	TotalMentorHours                 float64 `json:"total_mentor_hours" validate:"gte=0"`
	AvgMentorHoursPerCompany         float64 `json:"avg_mentor_hours_per_company" validate:"gte=0"`
	SessionCompletionRatePct         float64 `json:"session_completion_rate_pct" validate:"gte=0,lte=100"`
	TotalSessionsPlanned             int     `json:"total_sessions_planned" validate:"gte=0"`
	TotalSessionsCompleted           int     `json:"total_sessions_completed" validate:"gte=0"`
	AvgAttendanceRatePct             float64 `json:"avg_attendance_rate_pct" validate:"gte=0,lte=100"`
	ResourceSatisfactionScore        float64 `json:"resource_satisfaction_score" validate:"gte=0"`
	PlatformUptimePct                float64 `json:"platform_uptime_pct" validate:"gte=0,lte=100"`
	SupportTicketResolutionTimeHours float64 `json:"support_ticket_resolution_time_hours" validate:"gte=0"`
	CurriculumCompletionRatePct      float64 `json:"curriculum_completion_rate_pct" validate:"gte=0,lte=100"`
	MilestoneAchievementRatePct      float64 `json:"milestone_achievement_rate_pct" validate:"gte=0,lte=100"`
	StaffHoursInvested               float64 `json:"staff_hours_invested" validate:"gte=0"`
	CostPerOutcomeUSD                float64 `json:"cost_per_outcome_usd" validate:"gte=0"`
	ROIOnInvestment                  float64 `json:"roi_on_investment" validate:"gte=0"`
	PartnerEngagementScore           float64 `json:"partner_engagement_score" validate:"gte=0"`
	AlumniEngagementScore            float64 `json:"alumni_engagement_score" validate:"gte=0"`
}

func (CompanyRecord) DatasetKind() Kind { return KindFounderSuccess }
func (ApplicationRecord) DatasetKind() Kind { return KindApplications }
func (AdvisorRecord) DatasetKind() Kind { return KindAdvisors }
func (PartnerRecord) DatasetKind() Kind { return KindPartnerROI }
func (CycleSnapshotRecord) DatasetKind() Kind { return KindCycleSnapshot }
func (PortfolioSectorRecord) DatasetKind() Kind { return KindPortfolioTrends }
func (OperationalHealthRecord) DatasetKind() Kind { return KindOperationalHealth }
