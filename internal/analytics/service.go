package analytics

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/sva-insights/founder-dashboard/internal/dataset"
)

// ErrUnknownCohort is returned for an applications cohort absent from the data.
var ErrUnknownCohort = errors.New("analytics: unknown cohort")

var errSourceMissing = errors.New("analytics: source not configured")

// Source is the read-only dataset surface the service aggregates.
type Source interface {
	Companies() []dataset.CompanyRecord
	Applications() []dataset.ApplicationRecord
	Advisors() []dataset.AdvisorRecord
	Partners() []dataset.PartnerRecord
	Cycles() []dataset.CycleSnapshotRecord
	Sectors() []dataset.PortfolioSectorRecord
	Operations() []dataset.OperationalHealthRecord
}

// Option is one selectable filter value.
type Option struct {
	Value    string `json:"value"`
	Selected bool   `json:"selected"`
}

// FilterGroup lists the options of one filter dimension.
type FilterGroup struct {
	Name    string   `json:"name"`
	Label   string   `json:"label"`
	Options []Option `json:"options"`
}

// FounderView is the founder success dashboard payload.
type FounderView struct {
	KPIs               FounderKPIs             `json:"kpis"`
	Companies          []dataset.CompanyRecord `json:"companies"`
	Funding            []Bucket                `json:"funding"`
	SectorGrowth       []Bucket                `json:"sector_growth"`
	PilotsPartnerships []StackedPoint          `json:"pilots_partnerships"`
	Filters            []FilterGroup           `json:"filters"`
}

// ApplicationsView is the applications dashboard payload.
type ApplicationsView struct {
	Cohort       string                      `json:"cohort"`
	Cohorts      []string                    `json:"cohorts"`
	KPIs         ApplicationKPIs             `json:"kpis"`
	YearFounded  []Bucket                    `json:"year_founded"`
	Referrals    []Bucket                    `json:"referrals"`
	Fundraising  []Bucket                    `json:"fundraising"`
	Applications []dataset.ApplicationRecord `json:"applications"`
}

// AdvisorsView is the advisors dashboard payload.
type AdvisorsView struct {
	KPIs      AdvisorKPIs             `json:"kpis"`
	Roles     []Bucket                `json:"roles"`
	Locations []Bucket                `json:"locations"`
	Advisors  []dataset.AdvisorRecord `json:"advisors"`
	Filters   []FilterGroup           `json:"filters"`
}

// PartnerView is the partner ROI dashboard payload.
type PartnerView struct {
	KPIs           PartnerKPIs             `json:"kpis"`
	Partners       []dataset.PartnerRecord `json:"partners"`
	ROI            []Bucket                `json:"roi"`
	ValueVsSavings []StackedPoint          `json:"value_vs_savings"`
	Pilots         []StackedPoint          `json:"pilots"`
	Filters        []FilterGroup           `json:"filters"`
}

// CycleView is the cycle snapshot payload.
type CycleView struct {
	Overview CycleKPIs                     `json:"overview"`
	Cycles   []dataset.CycleSnapshotRecord `json:"cycles"`
	Selected dataset.CycleSnapshotRecord   `json:"selected"`
	Status   Rating                        `json:"status"`
}

// SectorRow is one sector with its derived ratings.
type SectorRow struct {
	Record      dataset.PortfolioSectorRecord `json:"record"`
	Score       float64                       `json:"score"`
	Performance Rating                        `json:"performance"`
	Risk        Rating                        `json:"risk"`
}

// PortfolioView is the portfolio trends payload.
type PortfolioView struct {
	KPIs       PortfolioKPIs  `json:"kpis"`
	Sectors    []SectorRow    `json:"sectors"`
	Success    []Bucket       `json:"success"`
	Funding    []Bucket       `json:"funding"`
	Conversion []StackedPoint `json:"conversion"`
}

// OperationsRow is one cycle's operations record with its ratings.
type OperationsRow struct {
	Record     dataset.OperationalHealthRecord `json:"record"`
	Efficiency Rating                          `json:"efficiency"`
	Budget     Rating                          `json:"budget"`
	Variance   float64                         `json:"variance"`
}

// OperationsView is the operational health payload.
type OperationsView struct {
	KPIs       OperationsKPIs  `json:"kpis"`
	Rows       []OperationsRow `json:"rows"`
	Efficiency []Bucket        `json:"efficiency"`
	Budget     []StackedPoint  `json:"budget"`
}

// Service computes dashboard payloads from the in-memory datasets and
// memoizes them by filter key.
type Service struct {
	source Source
	cache  *Cache
	now    func() time.Time
}

// NewService wires a Source with a Cache helper. cache may be nil.
func NewService(source Source, cache *Cache) *Service {
	return &Service{source: source, cache: cache, now: time.Now}
}

// WithClock overrides the clock used for company ages.
func (s *Service) WithClock(now func() time.Time) *Service {
	if now != nil {
		s.now = now
	}
	return s
}

// FounderFilter returns an empty founder dashboard filter.
func (s *Service) FounderFilter() Filter[dataset.CompanyRecord] {
	return NewFilter(FounderDimensions()...)
}

// PartnerFilter returns an empty partner dashboard filter.
func (s *Service) PartnerFilter() Filter[dataset.PartnerRecord] {
	return NewFilter(PartnerDimensions()...)
}

// AdvisorFilter returns an empty advisors dashboard filter.
func (s *Service) AdvisorFilter() Filter[dataset.AdvisorRecord] {
	return NewFilter(AdvisorDimensions()...)
}

// Founder builds the founder success view for f.
func (s *Service) Founder(ctx context.Context, f Filter[dataset.CompanyRecord]) (FounderView, error) {
	var view FounderView
	err := s.fetch(ctx, "founder", f.Key(), &view, func(context.Context) (any, error) {
		all := s.source.Companies()
		rows := f.Apply(all)
		return FounderView{
			KPIs:               ComputeFounderKPIs(rows),
			Companies:          CompaniesByFunding(rows),
			Funding:            FundingByCompany(rows),
			SectorGrowth:       RevenueGrowthBySector(rows),
			PilotsPartnerships: PilotsAndPartnerships(rows),
			Filters:            filterGroups(all, f, false),
		}, nil
	})
	return view, err
}

// Applications builds the applications view for one cohort. An empty
// cohort selects the first cohort present in the data.
func (s *Service) Applications(ctx context.Context, cohort string) (ApplicationsView, error) {
	if s.source == nil {
		return ApplicationsView{}, errSourceMissing
	}
	cohorts := Unique(s.source.Applications(), CohortOf)
	if cohort == "" && len(cohorts) > 0 {
		cohort = cohorts[0]
	}
	if cohort != "" && !slices.Contains(cohorts, cohort) {
		return ApplicationsView{}, fmt.Errorf("%w %q", ErrUnknownCohort, cohort)
	}
	var view ApplicationsView
	err := s.fetch(ctx, "applications", cohort, &view, func(context.Context) (any, error) {
		rows := NewFilter(ApplicationDimensions()...).With("cohort", cohort).Apply(s.source.Applications())
		k := ComputeApplicationKPIs(rows, s.now().Year())
		return ApplicationsView{
			Cohort:       cohort,
			Cohorts:      cohorts,
			KPIs:         k,
			YearFounded:  YearFoundedDistribution(rows),
			Referrals:    ReferralDistribution(rows),
			Fundraising:  FundraisingSplit(k),
			Applications: rows,
		}, nil
	})
	return view, err
}

// Advisors builds the advisors view for f.
func (s *Service) Advisors(ctx context.Context, f Filter[dataset.AdvisorRecord]) (AdvisorsView, error) {
	var view AdvisorsView
	err := s.fetch(ctx, "advisors", f.Key(), &view, func(context.Context) (any, error) {
		all := s.source.Advisors()
		rows := f.Apply(all)
		return AdvisorsView{
			KPIs:      ComputeAdvisorKPIs(rows),
			Roles:     RoleDistribution(rows),
			Locations: LocationDistribution(rows),
			Advisors:  rows,
			Filters:   filterGroups(all, f, true),
		}, nil
	})
	return view, err
}

// Partners builds the partner ROI view for f.
func (s *Service) Partners(ctx context.Context, f Filter[dataset.PartnerRecord]) (PartnerView, error) {
	var view PartnerView
	err := s.fetch(ctx, "partners", f.Key(), &view, func(context.Context) (any, error) {
		all := s.source.Partners()
		rows := f.Apply(all)
		return PartnerView{
			KPIs:           ComputePartnerKPIs(rows),
			Partners:       PartnersByValue(rows),
			ROI:            ROIByPartner(rows),
			ValueVsSavings: ValueVsSavings(rows),
			Pilots:         PilotsByPartner(rows),
			Filters:        filterGroups(all, f, false),
		}, nil
	})
	return view, err
}

// Cycle builds the cycle snapshot view. An empty or unknown id selects the
// first cycle, and the view is cached under the resolved id.
func (s *Service) Cycle(ctx context.Context, id string) (CycleView, error) {
	if s.source == nil {
		return CycleView{}, errSourceMissing
	}
	cycles := s.source.Cycles()
	if !slices.ContainsFunc(cycles, func(c dataset.CycleSnapshotRecord) bool { return c.ProgramCycleUID == id }) {
		id = ""
		if len(cycles) > 0 {
			id = cycles[0].ProgramCycleUID
		}
	}
	var view CycleView
	err := s.fetch(ctx, "cycle", id, &view, func(context.Context) (any, error) {
		out := CycleView{Overview: ComputeCycleKPIs(cycles), Cycles: cycles}
		for _, c := range cycles {
			if c.ProgramCycleUID == id {
				out.Selected = c
				out.Status = CycleStatus(c.Status)
				break
			}
		}
		return out, nil
	})
	return view, err
}

// Portfolio builds the portfolio trends view.
func (s *Service) Portfolio(ctx context.Context) (PortfolioView, error) {
	var view PortfolioView
	err := s.fetch(ctx, "portfolio", "all", &view, func(context.Context) (any, error) {
		sectors := s.source.Sectors()
		rows := make([]SectorRow, 0, len(sectors))
		for _, sec := range sectors {
			rows = append(rows, SectorRow{
				Record:      sec,
				Score:       SectorScore(sec),
				Performance: SectorPerformance(sec),
				Risk:        SectorRisk(sec),
			})
		}
		return PortfolioView{
			KPIs:       ComputePortfolioKPIs(sectors),
			Sectors:    rows,
			Success:    SuccessBySector(sectors),
			Funding:    FundingBySector(sectors),
			Conversion: ConversionBySector(sectors),
		}, nil
	})
	return view, err
}

// Operations builds the operational health view.
func (s *Service) Operations(ctx context.Context) (OperationsView, error) {
	var view OperationsView
	err := s.fetch(ctx, "operations", "all", &view, func(context.Context) (any, error) {
		ops := s.source.Operations()
		rows := make([]OperationsRow, 0, len(ops))
		for _, o := range ops {
			rows = append(rows, OperationsRow{
				Record:     o,
				Efficiency: EfficiencyRating(o.OperationalEfficiencyScore),
				Budget:     BudgetStatus(o.BudgetUtilizationPct),
				Variance:   BudgetVariance(o),
			})
		}
		return OperationsView{
			KPIs:       ComputeOperationsKPIs(ops),
			Rows:       rows,
			Efficiency: EfficiencyByCycle(ops),
			Budget:     BudgetByCycle(ops),
		}, nil
	})
	return view, err
}

// Warm computes every unfiltered view so the first page loads hit the
// cache. It returns the number of views built.
func (s *Service) Warm(ctx context.Context) (int, error) {
	steps := []func() error{
		func() error { _, err := s.Founder(ctx, s.FounderFilter()); return err },
		func() error { _, err := s.Applications(ctx, ""); return err },
		func() error { _, err := s.Advisors(ctx, s.AdvisorFilter()); return err },
		func() error { _, err := s.Partners(ctx, s.PartnerFilter()); return err },
		func() error { _, err := s.Cycle(ctx, ""); return err },
		func() error { _, err := s.Portfolio(ctx); return err },
		func() error { _, err := s.Operations(ctx); return err },
	}
	for i, step := range steps {
		if err := step(); err != nil {
			return i, err
		}
	}
	return len(steps), nil
}

func (s *Service) fetch(ctx context.Context, page, filterKey string, dest any, loader func(context.Context) (any, error)) error {
	if s.source == nil {
		return errSourceMissing
	}
	key, err := s.cache.BuildKey(ctx, keyView(page, filterKey)...)
	if err != nil {
		return err
	}
	return s.cache.FetchJSON(ctx, key, dest, loader)
}

func filterGroups[T any](records []T, f Filter[T], sorted bool) []FilterGroup {
	groups := make([]FilterGroup, 0, len(f.Dimensions()))
	for _, d := range f.Dimensions() {
		values := Unique(records, d.Value)
		if sorted {
			values = UniqueSorted(records, d.Value)
		}
		sel := f.Selected(d.Name)
		opts := make([]Option, 0, len(values))
		for _, v := range values {
			opts = append(opts, Option{Value: v, Selected: sel.Contains(v)})
		}
		groups = append(groups, FilterGroup{Name: d.Name, Label: d.Label, Options: opts})
	}
	return groups
}
