package insights

import (
	"html/template"

	"github.com/sva-insights/founder-dashboard/internal/analytics"
)

// CycleOption is one selectable program cycle.
type CycleOption struct {
	Value    string
	Selected bool
}

// VarianceViewModel is one formatted row of the cohort comparison table.
type VarianceViewModel struct {
	Metric  string
	Earlier string
	Later   string
	Delta   string
	Change  string
	Tone    analytics.Tone
}

// ViewModel is the cohort comparison page.
type ViewModel struct {
	Filters       CohortFilters
	EarlierCycles []CycleOption
	LaterCycles   []CycleOption
	Narrative     []string
	Variances     []VarianceViewModel
	Chart         template.HTML
}

// NewViewModel formats a comparison result. The chart is attached by the
// caller.
func NewViewModel(result Result) ViewModel {
	vm := ViewModel{Filters: result.Filters, Narrative: result.Narrative}
	for _, c := range result.Cycles {
		vm.EarlierCycles = append(vm.EarlierCycles, CycleOption{Value: c, Selected: c == result.Filters.Earlier})
		vm.LaterCycles = append(vm.LaterCycles, CycleOption{Value: c, Selected: c == result.Filters.Later})
	}
	for _, v := range result.Variance {
		tone := analytics.ToneNeutral
		switch {
		case v.Delta > 0:
			tone = analytics.TonePositive
		case v.Delta < 0:
			tone = analytics.ToneNegative
		}
		vm.Variances = append(vm.Variances, VarianceViewModel{
			Metric:  v.Metric,
			Earlier: formatMetric(v.Key, v.Earlier),
			Later:   formatMetric(v.Key, v.Later),
			Delta:   formatMetric(v.Key, v.Delta),
			Change:  analytics.FormatPercent(v.ChangePct, 1),
			Tone:    tone,
		})
	}
	return vm
}

func formatMetric(key string, v float64) string {
	switch key {
	case "follow_on_funding_usd":
		return analytics.FormatCurrency(v)
	case "avg_revenue_growth_pct", "avg_attendance_pct":
		return analytics.FormatPercent(v, 1)
	case "pilots_initiated", "partnerships_signed", "mentor_hours":
		return analytics.FormatNumber(v)
	default:
		return analytics.FormatDecimal(v, 1)
	}
}
