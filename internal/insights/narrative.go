package insights

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/sva-insights/founder-dashboard/internal/analytics"
)

// StableNarrative is emitted when no KPI moved between cohorts.
const StableNarrative = "Stable performance across cohorts."

// NoPartnerData is emitted for an empty partner selection.
const NoPartnerData = "No partner data available."

func direction(v float64) string {
	if v > 0 {
		return "increased"
	}
	return "decreased"
}

// Narrative renders one sentence per non-zero delta field in a fixed order:
// revenue growth, funding, pilots, partnerships, NPS, attendance, mentor
// hours.
func Narrative(d CohortDelta) []string {
	var out []string
	if d.RevenueGrowthPct != 0 {
		out = append(out, fmt.Sprintf("Revenue growth %s by %s pts.",
			direction(d.RevenueGrowthPct), significant(math.Abs(d.RevenueGrowthPct), 1)))
	}
	if d.FollowOnFundingUSD != 0 {
		out = append(out, fmt.Sprintf("Follow-on funding %s by %s.",
			direction(d.FollowOnFundingUSD), formatFunding(math.Abs(d.FollowOnFundingUSD))))
	}
	if d.Pilots != 0 {
		out = append(out, fmt.Sprintf("Pilots %s by %d.",
			direction(float64(d.Pilots)), abs(d.Pilots)))
	}
	if d.Partnerships != 0 {
		out = append(out, fmt.Sprintf("Partnerships %s by %d.",
			direction(float64(d.Partnerships)), abs(d.Partnerships)))
	}
	if d.FounderNPS != 0 {
		out = append(out, fmt.Sprintf("Founder NPS %s by %s.",
			direction(d.FounderNPS), significant(math.Abs(d.FounderNPS), 1)))
	}
	if d.AttendancePct != 0 {
		out = append(out, fmt.Sprintf("Session attendance %s by %s pts.",
			direction(d.AttendancePct), significant(math.Abs(d.AttendancePct), 1)))
	}
	if d.MentorHours != 0 {
		out = append(out, fmt.Sprintf("Mentor hours %s by %s.",
			direction(d.MentorHours), formatAmount(math.Abs(d.MentorHours))))
	}
	if len(out) == 0 {
		return []string{StableNarrative}
	}
	return out
}

// JoinNarrative joins sentences for single-paragraph display.
func JoinNarrative(sentences []string) string {
	return strings.Join(sentences, " ")
}

// PartnerNarrative summarises partner value for n partners.
func PartnerNarrative(k analytics.PartnerKPIs, n int) []string {
	if n == 0 {
		return []string{NoPartnerData}
	}
	out := []string{
		fmt.Sprintf("Partners are achieving an average ROI of %.2fx on their investments.", k.AvgROIMultiple),
		fmt.Sprintf("Total commercial value generated: %s with average cost savings of $%.0fK per partner.",
			analytics.FormatMillions(k.TotalCommercialValueUSD), k.AvgCostSavingsUSD/1000),
	}
	if k.ActivePilots > 0 {
		out = append(out, fmt.Sprintf("Currently %d active pilots with %d successfully completed.",
			k.ActivePilots, k.CompletedPilots))
	}
	if k.CapabilitiesGained > 0 {
		out = append(out, fmt.Sprintf("Partners have gained %d new capabilities through these engagements.",
			k.CapabilitiesGained))
	}
	if k.PatentsFiled > 0 {
		out = append(out, fmt.Sprintf("%d patents filed as a result of partner collaborations.", k.PatentsFiled))
	}
	return out
}

// formatAmount keeps whole amounts as grouped integers.
func formatAmount(v float64) string {
	if v == math.Trunc(v) {
		return analytics.FormatNumber(v)
	}
	return significant(v, 1)
}

// formatFunding uses millions unless the amount would round to $0.00M.
func formatFunding(v float64) string {
	if v >= 5000 {
		return analytics.FormatMillions(v)
	}
	return "$" + formatAmount(v)
}

// significant renders a non-zero v with at least the given decimals, adding
// more until the value no longer rounds to zero.
func significant(v float64, decimals int) string {
	for d := decimals; d <= 4; d++ {
		if math.Round(v*math.Pow10(d)) != 0 {
			return analytics.FormatDecimal(v, d)
		}
	}
	return strconv.FormatFloat(v, 'g', 2, 64)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
