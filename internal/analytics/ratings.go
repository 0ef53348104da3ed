package analytics

import (
	"strings"

	"github.com/sva-insights/founder-dashboard/internal/dataset"
)

// Tone drives badge colouring in templates.
type Tone string

const (
	TonePositive Tone = "positive"
	ToneInfo     Tone = "info"
	ToneWarning  Tone = "warning"
	ToneNegative Tone = "negative"
	ToneNeutral  Tone = "neutral"
)

// Rating is a labelled qualitative judgement.
type Rating struct {
	Label string `json:"label"`
	Tone  Tone   `json:"tone"`
}

// CycleStatus rates a cycle's status string. Unknown values are neutral.
func CycleStatus(status string) Rating {
	switch strings.TrimSpace(status) {
	case "Completed":
		return Rating{Label: "Completed", Tone: TonePositive}
	case "In Progress":
		return Rating{Label: "In Progress", Tone: ToneInfo}
	case "":
		return Rating{Label: "Unknown", Tone: ToneNeutral}
	default:
		return Rating{Label: status, Tone: ToneNeutral}
	}
}

// SectorScore weights success rate and the 0-10 traction, readiness and
// team scores into a 0-100 number.
func SectorScore(s dataset.PortfolioSectorRecord) float64 {
	return s.SuccessRatePct*0.3 +
		s.MarketTractionScore*10*0.3 +
		s.ProductReadinessScore*10*0.2 +
		s.TeamStrengthScore*10*0.2
}

// SectorPerformance rates a sector from its weighted score.
func SectorPerformance(s dataset.PortfolioSectorRecord) Rating {
	score := SectorScore(s)
	switch {
	case score >= 85:
		return Rating{Label: "Excellent", Tone: TonePositive}
	case score >= 75:
		return Rating{Label: "Strong", Tone: TonePositive}
	case score >= 65:
		return Rating{Label: "Good", Tone: ToneInfo}
	case score >= 55:
		return Rating{Label: "Fair", Tone: ToneWarning}
	default:
		return Rating{Label: "Needs Attention", Tone: ToneNegative}
	}
}

// SectorRisk rates a sector's risk level.
func SectorRisk(s dataset.PortfolioSectorRecord) Rating {
	risks := len(s.RiskFactors)
	switch {
	case risks >= 3 || s.SuccessRatePct < 70:
		return Rating{Label: "High", Tone: ToneNegative}
	case risks == 2 || s.SuccessRatePct < 80:
		return Rating{Label: "Medium", Tone: ToneWarning}
	default:
		return Rating{Label: "Low", Tone: TonePositive}
	}
}

// EfficiencyRating rates a 0-10 operational efficiency score.
func EfficiencyRating(score float64) Rating {
	switch {
	case score >= 8.5:
		return Rating{Label: "Excellent", Tone: TonePositive}
	case score >= 7.5:
		return Rating{Label: "Good", Tone: ToneInfo}
	case score >= 6.5:
		return Rating{Label: "Fair", Tone: ToneWarning}
	default:
		return Rating{Label: "Needs Improvement", Tone: ToneNegative}
	}
}

// BudgetStatus rates a budget utilisation percentage.
func BudgetStatus(pct float64) Rating {
	switch {
	case pct >= 90 && pct <= 100:
		return Rating{Label: "Optimal", Tone: TonePositive}
	case pct >= 80 && pct < 90:
		return Rating{Label: "Good", Tone: ToneInfo}
	case pct < 80:
		return Rating{Label: "Under-utilized", Tone: ToneWarning}
	default:
		return Rating{Label: "Over-budget", Tone: ToneNegative}
	}
}

// BudgetVariance is allocated minus spent; negative means overspend.
func BudgetVariance(o dataset.OperationalHealthRecord) float64 {
	return o.BudgetAllocatedUSD - o.BudgetSpentUSD
}

// ApplicationStatusTone colours an application status badge.
func ApplicationStatusTone(status string) Tone {
	switch strings.ToUpper(strings.TrimSpace(status)) {
	case StatusPassed:
		return TonePositive
	case "PENDING":
		return ToneWarning
	default:
		return ToneNeutral
	}
}
