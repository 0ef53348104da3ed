package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sva-insights/founder-dashboard/internal/dataset"
)

func TestCycleStatus(t *testing.T) {
	assert.Equal(t, Rating{Label: "Completed", Tone: TonePositive}, CycleStatus("Completed"))
	assert.Equal(t, Rating{Label: "In Progress", Tone: ToneInfo}, CycleStatus("In Progress"))
	assert.Equal(t, Rating{Label: "Planned", Tone: ToneNeutral}, CycleStatus("Planned"))
	assert.Equal(t, ToneNeutral, CycleStatus("").Tone)
}

func TestSectorPerformance(t *testing.T) {
	s := dataset.PortfolioSectorRecord{SuccessRatePct: 90, MarketTractionScore: 9, ProductReadinessScore: 8, TeamStrengthScore: 9}
	// 27 + 27 + 16 + 18
	assert.InDelta(t, 88, SectorScore(s), 1e-9)
	assert.Equal(t, "Excellent", SectorPerformance(s).Label)

	s = dataset.PortfolioSectorRecord{SuccessRatePct: 50, MarketTractionScore: 5, ProductReadinessScore: 5, TeamStrengthScore: 5}
	assert.Equal(t, "Needs Attention", SectorPerformance(s).Label)

	s = dataset.PortfolioSectorRecord{SuccessRatePct: 70, MarketTractionScore: 7, ProductReadinessScore: 7, TeamStrengthScore: 7}
	assert.Equal(t, "Good", SectorPerformance(s).Label)
}

func TestSectorRisk(t *testing.T) {
	assert.Equal(t, "High", SectorRisk(dataset.PortfolioSectorRecord{SuccessRatePct: 90, RiskFactors: []string{"a", "b", "c"}}).Label)
	assert.Equal(t, "High", SectorRisk(dataset.PortfolioSectorRecord{SuccessRatePct: 65}).Label)
	assert.Equal(t, "Medium", SectorRisk(dataset.PortfolioSectorRecord{SuccessRatePct: 90, RiskFactors: []string{"a", "b"}}).Label)
	assert.Equal(t, "Medium", SectorRisk(dataset.PortfolioSectorRecord{SuccessRatePct: 75}).Label)
	assert.Equal(t, "Low", SectorRisk(dataset.PortfolioSectorRecord{SuccessRatePct: 85, RiskFactors: []string{"a"}}).Label)
}

func TestEfficiencyAndBudget(t *testing.T) {
	assert.Equal(t, "Excellent", EfficiencyRating(8.5).Label)
	assert.Equal(t, "Good", EfficiencyRating(7.5).Label)
	assert.Equal(t, "Fair", EfficiencyRating(6.5).Label)
	assert.Equal(t, "Needs Improvement", EfficiencyRating(6.49).Label)

	assert.Equal(t, "Optimal", BudgetStatus(95).Label)
	assert.Equal(t, "Optimal", BudgetStatus(100).Label)
	assert.Equal(t, "Good", BudgetStatus(85).Label)
	assert.Equal(t, "Under-utilized", BudgetStatus(79.9).Label)
	assert.Equal(t, "Over-budget", BudgetStatus(104).Label)

	o := dataset.OperationalHealthRecord{BudgetAllocatedUSD: 500_000, BudgetSpentUSD: 520_000}
	assert.Equal(t, -20_000.0, BudgetVariance(o))
}

func TestApplicationStatusTone(t *testing.T) {
	assert.Equal(t, TonePositive, ApplicationStatusTone("PASSED"))
	assert.Equal(t, ToneWarning, ApplicationStatusTone("pending"))
	assert.Equal(t, ToneNeutral, ApplicationStatusTone("DECLINED"))
}
