package perf

import (
	"context"
	"io/fs"
	"sort"
	"testing"
	"time"

	"github.com/sva-insights/founder-dashboard/internal/analytics"
	"github.com/sva-insights/founder-dashboard/internal/analytics/svg"
	"github.com/sva-insights/founder-dashboard/internal/analytics/ui"
	"github.com/sva-insights/founder-dashboard/internal/dataset"
	"github.com/sva-insights/founder-dashboard/internal/insights"
	"github.com/sva-insights/founder-dashboard/web"
)

func loadStore(tb testing.TB) *dataset.Store {
	tb.Helper()
	dataFS, err := fs.Sub(web.Data, "data")
	if err != nil {
		tb.Fatalf("open datasets: %v", err)
	}
	store, err := dataset.Load(context.Background(), dataFS)
	if err != nil {
		tb.Fatalf("load datasets: %v", err)
	}
	return store
}

func TestColdViewLatencyTargets(t *testing.T) {
	store := loadStore(t)
	service := analytics.NewService(store, analytics.NewCache(nil, 0))
	pc := ui.PageContext{Path: "/", Charts: svg.Renderer{}}

	samples := make([]time.Duration, 0, 20)
	for i := 0; i < 20; i++ {
		start := time.Now()
		view, err := service.Founder(context.Background(), service.FounderFilter())
		if err != nil {
			t.Fatalf("founder view: %v", err)
		}
		if _, err := ui.BuildFounderPage(pc, view, nil, "", ""); err != nil {
			t.Fatalf("founder page: %v", err)
		}
		samples = append(samples, time.Since(start))
	}

	if p95 := percentile95(samples); p95 > 250*time.Millisecond {
		t.Fatalf("founder view latency regression: p95=%s", p95)
	}
}

func BenchmarkFounderView(b *testing.B) {
	store := loadStore(b)
	service := analytics.NewService(store, analytics.NewCache(nil, 0))
	f := service.FounderFilter()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := service.Founder(context.Background(), f); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCohortCompare(b *testing.B) {
	store := loadStore(b)
	service := insights.NewService(store, insights.CohortFilters{})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := service.Load(context.Background(), insights.CohortFilters{}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkWarmAllViews(b *testing.B) {
	store := loadStore(b)
	service := analytics.NewService(store, analytics.NewCache(nil, 0))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := service.Warm(context.Background()); err != nil {
			b.Fatal(err)
		}
	}
}

func percentile95(samples []time.Duration) time.Duration {
	if len(samples) == 0 {
		return 0
	}
	sorted := append([]time.Duration(nil), samples...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	index := int(float64(len(sorted)-1) * 0.95)
	return sorted[index]
}
