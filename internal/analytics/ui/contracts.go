package ui

import (
	"html/template"

	"github.com/sva-insights/founder-dashboard/internal/analytics"
	"github.com/sva-insights/founder-dashboard/internal/analytics/svg"
)

// ChartRenderer abstracts SVG rendering for the dashboard pages.
type ChartRenderer interface {
	Bars(width, height int, values []float64, labels []string, opts svg.Opts) (template.HTML, error)
	GroupedBars(width, height int, a, b []float64, labels []string, opts svg.Opts) (template.HTML, error)
	StackedBars(width, height int, a, b []float64, labels []string, opts svg.Opts) (template.HTML, error)
	HBars(width int, values []float64, labels []string, opts svg.Opts) (template.HTML, error)
	Line(width, height int, series [][]float64, labels []string, opts svg.Opts) (template.HTML, error)
	Donut(size int, values []float64, labels []string, opts svg.Opts) (template.HTML, error)
}

// KPICard is one headline tile.
type KPICard struct {
	Title    string
	Value    string
	Subtitle string
	Tone     analytics.Tone
}

// Detail is a label/value pair shown in an expanded row.
type Detail struct {
	Label string
	Value string
}

func card(title, value string) KPICard {
	return KPICard{Title: title, Value: value, Tone: analytics.ToneInfo}
}

func cardWith(title, value, subtitle string) KPICard {
	return KPICard{Title: title, Value: value, Subtitle: subtitle, Tone: analytics.ToneInfo}
}

func bucketSeries(buckets []analytics.Bucket, value func(analytics.Bucket) float64) ([]float64, []string) {
	values := make([]float64, 0, len(buckets))
	labels := make([]string, 0, len(buckets))
	for _, b := range buckets {
		values = append(values, value(b))
		labels = append(labels, b.Key)
	}
	return values, labels
}

func bucketValue(b analytics.Bucket) float64 { return b.Value }

func bucketCount(b analytics.Bucket) float64 { return float64(b.Count) }

func stackedSeries(points []analytics.StackedPoint) ([]float64, []float64, []string) {
	a := make([]float64, 0, len(points))
	b := make([]float64, 0, len(points))
	labels := make([]string, 0, len(points))
	for _, p := range points {
		a = append(a, p.A)
		b = append(b, p.B)
		labels = append(labels, p.Label)
	}
	return a, b, labels
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func orNA(s string) string {
	if s == "" {
		return analytics.NotApplicable
	}
	return s
}
