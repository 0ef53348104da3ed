package ui

import (
	"errors"
	"html/template"
	"net/url"

	"github.com/sva-insights/founder-dashboard/internal/analytics"
	"github.com/sva-insights/founder-dashboard/internal/analytics/svg"
)

var errNoRenderer = errors.New("ui: chart renderer missing")

// charts renders a page's charts, keeping the first error. Empty series
// render nothing so templates can show an empty state.
type charts struct {
	r   ChartRenderer
	err error
}

func (c *charts) draw(n int, fn func() (template.HTML, error)) template.HTML {
	if c.err != nil || n == 0 {
		return ""
	}
	if c.r == nil {
		c.err = errNoRenderer
		return ""
	}
	out, err := fn()
	if err != nil {
		c.err = err
		return ""
	}
	return out
}

func (c *charts) bars(buckets []analytics.Bucket, value func(analytics.Bucket) float64, opts svg.Opts) template.HTML {
	values, labels := bucketSeries(buckets, value)
	return c.draw(len(labels), func() (template.HTML, error) {
		return c.r.Bars(svg.DefaultWidth, svg.DefaultHeight, values, labels, opts)
	})
}

func (c *charts) hbars(buckets []analytics.Bucket, value func(analytics.Bucket) float64, opts svg.Opts) template.HTML {
	values, labels := bucketSeries(buckets, value)
	return c.draw(len(labels), func() (template.HTML, error) {
		return c.r.HBars(svg.DefaultWidth, values, labels, opts)
	})
}

func (c *charts) donut(buckets []analytics.Bucket, opts svg.Opts) template.HTML {
	values, labels := bucketSeries(buckets, bucketCount)
	return c.draw(len(labels), func() (template.HTML, error) {
		return c.r.Donut(svg.DefaultHeight, values, labels, opts)
	})
}

func (c *charts) line(buckets []analytics.Bucket, opts svg.Opts) template.HTML {
	values, labels := bucketSeries(buckets, bucketValue)
	return c.draw(len(labels), func() (template.HTML, error) {
		return c.r.Line(svg.DefaultWidth, svg.DefaultHeight, [][]float64{values}, labels, opts)
	})
}

func (c *charts) grouped(points []analytics.StackedPoint, opts svg.Opts) template.HTML {
	a, b, labels := stackedSeries(points)
	return c.draw(len(labels), func() (template.HTML, error) {
		return c.r.GroupedBars(svg.DefaultWidth, svg.DefaultHeight, a, b, labels, opts)
	})
}

func (c *charts) stacked(points []analytics.StackedPoint, opts svg.Opts) template.HTML {
	a, b, labels := stackedSeries(points)
	return c.draw(len(labels), func() (template.HTML, error) {
		return c.r.StackedBars(svg.DefaultWidth, svg.DefaultHeight, a, b, labels, opts)
	})
}

func urlEscape(s string) string { return url.QueryEscape(s) }
