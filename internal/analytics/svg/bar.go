package svg

import (
	"fmt"
	"html/template"
	"strings"
)

// Bars renders a single series as vertical bars. Negative values are drawn
// below the zero line in the negative colour.
func Bars(width, height int, values []float64, labels []string, opts Opts) (template.HTML, error) {
	if err := checkLabels(labels, values); err != nil {
		return "", err
	}
	minVal, maxVal := bounds(values)
	f, err := newFrame(width, height, opts, minVal, maxVal)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	f.open(&b, opts, "bar", "Bar chart", "Values by category")
	f.gridAndAxes(&b, opts)

	slot := f.chartW / float64(len(values))
	barW := slot * 0.6
	for i, v := range values {
		x := f.left + float64(i)*slot + (slot-barW)/2
		top, h := f.bar(v)
		fill := opts.color(0)
		if v < 0 {
			fill = negativeFill
		}
		fmt.Fprintf(&b, `<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" rx="2"><title>%s: %s</title></rect>`,
			x, top, barW, h, fill, template.HTMLEscapeString(labels[i]), template.HTMLEscapeString(opts.format(v)))
		f.xLabel(&b, x+barW/2, labels[i])
	}
	b.WriteString("</svg>")
	return template.HTML(b.String()), nil
}

// GroupedBars renders two series side by side per category.
func GroupedBars(width, height int, seriesA, seriesB []float64, labels []string, opts Opts) (template.HTML, error) {
	if err := checkLabels(labels, seriesA, seriesB); err != nil {
		return "", err
	}
	minVal, maxVal := bounds(seriesA, seriesB)
	f, err := newFrame(width, height, opts, minVal, maxVal)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	f.open(&b, opts, "grouped", "Grouped bar chart", "Two series compared by category")
	f.gridAndAxes(&b, opts)

	slot := f.chartW / float64(len(labels))
	barW := slot * 0.35
	gap := slot * 0.05
	for i := range labels {
		base := f.left + float64(i)*slot + (slot-2*barW-gap)/2
		for s, v := range []float64{seriesA[i], seriesB[i]} {
			x := base + float64(s)*(barW+gap)
			top, h := f.bar(v)
			fmt.Fprintf(&b, `<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" rx="2"><title>%s %s: %s</title></rect>`,
				x, top, barW, h, opts.color(s), template.HTMLEscapeString(labels[i]),
				template.HTMLEscapeString(opts.seriesLabel(s, fmt.Sprintf("Series %c", 'A'+s))),
				template.HTMLEscapeString(opts.format(v)))
		}
		f.xLabel(&b, base+barW+gap/2, labels[i])
	}
	f.legend(&b, opts, opts.seriesLabel(0, "Series A"), opts.seriesLabel(1, "Series B"))
	b.WriteString("</svg>")
	return template.HTML(b.String()), nil
}

// StackedBars renders two non-negative series stacked per category.
func StackedBars(width, height int, seriesA, seriesB []float64, labels []string, opts Opts) (template.HTML, error) {
	if err := checkLabels(labels, seriesA, seriesB); err != nil {
		return "", err
	}
	totals := make([]float64, len(labels))
	for i := range labels {
		if seriesA[i] < 0 || seriesB[i] < 0 {
			return "", fmt.Errorf("svg: stacked values must be non-negative")
		}
		totals[i] = seriesA[i] + seriesB[i]
	}
	_, maxVal := bounds(totals)
	f, err := newFrame(width, height, opts, 0, maxVal)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	f.open(&b, opts, "stacked", "Stacked bar chart", "Stacked totals by category")
	f.gridAndAxes(&b, opts)

	slot := f.chartW / float64(len(labels))
	barW := slot * 0.6
	for i := range labels {
		x := f.left + float64(i)*slot + (slot-barW)/2
		base := f.bottom()
		for s, v := range []float64{seriesA[i], seriesB[i]} {
			h := v * f.scale
			fmt.Fprintf(&b, `<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"><title>%s %s: %s</title></rect>`,
				x, base-h, barW, h, opts.color(s), template.HTMLEscapeString(labels[i]),
				template.HTMLEscapeString(opts.seriesLabel(s, fmt.Sprintf("Series %c", 'A'+s))),
				template.HTMLEscapeString(opts.format(v)))
			base -= h
		}
		f.xLabel(&b, x+barW/2, labels[i])
	}
	f.legend(&b, opts, opts.seriesLabel(0, "Series A"), opts.seriesLabel(1, "Series B"))
	b.WriteString("</svg>")
	return template.HTML(b.String()), nil
}

// HBars renders a single series as horizontal bars, one row per label.
// The height grows with the number of rows so long category lists stay
// readable.
func HBars(width int, values []float64, labels []string, opts Opts) (template.HTML, error) {
	if err := checkLabels(labels, values); err != nil {
		return "", err
	}
	if width <= 0 {
		width = DefaultWidth
	}
	pad := opts.Padding
	if pad <= 0 {
		pad = DefaultPadding
	}
	labelW := 150.0
	chartW := float64(width) - labelW - 2*pad - 60
	if chartW <= 0 {
		return "", fmt.Errorf("svg: viewport too small")
	}
	height := int(2*pad + RowHeight*float64(len(values)))
	_, maxVal := bounds(values)
	if maxVal <= 0 {
		maxVal = 1
	}
	axis := fallback(opts.AxisColor, defaultAxis)

	var b strings.Builder
	writeOpen(&b, width, height, opts, "hbar", "Horizontal bar chart", "Values ranked by category")
	left := pad + labelW
	for i, v := range values {
		y := pad + float64(i)*RowHeight
		w := 0.0
		if v > 0 {
			w = v / maxVal * chartW
		}
		fmt.Fprintf(&b, `<text x="%.2f" y="%.2f" fill="%s" font-size="11" text-anchor="end"><title>%s</title>%s</text>`,
			left-8, y+RowHeight*0.65, axis, template.HTMLEscapeString(labels[i]), template.HTMLEscapeString(shorten(labels[i], 24)))
		fmt.Fprintf(&b, `<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" rx="2"></rect>`,
			left, y+RowHeight*0.15, w, RowHeight*0.7, opts.color(0))
		fmt.Fprintf(&b, `<text x="%.2f" y="%.2f" fill="%s" font-size="10">%s</text>`,
			left+w+6, y+RowHeight*0.65, axis, template.HTMLEscapeString(opts.format(v)))
	}
	fmt.Fprintf(&b, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="1"></line>`,
		left, pad, left, pad+RowHeight*float64(len(values)), axis)
	b.WriteString("</svg>")
	return template.HTML(b.String()), nil
}
