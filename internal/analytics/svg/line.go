package svg

import (
	"fmt"
	"html/template"
	"strings"
)

// Line renders one or more series as polylines over shared labels.
func Line(width, height int, series [][]float64, labels []string, opts Opts) (template.HTML, error) {
	if len(series) == 0 {
		return "", fmt.Errorf("svg: at least one series required")
	}
	if err := checkLabels(labels, series...); err != nil {
		return "", err
	}
	minVal, maxVal := bounds(series...)
	f, err := newFrame(width, height, opts, minVal, maxVal)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	f.open(&b, opts, "line", "Line chart", "Trend over categories")
	f.gridAndAxes(&b, opts)

	step := 0.0
	if len(labels) > 1 {
		step = f.chartW / float64(len(labels)-1)
	}
	xAt := func(i int) float64 {
		if len(labels) == 1 {
			return f.left + f.chartW/2
		}
		return f.left + float64(i)*step
	}

	names := make([]string, len(series))
	for s, values := range series {
		names[s] = opts.seriesLabel(s, fmt.Sprintf("Series %d", s+1))
		var path strings.Builder
		for i, v := range values {
			cmd := "L"
			if i == 0 {
				cmd = "M"
			}
			fmt.Fprintf(&path, "%s%.2f %.2f ", cmd, xAt(i), f.y(v))
		}
		fmt.Fprintf(&b, `<path d="%s" fill="none" stroke="%s" stroke-width="2" stroke-linejoin="round" stroke-linecap="round"></path>`,
			strings.TrimSpace(path.String()), opts.color(s))
		if opts.ShowDots {
			for i, v := range values {
				fmt.Fprintf(&b, `<circle cx="%.2f" cy="%.2f" r="3" fill="%s"><title>%s: %s</title></circle>`,
					xAt(i), f.y(v), opts.color(s), template.HTMLEscapeString(labels[i]), template.HTMLEscapeString(opts.format(v)))
			}
		}
	}
	for i, label := range labels {
		f.xLabel(&b, xAt(i), label)
	}
	if len(series) > 1 || len(opts.SeriesLabels) > 0 {
		f.legend(&b, opts, names...)
	}
	b.WriteString("</svg>")
	return template.HTML(b.String()), nil
}
