package svg

import (
	"fmt"
	"html/template"
	"math"
	"strings"
)

// Donut renders part-of-whole slices around a ring. Zero slices are
// skipped; an all-zero input renders an empty ring.
func Donut(size int, values []float64, labels []string, opts Opts) (template.HTML, error) {
	if err := checkLabels(labels, values); err != nil {
		return "", err
	}
	if size <= 0 {
		size = DefaultHeight
	}
	var total float64
	for _, v := range values {
		if v < 0 {
			return "", fmt.Errorf("svg: donut values must be non-negative")
		}
		total += v
	}
	legendH := 16 * len(labels)
	width, height := size, size+legendH
	cx, cy := float64(size)/2, float64(size)/2
	outer := float64(size)/2 - 8
	inner := outer * 0.6
	axis := fallback(opts.AxisColor, defaultAxis)

	var b strings.Builder
	writeOpen(&b, width, height, opts, "donut", "Donut chart", "Share of total by category")
	fmt.Fprintf(&b, `<circle cx="%.2f" cy="%.2f" r="%.2f" fill="none" stroke="%s" stroke-width="%.2f" opacity="0.3"></circle>`,
		cx, cy, (outer+inner)/2, fallback(opts.GridColor, defaultGrid), outer-inner)

	angle := -math.Pi / 2
	for i, v := range values {
		if v <= 0 || total <= 0 {
			continue
		}
		share := v / total
		sweep := share * 2 * math.Pi
		if share >= 1 {
			fmt.Fprintf(&b, `<circle cx="%.2f" cy="%.2f" r="%.2f" fill="none" stroke="%s" stroke-width="%.2f"><title>%s: %s</title></circle>`,
				cx, cy, (outer+inner)/2, opts.color(i), outer-inner,
				template.HTMLEscapeString(labels[i]), template.HTMLEscapeString(opts.format(v)))
			angle += sweep
			continue
		}
		end := angle + sweep
		large := 0
		if sweep > math.Pi {
			large = 1
		}
		fmt.Fprintf(&b, `<path d="M%.2f %.2f A%.2f %.2f 0 %d 1 %.2f %.2f L%.2f %.2f A%.2f %.2f 0 %d 0 %.2f %.2f Z" fill="%s"><title>%s: %s (%.1f%%)</title></path>`,
			cx+outer*math.Cos(angle), cy+outer*math.Sin(angle),
			outer, outer, large, cx+outer*math.Cos(end), cy+outer*math.Sin(end),
			cx+inner*math.Cos(end), cy+inner*math.Sin(end),
			inner, inner, large, cx+inner*math.Cos(angle), cy+inner*math.Sin(angle),
			opts.color(i), template.HTMLEscapeString(labels[i]), template.HTMLEscapeString(opts.format(v)), share*100)
		angle = end
	}

	for i, label := range labels {
		y := float64(size) + float64(i)*16 + 4
		pct := 0.0
		if total > 0 {
			pct = values[i] / total * 100
		}
		fmt.Fprintf(&b, `<rect x="8" y="%.2f" width="10" height="10" fill="%s"></rect>`, y, opts.color(i))
		fmt.Fprintf(&b, `<text x="24" y="%.2f" fill="%s" font-size="11">%s (%.1f%%)</text>`,
			y+9, axis, template.HTMLEscapeString(label), pct)
	}
	b.WriteString("</svg>")
	return template.HTML(b.String()), nil
}
