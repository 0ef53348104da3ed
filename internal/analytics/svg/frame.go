package svg

import (
	"fmt"
	"html/template"
	"math"
	"strings"
)

// frame is the plotting area shared by the cartesian charts.
type frame struct {
	width, height int
	pad           float64
	left          float64
	chartW        float64
	chartH        float64
	min, max      float64
	scale         float64
	ticks         int
	axis, grid    string
}

func newFrame(width, height int, opts Opts, minVal, maxVal float64) (frame, error) {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	pad := opts.Padding
	if pad <= 0 {
		pad = DefaultPadding
	}
	ticks := opts.TickCount
	if ticks <= 0 {
		ticks = DefaultTicks
	}
	left := pad + 16
	f := frame{
		width:  width,
		height: height,
		pad:    pad,
		left:   left,
		chartW: float64(width) - left - pad,
		chartH: float64(height) - 2*pad,
		ticks:  ticks,
		axis:   fallback(opts.AxisColor, defaultAxis),
		grid:   fallback(opts.GridColor, defaultGrid),
	}
	if f.chartW <= 0 || f.chartH <= 0 {
		return frame{}, fmt.Errorf("svg: viewport too small")
	}
	if minVal > 0 {
		minVal = 0
	}
	if maxVal < 0 {
		maxVal = 0
	}
	if almostEqual(maxVal, minVal) {
		maxVal = minVal + 1
	}
	f.min, f.max = minVal, maxVal
	f.scale = f.chartH / (maxVal - minVal)
	return f, nil
}

func (f frame) bottom() float64 { return f.pad + f.chartH }

func (f frame) y(v float64) float64 {
	return f.bottom() - (v-f.min)*f.scale
}

// bar returns the top and height of a bar from zero to v, clipped to the
// plotting area.
func (f frame) bar(v float64) (float64, float64) {
	zero := f.y(0)
	top := f.y(v)
	if v < 0 {
		top, zero = zero, top
	}
	if top < f.pad {
		top = f.pad
	}
	if zero > f.bottom() {
		zero = f.bottom()
	}
	h := zero - top
	if h < 0 {
		h = 0
	}
	return top, h
}

func (f frame) open(b *strings.Builder, opts Opts, kind, defTitle, defDesc string) {
	writeOpen(b, f.width, f.height, opts, kind, defTitle, defDesc)
}

func writeOpen(b *strings.Builder, width, height int, opts Opts, kind, defTitle, defDesc string) {
	titleID := makeID(opts.Title, kind+"-title")
	descID := makeID(opts.Title, kind+"-desc")
	fmt.Fprintf(b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" role="img" aria-labelledby="%s %s" class="chart chart-%s">`, width, height, titleID, descID, kind)
	fmt.Fprintf(b, `<title id="%s">%s</title>`, titleID, template.HTMLEscapeString(fallback(opts.Title, defTitle)))
	fmt.Fprintf(b, `<desc id="%s">%s</desc>`, descID, template.HTMLEscapeString(fallback(opts.Description, defDesc)))
}

func (f frame) gridAndAxes(b *strings.Builder, opts Opts) {
	for i := 0; i <= f.ticks; i++ {
		ratio := float64(i) / float64(f.ticks)
		value := f.min + (f.max-f.min)*ratio
		y := f.bottom() - ratio*f.chartH
		fmt.Fprintf(b, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="0.5" stroke-dasharray="2,4" aria-hidden="true"></line>`, f.left, y, f.left+f.chartW, y, f.grid)
		fmt.Fprintf(b, `<text x="%.2f" y="%.2f" fill="%s" font-size="10" text-anchor="end">%s</text>`, f.left-6, y+4, f.axis, template.HTMLEscapeString(opts.format(value)))
	}
	fmt.Fprintf(b, `<g stroke="%s" aria-label="Axes">`, f.axis)
	fmt.Fprintf(b, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke-width="1"></line>`, f.left, f.pad, f.left, f.bottom())
	zero := f.y(0)
	fmt.Fprintf(b, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke-width="1"></line>`, f.left, zero, f.left+f.chartW, zero)
	b.WriteString("</g>")
}

func (f frame) xLabel(b *strings.Builder, x float64, label string) {
	fmt.Fprintf(b, `<text x="%.2f" y="%.2f" fill="%s" font-size="10" text-anchor="middle"><title>%s</title>%s</text>`,
		x, f.bottom()+14, f.axis, template.HTMLEscapeString(label), template.HTMLEscapeString(shorten(label, MaxLabelRunes)))
}

func (f frame) legend(b *strings.Builder, opts Opts, labels ...string) {
	x := f.left
	y := math.Max(f.pad-12, 12)
	for i, label := range labels {
		fmt.Fprintf(b, `<rect x="%.2f" y="%.2f" width="10" height="10" fill="%s"></rect>`, x, y-8, opts.color(i))
		fmt.Fprintf(b, `<text x="%.2f" y="%.2f" fill="%s" font-size="10" text-anchor="start">%s</text>`, x+14, y, f.axis, template.HTMLEscapeString(label))
		x += 14 + float64(len([]rune(label)))*6 + 16
	}
}

func fallback(value, defaultValue string) string {
	if strings.TrimSpace(value) == "" {
		return defaultValue
	}
	return value
}

func bounds(series ...[]float64) (float64, float64) {
	first := true
	var minVal, maxVal float64
	for _, s := range series {
		for _, v := range s {
			if first {
				minVal, maxVal = v, v
				first = false
				continue
			}
			minVal = math.Min(minVal, v)
			maxVal = math.Max(maxVal, v)
		}
	}
	return minVal, maxVal
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func makeID(base, suffix string) string {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			return r
		}
		return '-'
	}, strings.ToLower(strings.TrimSpace(base)))
	cleaned = strings.Trim(cleaned, "-")
	if cleaned == "" {
		cleaned = "chart"
	}
	return cleaned + "-" + suffix
}

func shorten(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func formatTick(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1_000_000_000:
		return fmt.Sprintf("%.1fB", v/1_000_000_000)
	case abs >= 1_000_000:
		return fmt.Sprintf("%.1fM", v/1_000_000)
	case abs >= 1_000:
		return fmt.Sprintf("%.1fk", v/1_000)
	default:
		if almostEqual(v, math.Round(v)) {
			return fmt.Sprintf("%.0f", v)
		}
		return fmt.Sprintf("%.1f", v)
	}
}

func checkLabels(labels []string, series ...[]float64) error {
	if len(labels) == 0 {
		return fmt.Errorf("svg: labels required")
	}
	for i, s := range series {
		if len(s) != len(labels) {
			return fmt.Errorf("svg: series %d length must match labels", i)
		}
	}
	return nil
}
