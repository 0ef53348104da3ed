package svg

import "html/template"

// Renderer exposes the package renderers as methods so callers can depend
// on an interface.
type Renderer struct{}

func (Renderer) Bars(width, height int, values []float64, labels []string, opts Opts) (template.HTML, error) {
	return Bars(width, height, values, labels, opts)
}

func (Renderer) GroupedBars(width, height int, a, b []float64, labels []string, opts Opts) (template.HTML, error) {
	return GroupedBars(width, height, a, b, labels, opts)
}

func (Renderer) StackedBars(width, height int, a, b []float64, labels []string, opts Opts) (template.HTML, error) {
	return StackedBars(width, height, a, b, labels, opts)
}

func (Renderer) HBars(width int, values []float64, labels []string, opts Opts) (template.HTML, error) {
	return HBars(width, values, labels, opts)
}

func (Renderer) Line(width, height int, series [][]float64, labels []string, opts Opts) (template.HTML, error) {
	return Line(width, height, series, labels, opts)
}

func (Renderer) Donut(size int, values []float64, labels []string, opts Opts) (template.HTML, error) {
	return Donut(size, values, labels, opts)
}
