package svg

// Opts customises every chart renderer. Zero values fall back to the
// dashboard palette.
type Opts struct {
	Title        string
	Description  string
	Colors       []string
	SeriesLabels []string
	AxisColor    string
	GridColor    string
	Padding      float64
	TickCount    int
	ShowDots     bool
	// Format renders tick and value labels; defaults to a compact number.
	Format func(float64) string
}

// Defaults for the dashboard charts.
const (
	DefaultWidth   = 720
	DefaultHeight  = 280
	DefaultPadding = 32.0
	DefaultTicks   = 5
	RowHeight      = 24.0
	MaxLabelRunes  = 14
)

// Palette is the dashboard series colour order.
var Palette = []string{"#4dd0e1", "#c084fc", "#6bcf7f", "#ffd93d", "#ff6b6b", "#60a5fa", "#f97316", "#a3e635"}

const (
	defaultAxis  = "#b0bec5"
	defaultGrid  = "#4a5f73"
	negativeFill = "#ff6b6b"
)

func (o Opts) color(i int) string {
	if i < len(o.Colors) && o.Colors[i] != "" {
		return o.Colors[i]
	}
	return Palette[i%len(Palette)]
}

func (o Opts) seriesLabel(i int, def string) string {
	if i < len(o.SeriesLabels) {
		return fallback(o.SeriesLabels[i], def)
	}
	return def
}

func (o Opts) format(v float64) string {
	if o.Format != nil {
		return o.Format(v)
	}
	return formatTick(v)
}
