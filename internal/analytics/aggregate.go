// Package analytics holds the pure aggregation functions behind the
// dashboards: KPI summaries, distributions, filters and formatters.
package analytics

// MetricKind declares how a KPI field reduces a record collection.
type MetricKind int

const (
	// KindSum adds the field across records (funding, pilots, hours).
	KindSum MetricKind = iota
	// KindMean averages the field across records (rates, scores, ratios).
	KindMean
)

func (k MetricKind) String() string {
	switch k {
	case KindSum:
		return "sum"
	case KindMean:
		return "mean"
	default:
		return "unknown"
	}
}

// Metric binds one field of a summary struct S to an extractor over T.
// Exactly one of Value or Optional is set; Optional returns ok=false for
// null fields, which are then left out of both numerator and denominator.
type Metric[T, S any] struct {
	Key      string
	Label    string
	Kind     MetricKind
	Value    func(T) float64
	Optional func(T) (float64, bool)
	Set      func(*S, float64)
}

func (m Metric[T, S]) reduce(records []T) float64 {
	var total float64
	var n int
	for _, rec := range records {
		if m.Optional != nil {
			v, ok := m.Optional(rec)
			if !ok {
				continue
			}
			total += v
			n++
			continue
		}
		total += m.Value(rec)
		n++
	}
	if m.Kind == KindSum {
		return total
	}
	if n == 0 {
		return 0
	}
	return total / float64(n)
}

// Summarize reduces records into S by walking the metric table.
func Summarize[T, S any](records []T, metrics []Metric[T, S]) S {
	var out S
	if len(records) == 0 {
		// Every field stays at its zero value; callers compare empty filter
		// results against populated baselines.
		return out
	}
	for _, m := range metrics {
		m.Set(&out, m.reduce(records))
	}
	return out
}

// Sum adds value(rec) across records.
func Sum[T any](records []T, value func(T) float64) float64 {
	var total float64
	for _, rec := range records {
		total += value(rec)
	}
	return total
}

// Mean averages value(rec) across records, 0 for an empty input.
func Mean[T any](records []T, value func(T) float64) float64 {
	if len(records) == 0 {
		return 0
	}
	return Sum(records, value) / float64(len(records))
}

// MeanOptional averages only the present values. ok is false when no record
// carries a value.
func MeanOptional[T any](records []T, value func(T) (float64, bool)) (float64, bool) {
	var total float64
	var n int
	for _, rec := range records {
		if v, ok := value(rec); ok {
			total += v
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return total / float64(n), true
}

// CountIf counts records matching pred.
func CountIf[T any](records []T, pred func(T) bool) int {
	n := 0
	for _, rec := range records {
		if pred(rec) {
			n++
		}
	}
	return n
}

// Rate returns part/total*100, 0 when total is 0.
func Rate(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
