package analytics

import (
	"sort"
	"strconv"
	"strings"
)

// Bucket is one group of a distribution.
type Bucket struct {
	Key   string  `json:"key"`
	Count int     `json:"count"`
	Value float64 `json:"value"`
}

// Order selects how buckets are sorted.
type Order int

const (
	// OrderFirstSeen keeps the order in which keys first occur.
	OrderFirstSeen Order = iota
	// OrderCountDesc sorts by count, ties keep first-seen order.
	OrderCountDesc
	// OrderNumericKeyDesc parses keys as numbers and sorts them descending.
	// Keys that are not numbers follow in first-seen order.
	OrderNumericKeyDesc
	// OrderValueDesc sorts by the grouped value, ties keep first-seen order.
	OrderValueDesc
)

// Reduce selects what Bucket.Value holds.
type Reduce int

const (
	ReduceNone Reduce = iota
	ReduceSum
	ReduceMean
)

// KeyFunc extracts the grouping key. ok=false skips the record.
type KeyFunc[T any] func(T) (string, bool)

// DistributionSpec describes one distribution.
type DistributionSpec[T any] struct {
	Key    KeyFunc[T]
	Value  func(T) float64
	Reduce Reduce
	Order  Order
	// TopK keeps the first K buckets after sorting; 0 keeps all.
	TopK int
}

// Distribution groups records by key.
func Distribution[T any](records []T, spec DistributionSpec[T]) []Bucket {
	index := make(map[string]int)
	buckets := make([]Bucket, 0)
	for _, rec := range records {
		key, ok := spec.Key(rec)
		if !ok {
			continue
		}
		i, seen := index[key]
		if !seen {
			i = len(buckets)
			index[key] = i
			buckets = append(buckets, Bucket{Key: key})
		}
		buckets[i].Count++
		if spec.Value != nil && spec.Reduce != ReduceNone {
			buckets[i].Value += spec.Value(rec)
		}
	}
	if spec.Reduce == ReduceMean {
		for i := range buckets {
			buckets[i].Value /= float64(buckets[i].Count)
		}
	}

	switch spec.Order {
	case OrderCountDesc:
		sort.SliceStable(buckets, func(i, j int) bool {
			return buckets[i].Count > buckets[j].Count
		})
	case OrderValueDesc:
		sort.SliceStable(buckets, func(i, j int) bool {
			return buckets[i].Value > buckets[j].Value
		})
	case OrderNumericKeyDesc:
		sort.SliceStable(buckets, func(i, j int) bool {
			a, aok := parseNumericKey(buckets[i].Key)
			b, bok := parseNumericKey(buckets[j].Key)
			switch {
			case aok && bok:
				return a > b
			case aok:
				return true
			default:
				return false
			}
		})
	}

	if spec.TopK > 0 && len(buckets) > spec.TopK {
		buckets = buckets[:spec.TopK]
	}
	return buckets
}

func parseNumericKey(key string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(key), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Field wraps a string extractor as a KeyFunc that never skips.
func Field[T any](get func(T) string) KeyFunc[T] {
	return func(rec T) (string, bool) {
		return get(rec), true
	}
}

// Truncate cuts keys to at most n runes before grouping.
func Truncate[T any](n int, key KeyFunc[T]) KeyFunc[T] {
	return func(rec T) (string, bool) {
		v, ok := key(rec)
		if !ok {
			return "", false
		}
		r := []rune(v)
		if len(r) > n {
			v = string(r[:n])
		}
		return v, true
	}
}

// Unique lists distinct values in first-seen order.
func Unique[T any](records []T, get func(T) string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, rec := range records {
		v := get(rec)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// UniqueSorted lists distinct non-empty values alphabetically.
func UniqueSorted[T any](records []T, get func(T) string) []string {
	values := Unique(records, get)
	out := values[:0]
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}

