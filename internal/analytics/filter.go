package analytics

import (
	"net/url"
	"slices"
	"sort"
	"strings"
)

// Selection is an ordered set of selected values. The zero value selects
// everything.
type Selection []string

// Contains reports whether v is selected.
func (s Selection) Contains(v string) bool {
	return slices.Contains(s, v)
}

// Empty reports whether nothing is selected.
func (s Selection) Empty() bool {
	return len(s) == 0
}

// Toggle returns a new selection with v added when absent or removed when
// present. The receiver is left untouched.
func (s Selection) Toggle(v string) Selection {
	out := make(Selection, 0, len(s)+1)
	found := false
	for _, cur := range s {
		if cur == v {
			found = true
			continue
		}
		out = append(out, cur)
	}
	if !found {
		out = append(out, v)
	}
	return out
}

// Dimension is one filterable attribute of T.
type Dimension[T any] struct {
	Name  string
	Label string
	Value func(T) string
}

// Filter is an immutable conjunction of per-dimension selections.
type Filter[T any] struct {
	dims     []Dimension[T]
	selected map[string]Selection
}

// NewFilter builds a filter with nothing selected.
func NewFilter[T any](dims ...Dimension[T]) Filter[T] {
	return Filter[T]{dims: dims, selected: map[string]Selection{}}
}

// Dimensions returns the filter's dimensions in declaration order.
func (f Filter[T]) Dimensions() []Dimension[T] {
	return f.dims
}

// Selected returns the selection for the named dimension.
func (f Filter[T]) Selected(name string) Selection {
	return f.selected[name]
}

// Active reports whether any dimension narrows the result.
func (f Filter[T]) Active() bool {
	for _, sel := range f.selected {
		if !sel.Empty() {
			return true
		}
	}
	return false
}

func (f Filter[T]) has(name string) bool {
	for _, d := range f.dims {
		if d.Name == name {
			return true
		}
	}
	return false
}

func (f Filter[T]) with(name string, sel Selection) Filter[T] {
	next := make(map[string]Selection, len(f.selected)+1)
	for k, v := range f.selected {
		next[k] = v
	}
	if sel.Empty() {
		delete(next, name)
	} else {
		next[name] = sel
	}
	return Filter[T]{dims: f.dims, selected: next}
}

// With returns a copy selecting exactly values on the named dimension.
// Unknown dimensions are ignored.
func (f Filter[T]) With(name string, values ...string) Filter[T] {
	if !f.has(name) {
		return f
	}
	var sel Selection
	for _, v := range values {
		if v == "" || sel.Contains(v) {
			continue
		}
		sel = append(sel, v)
	}
	return f.with(name, sel)
}

// Toggle returns a copy with v toggled on the named dimension only.
func (f Filter[T]) Toggle(name, v string) Filter[T] {
	if !f.has(name) {
		return f
	}
	return f.with(name, f.selected[name].Toggle(v))
}

// Clear returns a copy with the named dimension unrestricted.
func (f Filter[T]) Clear(name string) Filter[T] {
	if !f.has(name) {
		return f
	}
	return f.with(name, nil)
}

// Match reports whether rec passes every dimension. An empty selection on a
// dimension always passes.
func (f Filter[T]) Match(rec T) bool {
	for _, d := range f.dims {
		sel := f.selected[d.Name]
		if sel.Empty() {
			continue
		}
		if !sel.Contains(d.Value(rec)) {
			return false
		}
	}
	return true
}

// Apply returns the matching records as a new slice.
func (f Filter[T]) Apply(records []T) []T {
	out := make([]T, 0, len(records))
	for _, rec := range records {
		if f.Match(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// Key is a canonical string for the filter state, independent of the order
// in which values were selected. Values are query-escaped so separators
// inside a value never collide with the ones between values.
func (f Filter[T]) Key() string {
	parts := make([]string, 0, len(f.dims))
	for _, d := range f.dims {
		sel := f.selected[d.Name]
		if sel.Empty() {
			continue
		}
		values := make([]string, 0, len(sel))
		for _, v := range sel {
			values = append(values, url.QueryEscape(v))
		}
		sort.Strings(values)
		parts = append(parts, d.Name+"="+strings.Join(values, ","))
	}
	if len(parts) == 0 {
		return "all"
	}
	return strings.Join(parts, ";")
}

// FromQuery returns a copy whose selections are read from repeated query
// parameters named after each dimension.
func (f Filter[T]) FromQuery(q url.Values) Filter[T] {
	out := NewFilter(f.dims...)
	for _, d := range f.dims {
		out = out.With(d.Name, q[d.Name]...)
	}
	return out
}

// Query encodes the selections as repeated query parameters.
func (f Filter[T]) Query() url.Values {
	q := url.Values{}
	for _, d := range f.dims {
		for _, v := range f.selected[d.Name] {
			q.Add(d.Name, v)
		}
	}
	return q
}
