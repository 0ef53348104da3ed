package ui

import "net/url"

// ExpandParam is the query parameter holding the expanded row id.
const ExpandParam = "expand"

// ExpandState tracks at most one expanded table row. The rest of the query
// is kept so toggle links preserve the active filters.
type ExpandState struct {
	id    string
	query url.Values
}

// ParseExpand reads the expanded row from q.
func ParseExpand(q url.Values) ExpandState {
	rest := url.Values{}
	for k, v := range q {
		if k == ExpandParam {
			continue
		}
		rest[k] = append([]string(nil), v...)
	}
	return ExpandState{id: q.Get(ExpandParam), query: rest}
}

// ID returns the expanded row id, or "" when every row is collapsed.
func (e ExpandState) ID() string { return e.id }

// IsOpen reports whether id is the expanded row.
func (e ExpandState) IsOpen(id string) bool {
	return id != "" && e.id == id
}

// Toggle expands id, or collapses it when it is already open.
func (e ExpandState) Toggle(id string) ExpandState {
	if e.IsOpen(id) {
		return ExpandState{query: e.query}
	}
	return ExpandState{id: id, query: e.query}
}

// Link returns the path plus query that toggles id.
func (e ExpandState) Link(path, id string) string {
	next := e.Toggle(id)
	q := url.Values{}
	for k, v := range e.query {
		q[k] = v
	}
	if next.id != "" {
		q.Set(ExpandParam, next.id)
	}
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}
