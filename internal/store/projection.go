package store

import (
	"sort"
	"strconv"
	"strings"
)

// Projection describes the read-side view of a listing: a case-insensitive
// substring query over the screen's searchable fields plus a sort field and
// direction. Applying one never touches the table it was read from.
type Projection struct {
	Query     string
	SortField string
	Desc      bool
}

// Fields declares the projectable columns of one listing. Search names the
// fields the query matches against; Sort maps a field name to its comparator
// accessors. A field registered in Numeric sorts numerically, anything else
// sorts by case-insensitive lexical order.
type Fields[T any] struct {
	Search  []string
	Text    map[string]func(T) string
	Numeric map[string]func(T) float64
}

func (f Fields[T]) text(name string, row T) (string, bool) {
	if get, ok := f.Text[name]; ok {
		return get(row), true
	}
	if get, ok := f.Numeric[name]; ok {
		return strconv.FormatFloat(get(row), 'f', -1, 64), true
	}
	return "", false
}

// Apply filters and stably sorts rows according to the projection. Ties keep
// their insertion order; an unknown sort field leaves the order untouched.
func Apply[T any](rows []T, p Projection, f Fields[T]) []T {
	out := make([]T, 0, len(rows))

	if query := strings.ToLower(strings.TrimSpace(p.Query)); query != "" {
		for _, row := range rows {
			for _, name := range f.Search {
				if v, ok := f.text(name, row); ok && strings.Contains(strings.ToLower(v), query) {
					out = append(out, row)
					break
				}
			}
		}
	} else {
		out = append(out, rows...)
	}

	if num, ok := f.Numeric[p.SortField]; ok {
		sort.SliceStable(out, func(i, j int) bool {
			if p.Desc {
				return num(out[j]) < num(out[i])
			}
			return num(out[i]) < num(out[j])
		})
	} else if text, ok := f.Text[p.SortField]; ok {
		sort.SliceStable(out, func(i, j int) bool {
			a, b := strings.ToLower(text(out[i])), strings.ToLower(text(out[j]))
			if p.Desc {
				return b < a
			}
			return a < b
		})
	}

	return out
}
