// Package listing holds the list screens' state: text filter, column sort,
// row selection and the confirm-then-delete flow for bulk actions.
package listing

import (
	"strings"
	"time"
)

// Fields tells the listing how to read the columns it filters and sorts on.
type Fields[T any] struct {
	ID      func(T) string
	Name    func(T) string
	Email   func(T) string
	Created func(T) time.Time
}

// Filter keeps the items whose name or email contains query, ignoring case.
// A blank query keeps everything. Order is preserved.
func Filter[T any](items []T, query string, f Fields[T]) []T {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return append([]T(nil), items...)
	}

	out := make([]T, 0, len(items))
	for _, it := range items {
		if contains(f.Name, it, q) || contains(f.Email, it, q) {
			out = append(out, it)
		}
	}
	return out
}

func contains[T any](get func(T) string, it T, q string) bool {
	if get == nil {
		return false
	}
	return strings.Contains(strings.ToLower(get(it)), q)
}
