package listing

import (
	"fmt"
	"slices"
	"strings"
)

type SortField string

const (
	SortByName    SortField = "name"
	SortByEmail   SortField = "email"
	SortByCreated SortField = "created"
)

type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) Toggle() Direction {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

func ParseSortField(s string) (SortField, error) {
	switch SortField(strings.ToLower(strings.TrimSpace(s))) {
	case "", SortByName:
		return SortByName, nil
	case SortByEmail:
		return SortByEmail, nil
	case SortByCreated, "date":
		return SortByCreated, nil
	default:
		return "", fmt.Errorf("unknown sort field %q (want name, email or created)", s)
	}
}

// Sort returns a copy of items ordered by field. Strings compare without
// case; equal keys keep their input order in both directions.
func Sort[T any](items []T, field SortField, dir Direction, f Fields[T]) []T {
	out := append([]T(nil), items...)

	cmp := comparer(field, f)
	if cmp == nil {
		return out
	}
	slices.SortStableFunc(out, func(a, b T) int {
		if dir == Descending {
			return cmp(b, a)
		}
		return cmp(a, b)
	})
	return out
}

func comparer[T any](field SortField, f Fields[T]) func(a, b T) int {
	switch field {
	case SortByName:
		return stringCompare(f.Name)
	case SortByEmail:
		return stringCompare(f.Email)
	case SortByCreated:
		if f.Created == nil {
			return nil
		}
		return func(a, b T) int {
			return f.Created(a).Compare(f.Created(b))
		}
	default:
		return nil
	}
}

func stringCompare[T any](get func(T) string) func(a, b T) int {
	if get == nil {
		return nil
	}
	return func(a, b T) int {
		return strings.Compare(strings.ToLower(get(a)), strings.ToLower(get(b)))
	}
}
