package listing

// View is one list screen: the loaded items plus the user's query and sort.
type View[T any] struct {
	items  []T
	fields Fields[T]

	Query     string
	Field     SortField
	Direction Direction
}

func NewView[T any](items []T, fields Fields[T]) *View[T] {
	return &View[T]{
		items:  items,
		fields: fields,
		Field:  SortByName,
	}
}

// Rows is the visible list: filtered, then sorted.
func (v *View[T]) Rows() []T {
	return Sort(Filter(v.items, v.Query, v.fields), v.Field, v.Direction, v.fields)
}

func (v *View[T]) VisibleIDs() []string {
	rows := v.Rows()
	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, v.fields.ID(r))
	}
	return ids
}

func (v *View[T]) SortBy(field SortField) {
	v.Field = field
}

func (v *View[T]) ToggleDirection() {
	v.Direction = v.Direction.Toggle()
}

func (v *View[T]) Len() int {
	return len(v.items)
}

// Lookup finds a loaded item by id.
func (v *View[T]) Lookup(id string) (T, bool) {
	for _, it := range v.items {
		if v.fields.ID(it) == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Remove drops the given ids from the loaded items.
func (v *View[T]) Remove(ids ...string) {
	if len(ids) == 0 {
		return
	}
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	kept := v.items[:0:0]
	for _, it := range v.items {
		if _, ok := drop[v.fields.ID(it)]; !ok {
			kept = append(kept, it)
		}
	}
	v.items = kept
}
