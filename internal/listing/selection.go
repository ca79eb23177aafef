package listing

// Selection is the set of checked row ids, kept in the order they were
// checked.
type Selection struct {
	order []string
	set   map[string]struct{}
}

func NewSelection() *Selection {
	return &Selection{set: make(map[string]struct{})}
}

func (s *Selection) Has(id string) bool {
	_, ok := s.set[id]
	return ok
}

func (s *Selection) Len() int {
	return len(s.order)
}

func (s *Selection) IDs() []string {
	return append([]string(nil), s.order...)
}

func (s *Selection) Toggle(id string) {
	if s.Has(id) {
		s.Remove(id)
		return
	}
	s.add(id)
}

func (s *Selection) Clear() {
	s.order = nil
	s.set = make(map[string]struct{})
}

// SelectAll checks exactly the visible rows, or clears the selection when
// it already equals them.
func (s *Selection) SelectAll(visibleIDs []string) {
	if s.equals(visibleIDs) {
		s.Clear()
		return
	}
	s.Clear()
	for _, id := range visibleIDs {
		s.add(id)
	}
}

func (s *Selection) Remove(ids ...string) {
	for _, id := range ids {
		if _, ok := s.set[id]; !ok {
			continue
		}
		delete(s.set, id)
		for i, v := range s.order {
			if v == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
}

func (s *Selection) add(id string) {
	if s.Has(id) {
		return
	}
	s.set[id] = struct{}{}
	s.order = append(s.order, id)
}

func (s *Selection) equals(ids []string) bool {
	uniq := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		uniq[id] = struct{}{}
	}
	if len(uniq) != len(s.set) {
		return false
	}
	for id := range uniq {
		if !s.Has(id) {
			return false
		}
	}
	return true
}
