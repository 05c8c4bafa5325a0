package seating

// Selection is an ordered, duplicate-free set of selected seat identifiers.
// Toggling an identifier twice restores the previous selection.
type Selection struct {
	ids []string
}

// Toggle adds the identifier if absent and removes it if present
func (s *Selection) Toggle(id string) {
	for i, existing := range s.ids {
		if existing == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			return
		}
	}
	s.ids = append(s.ids, id)
}

// Contains reports whether the identifier is currently selected
func (s *Selection) Contains(id string) bool {
	for _, existing := range s.ids {
		if existing == id {
			return true
		}
	}
	return false
}

// IDs returns the selected identifiers in insertion order
func (s *Selection) IDs() []string {
	ids := make([]string, len(s.ids))
	copy(ids, s.ids)
	return ids
}

// Count returns the number of selected seats
func (s *Selection) Count() int {
	return len(s.ids)
}
