package gallery

// MaxSelected is the size of the comparison window.
const MaxSelected = 2

// Selection is the ordered window of selected entry ids, oldest first.
// Ids are not checked against the catalog.
type Selection struct {
	ids []string
}

// Toggle removes id when selected, appends it when there is room, and
// otherwise evicts the oldest selection before appending.
func (s *Selection) Toggle(id string) {
	if s.Drop(id) {
		return
	}
	if len(s.ids) >= MaxSelected {
		s.ids = append(s.ids[:0:0], s.ids[len(s.ids)-MaxSelected+1:]...)
	}
	s.ids = append(s.ids, id)
}

// Drop removes id if present and reports whether it was.
func (s *Selection) Drop(id string) bool {
	for i, v := range s.ids {
		if v == id {
			s.ids = append(s.ids[:i:i], s.ids[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Selection) Clear() {
	s.ids = nil
}

func (s *Selection) Contains(id string) bool {
	for _, v := range s.ids {
		if v == id {
			return true
		}
	}
	return false
}

// IDs returns a copy of the selection in selection order.
func (s *Selection) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

func (s *Selection) Len() int {
	return len(s.ids)
}

func (s *Selection) ReadyToCompare() bool {
	return len(s.ids) == MaxSelected
}
