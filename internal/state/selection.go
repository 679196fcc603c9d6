package state

// Selection is the active-row state machine over the visible list. The index
// always lies in [0, max(0, length-1)].
type Selection struct {
	index  int
	length int
}

// Reset points the selection at the first row of a freshly computed list.
func (s *Selection) Reset(length int) {
	if length < 0 {
		length = 0
	}
	s.length = length
	s.index = 0
}

// Advance moves to the next row, wrapping to the first.
func (s *Selection) Advance() {
	if s.length == 0 {
		s.index = 0
		return
	}
	s.index = (s.index + 1) % s.length
}

// Retreat moves to the previous row, wrapping to the last.
func (s *Selection) Retreat() {
	if s.length == 0 {
		s.index = 0
		return
	}
	s.index = (s.index - 1 + s.length) % s.length
}

// Select jumps to idx when it is in bounds.
func (s *Selection) Select(idx int) bool {
	if idx < 0 || idx >= s.length {
		return false
	}
	s.index = idx
	return true
}

// Index returns the active row.
func (s Selection) Index() int {
	return s.index
}

// Len returns the length of the list the selection was last reset for.
func (s Selection) Len() int {
	return s.length
}
