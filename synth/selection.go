package synth

// SelectionState is the highlight mode of the single-partial view
type SelectionState int

const (
	SelectNone SelectionState = iota
	SelectActive
	SelectSticky
)

func (s SelectionState) String() string {
	switch s {
	case SelectActive:
		return "active"
	case SelectSticky:
		return "sticky"
	default:
		return "none"
	}
}

// Selection tracks which partial the single view shows. After a highlight
// ends the last shown partial stays on screen as a sticky selection.
type Selection struct {
	state      SelectionState
	index      int
	lastSticky int
}

// Enter highlights partial i
func (s *Selection) Enter(i int) {
	s.state = SelectActive
	s.index = i
	s.lastSticky = i
}

// Leave ends the highlight of partial i. Leaving anything but the active
// partial does nothing.
func (s *Selection) Leave(i int) {
	if s.state != SelectActive || s.index != i {
		return
	}
	s.state = SelectSticky
	s.index = s.lastSticky
}

// State returns the current mode and the index it refers to
func (s Selection) State() (SelectionState, int) {
	if s.state == SelectNone {
		return SelectNone, -1
	}
	return s.state, s.index
}

// Shown returns the partial to draw in the single view, if any
func (s Selection) Shown() (int, bool) {
	if s.state == SelectNone {
		return -1, false
	}
	return s.index, true
}

// Active reports the highlighted partial, ignoring sticky state
func (s Selection) Active() (int, bool) {
	if s.state != SelectActive {
		return -1, false
	}
	return s.index, true
}
