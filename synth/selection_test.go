package synth

import "testing"

func TestSelectionStartsEmpty(t *testing.T) {
	var s Selection
	if st, idx := s.State(); st != SelectNone || idx != -1 {
		t.Fatalf("State = %v %d", st, idx)
	}
	if _, ok := s.Shown(); ok {
		t.Fatal("nothing should be shown before the first selection")
	}
}

func TestSelectionSequences(t *testing.T) {
	type step struct {
		enter bool
		idx   int
	}
	tests := []struct {
		name      string
		steps     []step
		wantState SelectionState
		wantIdx   int
	}{
		{"enter", []step{{true, 3}}, SelectActive, 3},
		{"enter leave", []step{{true, 3}, {false, 3}}, SelectSticky, 3},
		{"two gestures", []step{{true, 3}, {false, 3}, {true, 5}, {false, 5}}, SelectSticky, 5},
		{"leave other", []step{{true, 2}, {false, 7}}, SelectActive, 2},
		{"leave before enter", []step{{false, 4}}, SelectNone, -1},
		{"enter over active", []step{{true, 1}, {true, 6}, {false, 1}}, SelectActive, 6},
		{"enter over sticky", []step{{true, 1}, {false, 1}, {true, 9}}, SelectActive, 9},
		{"double leave", []step{{true, 4}, {false, 4}, {false, 4}}, SelectSticky, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Selection
			for _, st := range tt.steps {
				if st.enter {
					s.Enter(st.idx)
				} else {
					s.Leave(st.idx)
				}
			}
			st, idx := s.State()
			if st != tt.wantState || idx != tt.wantIdx {
				t.Errorf("State = %v %d, want %v %d", st, idx, tt.wantState, tt.wantIdx)
			}
			shown, ok := s.Shown()
			if ok != (tt.wantState != SelectNone) || (ok && shown != tt.wantIdx) {
				t.Errorf("Shown = %d %v", shown, ok)
			}
		})
	}
}
