package snake

import "testing"

func TestOnDirectionKeyRejectsReversal(t *testing.T) {
	tests := []struct {
		committed Direction
		requested Direction
		accepted  bool
	}{
		{DirLeft, DirRight, false},
		{DirRight, DirLeft, false},
		{DirUp, DirDown, false},
		{DirDown, DirUp, false},
		{DirLeft, DirUp, true},
		{DirLeft, DirDown, true},
		{DirLeft, DirLeft, true},
		{DirUp, DirRight, true},
	}

	for _, tc := range tests {
		s := State{Direction: tc.committed, Pending: tc.committed}
		got := s.OnDirectionKey(tc.requested)
		if got != tc.accepted {
			t.Errorf("%s -> %s: accepted = %v, expected %v", tc.committed, tc.requested, got, tc.accepted)
		}
		want := tc.committed
		if tc.accepted {
			want = tc.requested
		}
		if s.Pending != want {
			t.Errorf("%s -> %s: pending = %s, expected %s", tc.committed, tc.requested, s.Pending, want)
		}
	}
}

func TestReversalCheckedAgainstCommittedDirection(t *testing.T) {
	// Left committed, Up pending: Right is still the reverse of what the
	// snake is doing and must be refused.
	s := State{Direction: DirLeft, Pending: DirLeft}
	s.OnDirectionKey(DirUp)

	if s.OnDirectionKey(DirRight) {
		t.Error("Right should be refused while the committed direction is Left")
	}
	if s.Pending != DirUp {
		t.Errorf("Pending should stay Up, got %s", s.Pending)
	}
}

func TestPauseResume(t *testing.T) {
	s := State{Status: StatusRunning}

	if !s.Pause() || s.Status != StatusPaused {
		t.Fatalf("Pause from running failed, status %s", s.Status)
	}
	if s.Pause() {
		t.Error("Pausing twice should report no change")
	}
	if !s.Resume() || s.Status != StatusRunning {
		t.Fatalf("Resume from paused failed, status %s", s.Status)
	}
	if s.Resume() {
		t.Error("Resuming a running game should report no change")
	}

	s.Status = StatusOver
	if s.Pause() || s.Resume() {
		t.Error("A finished game cannot be paused or resumed")
	}
	if s.Status != StatusOver {
		t.Errorf("Status should stay over, got %s", s.Status)
	}
}
