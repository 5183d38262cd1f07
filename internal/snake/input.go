package snake

// OnDirectionKey buffers requested as the direction for the next tick.
// A request for the opposite of the committed direction is ignored so the
// snake cannot turn back into its own neck. It reports whether the request
// was accepted.
//
// Only the pending direction changes; the snake itself moves on the next
// Step.
func (s *State) OnDirectionKey(requested Direction) bool {
	if requested == s.Direction.Opposite() {
		return false
	}
	s.Pending = requested
	return true
}

// Pause moves a running game to StatusPaused.
func (s *State) Pause() bool {
	if s.Status != StatusRunning {
		return false
	}
	s.Status = StatusPaused
	return true
}

// Resume moves a paused game back to StatusRunning. A finished game stays
// finished.
func (s *State) Resume() bool {
	if s.Status != StatusPaused {
		return false
	}
	s.Status = StatusRunning
	return true
}
