package snake

// Event describes what a tick did.
type Event string

const (
	EventNone  Event = "none"  // Step ran on a game that was not running
	EventMoved Event = "moved" // Move branch, game continues
	EventAte   Event = "ate"   // Grow branch, game continues
	EventOver  Event = "over"  // Collision, game ended this tick
)

// Frame is the render snapshot emitted by each tick. It is everything a
// renderer or score display needs and shares no memory with the State.
type Frame struct {
	Body      []Cell // Head first
	Food      Cell
	Score     int
	Status    Status
	Event     Event
	Collision Collision // Set when Event is EventOver
	Crash     Cell      // Cell the head tried to enter, valid when Event is EventOver
	Direction Direction
	Tick      int
}

// Frame returns a snapshot of the current state tagged with ev.
func (s State) Frame(ev Event) Frame {
	return Frame{
		Body:      append([]Cell(nil), s.Snake...),
		Food:      s.Food,
		Score:     s.Score,
		Status:    s.Status,
		Event:     ev,
		Collision: s.Collision,
		Direction: s.Direction,
		Tick:      s.Ticks,
	}
}

// Head returns the first body cell of the frame.
func (f Frame) Head() Cell {
	if len(f.Body) == 0 {
		return Cell{}
	}
	return f.Body[0]
}

// Over reports whether the frame ends the run.
func (f Frame) Over() bool {
	return f.Status == StatusOver
}

// Result summarises a finished run.
type Result struct {
	Score     int
	Length    int
	Ticks     int
	Collision Collision
}

// Result returns the summary of the run so far.
func (s State) Result() Result {
	return Result{
		Score:     s.Score,
		Length:    len(s.Snake),
		Ticks:     s.Ticks,
		Collision: s.Collision,
	}
}
