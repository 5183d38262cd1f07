package snake

// Status is the run status of a game.
type Status int

const (
	StatusRunning Status = iota
	StatusPaused
	StatusOver
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusOver:
		return "over"
	default:
		return "unknown"
	}
}

// Default rule values.
const (
	DefaultWidth         = 600
	DefaultHeight        = 360
	DefaultCellSize      = 20
	DefaultInitialLength = 6
	DefaultFoodPoints    = 100
)

// Rules holds the fixed parameters of a run.
type Rules struct {
	Grid          Grid
	InitialLength int // Snake length at run start
	FoodPoints    int // Score added per food eaten
}

// DefaultRules returns the classic board: 30x18 cells of size 20, a six cell
// snake and 100 points per food.
func DefaultRules() Rules {
	return Rules{
		Grid:          NewGrid(DefaultWidth, DefaultHeight, DefaultCellSize),
		InitialLength: DefaultInitialLength,
		FoodPoints:    DefaultFoodPoints,
	}
}

// State is the complete state of one run. It is a plain value: Step takes a
// State and returns the next one, and nothing else holds on to it.
type State struct {
	Snake     []Cell    // Head at index 0
	Direction Direction // Committed direction, used by the last tick
	Pending   Direction // Direction the next tick will commit
	Food      Cell
	Score     int
	Status    Status
	Collision Collision // Set once Status is StatusOver
	Ticks     int       // Update steps executed this run
}

// NewState returns the initial configuration for a run: the head on the
// board center, the body trailing to the right, heading left, score zero,
// and food on a free cell.
func NewState(r Rules, rng Rand) State {
	g := r.Grid
	center := g.Center()

	body := make([]Cell, 0, r.InitialLength)
	for i := 0; i < r.InitialLength; i++ {
		body = append(body, center.Add(i*g.CellSize, 0))
	}

	s := State{
		Snake:     body,
		Direction: DirLeft,
		Pending:   DirLeft,
		Status:    StatusRunning,
	}
	s.Food = PlaceFood(rng, s.Snake, g)
	return s
}

// Head returns the first snake cell.
func (s State) Head() Cell {
	if len(s.Snake) == 0 {
		return Cell{}
	}
	return s.Snake[0]
}

// Len returns the snake length.
func (s State) Len() int {
	return len(s.Snake)
}

// Clone returns a copy that shares no memory with s.
func (s State) Clone() State {
	c := s
	c.Snake = append([]Cell(nil), s.Snake...)
	return c
}
