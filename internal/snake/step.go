package snake

// Step advances a running game by one tick and returns the next state with
// its render snapshot. s is not modified.
//
// Order matters and is fixed:
//  1. commit the pending direction
//  2. compute the new head one cell ahead
//  3. on food: grow (keep the tail), add points, re-place food
//  4. otherwise: drop the tail, then push the new head
//  5. test the new head against the walls and the post-move body
//
// Because the tail is dropped before the self test, moving into the cell
// the tail just left is safe. On a collision the returned state keeps the
// last valid body and the frame carries no new head.
//
// A state that is not running is returned unchanged with EventNone.
func Step(s State, r Rules, rng Rand) (State, Frame) {
	if s.Status != StatusRunning || len(s.Snake) == 0 {
		return s, s.Frame(EventNone)
	}

	g := r.Grid
	next := s.Clone()
	next.Ticks++
	next.Direction = next.Pending

	newHead := next.Head().Next(next.Direction, g.CellSize)

	ev := EventMoved
	if newHead == next.Food {
		next.Snake = append([]Cell{newHead}, next.Snake...)
		next.Score += r.FoodPoints
		next.Food = PlaceFood(rng, next.Snake, g)
		mustBeFree(next.Food, next.Snake)
		ev = EventAte
	} else {
		moved := make([]Cell, 0, len(next.Snake))
		moved = append(moved, newHead)
		moved = append(moved, next.Snake[:len(next.Snake)-1]...)
		next.Snake = moved
	}

	var cause Collision
	switch {
	case IsWallCollision(g, newHead):
		cause = CollisionWall
	case IsSelfCollision(newHead, next.Snake[1:]):
		cause = CollisionSelf
	}

	if cause != CollisionNone {
		over := s.Clone()
		over.Ticks = next.Ticks
		over.Direction = next.Direction
		over.Status = StatusOver
		over.Collision = cause

		f := over.Frame(EventOver)
		f.Crash = newHead
		return over, f
	}

	return next, next.Frame(ev)
}
