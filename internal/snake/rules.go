package snake

import "fmt"

// Rand is the random source used for food placement. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Collision names what ended a run.
type Collision string

const (
	CollisionNone Collision = ""
	CollisionWall Collision = "wall-collision"
	CollisionSelf Collision = "self-collision"
)

// IsWallCollision reports whether c lies outside the board.
func IsWallCollision(g Grid, c Cell) bool {
	return c.X < 0 || c.X >= g.Width || c.Y < 0 || c.Y >= g.Height
}

// IsSelfCollision reports whether head matches any cell of body.
// Callers pass the snake as it stands after the move, minus the new head.
func IsSelfCollision(head Cell, body []Cell) bool {
	for _, seg := range body {
		if seg == head {
			return true
		}
	}
	return false
}

// Occupies reports whether the snake covers c.
func Occupies(snake []Cell, c Cell) bool {
	return IsSelfCollision(c, snake)
}

// PlaceFood draws grid-aligned cells uniformly at random until one is not
// covered by the snake.
//
// It panics when the snake covers the whole board: there is nowhere to put
// food and redrawing would never terminate.
func PlaceFood(rng Rand, snake []Cell, g Grid) Cell {
	cols, rows := g.Cols(), g.Rows()
	if cols <= 0 || rows <= 0 {
		panic(fmt.Sprintf("snake: cannot place food on empty grid %dx%d", g.Width, g.Height))
	}
	if len(snake) >= cols*rows {
		panic(fmt.Sprintf("snake: no free cell for food (snake length %d, %d cells)", len(snake), cols*rows))
	}

	for {
		food := g.CellAt(rng.Intn(cols), rng.Intn(rows))
		if !Occupies(snake, food) {
			return food
		}
	}
}

// mustBeFree panics if food landed on the snake. PlaceFood never lets this
// happen; a violation means state was corrupted elsewhere.
func mustBeFree(food Cell, snake []Cell) {
	if Occupies(snake, food) {
		panic(fmt.Sprintf("snake: food %s placed on the snake", food))
	}
}
