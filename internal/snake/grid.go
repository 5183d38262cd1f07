// Package snake implements the Snake game rules: grid geometry, the game
// state value, collision and food rules, and the per-tick update step.
//
// The package is pure. It owns no timers and draws nothing; the run loop in
// internal/runner drives it and the platform layer renders its frames.
package snake

import "fmt"

// Cell is a grid-aligned board position. Coordinates are in board units and
// are always multiples of the grid's cell size.
type Cell struct {
	X, Y int
}

// Add returns the cell offset by (dx, dy).
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Next returns the neighbouring cell one grid step away in direction d.
func (c Cell) Next(d Direction, step int) Cell {
	dx, dy := d.Delta()
	return c.Add(dx*step, dy*step)
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Grid describes the board: its size in board units and the cell size.
type Grid struct {
	Width    int // Board width, a multiple of CellSize
	Height   int // Board height, a multiple of CellSize
	CellSize int // Edge length of one cell
}

// NewGrid creates a grid with the given dimensions.
func NewGrid(width, height, cellSize int) Grid {
	return Grid{Width: width, Height: height, CellSize: cellSize}
}

// Cols returns the number of cell columns.
func (g Grid) Cols() int {
	if g.CellSize <= 0 {
		return 0
	}
	return g.Width / g.CellSize
}

// Rows returns the number of cell rows.
func (g Grid) Rows() int {
	if g.CellSize <= 0 {
		return 0
	}
	return g.Height / g.CellSize
}

// Area returns the total number of cells on the board.
func (g Grid) Area() int {
	return g.Cols() * g.Rows()
}

// Center returns the grid-aligned cell closest to the middle of the board.
func (g Grid) Center() Cell {
	return Cell{X: g.Cols() / 2 * g.CellSize, Y: g.Rows() / 2 * g.CellSize}
}

// Contains reports whether c lies on the board.
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// CellAt returns the cell at column col and row row.
func (g Grid) CellAt(col, row int) Cell {
	return Cell{X: col * g.CellSize, Y: row * g.CellSize}
}

// Index converts a cell to its (column, row) position.
func (g Grid) Index(c Cell) (col, row int) {
	return c.X / g.CellSize, c.Y / g.CellSize
}
