// Package config provides YAML-based game configuration loading and
// validation.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Board  BoardConfig  `yaml:"board"`
	Snake  SnakeRules   `yaml:"snake"`
	Timing TimingConfig `yaml:"timing"`
}

// BoardConfig defines the board geometry.
type BoardConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"`
}

// SnakeRules defines the snake and scoring parameters.
type SnakeRules struct {
	InitialLength int `yaml:"initial_length"`
	FoodPoints    int `yaml:"food_points"`
}

// TimingConfig defines the tick period.
type TimingConfig struct {
	TickMS int `yaml:"tick_ms"`
}

// Validation errors. Validate wraps them with the offending values.
var (
	ErrCellSize      = errors.New("cell size must be positive")
	ErrMisaligned    = errors.New("board size must be a multiple of the cell size")
	ErrBoardTooSmall = errors.New("board too small for the initial snake")
	ErrSnakeLength   = errors.New("initial length must be at least 1")
	ErrFoodPoints    = errors.New("food points must be positive")
	ErrTickPeriod    = errors.New("tick period must be positive")
)

// Validate checks that the config describes a playable board.
func (c SnakeConfig) Validate() error {
	b := c.Board
	if b.CellSize <= 0 {
		return fmt.Errorf("config: %w (got %d)", ErrCellSize, b.CellSize)
	}
	if b.Width <= 0 || b.Height <= 0 || b.Width%b.CellSize != 0 || b.Height%b.CellSize != 0 {
		return fmt.Errorf("config: %w (%dx%d, cell %d)", ErrMisaligned, b.Width, b.Height, b.CellSize)
	}
	if c.Snake.InitialLength < 1 {
		return fmt.Errorf("config: %w (got %d)", ErrSnakeLength, c.Snake.InitialLength)
	}

	// The body trails right of the center cell and food needs one free cell.
	g := c.Grid()
	centerCol, _ := g.Index(g.Center())
	if centerCol+c.Snake.InitialLength > g.Cols() || c.Snake.InitialLength >= g.Area() {
		return fmt.Errorf("config: %w (%d cells wide, length %d)", ErrBoardTooSmall, g.Cols(), c.Snake.InitialLength)
	}

	if c.Snake.FoodPoints <= 0 {
		return fmt.Errorf("config: %w (got %d)", ErrFoodPoints, c.Snake.FoodPoints)
	}
	if c.Timing.TickMS <= 0 {
		return fmt.Errorf("config: %w (got %d)", ErrTickPeriod, c.Timing.TickMS)
	}
	return nil
}

// Grid returns the board geometry.
func (c SnakeConfig) Grid() snake.Grid {
	return snake.NewGrid(c.Board.Width, c.Board.Height, c.Board.CellSize)
}

// Rules converts the config into game rules.
func (c SnakeConfig) Rules() snake.Rules {
	return snake.Rules{
		Grid:          c.Grid(),
		InitialLength: c.Snake.InitialLength,
		FoodPoints:    c.Snake.FoodPoints,
	}
}

// TickPeriod returns the interval between update steps.
func (c SnakeConfig) TickPeriod() time.Duration {
	return time.Duration(c.Timing.TickMS) * time.Millisecond
}
