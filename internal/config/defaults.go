package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Width:    snake.DefaultWidth,
			Height:   snake.DefaultHeight,
			CellSize: snake.DefaultCellSize,
		},
		Snake: SnakeRules{
			InitialLength: snake.DefaultInitialLength,
			FoodPoints:    snake.DefaultFoodPoints,
		},
		Timing: TimingConfig{
			TickMS: 200,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
