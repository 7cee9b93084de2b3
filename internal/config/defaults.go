package config

import (
	_ "embed"

	"github.com/vovakirdan/gemshift/internal/puzzle"
)

//go:embed defaults/gemshift.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Width:   puzzle.DefaultWidth,
			Height:  puzzle.DefaultHeight,
			Palette: []string{"blue", "green", "purple", "red", "yellow"},
		},
		Spawn: SpawnConfig{
			Preview: 5,
		},
		Cascade: CascadeConfig{
			StopRule: string(puzzle.StopOnEqualCount),
			MaxSteps: puzzle.DefaultMaxSteps,
		},
		UI: UIConfig{
			TickRate:     30,
			ExplodeTicks: 9,
		},
	}
}
