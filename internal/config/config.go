// Package config provides YAML-based configuration loading and board
// presets for GemShift.
package config

import (
	"fmt"

	"github.com/vovakirdan/gemshift/internal/puzzle"
)

// Config contains all configuration for a GemShift session.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Cascade CascadeConfig `yaml:"cascade"`
	UI      UIConfig      `yaml:"ui"`
}

// BoardConfig defines grid dimensions and the gems in play.
type BoardConfig struct {
	Width   int      `yaml:"width"`
	Height  int      `yaml:"height"`
	Palette []string `yaml:"palette"` // Gem names or letters, e.g. ["red", "g"]
}

// SpawnConfig defines the next-gems preview.
type SpawnConfig struct {
	Preview int `yaml:"preview"` // Gems kept queued ahead of the spawner (0 = pure random)
}

// CascadeConfig defines the cascade safety bounds.
type CascadeConfig struct {
	StopRule string `yaml:"stop_rule"` // "count" or "positions"
	MaxSteps int    `yaml:"max_steps"` // 0 = engine default
}

// UIConfig defines terminal presentation timing.
type UIConfig struct {
	TickRate     int `yaml:"tick_rate"`     // Ticks per second
	ExplodeTicks int `yaml:"explode_ticks"` // Ticks each exploding step stays highlighted
}

// Validate checks that the configuration can build an engine.
func (c Config) Validate() error {
	if c.Board.Width < puzzle.MinGridSize || c.Board.Height < puzzle.MinGridSize {
		return fmt.Errorf("config: board must be at least %dx%d, got %dx%d",
			puzzle.MinGridSize, puzzle.MinGridSize, c.Board.Width, c.Board.Height)
	}
	if _, err := c.PaletteTypes(); err != nil {
		return err
	}
	if _, err := puzzle.ParseStopRule(c.Cascade.StopRule); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Spawn.Preview < 0 {
		return fmt.Errorf("config: spawn.preview must not be negative, got %d", c.Spawn.Preview)
	}
	if c.Cascade.MaxSteps < 0 {
		return fmt.Errorf("config: cascade.max_steps must not be negative, got %d", c.Cascade.MaxSteps)
	}
	if c.UI.TickRate <= 0 {
		return fmt.Errorf("config: ui.tick_rate must be positive, got %d", c.UI.TickRate)
	}
	return nil
}

// PaletteTypes parses the palette. An empty palette selects every gem type.
func (c Config) PaletteTypes() ([]puzzle.GemType, error) {
	if len(c.Board.Palette) == 0 {
		return puzzle.AllGemTypes(), nil
	}

	types := make([]puzzle.GemType, 0, len(c.Board.Palette))
	seen := make(map[puzzle.GemType]bool)
	for _, name := range c.Board.Palette {
		t, ok := puzzle.ParseGemType(name)
		if !ok {
			return nil, fmt.Errorf("config: unknown gem %q in palette", name)
		}
		if seen[t] {
			continue
		}
		seen[t] = true
		types = append(types, t)
	}
	return types, nil
}

// EngineOptions converts the configuration to engine options.
// Rand and Logger are left for the caller to fill in.
func (c Config) EngineOptions() (puzzle.Options, error) {
	if err := c.Validate(); err != nil {
		return puzzle.Options{}, err
	}
	palette, _ := c.PaletteTypes()
	rule, _ := puzzle.ParseStopRule(c.Cascade.StopRule)

	return puzzle.Options{
		Width:    c.Board.Width,
		Height:   c.Board.Height,
		Palette:  palette,
		StopRule: rule,
		MaxSteps: c.Cascade.MaxSteps,
	}, nil
}

// BoardPreset represents a named board layout.
type BoardPreset string

const (
	PresetSmall   BoardPreset = "small"
	PresetClassic BoardPreset = "classic"
	PresetLarge   BoardPreset = "large"
	PresetDense   BoardPreset = "dense"
)

// Presets returns every known preset name.
func Presets() []BoardPreset {
	return []BoardPreset{PresetSmall, PresetClassic, PresetLarge, PresetDense}
}

// ApplyPreset modifies the board section for a preset.
// An empty preset leaves the config unchanged.
func ApplyPreset(cfg *Config, preset BoardPreset) error {
	switch preset {
	case "":
		return nil
	case PresetSmall:
		cfg.Board.Width, cfg.Board.Height = 5, 5
		cfg.Board.Palette = nil
	case PresetClassic:
		cfg.Board.Width, cfg.Board.Height = puzzle.DefaultWidth, puzzle.DefaultHeight
		cfg.Board.Palette = nil
	case PresetLarge:
		cfg.Board.Width, cfg.Board.Height = 9, 9
		cfg.Board.Palette = nil
	case PresetDense:
		// Fewer colors means more matches and longer cascades.
		cfg.Board.Width, cfg.Board.Height = puzzle.DefaultWidth, puzzle.DefaultHeight
		cfg.Board.Palette = []string{"red", "green", "blue"}
	default:
		return fmt.Errorf("config: unknown preset %q", preset)
	}
	return nil
}
