// Package levels loads hand-authored GemShift puzzles: a fixed starting
// grid plus an optional queue of gems to spawn first.
// This package depends on puzzle but puzzle does not depend on levels.
package levels

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/gemshift/internal/puzzle"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID          string            `yaml:"id"`
	Name        string            `yaml:"name"`
	Description string            `yaml:"description,omitempty"`
	Rows        []string          `yaml:"rows"`              // Top row first, one letter per gem
	Pending     string            `yaml:"pending,omitempty"` // Gems spawned before random ones
	Metadata    map[string]string `yaml:"metadata,omitempty"`
}

// Level represents a parsed level ready for use.
type Level struct {
	ID          string
	Name        string
	Description string
	Grid        *puzzle.Grid
	Pending     []puzzle.GemType
	Metadata    map[string]string
	FilePath    string // Empty for built-in levels
}

// Width returns the level's grid width.
func (l *Level) Width() int {
	return l.Grid.Width()
}

// Height returns the level's grid height.
func (l *Level) Height() int {
	return l.Grid.Height()
}

// NewEngine creates an engine seeded with this level's grid and spawn queue.
// The level itself is not modified by play.
func (l *Level) NewEngine(opts puzzle.Options) (*puzzle.Engine, error) {
	e, err := puzzle.NewFromGrid(l.Grid, opts)
	if err != nil {
		return nil, fmt.Errorf("levels: %s: %w", l.ID, err)
	}
	e.AddPendingGems(l.Pending...)
	return e, nil
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	if strings.TrimSpace(yl.ID) == "" {
		return Level{}, fmt.Errorf("level has no id")
	}

	rows := make([][]puzzle.GemType, len(yl.Rows))
	for y, row := range yl.Rows {
		types, ok := puzzle.ParseGemTypes(row)
		if !ok {
			return Level{}, fmt.Errorf("level %s: row %d: unknown gem in %q", yl.ID, y, row)
		}
		rows[y] = types
	}

	grid, err := puzzle.GridFromRows(rows)
	if err != nil {
		return Level{}, fmt.Errorf("level %s: %w", yl.ID, err)
	}

	pending, ok := puzzle.ParseGemTypes(yl.Pending)
	if !ok {
		return Level{}, fmt.Errorf("level %s: unknown gem in pending %q", yl.ID, yl.Pending)
	}

	name := yl.Name
	if name == "" {
		name = yl.ID
	}

	return Level{
		ID:          yl.ID,
		Name:        name,
		Description: yl.Description,
		Grid:        grid,
		Pending:     pending,
		Metadata:    yl.Metadata,
	}, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
