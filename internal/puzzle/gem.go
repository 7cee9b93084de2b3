// Package puzzle implements the authoritative gem-shifting puzzle state:
// the grid, cyclic row/column moves, match detection, gem spawning and the
// explode-and-replace cascade.
// This package is UI-agnostic and deterministic given its random source.
package puzzle

import "strings"

// GemType identifies the kind of gem occupying a cell.
type GemType uint8

const (
	GemBlue GemType = iota
	GemGreen
	GemPurple
	GemRed
	GemYellow
	GemTypeCount // Sentinel value for iteration
)

// String returns the lowercase name of the gem type.
func (t GemType) String() string {
	switch t {
	case GemBlue:
		return "blue"
	case GemGreen:
		return "green"
	case GemPurple:
		return "purple"
	case GemRed:
		return "red"
	case GemYellow:
		return "yellow"
	default:
		return "unknown"
	}
}

// Char returns a single letter for compact text rendering.
func (t GemType) Char() rune {
	switch t {
	case GemBlue:
		return 'B'
	case GemGreen:
		return 'G'
	case GemPurple:
		return 'P'
	case GemRed:
		return 'R'
	case GemYellow:
		return 'Y'
	default:
		return '?'
	}
}

// ParseGemType converts a name or single letter to a GemType.
// Returns GemBlue and false if the string is not recognized.
func ParseGemType(s string) (GemType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "blue", "b":
		return GemBlue, true
	case "green", "g":
		return GemGreen, true
	case "purple", "p":
		return GemPurple, true
	case "red", "r":
		return GemRed, true
	case "yellow", "y":
		return GemYellow, true
	default:
		return GemBlue, false
	}
}

// ParseGemTypes converts a string of gem letters (e.g. "RRG") to gem types.
// Whitespace is ignored. Returns false on the first unknown letter.
func ParseGemTypes(s string) ([]GemType, bool) {
	types := make([]GemType, 0, len(s))
	for _, r := range s {
		if r == ' ' || r == '\t' {
			continue
		}
		t, ok := ParseGemType(string(r))
		if !ok {
			return nil, false
		}
		types = append(types, t)
	}
	return types, true
}

// AllGemTypes returns every gem type in declaration order.
// This is the default palette.
func AllGemTypes() []GemType {
	return []GemType{GemBlue, GemGreen, GemPurple, GemRed, GemYellow}
}

// Gem is the immutable value stored in a grid cell.
type Gem struct {
	Type GemType
}

// NewGem returns a gem of the given type.
func NewGem(t GemType) Gem {
	return Gem{Type: t}
}

// Equal reports whether two gems have the same type.
func (g Gem) Equal(other Gem) bool {
	return g.Type == other.Type
}
