package puzzle

import "errors"

var (
	// ErrInvalidAxis is returned when a move names an axis other than row or col.
	ErrInvalidAxis = errors.New("puzzle: invalid axis")

	// ErrOutOfRange is returned when a coordinate or move index is outside the grid.
	ErrOutOfRange = errors.New("puzzle: out of range")

	// ErrInvalidDimensions is returned when a grid cannot be built with the requested size.
	ErrInvalidDimensions = errors.New("puzzle: invalid dimensions")

	// ErrEmptyPalette is returned when a grid or spawner is given no gem types.
	ErrEmptyPalette = errors.New("puzzle: empty palette")
)
