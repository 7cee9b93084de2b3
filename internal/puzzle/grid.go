package puzzle

import (
	"fmt"
	"strings"
)

// MinGridSize is the smallest width and height NewGrid accepts.
const MinGridSize = 3

// Pos is a grid coordinate. X grows to the right, Y grows downward (0 is the top row).
type Pos struct {
	X int
	Y int
}

// P is a convenience constructor for Pos.
func P(x, y int) Pos {
	return Pos{X: x, Y: y}
}

// String returns a string representation of the position.
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Grid is a rectangular container of gems stored column-major:
// cols[x][y], with y = 0 at the top of the column.
type Grid struct {
	w    int
	h    int
	cols [][]Gem
}

// NewGrid builds a width x height grid that contains no run of three or more
// identical gems along any row or column.
//
// Cells are filled column by column. For each cell the candidate set starts as
// the full palette; the type of the cell above is dropped when the two cells
// above already match, and the type of the cell to the left is dropped when
// the two cells to the left already match. The gem is chosen uniformly among
// the remaining candidates, falling back to palette[0] if none remain.
func NewGrid(width, height int, palette []GemType, rng RandomSource) (*Grid, error) {
	if width < MinGridSize || height < MinGridSize {
		return nil, fmt.Errorf("%w: %dx%d (minimum %dx%d)", ErrInvalidDimensions, width, height, MinGridSize, MinGridSize)
	}
	if len(palette) == 0 {
		return nil, ErrEmptyPalette
	}

	g := newBlankGrid(width, height)
	candidates := make([]GemType, 0, len(palette))

	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			candidates = append(candidates[:0], palette...)

			if y >= 2 && g.cols[x][y-1].Equal(g.cols[x][y-2]) {
				candidates = without(candidates, g.cols[x][y-1].Type)
			}
			if x >= 2 && g.cols[x-1][y].Equal(g.cols[x-2][y]) {
				candidates = without(candidates, g.cols[x-1][y].Type)
			}

			chosen := palette[0]
			if len(candidates) > 0 {
				chosen = candidates[rng.Intn(len(candidates))]
			}
			g.cols[x][y] = NewGem(chosen)
		}
	}

	return g, nil
}

// GridFromColumns builds a grid from explicit gem types, one slice per
// column, top to bottom. Any non-empty rectangular shape is accepted and the
// no-match invariant is not enforced; this is how hand-authored puzzles and
// tests seed a board.
func GridFromColumns(columns [][]GemType) (*Grid, error) {
	if len(columns) == 0 || len(columns[0]) == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrInvalidDimensions)
	}

	height := len(columns[0])
	g := newBlankGrid(len(columns), height)
	for x, col := range columns {
		if len(col) != height {
			return nil, fmt.Errorf("%w: column %d has %d gems, want %d", ErrInvalidDimensions, x, len(col), height)
		}
		for y, t := range col {
			g.cols[x][y] = NewGem(t)
		}
	}
	return g, nil
}

// GridFromRows builds a grid from row-major gem types (rows[y][x]).
// It is the transposed form of GridFromColumns.
func GridFromRows(rows [][]GemType) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrInvalidDimensions)
	}

	width := len(rows[0])
	columns := make([][]GemType, width)
	for x := range columns {
		columns[x] = make([]GemType, len(rows))
	}
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d gems, want %d", ErrInvalidDimensions, y, len(row), width)
		}
		for x, t := range row {
			columns[x][y] = t
		}
	}
	return GridFromColumns(columns)
}

// newBlankGrid allocates the column storage.
func newBlankGrid(width, height int) *Grid {
	cols := make([][]Gem, width)
	for x := range cols {
		cols[x] = make([]Gem, height)
	}
	return &Grid{w: width, h: height, cols: cols}
}

// without returns types with every occurrence of t removed, reusing the backing array.
func without(types []GemType, t GemType) []GemType {
	out := types[:0]
	for _, c := range types {
		if c != t {
			out = append(out, c)
		}
	}
	return out
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.w
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.h
}

// InBounds returns true if (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// Get returns the gem at (x, y).
func (g *Grid) Get(x, y int) (Gem, error) {
	if !g.InBounds(x, y) {
		return Gem{}, fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfRange, x, y, g.w, g.h)
	}
	return g.cols[x][y], nil
}

// at returns the gem at (x, y) without bounds checking.
func (g *Grid) at(x, y int) Gem {
	return g.cols[x][y]
}

// Column returns a copy of the gem types in column x, top to bottom.
func (g *Grid) Column(x int) ([]GemType, error) {
	if x < 0 || x >= g.w {
		return nil, fmt.Errorf("%w: column %d outside width %d", ErrOutOfRange, x, g.w)
	}
	types := make([]GemType, g.h)
	for y, gem := range g.cols[x] {
		types[y] = gem.Type
	}
	return types, nil
}

// Columns returns a copy of every column's gem types.
func (g *Grid) Columns() [][]GemType {
	columns := make([][]GemType, g.w)
	for x := range columns {
		columns[x], _ = g.Column(x)
	}
	return columns
}

// Snapshot returns a deep copy of the grid. Changes to the copy never
// affect the original.
func (g *Grid) Snapshot() *Grid {
	cols := make([][]Gem, g.w)
	for x, col := range g.cols {
		cols[x] = make([]Gem, len(col))
		copy(cols[x], col)
	}
	return &Grid{w: g.w, h: g.h, cols: cols}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.w != other.w || g.h != other.h {
		return false
	}
	for x := range g.cols {
		for y := range g.cols[x] {
			if !g.cols[x][y].Equal(other.cols[x][y]) {
				return false
			}
		}
	}
	return true
}

// String renders the grid row by row using gem letters.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.w*g.h + g.h)

	for y := 0; y < g.h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < g.w; x++ {
			sb.WriteRune(g.cols[x][y].Type.Char())
		}
	}
	return sb.String()
}
