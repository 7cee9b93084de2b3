package puzzle

import "fmt"

// Axis selects whether a move shifts a row or a column.
type Axis string

const (
	AxisRow Axis = "row"
	AxisCol Axis = "col"
)

// Valid returns true for AxisRow and AxisCol.
func (a Axis) Valid() bool {
	return a == AxisRow || a == AxisCol
}

// MoveAction is a cyclic shift of one row or column.
//
// A positive Amount moves row entries toward higher x (rightward) and column
// entries toward higher y (downward). Gems pushed off one edge wrap around to
// the opposite edge.
type MoveAction struct {
	Axis   Axis
	Index  int
	Amount int
}

// RowMove returns a move shifting row y by amount.
func RowMove(y, amount int) MoveAction {
	return MoveAction{Axis: AxisRow, Index: y, Amount: amount}
}

// ColMove returns a move shifting column x by amount.
func ColMove(x, amount int) MoveAction {
	return MoveAction{Axis: AxisCol, Index: x, Amount: amount}
}

// String returns a compact representation such as "row 2 +1".
func (m MoveAction) String() string {
	return fmt.Sprintf("%s %d %+d", m.Axis, m.Index, m.Amount)
}

// Validate checks the move against the grid dimensions.
func (m MoveAction) Validate(g *Grid) error {
	switch m.Axis {
	case AxisRow:
		if m.Index < 0 || m.Index >= g.h {
			return fmt.Errorf("%w: row %d outside height %d", ErrOutOfRange, m.Index, g.h)
		}
	case AxisCol:
		if m.Index < 0 || m.Index >= g.w {
			return fmt.Errorf("%w: column %d outside width %d", ErrOutOfRange, m.Index, g.w)
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidAxis, m.Axis)
	}
	return nil
}

// Apply returns a copy of g with the move applied. g is never modified.
// Amounts are reduced modulo the axis length, so a full cycle (or zero)
// yields a copy equal to g.
func Apply(g *Grid, m MoveAction) (*Grid, error) {
	if err := m.Validate(g); err != nil {
		return nil, err
	}
	out := g.Snapshot()
	shift(out, m)
	return out, nil
}

// ApplyAll applies moves in order and returns the resulting copy.
// g is never modified; the first invalid move aborts the sequence.
func ApplyAll(g *Grid, moves []MoveAction) (*Grid, error) {
	out := g.Snapshot()
	for _, m := range moves {
		if err := m.Validate(out); err != nil {
			return nil, err
		}
		shift(out, m)
	}
	return out, nil
}

// shift rotates the row or column in place. The move must be valid.
func shift(g *Grid, m MoveAction) {
	switch m.Axis {
	case AxisRow:
		k := mod(m.Amount, g.w)
		if k == 0 {
			return
		}
		row := make([]Gem, g.w)
		for x := 0; x < g.w; x++ {
			row[(x+k)%g.w] = g.cols[x][m.Index]
		}
		for x := 0; x < g.w; x++ {
			g.cols[x][m.Index] = row[x]
		}

	case AxisCol:
		k := mod(m.Amount, g.h)
		if k == 0 {
			return
		}
		col := make([]Gem, g.h)
		for y := 0; y < g.h; y++ {
			col[(y+k)%g.h] = g.cols[m.Index][y]
		}
		g.cols[m.Index] = col
	}
}

// mod returns a modulo n in [0, n).
func mod(a, n int) int {
	return ((a % n) + n) % n
}
