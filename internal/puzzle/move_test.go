package puzzle

import (
	"errors"
	"math/rand"
	"testing"
)

func TestApplyRowShift(t *testing.T) {
	tests := []struct {
		name   string
		amount int
		want   string
	}{
		{"right by one", 1, "RBGP"},
		{"left by one", -1, "GPRB"},
		{"right by two", 2, "PRBG"},
		{"wraps modulo width", 5, "RBGP"},
		{"negative wraps", -6, "PRBG"},
		{"zero", 0, "BGPR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustRows(t, "BGPR", "YYBB", "RRGG")
			moved, err := Apply(g, RowMove(0, tt.amount))
			if err != nil {
				t.Fatalf("Apply failed: %v", err)
			}
			want := tt.want + "\nYYBB\nRRGG"
			if moved.String() != want {
				t.Errorf("Apply(row 0 %+d) =\n%s\nwant\n%s", tt.amount, moved, want)
			}
		})
	}
}

func TestApplyColumnShift(t *testing.T) {
	g := mustColumns(t, "RGB", "GBR", "BRG")

	moved, err := Apply(g, ColMove(0, 1))
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	want := mustColumns(t, "BRG", "GBR", "BRG")
	if !moved.Equal(want) {
		t.Errorf("col 0 +1:\n%s\nwant\n%s", moved, want)
	}

	up, err := Apply(g, ColMove(2, -1))
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if col, _ := up.Column(2); col[0] != GemRed || col[1] != GemGreen || col[2] != GemBlue {
		t.Errorf("col 2 -1 = %v, want [red green blue]", col)
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	g := mustColumns(t, "RGB", "GBR", "BRG")
	before := g.Snapshot()

	if _, err := Apply(g, RowMove(1, 1)); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if _, err := Apply(g, ColMove(2, 2)); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if !g.Equal(before) {
		t.Errorf("Apply mutated its input:\n%s", g)
	}
}

func TestApplyFullCycleIsIdentity(t *testing.T) {
	g, err := NewGrid(6, 5, AllGemTypes(), rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}

	for y := 0; y < g.Height(); y++ {
		for _, amount := range []int{g.Width(), -g.Width(), 3 * g.Width(), 0} {
			moved, err := Apply(g, RowMove(y, amount))
			if err != nil {
				t.Fatalf("Apply failed: %v", err)
			}
			if !moved.Equal(g) {
				t.Errorf("row %d shift %d should be identity", y, amount)
			}
		}
	}
	for x := 0; x < g.Width(); x++ {
		for _, amount := range []int{g.Height(), -g.Height(), 2 * g.Height(), 0} {
			moved, err := Apply(g, ColMove(x, amount))
			if err != nil {
				t.Fatalf("Apply failed: %v", err)
			}
			if !moved.Equal(g) {
				t.Errorf("col %d shift %d should be identity", x, amount)
			}
		}
	}
}

func TestApplySingleColumnRotation(t *testing.T) {
	tests := []struct {
		name   string
		column string
		amount int
		want   []GemType
	}{
		{"RRG down one", "RRG", 1, []GemType{GemGreen, GemRed, GemRed}},
		{"RGR down one", "RGR", 1, []GemType{GemRed, GemRed, GemGreen}},
		{"RRG up one", "RRG", -1, []GemType{GemRed, GemGreen, GemRed}},
		{"RRG full cycle", "RRG", 3, []GemType{GemRed, GemRed, GemGreen}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustColumns(t, tt.column)
			moved, err := Apply(g, ColMove(0, tt.amount))
			if err != nil {
				t.Fatalf("Apply failed: %v", err)
			}
			got, _ := moved.Column(0)
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("column = %v, want %v", got, tt.want)
				}
			}
			if HasMatch(moved) {
				t.Errorf("rotation should not produce a match: %v", got)
			}
		})
	}
}

func TestApplyErrors(t *testing.T) {
	g := mustRows(t, "RGBY", "GBRP", "BRGY")

	tests := []struct {
		name string
		move MoveAction
		want error
	}{
		{"unknown axis", MoveAction{Axis: "diag", Index: 0, Amount: 1}, ErrInvalidAxis},
		{"empty axis", MoveAction{Index: 0, Amount: 1}, ErrInvalidAxis},
		{"row past height", RowMove(3, 1), ErrOutOfRange},
		{"negative row", RowMove(-1, 1), ErrOutOfRange},
		{"col past width", ColMove(4, 1), ErrOutOfRange},
		{"negative col", ColMove(-1, 1), ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Apply(g, tt.move); !errors.Is(err, tt.want) {
				t.Errorf("Apply(%v) error = %v, want %v", tt.move, err, tt.want)
			}
		})
	}
}

func TestApplyAll(t *testing.T) {
	g := mustColumns(t, "RGB", "GBR", "BRG")

	moved, err := ApplyAll(g, []MoveAction{ColMove(0, 1), ColMove(0, 2)})
	if err != nil {
		t.Fatalf("ApplyAll failed: %v", err)
	}
	if !moved.Equal(g) {
		t.Errorf("two shifts adding to a full cycle should be identity:\n%s", moved)
	}

	if _, err := ApplyAll(g, []MoveAction{RowMove(0, 1), RowMove(9, 1)}); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("ApplyAll error = %v, want ErrOutOfRange", err)
	}
}
