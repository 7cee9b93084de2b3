package puzzle

import (
	"errors"
	"math/rand"
	"testing"
)

func TestNewGridHasNoMatches(t *testing.T) {
	for w := 3; w <= 9; w++ {
		for h := 3; h <= 9; h++ {
			for seed := int64(1); seed <= 10; seed++ {
				rng := rand.New(rand.NewSource(seed))
				g, err := NewGrid(w, h, AllGemTypes(), rng)
				if err != nil {
					t.Fatalf("NewGrid(%d, %d) failed: %v", w, h, err)
				}
				if g.Width() != w || g.Height() != h {
					t.Fatalf("expected %dx%d grid, got %dx%d", w, h, g.Width(), g.Height())
				}
				if matches := FindMatches(g); len(matches) != 0 {
					t.Fatalf("seed %d: %dx%d grid has matches %v:\n%s", seed, w, h, matches, g)
				}
			}
		}
	}
}

func TestNewGridSmallPalette(t *testing.T) {
	palette := []GemType{GemRed, GemGreen, GemBlue}
	for seed := int64(1); seed <= 50; seed++ {
		g, err := NewGrid(8, 8, palette, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("NewGrid failed: %v", err)
		}
		if HasMatch(g) {
			t.Fatalf("seed %d: grid has matches:\n%s", seed, g)
		}
		for x := 0; x < g.Width(); x++ {
			col, _ := g.Column(x)
			for _, gt := range col {
				if gt != GemRed && gt != GemGreen && gt != GemBlue {
					t.Fatalf("gem %v not in palette", gt)
				}
			}
		}
	}
}

func TestNewGridSingleTypeFallsBack(t *testing.T) {
	g, err := NewGrid(3, 3, []GemType{GemPurple}, &seqRand{vals: []int{0}})
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			gem, _ := g.Get(x, y)
			if gem.Type != GemPurple {
				t.Errorf("at (%d,%d): expected purple fallback, got %v", x, y, gem.Type)
			}
		}
	}
}

func TestNewGridErrors(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		palette []GemType
		want    error
	}{
		{"too narrow", 2, 5, AllGemTypes(), ErrInvalidDimensions},
		{"too short", 5, 2, AllGemTypes(), ErrInvalidDimensions},
		{"zero", 0, 0, AllGemTypes(), ErrInvalidDimensions},
		{"empty palette", 3, 3, nil, ErrEmptyPalette},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGrid(tt.w, tt.h, tt.palette, &seqRand{})
			if !errors.Is(err, tt.want) {
				t.Errorf("NewGrid(%d, %d) error = %v, want %v", tt.w, tt.h, err, tt.want)
			}
		})
	}
}

func TestGridGet(t *testing.T) {
	g := mustColumns(t, "RGB", "GBR", "BRG")

	gem, err := g.Get(1, 2)
	if err != nil {
		t.Fatalf("Get(1, 2) failed: %v", err)
	}
	if gem.Type != GemRed {
		t.Errorf("Get(1, 2) = %v, want red", gem.Type)
	}

	outside := []Pos{P(-1, 0), P(0, -1), P(3, 0), P(0, 3)}
	for _, p := range outside {
		if _, err := g.Get(p.X, p.Y); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Get%v error = %v, want ErrOutOfRange", p, err)
		}
	}
}

func TestGridSnapshotIsIndependent(t *testing.T) {
	g := mustColumns(t, "RGB", "GBR", "BRG")
	snap := g.Snapshot()

	if !g.Equal(snap) {
		t.Fatal("snapshot should equal original")
	}

	snap.cols[0][0] = NewGem(GemYellow)
	shift(snap, ColMove(1, 1))

	gem, _ := g.Get(0, 0)
	if gem.Type != GemRed {
		t.Error("original should not be affected by snapshot modification")
	}
	if g.String() != "RGB\nGBR\nBRG" {
		t.Errorf("original changed:\n%s", g)
	}
}

func TestGridFromColumnsRejectsBadShapes(t *testing.T) {
	if _, err := GridFromColumns(nil); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("empty columns error = %v, want ErrInvalidDimensions", err)
	}
	ragged := [][]GemType{{GemRed, GemGreen}, {GemRed}}
	if _, err := GridFromColumns(ragged); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("ragged columns error = %v, want ErrInvalidDimensions", err)
	}
	if _, err := GridFromRows([][]GemType{{GemRed}, {}}); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("ragged rows error = %v, want ErrInvalidDimensions", err)
	}
}

func TestGridFromRowsMatchesColumns(t *testing.T) {
	byRows := mustRows(t, "RGBY", "GBRP", "BRGY")
	byCols := mustColumns(t, "RGB", "GBR", "BRG", "YPY")

	if !byRows.Equal(byCols) {
		t.Errorf("row and column construction differ:\n%s\nvs\n%s", byRows, byCols)
	}
	if byRows.Width() != 4 || byRows.Height() != 3 {
		t.Errorf("expected 4x3, got %dx%d", byRows.Width(), byRows.Height())
	}

	col, err := byRows.Column(3)
	if err != nil {
		t.Fatalf("Column(3) failed: %v", err)
	}
	want := []GemType{GemYellow, GemPurple, GemYellow}
	for i := range want {
		if col[i] != want[i] {
			t.Errorf("Column(3)[%d] = %v, want %v", i, col[i], want[i])
		}
	}
	if _, err := byRows.Column(4); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Column(4) error = %v, want ErrOutOfRange", err)
	}
}

func TestParseGemTypes(t *testing.T) {
	types, ok := ParseGemTypes("r g bPY")
	if !ok {
		t.Fatal("ParseGemTypes should accept letters and spaces")
	}
	want := []GemType{GemRed, GemGreen, GemBlue, GemPurple, GemYellow}
	if len(types) != len(want) {
		t.Fatalf("got %d types, want %d", len(types), len(want))
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("types[%d] = %v, want %v", i, types[i], want[i])
		}
	}

	if _, ok := ParseGemTypes("RX"); ok {
		t.Error("ParseGemTypes should reject unknown letters")
	}
	if gt, ok := ParseGemType("Yellow"); !ok || gt != GemYellow {
		t.Errorf("ParseGemType(Yellow) = %v, %v", gt, ok)
	}
}
