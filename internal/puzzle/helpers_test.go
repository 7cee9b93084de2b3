package puzzle

import "testing"

// seqRand returns a fixed sequence of values, wrapping around.
type seqRand struct {
	vals []int
	i    int
}

func (r *seqRand) Intn(n int) int {
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}

// mustRows builds a grid from row strings such as "RGB".
func mustRows(t *testing.T, rows ...string) *Grid {
	t.Helper()
	types := make([][]GemType, len(rows))
	for y, row := range rows {
		parsed, ok := ParseGemTypes(row)
		if !ok {
			t.Fatalf("bad row %q", row)
		}
		types[y] = parsed
	}
	g, err := GridFromRows(types)
	if err != nil {
		t.Fatalf("GridFromRows failed: %v", err)
	}
	return g
}

// mustColumns builds a grid from column strings, top to bottom.
func mustColumns(t *testing.T, cols ...string) *Grid {
	t.Helper()
	types := make([][]GemType, len(cols))
	for x, col := range cols {
		parsed, ok := ParseGemTypes(col)
		if !ok {
			t.Fatalf("bad column %q", col)
		}
		types[x] = parsed
	}
	g, err := GridFromColumns(types)
	if err != nil {
		t.Fatalf("GridFromColumns failed: %v", err)
	}
	return g
}

func mustTypes(t *testing.T, s string) []GemType {
	t.Helper()
	types, ok := ParseGemTypes(s)
	if !ok {
		t.Fatalf("bad gem string %q", s)
	}
	return types
}
