package levels

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/gemshift/internal/puzzle"
)

func TestParseYAML(t *testing.T) {
	data := []byte(`
id: t1
name: Test
rows:
  - RGB
  - "G B R"
  - BRG
pending: yp
metadata:
  author: tests
`)
	lvl, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}

	if lvl.ID != "t1" || lvl.Name != "Test" {
		t.Errorf("got id=%q name=%q", lvl.ID, lvl.Name)
	}
	if lvl.Width() != 3 || lvl.Height() != 3 {
		t.Errorf("expected 3x3, got %dx%d", lvl.Width(), lvl.Height())
	}
	if lvl.Grid.String() != "RGB\nGBR\nBRG" {
		t.Errorf("grid =\n%s", lvl.Grid)
	}
	if len(lvl.Pending) != 2 || lvl.Pending[0] != puzzle.GemYellow || lvl.Pending[1] != puzzle.GemPurple {
		t.Errorf("pending = %v, want [yellow purple]", lvl.Pending)
	}
	if lvl.Metadata["author"] != "tests" {
		t.Errorf("metadata = %v", lvl.Metadata)
	}
}

func TestParseYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed", "rows: [RGB"},
		{"missing id", "rows: [RGB, GBR, BRG]"},
		{"unknown gem", "id: x\nrows: [RGX, GBR, BRG]"},
		{"ragged rows", "id: x\nrows: [RGB, GB, BRG]"},
		{"no rows", "id: x\n"},
		{"bad pending", "id: x\nrows: [RGB, GBR, BRG]\npending: RQ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseYAML([]byte(tt.data)); err == nil {
				t.Errorf("ParseYAML(%q) should fail", tt.data)
			}
		})
	}
}

func TestParseYAMLDefaultsNameToID(t *testing.T) {
	lvl, err := ParseYAML([]byte("id: plain\nrows: [RGB, GBR, BRG]"))
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}
	if lvl.Name != "plain" {
		t.Errorf("Name = %q, want id", lvl.Name)
	}
}

func TestBuiltinLevels(t *testing.T) {
	lvls, err := Builtin().LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	want := []string{"chain", "diagonal", "latin", "queue"}
	if len(lvls) != len(want) {
		t.Fatalf("got %d built-in levels, want %d", len(lvls), len(want))
	}
	for i, id := range want {
		if lvls[i].ID != id {
			t.Errorf("level %d = %q, want %q", i, lvls[i].ID, id)
		}
		if lvls[i].FilePath != "" {
			t.Errorf("built-in level %q should have no file path", lvls[i].ID)
		}
	}
}

func TestBuiltinStartsWithoutMatches(t *testing.T) {
	lvls, err := Builtin().LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	for _, lvl := range lvls {
		if puzzle.HasMatch(lvl.Grid) {
			t.Errorf("level %q starts with a match:\n%s", lvl.ID, lvl.Grid)
		}
	}
}

func TestChainLevelPlays(t *testing.T) {
	lvl, err := Builtin().LoadByID("chain")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}

	e, err := lvl.NewEngine(puzzle.Options{})
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	res, err := e.Commit(puzzle.RowMove(2, -1))
	if err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	if res.Steps != 1 || !res.Halted {
		t.Errorf("chain under the count rule should halt after one step, got steps=%d halted=%v", res.Steps, res.Halted)
	}

	// Playing must not touch the loaded level.
	if lvl.Grid.String() != "RYY\nRBG\nGRB" {
		t.Errorf("level grid changed:\n%s", lvl.Grid)
	}

	strict, err := lvl.NewEngine(puzzle.Options{StopRule: puzzle.StopOnEqualPositions})
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	res, err = strict.Commit(puzzle.RowMove(2, -1))
	if err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	if res.Steps != 2 || res.Halted {
		t.Errorf("chain under the positions rule should settle in two steps, got steps=%d halted=%v", res.Steps, res.Halted)
	}
}

func TestLoaderDirectory(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "pack")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}

	files := map[string]string{
		filepath.Join(dir, "b.yaml"):    "id: b\nrows: [RGB, GBR, BRG]",
		filepath.Join(sub, "a.yml"):     "id: a\nrows: [RGBY, GBRY, BRGP]",
		filepath.Join(dir, "bad.yaml"):  "id: bad\nrows: [RG, GBR]",
		filepath.Join(dir, "notes.txt"): "not a level",
	}
	for path, content := range files {
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}
	}

	loader := NewLoader(dir)
	ids, err := loader.ListIDs()
	if err != nil {
		t.Fatalf("ListIDs failed: %v", err)
	}
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "b" {
		t.Errorf("ListIDs = %v, want [a b]", ids)
	}

	lvl, err := loader.LoadByID("a")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	if lvl.Width() != 4 {
		t.Errorf("width = %d, want 4", lvl.Width())
	}
	if lvl.FilePath != filepath.Join(dir, "pack", "a.yml") {
		t.Errorf("FilePath = %q", lvl.FilePath)
	}

	if _, err := loader.LoadByID("missing"); err == nil {
		t.Error("LoadByID should fail for unknown IDs")
	}
}

func TestResolve(t *testing.T) {
	lvl, err := Resolve("diagonal")
	if err != nil {
		t.Fatalf("Resolve(diagonal) failed: %v", err)
	}
	if lvl.ID != "diagonal" {
		t.Errorf("Resolve returned %q", lvl.ID)
	}

	path := filepath.Join(t.TempDir(), "mine.yaml")
	if err := os.WriteFile(path, []byte("id: mine\nrows: [RGB, GBR, BRG]"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	lvl, err = Resolve(path)
	if err != nil {
		t.Fatalf("Resolve(path) failed: %v", err)
	}
	if lvl.ID != "mine" || lvl.FilePath != path {
		t.Errorf("Resolve(path) = id %q path %q", lvl.ID, lvl.FilePath)
	}

	if _, err := Resolve("nope"); err == nil {
		t.Error("Resolve should fail for unknown references")
	}
}
