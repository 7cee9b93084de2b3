package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Loader handles loading levels from a file tree.
type Loader struct {
	fsys fs.FS
	root string // Display prefix for FilePath; empty for built-ins
}

// NewLoader creates a loader reading levels below a directory.
func NewLoader(root string) *Loader {
	return &Loader{fsys: os.DirFS(root), root: root}
}

// Builtin returns a loader over the levels compiled into the binary.
func Builtin() *Loader {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		// Only fails for an invalid path literal.
		panic(err)
	}
	return &Loader{fsys: sub}
}

// LoadAll recursively scans and loads all level files.
// Returns levels sorted by ID for deterministic ordering.
// Files that fail to parse are skipped.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		if !isSupportedExtension(strings.ToLower(path.Ext(p))) {
			return nil
		}

		level, err := l.LoadFile(p)
		if err != nil {
			// Skip invalid files
			return nil
		}

		levels = append(levels, level)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("levels: walking %s: %w", l.describe(), err)
	}

	// Sort by ID for determinism
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}

// LoadFile loads a single level file, relative to the loader root.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return Level{}, fmt.Errorf("levels: reading %s: %w", p, err)
	}

	level, err := ParseYAML(data)
	if err != nil {
		return Level{}, fmt.Errorf("levels: parsing %s: %w", p, err)
	}

	if l.root != "" {
		level.FilePath = path.Join(l.root, p)
	}
	return level, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("levels: level not found: %s", id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// Resolve finds a level by reference: a path to a level file on disk, or
// the ID of a built-in level.
func Resolve(ref string) (Level, error) {
	if isSupportedExtension(strings.ToLower(path.Ext(ref))) {
		if _, err := os.Stat(ref); err == nil {
			data, err := os.ReadFile(ref)
			if err != nil {
				return Level{}, fmt.Errorf("levels: reading %s: %w", ref, err)
			}
			level, err := ParseYAML(data)
			if err != nil {
				return Level{}, fmt.Errorf("levels: parsing %s: %w", ref, err)
			}
			level.FilePath = ref
			return level, nil
		}
	}
	return Builtin().LoadByID(ref)
}

func (l *Loader) describe() string {
	if l.root == "" {
		return "built-in levels"
	}
	return l.root
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
