package puzzle

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// Default board dimensions.
const (
	DefaultWidth  = 7
	DefaultHeight = 8
)

// Options configures an Engine. Zero values select the defaults.
type Options struct {
	Width    int          // Columns (default 7)
	Height   int          // Rows (default 8)
	Palette  []GemType    // Gem types in play (default AllGemTypes)
	Rand     RandomSource // Board generation and fallback spawns (default time-seeded)
	StopRule StopRule     // Cascade stop rule (default StopOnEqualCount)
	MaxSteps int          // Cascade step ceiling; 0 = DefaultMaxSteps, < 0 = none
	Logger   *log.Logger  // Debug/warn output (default discarded)
}

func (o Options) withDefaults() Options {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if len(o.Palette) == 0 {
		o.Palette = AllGemTypes()
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if o.StopRule == "" {
		o.StopRule = StopOnEqualCount
	}
	if o.MaxSteps == 0 {
		o.MaxSteps = DefaultMaxSteps
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}

// Engine owns the authoritative grid and the spawn queue.
//
// Evaluate and the read accessors never change state; Commit is the only
// mutating move entry point. The grid is never handed out directly, only as
// snapshots. An Engine is not safe for concurrent use.
type Engine struct {
	opts     Options
	grid     *Grid
	spawner  *Spawner
	resolver *Resolver
}

// New creates an engine with a freshly generated, match-free grid.
func New(opts Options) (*Engine, error) {
	opts = opts.withDefaults()

	grid, err := NewGrid(opts.Width, opts.Height, opts.Palette, opts.Rand)
	if err != nil {
		return nil, err
	}
	return newEngine(grid, opts)
}

// NewFromGrid creates an engine around a copy of an existing grid, e.g. a
// hand-authored puzzle. The grid's dimensions override opts.Width and
// opts.Height.
func NewFromGrid(g *Grid, opts Options) (*Engine, error) {
	opts.Width = g.Width()
	opts.Height = g.Height()
	opts = opts.withDefaults()
	return newEngine(g.Snapshot(), opts)
}

func newEngine(grid *Grid, opts Options) (*Engine, error) {
	spawner, err := NewSpawner(opts.Palette, opts.Rand)
	if err != nil {
		return nil, err
	}

	maxSteps := opts.MaxSteps
	if maxSteps < 0 {
		maxSteps = 0
	}

	return &Engine{
		opts:     opts,
		grid:     grid,
		spawner:  spawner,
		resolver: NewResolver(spawner, opts.StopRule, maxSteps, opts.Logger),
	}, nil
}

// Width returns the number of columns.
func (e *Engine) Width() int {
	return e.grid.Width()
}

// Height returns the number of rows.
func (e *Engine) Height() int {
	return e.grid.Height()
}

// Palette returns a copy of the gem types in play.
func (e *Engine) Palette() []GemType {
	p := make([]GemType, len(e.opts.Palette))
	copy(p, e.opts.Palette)
	return p
}

// Snapshot returns a deep copy of the authoritative grid.
func (e *Engine) Snapshot() *Grid {
	return e.grid.Snapshot()
}

// Evaluate returns the matches the move would produce, without touching
// the authoritative grid or the spawn queue.
func (e *Engine) Evaluate(m MoveAction) ([]Match, error) {
	moved, err := Apply(e.grid, m)
	if err != nil {
		return nil, err
	}
	return FindMatches(moved), nil
}

// Commit applies the moves to the authoritative grid and resolves the
// resulting cascade. On error the grid is unchanged.
func (e *Engine) Commit(moves ...MoveAction) (Resolution, error) {
	res, err := e.resolver.Resolve(e.grid, moves)
	if err != nil {
		return Resolution{}, err
	}

	e.opts.Logger.Debug("move committed",
		"moves", len(moves),
		"steps", res.Steps,
		"halted", res.Halted,
	)
	return res, nil
}

// AddPendingGems appends gem types to the spawn queue. Queued gems are used
// for replacements before any random draw.
func (e *Engine) AddPendingGems(types ...GemType) {
	e.spawner.Push(types...)
}

// PendingGems returns a copy of the spawn queue, next gem first.
func (e *Engine) PendingGems() []GemType {
	return e.spawner.Pending()
}

// Reset replaces the grid with a fresh match-free grid of the same size.
// The spawn queue is kept.
func (e *Engine) Reset() error {
	grid, err := NewGrid(e.grid.Width(), e.grid.Height(), e.opts.Palette, e.opts.Rand)
	if err != nil {
		return err
	}
	e.grid = grid
	return nil
}

// CandidateMoves lists every distinct non-trivial shift that would produce
// at least one match, rows first then columns, amounts ascending.
func (e *Engine) CandidateMoves() []MoveAction {
	var moves []MoveAction
	w, h := e.grid.Width(), e.grid.Height()

	for y := 0; y < h; y++ {
		for k := 1; k < w; k++ {
			if e.producesMatch(RowMove(y, k)) {
				moves = append(moves, RowMove(y, k))
			}
		}
	}
	for x := 0; x < w; x++ {
		for k := 1; k < h; k++ {
			if e.producesMatch(ColMove(x, k)) {
				moves = append(moves, ColMove(x, k))
			}
		}
	}
	return moves
}

func (e *Engine) producesMatch(m MoveAction) bool {
	matches, err := e.Evaluate(m)
	return err == nil && len(matches) > 0
}
