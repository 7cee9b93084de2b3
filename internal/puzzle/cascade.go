package puzzle

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// DefaultMaxSteps caps the number of explode-and-replace steps one commit may run.
const DefaultMaxSteps = 100

// StopRule decides when a cascade is considered stuck.
type StopRule string

const (
	// StopOnEqualCount halts the cascade when a step leaves exactly as many
	// matches as it removed. Two different match sets of equal size also
	// halt it.
	StopOnEqualCount StopRule = "count"

	// StopOnEqualPositions halts the cascade only when a step leaves matches
	// covering exactly the positions it removed.
	StopOnEqualPositions StopRule = "positions"
)

// ParseStopRule converts a config string to a StopRule. Empty means StopOnEqualCount.
func ParseStopRule(s string) (StopRule, error) {
	switch StopRule(s) {
	case "", StopOnEqualCount:
		return StopOnEqualCount, nil
	case StopOnEqualPositions:
		return StopOnEqualPositions, nil
	default:
		return "", fmt.Errorf("puzzle: unknown stop rule %q", s)
	}
}

// ColumnReplacement lists the gems entering one column, top first.
type ColumnReplacement struct {
	Column int
	Gems   []GemType
}

// Phase is one explode-and-replace step: the matches that exploded, the
// de-duplicated positions they cleared and the gems that refilled each
// affected column.
type Phase struct {
	Matches      []Match
	Removed      []Pos
	Replacements []ColumnReplacement
}

// IsNothingToDo returns true if the phase removed nothing.
func (p Phase) IsNothingToDo() bool {
	return len(p.Matches) == 0
}

// Resolution is the outcome of a committed move. The embedded Phase is the
// last step performed, which is what a renderer animates.
type Resolution struct {
	Phase

	Steps   int     // Explode-and-replace steps performed
	Halted  bool    // Stopped by a safety bound with matches still on the grid
	History []Phase // Every step, oldest first
}

// Resolver runs the explode-and-replace cascade on a grid.
type Resolver struct {
	spawner  *Spawner
	rule     StopRule
	maxSteps int
	logger   *log.Logger
}

// NewResolver creates a resolver drawing replacements from spawner.
// maxSteps <= 0 disables the step ceiling. A nil logger discards output.
func NewResolver(spawner *Spawner, rule StopRule, maxSteps int, logger *log.Logger) *Resolver {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if rule == "" {
		rule = StopOnEqualCount
	}
	return &Resolver{
		spawner:  spawner,
		rule:     rule,
		maxSteps: maxSteps,
		logger:   logger,
	}
}

// Resolve applies the moves to g in place and then explodes and refills
// until no match is left or a safety bound trips. If any move is invalid, g
// is left untouched and the error is returned.
func (r *Resolver) Resolve(g *Grid, moves []MoveAction) (Resolution, error) {
	for _, m := range moves {
		if err := m.Validate(g); err != nil {
			return Resolution{}, err
		}
	}
	for _, m := range moves {
		shift(g, m)
	}

	var res Resolution
	matches := FindMatches(g)

	for len(matches) > 0 {
		phase := r.explode(g, matches)
		res.Phase = phase
		res.History = append(res.History, phase)
		res.Steps++

		next := FindMatches(g)
		r.logger.Debug("cascade step",
			"step", res.Steps,
			"matches", len(matches),
			"removed", len(phase.Removed),
			"next", len(next),
		)

		if len(next) == 0 {
			break
		}
		if r.stuck(matches, next) || (r.maxSteps > 0 && res.Steps >= r.maxSteps) {
			res.Halted = true
			r.logger.Warn("cascade halted by safety bound",
				"rule", string(r.rule),
				"steps", res.Steps,
				"remaining", len(next),
			)
			break
		}
		matches = next
	}

	return res, nil
}

// stuck applies the stop rule to two consecutive non-empty match sets.
func (r *Resolver) stuck(prev, next []Match) bool {
	if r.rule == StopOnEqualPositions {
		a, b := MatchedPositions(prev), MatchedPositions(next)
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}
		return true
	}
	return len(prev) == len(next)
}

// explode removes every matched gem, draws replacements per column and
// stacks them on top of what is left. Columns draw in the order they first
// appear across matches: row runs top to bottom, then column runs.
func (r *Resolver) explode(g *Grid, matches []Match) Phase {
	removed := MatchedPositions(matches)

	var order []int
	seen := make(map[int]bool)
	for _, m := range matches {
		for _, p := range m {
			if !seen[p.X] {
				seen[p.X] = true
				order = append(order, p.X)
			}
		}
	}

	counts := make(map[int]int)
	cleared := make(map[Pos]bool, len(removed))
	for _, p := range removed {
		counts[p.X]++
		cleared[p] = true
	}

	replacements := make([]ColumnReplacement, 0, len(order))
	for _, x := range order {
		replacements = append(replacements, ColumnReplacement{
			Column: x,
			Gems:   r.spawner.Draw(counts[x]),
		})
	}

	for _, rep := range replacements {
		refill(g, rep, cleared)
	}

	return Phase{
		Matches:      matches,
		Removed:      removed,
		Replacements: replacements,
	}
}

// refill stacks a column's replacements on top of its surviving gems.
func refill(g *Grid, rep ColumnReplacement, cleared map[Pos]bool) {
	x := rep.Column
	col := make([]Gem, 0, g.h+len(rep.Gems))
	for _, t := range rep.Gems {
		col = append(col, NewGem(t))
	}
	for y, gem := range g.cols[x] {
		if !cleared[P(x, y)] {
			col = append(col, gem)
		}
	}
	if len(col) > g.h {
		col = col[:g.h]
	}
	g.cols[x] = col
}

// ReplayPhase returns a copy of g with the phase's explosion and refill
// applied. g must be the grid the phase was computed on; renderers use it to
// step through a Resolution's History.
func ReplayPhase(g *Grid, p Phase) *Grid {
	out := g.Snapshot()
	cleared := make(map[Pos]bool, len(p.Removed))
	for _, pos := range p.Removed {
		cleared[pos] = true
	}
	for _, rep := range p.Replacements {
		if rep.Column < 0 || rep.Column >= out.w {
			continue
		}
		refill(out, rep, cleared)
	}
	return out
}
