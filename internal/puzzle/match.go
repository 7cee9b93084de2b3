package puzzle

import "sort"

// MinMatchLength is the shortest run of identical gems that explodes.
const MinMatchLength = 3

// Match is a run of at least MinMatchLength identical gems along one row or
// column, in scan order.
type Match []Pos

// Horizontal returns true if every position of the match shares a row.
func (m Match) Horizontal() bool {
	return len(m) > 1 && m[0].Y == m[len(m)-1].Y
}

// FindMatches scans the grid for runs of three or more identical gems.
//
// Rows are scanned top to bottom, each left to right, then columns left to
// right, each top to bottom. A maximal run is reported once and scanning
// continues after it, so matches never overlap within one axis. A gem may be
// part of one horizontal and one vertical match at the same time.
func FindMatches(g *Grid) []Match {
	var matches []Match

	for y := 0; y < g.h; y++ {
		start := 0
		for x := 1; x <= g.w; x++ {
			if x < g.w && g.at(x, y).Equal(g.at(start, y)) {
				continue
			}
			if x-start >= MinMatchLength {
				run := make(Match, 0, x-start)
				for i := start; i < x; i++ {
					run = append(run, P(i, y))
				}
				matches = append(matches, run)
			}
			start = x
		}
	}

	for x := 0; x < g.w; x++ {
		start := 0
		for y := 1; y <= g.h; y++ {
			if y < g.h && g.at(x, y).Equal(g.at(x, start)) {
				continue
			}
			if y-start >= MinMatchLength {
				run := make(Match, 0, y-start)
				for i := start; i < y; i++ {
					run = append(run, P(x, i))
				}
				matches = append(matches, run)
			}
			start = y
		}
	}

	return matches
}

// MatchedPositions returns the union of all match positions with duplicates
// removed, ordered by column then row.
func MatchedPositions(matches []Match) []Pos {
	seen := make(map[Pos]bool)
	var positions []Pos
	for _, m := range matches {
		for _, p := range m {
			if seen[p] {
				continue
			}
			seen[p] = true
			positions = append(positions, p)
		}
	}

	sort.Slice(positions, func(i, j int) bool {
		if positions[i].X != positions[j].X {
			return positions[i].X < positions[j].X
		}
		return positions[i].Y < positions[j].Y
	})
	return positions
}

// HasMatch returns true if the grid contains at least one match.
func HasMatch(g *Grid) bool {
	return len(FindMatches(g)) > 0
}
