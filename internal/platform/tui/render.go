package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gemshift/internal/puzzle"
)

// gemStyles maps gem types to lipgloss styles.
var gemStyles = map[puzzle.GemType]lipgloss.Style{
	puzzle.GemBlue:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	puzzle.GemGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	puzzle.GemPurple: lipgloss.NewStyle().Foreground(lipgloss.Color("135")),
	puzzle.GemRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	puzzle.GemYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
}

var (
	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true)
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	warnStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	explodeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	boardStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

const (
	cursorCellLeft  = "["
	cursorCellRight = "]"
)

// gemGlyph is drawn for every gem; color carries the type, the letter keeps
// boards readable without color.
func gemGlyph(t puzzle.GemType) string {
	style, ok := gemStyles[t]
	if !ok {
		style = lipgloss.NewStyle()
	}
	return style.Render(string(t.Char()))
}

// boardView describes what to draw on top of a grid.
type boardView struct {
	grid      *puzzle.Grid
	cursor    puzzle.Pos
	selected  puzzle.Axis // Empty when no line is selected
	exploding map[puzzle.Pos]bool
}

// onSelectedLine reports whether (x, y) lies on the line being shifted.
func (v boardView) onSelectedLine(x, y int) bool {
	switch v.selected {
	case puzzle.AxisRow:
		return y == v.cursor.Y
	case puzzle.AxisCol:
		return x == v.cursor.X
	}
	return false
}

// renderBoard draws the grid, top row first, three columns per gem.
func renderBoard(v boardView) string {
	var sb strings.Builder
	w, h := v.grid.Width(), v.grid.Height()

	for y := range h {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := range w {
			gem, _ := v.grid.Get(x, y)

			glyph := gemGlyph(gem.Type)
			if v.exploding[puzzle.P(x, y)] {
				glyph = explodeStyle.Render("*")
			}

			left, right := " ", " "
			switch {
			case x == v.cursor.X && y == v.cursor.Y:
				left, right = cursorCellLeft, cursorCellRight
			case v.onSelectedLine(x, y):
				left, right = dimStyle.Render("·"), dimStyle.Render("·")
			}

			sb.WriteString(left)
			sb.WriteString(glyph)
			sb.WriteString(right)
		}
	}
	return boardStyle.Render(sb.String())
}

// renderQueue draws the upcoming gems, next first.
func renderQueue(types []puzzle.GemType) string {
	if len(types) == 0 {
		return dimStyle.Render("-")
	}
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = gemGlyph(t)
	}
	return strings.Join(parts, " ")
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	textLen := lipgloss.Width(text)
	if textLen >= width {
		return text
	}
	padding := (width - textLen) / 2
	return strings.Repeat(" ", padding) + text
}
