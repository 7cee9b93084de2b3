package tui

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gemshift/internal/config"
	"github.com/vovakirdan/gemshift/internal/levels"
	"github.com/vovakirdan/gemshift/internal/puzzle"
	"github.com/vovakirdan/gemshift/internal/storage"
)

// State is the input state of the play screen.
type State int

const (
	// StateIdle accepts cursor movement and starts a shift.
	StateIdle State = iota
	// StateShifting previews a pending shift on one line.
	StateShifting
	// StateExploding animates a committed cascade; input is ignored.
	StateExploding
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateShifting:
		return "shifting"
	case StateExploding:
		return "exploding"
	default:
		return "unknown"
	}
}

// Options configures a play model.
type Options struct {
	Config  config.Config
	Level   *levels.Level  // Nil plays a random board
	Store   *storage.Store // Nil disables the commit journal
	Session string         // Journal session name
	Seed    int64          // 0 = time-based
	Logger  *log.Logger

	// Menu is set when a session menu waits behind the board. Esc while
	// idle returns to it; without a menu Esc only cancels a shift.
	Menu bool
}

// Model is the Bubble Tea model for one GemShift board.
type Model struct {
	opts    Options
	engine  *puzzle.Engine
	preview *rand.Rand // Draws the gems queued for the next-gems preview
	logger  *log.Logger
	keys    KeyMap
	help    help.Model

	state  State
	cursor puzzle.Pos
	axis   puzzle.Axis // Axis of the pending shift
	amount int         // Pending shift amount, reduced modulo the line length

	board     *puzzle.Grid // Grid being rendered
	exploding map[puzzle.Pos]bool
	phases    []puzzle.Phase // Steps still to animate
	ticksLeft int

	status     string
	warn       bool
	commits    int
	width      int
	height     int
	quitting   bool
	backToMenu bool
}

// NewModel creates a play model with a fresh engine.
func NewModel(opts Options) (Model, error) {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Session == "" {
		opts.Session = fmt.Sprintf("local-%d", time.Now().UnixNano())
	}

	engineOpts, err := opts.Config.EngineOptions()
	if err != nil {
		return Model{}, err
	}
	engineOpts.Rand = rand.New(rand.NewSource(opts.Seed))
	engineOpts.Logger = opts.Logger

	var engine *puzzle.Engine
	if opts.Level != nil {
		engine, err = opts.Level.NewEngine(engineOpts)
	} else {
		engine, err = puzzle.New(engineOpts)
	}
	if err != nil {
		return Model{}, err
	}

	m := Model{
		opts:    opts,
		engine:  engine,
		preview: rand.New(rand.NewSource(opts.Seed + 1)),
		logger:  opts.Logger,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
	m.topUpPreview()
	m.board = engine.Snapshot()
	m.syncKeys()
	return m, nil
}

// Init implements tea.Model. Ticks only run while a cascade animates.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	switch action {
	case ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.state == StateExploding {
		return m, nil
	}

	switch action {
	case ActionUp:
		m.moveCursor(0, -1)
	case ActionDown:
		m.moveCursor(0, 1)
	case ActionLeft:
		m.moveCursor(-1, 0)
	case ActionRight:
		m.moveCursor(1, 0)
	case ActionShiftRowLeft:
		m.shift(puzzle.AxisRow, -1)
	case ActionShiftRowRight:
		m.shift(puzzle.AxisRow, 1)
	case ActionShiftColUp:
		m.shift(puzzle.AxisCol, -1)
	case ActionShiftColDown:
		m.shift(puzzle.AxisCol, 1)
	case ActionCommit:
		return m.commit()
	case ActionCancel:
		if m.state == StateShifting {
			m.cancelShift()
			m.setStatus("move cancelled", false)
		} else if m.opts.Menu {
			m.backToMenu = true
		}
	case ActionHint:
		m.hint()
	case ActionReset:
		m.reset()
	}

	m.syncKeys()
	return m, nil
}

// moveCursor moves the cursor while idle, clamped to the board.
func (m *Model) moveCursor(dx, dy int) {
	if m.state != StateIdle {
		return
	}
	x := min(max(m.cursor.X+dx, 0), m.engine.Width()-1)
	y := min(max(m.cursor.Y+dy, 0), m.engine.Height()-1)
	m.cursor = puzzle.P(x, y)
}

// shift extends the pending shift. A gesture moves one line only, so a key
// on the other axis is ignored until the shift is committed or cancelled.
func (m *Model) shift(axis puzzle.Axis, delta int) {
	if m.state == StateShifting && m.axis != axis {
		return
	}

	n := m.engine.Width()
	if axis == puzzle.AxisCol {
		n = m.engine.Height()
	}

	m.axis = axis
	m.amount = ((m.amount+delta)%n + n) % n
	if m.amount == 0 {
		m.cancelShift()
		return
	}

	m.state = StateShifting
	m.status = ""
	m.refreshPreview()
}

// pendingMove returns the move the current gesture describes, using the
// shortest signed amount.
func (m Model) pendingMove() puzzle.MoveAction {
	if m.axis == puzzle.AxisCol {
		return puzzle.ColMove(m.cursor.X, signedAmount(m.amount, m.engine.Height()))
	}
	return puzzle.RowMove(m.cursor.Y, signedAmount(m.amount, m.engine.Width()))
}

func signedAmount(amount, n int) int {
	if amount > n/2 {
		return amount - n
	}
	return amount
}

// refreshPreview renders the pending move on a snapshot.
func (m *Model) refreshPreview() {
	moved, err := puzzle.Apply(m.engine.Snapshot(), m.pendingMove())
	if err != nil {
		m.logger.Error("preview failed", "move", m.pendingMove(), "error", err)
		m.cancelShift()
		return
	}
	m.board = moved
}

// cancelShift reverts the preview to the authoritative grid.
func (m *Model) cancelShift() {
	m.state = StateIdle
	m.amount = 0
	m.axis = ""
	m.board = m.engine.Snapshot()
}

// commit evaluates the pending move and commits it if it matches.
func (m Model) commit() (tea.Model, tea.Cmd) {
	if m.state != StateShifting {
		return m, nil
	}

	move := m.pendingMove()
	matches, err := m.engine.Evaluate(move)
	if err != nil {
		m.logger.Error("evaluate failed", "move", move, "error", err)
		m.cancelShift()
		m.syncKeys()
		return m, nil
	}
	if len(matches) == 0 {
		m.cancelShift()
		m.setStatus(fmt.Sprintf("%s makes no match, reverted", move), false)
		m.syncKeys()
		return m, nil
	}

	before := m.board
	res, err := m.engine.Commit(move)
	if err != nil {
		m.logger.Error("commit failed", "move", move, "error", err)
		m.cancelShift()
		m.syncKeys()
		return m, nil
	}
	m.commits++
	m.record(move, res)
	m.topUpPreview()

	removed := 0
	for _, phase := range res.History {
		removed += len(phase.Removed)
	}
	if res.Halted {
		m.setStatus(fmt.Sprintf("%s cleared %d gems, cascade halted after %d steps", move, removed, res.Steps), true)
	} else {
		m.setStatus(fmt.Sprintf("%s cleared %d gems in %d steps", move, removed, res.Steps), false)
	}

	m.amount = 0
	m.axis = ""
	m.board = before
	m.phases = res.History
	m.state = StateExploding
	m.startPhase()
	m.syncKeys()
	return m, tickCmd(m.opts.Config.UI.TickRate)
}

// startPhase highlights the next step's cleared gems.
func (m *Model) startPhase() {
	m.exploding = make(map[puzzle.Pos]bool, len(m.phases[0].Removed))
	for _, p := range m.phases[0].Removed {
		m.exploding[p] = true
	}
	m.ticksLeft = max(m.opts.Config.UI.ExplodeTicks, 1)
}

// handleTick advances the explosion animation.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.state != StateExploding {
		return m, nil
	}

	m.ticksLeft--
	if m.ticksLeft > 0 {
		return m, tickCmd(m.opts.Config.UI.TickRate)
	}

	// Show the grid after this step's replacements land.
	m.board = puzzle.ReplayPhase(m.board, m.phases[0])
	m.phases = m.phases[1:]
	if len(m.phases) > 0 {
		m.startPhase()
		return m, tickCmd(m.opts.Config.UI.TickRate)
	}

	m.exploding = nil
	m.state = StateIdle
	m.board = m.engine.Snapshot()
	m.syncKeys()
	return m, nil
}

// hint loads the first candidate move as the pending shift.
func (m *Model) hint() {
	if m.state == StateShifting {
		m.cancelShift()
	}
	moves := m.engine.CandidateMoves()
	if len(moves) == 0 {
		m.setStatus("no move makes a match, press r for a new board", true)
		return
	}

	first := moves[0]
	if first.Axis == puzzle.AxisCol {
		m.cursor = puzzle.P(first.Index, m.cursor.Y)
		m.amount = first.Amount % m.engine.Height()
	} else {
		m.cursor = puzzle.P(m.cursor.X, first.Index)
		m.amount = first.Amount % m.engine.Width()
	}
	m.axis = first.Axis
	m.state = StateShifting
	m.refreshPreview()
	m.setStatus(fmt.Sprintf("hint: %s (%d candidate moves)", m.pendingMove(), len(moves)), false)
}

// reset starts over: a level reloads its grid, a random board is regenerated.
func (m *Model) reset() {
	if m.opts.Level != nil {
		next, err := NewModel(m.opts)
		if err != nil {
			m.setStatus(err.Error(), true)
			return
		}
		next.width, next.height, next.help = m.width, m.height, m.help
		next.commits = m.commits
		*m = next
		m.setStatus("level restarted", false)
		return
	}

	if err := m.engine.Reset(); err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	m.cancelShift()
	m.setStatus("new board", false)
}

// topUpPreview keeps the spawn queue filled to the configured preview size.
func (m *Model) topUpPreview() {
	palette := m.engine.Palette()
	missing := m.opts.Config.Spawn.Preview - len(m.engine.PendingGems())
	for range max(missing, 0) {
		m.engine.AddPendingGems(palette[m.preview.Intn(len(palette))])
	}
}

// record journals a commit. Journal errors never interrupt play.
func (m *Model) record(move puzzle.MoveAction, res puzzle.Resolution) {
	if m.opts.Store == nil {
		return
	}
	level := ""
	if m.opts.Level != nil {
		level = m.opts.Level.ID
	}
	if _, err := m.opts.Store.RecordCommit(m.opts.Session, level, []puzzle.MoveAction{move}, res); err != nil {
		m.logger.Warn("could not record commit", "error", err)
	}
}

func (m *Model) setStatus(text string, warn bool) {
	m.status = text
	m.warn = warn
}

// syncKeys enables the bindings that mean something in the current state,
// which also keeps the help line honest.
func (m *Model) syncKeys() {
	idle := m.state == StateIdle
	shifting := m.state == StateShifting
	active := idle || shifting

	m.keys.Up.SetEnabled(idle)
	m.keys.Down.SetEnabled(idle)
	m.keys.Left.SetEnabled(idle)
	m.keys.Right.SetEnabled(idle)
	m.keys.ShiftRowLeft.SetEnabled(active && m.axis != puzzle.AxisCol)
	m.keys.ShiftRowRight.SetEnabled(active && m.axis != puzzle.AxisCol)
	m.keys.ShiftColUp.SetEnabled(active && m.axis != puzzle.AxisRow)
	m.keys.ShiftColDown.SetEnabled(active && m.axis != puzzle.AxisRow)
	m.keys.Commit.SetEnabled(shifting)
	m.keys.Cancel.SetEnabled(shifting || (idle && m.opts.Menu))
	m.keys.Hint.SetEnabled(active)
	m.keys.Reset.SetEnabled(active)
}

// View renders the play screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	title := fmt.Sprintf("G E M S H I F T   %dx%d", m.engine.Width(), m.engine.Height())
	if m.opts.Level != nil {
		title = fmt.Sprintf("G E M S H I F T   %s", m.opts.Level.Name)
	}

	selected := puzzle.Axis("")
	if m.state == StateShifting {
		selected = m.axis
	}
	board := renderBoard(boardView{
		grid:      m.board,
		cursor:    m.cursor,
		selected:  selected,
		exploding: m.exploding,
	})

	var info strings.Builder
	fmt.Fprintf(&info, "%s %s\n", dimStyle.Render("next:"), renderQueue(m.engine.PendingGems()))
	fmt.Fprintf(&info, "%s %d\n", dimStyle.Render("commits:"), m.commits)
	if m.state == StateShifting {
		fmt.Fprintf(&info, "%s %s\n", dimStyle.Render("move:"), m.pendingMove())
	} else {
		fmt.Fprintf(&info, "%s %s\n", dimStyle.Render("state:"), m.state)
	}

	status := statusStyle.Render(m.status)
	if m.warn {
		status = warnStyle.Render(m.status)
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, board, "  ", info.String())
	view := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		"",
		body,
		status,
		"",
		m.help.View(m.keys),
	)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}

// State returns the current input state.
func (m Model) State() State {
	return m.state
}

// Board returns the grid currently shown, including any pending preview.
func (m Model) Board() *puzzle.Grid {
	return m.board.Snapshot()
}

// Engine returns the authoritative engine.
func (m Model) Engine() *puzzle.Engine {
	return m.engine
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with a new play model.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
