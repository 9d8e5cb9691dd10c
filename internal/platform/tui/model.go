package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dropfour/internal/config"
	"github.com/vovakirdan/dropfour/internal/core"
	"github.com/vovakirdan/dropfour/internal/games/connect4"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	resultStyle = lipgloss.NewStyle().Bold(true)
)

// Model is the Bubble Tea model for a hot-seat match: both players share one
// keyboard and take turns moving the same cursor.
type Model struct {
	match    *connect4.Match
	cfg      config.Config
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	colors   map[core.PlayerID]core.Color
	cursor   int
	notice   string // Why the last key was rejected
	quitting bool
}

// NewModel creates a Bubble Tea model playing match with the given config.
func NewModel(match *connect4.Match, cfg config.Config) Model {
	colors := make(map[core.PlayerID]core.Color, 2)
	for _, p := range match.Rotation() {
		colors[p] = cfg.PlayerColor(p)
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		match:  match,
		cfg:    cfg,
		screen: core.NewScreen(boardWidth, boardHeight),
		keys:   DefaultKeyMap(),
		help:   h,
		colors: colors,
		cursor: core.Columns / 2,
	}
}

// Init initializes the model. The match is driven by key presses only.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Restart):
		if m.match.State().Terminal() {
			m.match.Reset()
			m.cursor = core.Columns / 2
			m.notice = ""
		}

	case key.Matches(msg, m.keys.Left):
		m.cursor = core.Clamp(m.cursor-1, 0, core.Columns-1)
		m.notice = ""

	case key.Matches(msg, m.keys.Right):
		m.cursor = core.Clamp(m.cursor+1, 0, core.Columns-1)
		m.notice = ""

	case key.Matches(msg, m.keys.Drop):
		m.drop(m.cursor)

	case key.Matches(msg, m.keys.Column):
		if column, ok := columnKey(msg); ok {
			m.cursor = column
			m.drop(column)
		}
	}

	return m, nil
}

// drop submits a move in column for the active player.
func (m *Model) drop(column int) {
	if _, err := m.match.SubmitMove(column); err != nil {
		m.notice = describe(err)
		return
	}
	m.notice = ""
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.match.Snapshot()
	drawBoard(m.screen, boardFrame{snap: snap, cursor: m.cursor, colors: m.colors})

	var b strings.Builder
	b.WriteString(titleStyle.Render("DROP FOUR"))
	b.WriteString("\n\n")
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n\n")
	b.WriteString(m.status(snap))
	b.WriteString("\n")
	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice))
	}
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// status describes whose turn it is or how the match ended.
func (m Model) status(snap connect4.Snapshot) string {
	switch snap.State {
	case connect4.StateWon:
		return resultStyle.Inherit(m.playerStyle(snap.Winner)).
			Render(fmt.Sprintf("%s wins!", m.name(snap.Winner))) +
			helpStyle.Render("  press r for a rematch")
	case connect4.StateDrawn:
		return resultStyle.Render("The board is full. It's a draw!") +
			helpStyle.Render("  press r for a rematch")
	default:
		return m.playerStyle(snap.Active).Render(fmt.Sprintf("%s to move", m.name(snap.Active)))
	}
}

func (m Model) playerStyle(p core.PlayerID) lipgloss.Style {
	style, ok := colorStyles[m.colors[p]]
	if !ok {
		return colorStyles[core.ColorDefault]
	}
	return style
}

func (m Model) name(p core.PlayerID) string {
	if name := m.cfg.Player(p).Name; name != "" {
		return name
	}
	return p.String()
}

// Cursor returns the selected column.
func (m Model) Cursor() int {
	return m.cursor
}

// Notice returns the message for the last rejected move, if any.
func (m Model) Notice() string {
	return m.notice
}

// Match returns the match being played.
func (m Model) Match() *connect4.Match {
	return m.match
}

// describe turns a rejected move into a message for the player.
func describe(err error) string {
	switch {
	case errors.Is(err, connect4.ErrColumnFull):
		return "That column is full, pick another one."
	case errors.Is(err, connect4.ErrMatchOver):
		return "The match is over. Press r for a rematch."
	case errors.Is(err, connect4.ErrInvalidColumn):
		return "That column is not on the board."
	default:
		return err.Error()
	}
}

// Run starts the Bubble Tea program for match and blocks until the player
// quits. It returns the state the match was left in.
func Run(match *connect4.Match, cfg config.Config) (connect4.State, error) {
	p := tea.NewProgram(NewModel(match, cfg), tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return match.State(), fmt.Errorf("tui: %w", err)
	}
	return match.State(), nil
}
