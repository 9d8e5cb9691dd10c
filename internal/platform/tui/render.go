package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dropfour/internal/core"
	"github.com/vovakirdan/dropfour/internal/games/connect4"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
}

// Board runes.
const (
	runePiece   = '●'
	runeWinning = '◉'
	runeEmpty   = '·'
	runeCursor  = '▼'
)

// Board layout. Each column is a three-cell slot followed by a divider.
const (
	slotWidth   = 4
	boardWidth  = core.Columns*slotWidth + 1
	boardHeight = core.Rows + 4 // cursor, top border, rows, bottom border, numbers
)

// slotX returns the screen column of the centre of a board column.
func slotX(column int) int {
	return column*slotWidth + slotWidth/2
}

// boardFrame describes what drawBoard should highlight.
type boardFrame struct {
	snap   connect4.Snapshot
	cursor int
	colors map[core.PlayerID]core.Color
}

// drawBoard draws the grid, the column cursor and the column numbers.
func drawBoard(s *core.Screen, f boardFrame) {
	s.Clear()

	if !f.snap.State.Terminal() {
		s.SetColored(slotX(f.cursor), 0, runeCursor, f.colors[f.snap.Active])
	}

	top := 1
	bottom := top + core.Rows + 1
	drawBorder(s, top, '┌', '┬', '┐')
	drawBorder(s, bottom, '└', '┴', '┘')

	for row := 0; row < core.Rows; row++ {
		y := bottom - 1 - row
		for column := 0; column <= core.Columns; column++ {
			s.SetColored(column*slotWidth, y, '│', core.ColorGray)
		}
		for column := 0; column < core.Columns; column++ {
			pos := core.Pos(column, row)
			cell := f.snap.Grid.CellAt(pos)
			switch {
			case cell.IsEmpty():
				s.SetColored(slotX(column), y, runeEmpty, core.ColorGray)
			case f.snap.OnWinningLine(pos):
				s.SetColored(slotX(column), y, runeWinning, f.colors[cell.Owner()])
			default:
				s.SetColored(slotX(column), y, runePiece, f.colors[cell.Owner()])
			}
		}
	}

	for column := 0; column < core.Columns; column++ {
		color := core.ColorGray
		if column == f.cursor && !f.snap.State.Terminal() {
			color = core.ColorWhite
		}
		s.DrawTextColored(slotX(column), bottom+1, strconv.Itoa(column+1), color)
	}
}

func drawBorder(s *core.Screen, y int, left, join, right rune) {
	for x := 0; x < boardWidth; x++ {
		r := '─'
		switch {
		case x == 0:
			r = left
		case x == boardWidth-1:
			r = right
		case x%slotWidth == 0:
			r = join
		}
		s.SetColored(x, y, r, core.ColorGray)
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
