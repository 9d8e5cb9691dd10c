package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dropfour/internal/core"
	"github.com/vovakirdan/dropfour/internal/games/connect4"
)

// glyphWidth is the number of terminal columns reserved for a piece.
// Emoji glyphs take two.
const glyphWidth = 2

// Glyphs maps each player to the text drawn for its pieces.
type Glyphs map[core.PlayerID]string

// RenderBoard draws the grid as framed ASCII rows, top row first, with the
// 1-based column numbers underneath:
//
//	-----------------------------------
//	|    |    |    |    |    |    |    |
//	|----|----|----|----|----|----|----|
//	...
//	| X  | O  |    |    |    |    |    |
//	-----------------------------------
//	  1    2    3    4    5    6    7
func RenderBoard(g *connect4.Grid, glyphs Glyphs) string {
	columns, rows := g.Columns(), g.Rows()
	border := strings.Repeat("-----", columns) + "-"
	separator := strings.Repeat("|----", columns) + "|"

	var sb strings.Builder
	sb.WriteString(border)
	sb.WriteByte('\n')

	for row := rows - 1; row >= 0; row-- {
		for column := 0; column < columns; column++ {
			sb.WriteString("| ")
			sb.WriteString(cellText(g.CellAt(core.Pos(column, row)), glyphs))
			sb.WriteByte(' ')
		}
		sb.WriteString("|\n")
		if row > 0 {
			sb.WriteString(separator)
			sb.WriteByte('\n')
		}
	}

	sb.WriteString(border)
	sb.WriteByte('\n')
	for column := 0; column < columns; column++ {
		sb.WriteString(fmt.Sprintf("  %-3d", column+1))
	}
	return strings.TrimRight(sb.String(), " ")
}

// cellText pads the glyph to glyphWidth terminal columns.
func cellText(c connect4.Cell, glyphs Glyphs) string {
	if c.IsEmpty() {
		return strings.Repeat(" ", glyphWidth)
	}
	glyph := glyphs[c.Owner()]
	if glyph == "" {
		glyph = fmt.Sprint(c.Owner().Index() + 1)
	}
	if pad := glyphWidth - lipgloss.Width(glyph); pad > 0 {
		glyph += strings.Repeat(" ", pad)
	}
	return glyph
}
