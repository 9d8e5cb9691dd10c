// Package connect4 implements the board and rules of a two-player
// gravity-fed four-in-a-row game. It performs no I/O; drivers render the
// board and collect input on their own.
package connect4

import (
	"fmt"

	"github.com/vovakirdan/dropfour/internal/core"
)

// Cell is a single board slot. The zero value is an empty cell.
type Cell struct {
	owner core.PlayerID
}

// Empty is the unoccupied cell.
var Empty = Cell{}

// CellOf returns a cell occupied by player.
func CellOf(player core.PlayerID) Cell {
	return Cell{owner: player}
}

// IsEmpty returns true if no piece occupies the cell.
func (c Cell) IsEmpty() bool {
	return c.owner == core.NoPlayer
}

// Owner returns the player occupying the cell, or core.NoPlayer.
func (c Cell) Owner() core.PlayerID {
	return c.owner
}

// Grid is the board, stored column-major: g[column][row], row 0 at the bottom.
//
// Within any column the occupied cells always form an unbroken run starting
// at row 0. Place is the only mutation and keeps that invariant.
type Grid [core.Columns][core.Rows]Cell

// Columns returns the board width.
func (g *Grid) Columns() int {
	return core.Columns
}

// Rows returns the board height.
func (g *Grid) Rows() int {
	return core.Rows
}

func validColumn(column int) bool {
	return column >= 0 && column < core.Columns
}

// Place drops a piece for player into column. The piece settles on the lowest
// empty row, and the position it landed on is returned. On error nothing is
// written.
func (g *Grid) Place(column int, player core.PlayerID) (core.Position, error) {
	if !validColumn(column) {
		return core.Position{}, fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidColumn, column, core.Columns)
	}
	if !player.Valid() {
		return core.Position{}, fmt.Errorf("%w: %v", ErrUnknownPlayer, player)
	}

	for row := 0; row < core.Rows; row++ {
		if g[column][row].IsEmpty() {
			g[column][row] = CellOf(player)
			return core.Pos(column, row), nil
		}
	}

	return core.Position{}, fmt.Errorf("%w: column %d", ErrColumnFull, column)
}

// ColumnHeight returns the number of pieces in column, which is also the row
// the next piece would land on. Out-of-range columns report 0.
func (g *Grid) ColumnHeight(column int) int {
	if !validColumn(column) {
		return 0
	}
	height := 0
	for row := 0; row < core.Rows; row++ {
		if g[column][row].IsEmpty() {
			break
		}
		height++
	}
	return height
}

// IsColumnFull returns true if column can take no more pieces.
// An out-of-range column can never take a piece, so it reports full.
func (g *Grid) IsColumnFull(column int) bool {
	if !validColumn(column) {
		return true
	}
	// Gravity keeps the top row the last one filled.
	return !g[column][core.Rows-1].IsEmpty()
}

// IsFull returns true when every column is full.
func (g *Grid) IsFull() bool {
	for column := 0; column < core.Columns; column++ {
		if !g.IsColumnFull(column) {
			return false
		}
	}
	return true
}

// ValidColumns returns the columns that can still take a piece, in ascending order.
func (g *Grid) ValidColumns() []int {
	columns := make([]int, 0, core.Columns)
	for column := 0; column < core.Columns; column++ {
		if !g.IsColumnFull(column) {
			columns = append(columns, column)
		}
	}
	return columns
}

// CellAt returns the cell at pos. Positions off the board read as Empty.
func (g *Grid) CellAt(pos core.Position) Cell {
	if !pos.In(core.Columns, core.Rows) {
		return Empty
	}
	return g[pos.Column][pos.Row]
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() Grid {
	return *g
}
