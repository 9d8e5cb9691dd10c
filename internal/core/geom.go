// Package core provides fundamental types shared by the engine and its drivers.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "fmt"

// Position is a zero-indexed board coordinate. Row 0 is the bottom row.
type Position struct {
	Column int
	Row    int
}

// Pos creates a new position.
func Pos(column, row int) Position {
	return Position{Column: column, Row: row}
}

// String formats the position as (column,row).
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Column, p.Row)
}

// In returns true if the position lies inside a columns x rows board.
func (p Position) In(columns, rows int) bool {
	return p.Column >= 0 && p.Column < columns && p.Row >= 0 && p.Row < rows
}

// Step returns the position n steps away along the orientation.
// Negative n walks the opposite direction.
func (p Position) Step(o Orientation, n int) Position {
	return Position{Column: p.Column + o.DCol*n, Row: p.Row + o.DRow*n}
}

// Orientation is an undirected line through the board, given by one of its
// two unit directions.
type Orientation struct {
	DCol, DRow int
}

// The four line orientations a streak can follow.
var (
	Horizontal   = Orientation{DCol: 1, DRow: 0}
	Vertical     = Orientation{DCol: 0, DRow: 1}
	DiagonalUp   = Orientation{DCol: 1, DRow: 1}  // bottom-left to top-right
	DiagonalDown = Orientation{DCol: 1, DRow: -1} // top-left to bottom-right
)

// Orientations lists every line orientation in a fixed order.
func Orientations() [4]Orientation {
	return [4]Orientation{Horizontal, Vertical, DiagonalUp, DiagonalDown}
}

// String returns a human-readable name for the orientation.
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case DiagonalUp:
		return "diagonal /"
	case DiagonalDown:
		return `diagonal \`
	default:
		return "unknown"
	}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
