package core

// Board constants. Every component reads the dimensions from here instead of
// repeating the literals.
const (
	Columns      = 7 // Board width
	Rows         = 6 // Board height
	WinThreshold = 4 // Pieces in a line needed to win
)

// Cells returns the number of cells on a full board.
func Cells() int {
	return Columns * Rows
}
