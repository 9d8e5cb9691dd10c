package connect4

import "github.com/vovakirdan/dropfour/internal/core"

// countFrom walks away from pos along o in direction sign (+1 or -1) and
// counts consecutive cells owned by owner. The walk stops at the first
// mismatch, empty cell or board edge.
func (g *Grid) countFrom(pos core.Position, o core.Orientation, sign int, owner core.PlayerID) int {
	count := 0
	for next := pos.Step(o, sign); next.In(core.Columns, core.Rows); next = next.Step(o, sign) {
		if g.CellAt(next).Owner() != owner {
			break
		}
		count++
	}
	return count
}

// streakAlong returns how many pieces behind and ahead of pos continue the
// run of pos's owner along o. ok is false when pos is empty or off the board.
func (g *Grid) streakAlong(pos core.Position, o core.Orientation) (back, ahead int, ok bool) {
	cell := g.CellAt(pos)
	if cell.IsEmpty() {
		return 0, 0, false
	}
	owner := cell.Owner()
	return g.countFrom(pos, o, -1, owner), g.countFrom(pos, o, 1, owner), true
}

// StreakLength returns the length of the run through pos along o,
// counting pos itself. Empty or off-board positions return 0.
func (g *Grid) StreakLength(pos core.Position, o core.Orientation) int {
	back, ahead, ok := g.streakAlong(pos, o)
	if !ok {
		return 0
	}
	return 1 + back + ahead
}

// LongestStreakThrough returns the longest same-owner run through pos over
// the four line orientations.
//
// It is meant to be asked about the piece just placed: a new win can only
// run through that piece, so this is a complete win check only under the
// assumption that the board held no win before the move.
func (g *Grid) LongestStreakThrough(pos core.Position) int {
	longest := 0
	for _, o := range core.Orientations() {
		longest = max(longest, g.StreakLength(pos, o))
	}
	return longest
}

// HasWinningStreak reports whether pos is part of a run of at least
// core.WinThreshold pieces.
func (g *Grid) HasWinningStreak(pos core.Position) bool {
	return g.LongestStreakThrough(pos) >= core.WinThreshold
}

// WinningLine returns the positions of the first run through pos that
// reaches core.WinThreshold, ordered along its orientation, or nil.
func (g *Grid) WinningLine(pos core.Position) []core.Position {
	for _, o := range core.Orientations() {
		back, ahead, ok := g.streakAlong(pos, o)
		if !ok {
			return nil
		}
		if 1+back+ahead < core.WinThreshold {
			continue
		}
		line := make([]core.Position, 0, 1+back+ahead)
		for n := -back; n <= ahead; n++ {
			line = append(line, pos.Step(o, n))
		}
		return line
	}
	return nil
}
