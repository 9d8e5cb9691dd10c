package connect4

import "github.com/vovakirdan/dropfour/internal/core"

// Snapshot captures the complete match state for rendering and comparison.
// It shares no memory with the match.
type Snapshot struct {
	Grid        Grid
	Active      core.PlayerID
	State       State
	Winner      core.PlayerID
	LastMove    core.Position
	HasLastMove bool
	Moves       int
	WinningLine []core.Position // Set only when State is StateWon
}

// Snapshot returns the current match snapshot.
func (m *Match) Snapshot() Snapshot {
	s := Snapshot{
		Grid:        m.grid.Clone(),
		Active:      m.active,
		State:       m.state,
		Winner:      m.winner,
		LastMove:    m.lastMove,
		HasLastMove: m.hasLast,
		Moves:       m.moves,
	}
	if m.state == StateWon {
		s.WinningLine = m.grid.WinningLine(m.lastMove)
	}
	return s
}

// OnWinningLine returns true if pos belongs to the highlighted winning run.
func (s Snapshot) OnWinningLine(pos core.Position) bool {
	for _, p := range s.WinningLine {
		if p == pos {
			return true
		}
	}
	return false
}
