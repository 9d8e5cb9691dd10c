package connect4

import (
	"fmt"

	"github.com/vovakirdan/dropfour/internal/core"
)

// State is the phase a match is in.
type State int

const (
	StateAwaitingMove State = iota // The active player must drop a piece
	StateWon                       // A winning streak ended the match
	StateDrawn                     // The board filled without a winner
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateAwaitingMove:
		return "awaiting move"
	case StateWon:
		return "won"
	case StateDrawn:
		return "drawn"
	default:
		return "unknown"
	}
}

// Terminal returns true for states that accept no further moves.
func (s State) Terminal() bool {
	return s == StateWon || s == StateDrawn
}

// MoveOutcome describes an accepted move.
type MoveOutcome struct {
	Player   core.PlayerID // Who made the move
	Position core.Position // Where the piece landed
	State    State         // Match state after the move
}

// Match owns one game: its grid, the turn order and the result.
//
// A Match is not safe for concurrent use. Separate matches share nothing and
// can run on separate goroutines; callers sharing one match must serialize
// access themselves.
type Match struct {
	grid     Grid
	rotation core.Rotation
	active   core.PlayerID
	state    State
	winner   core.PlayerID
	lastMove core.Position
	hasLast  bool
	moves    int
}

// Option configures a new match.
type Option func(*Match)

// WithRotation sets the turn order. Rotations that do not hold both players
// exactly once are ignored.
func WithRotation(r core.Rotation) Option {
	return func(m *Match) {
		if r.Valid() {
			m.rotation = r
		}
	}
}

// NewMatch creates a match on an empty grid.
func NewMatch(opts ...Option) *Match {
	m := &Match{rotation: core.DefaultRotation()}
	for _, opt := range opts {
		opt(m)
	}
	m.Reset()
	return m
}

// Reset clears the board for a rematch. The turn order is kept and the
// first player of the rotation moves first again.
func (m *Match) Reset() {
	m.grid = Grid{}
	m.active = m.rotation.First()
	m.state = StateAwaitingMove
	m.winner = core.NoPlayer
	m.lastMove = core.Position{}
	m.hasLast = false
	m.moves = 0
}

// SubmitMove drops a piece for the active player into column.
//
// The column is checked here before the grid is touched. On success the
// landing position becomes the last move, the win and draw checks run, and
// the turn passes to the other player unless the match just ended.
// Rejected moves change nothing.
func (m *Match) SubmitMove(column int) (MoveOutcome, error) {
	if m.state.Terminal() {
		return MoveOutcome{}, fmt.Errorf("%w: %s", ErrMatchOver, m.state)
	}
	if !validColumn(column) {
		return MoveOutcome{}, fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidColumn, column, core.Columns)
	}

	player := m.active
	pos, err := m.grid.Place(column, player)
	if err != nil {
		return MoveOutcome{}, err
	}

	m.lastMove = pos
	m.hasLast = true
	m.moves++

	switch {
	case m.grid.HasWinningStreak(pos):
		m.state = StateWon
		m.winner = player
	case m.grid.IsFull():
		m.state = StateDrawn
	default:
		m.active = m.rotation.Next(player)
	}

	return MoveOutcome{Player: player, Position: pos, State: m.state}, nil
}

// HasWinner reports whether the last placed piece completed a winning streak.
// Before the first move there is nothing to check and the answer is false.
func (m *Match) HasWinner() bool {
	if !m.hasLast {
		return false
	}
	return m.grid.HasWinningStreak(m.lastMove)
}

// Winner returns the winning player, or core.NoPlayer.
func (m *Match) Winner() core.PlayerID {
	return m.winner
}

// IsDraw reports whether the board filled up without a winner.
func (m *Match) IsDraw() bool {
	return m.state == StateDrawn
}

// State returns the current match state.
func (m *Match) State() State {
	return m.state
}

// ActivePlayer returns the player to move. Once the match is over it stays
// on the player who made the final move.
func (m *Match) ActivePlayer() core.PlayerID {
	return m.active
}

// Rotation returns the turn order.
func (m *Match) Rotation() core.Rotation {
	return m.rotation
}

// LastMove returns where the last accepted piece landed. ok is false before
// the first move.
func (m *Match) LastMove() (pos core.Position, ok bool) {
	return m.lastMove, m.hasLast
}

// MoveCount returns the number of accepted moves.
func (m *Match) MoveCount() int {
	return m.moves
}

// Grid returns a copy of the board.
func (m *Match) Grid() Grid {
	return m.grid.Clone()
}

// CellAt returns the cell at pos.
func (m *Match) CellAt(pos core.Position) Cell {
	return m.grid.CellAt(pos)
}
