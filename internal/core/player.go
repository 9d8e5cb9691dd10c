package core

// PlayerID identifies one of the two sides of a match.
// The zero value is NoPlayer and never owns a cell.
type PlayerID int

const (
	NoPlayer PlayerID = iota
	PlayerA
	PlayerB
)

// String returns a human-readable name for the player.
func (p PlayerID) String() string {
	switch p {
	case PlayerA:
		return "Player A"
	case PlayerB:
		return "Player B"
	default:
		return "None"
	}
}

// Valid reports whether p is one of the two playing sides.
func (p PlayerID) Valid() bool {
	return p == PlayerA || p == PlayerB
}

// Index returns 0 for PlayerA and 1 for PlayerB, -1 otherwise.
// Drivers use it to look up per-player glyphs and colors.
func (p PlayerID) Index() int {
	switch p {
	case PlayerA:
		return 0
	case PlayerB:
		return 1
	default:
		return -1
	}
}

// Rotation is the fixed two-element turn order of a match.
type Rotation [2]PlayerID

// DefaultRotation starts with PlayerA.
func DefaultRotation() Rotation {
	return Rotation{PlayerA, PlayerB}
}

// First returns the player who opens the match.
func (r Rotation) First() PlayerID {
	return r[0]
}

// Next returns the player whose turn follows current.
// A player not in the rotation maps to the first player.
func (r Rotation) Next(current PlayerID) PlayerID {
	if current == r[0] {
		return r[1]
	}
	return r[0]
}

// Valid reports whether the rotation holds both players exactly once.
func (r Rotation) Valid() bool {
	return r[0].Valid() && r[1].Valid() && r[0] != r[1]
}
