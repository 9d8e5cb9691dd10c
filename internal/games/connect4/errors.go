package connect4

import "errors"

// Move errors. All are recoverable: the rejected move leaves the match untouched
// and the caller is expected to ask for another column.
var (
	ErrInvalidColumn = errors.New("connect4: invalid column")
	ErrColumnFull    = errors.New("connect4: column is full")
	ErrMatchOver     = errors.New("connect4: match is over")
	ErrUnknownPlayer = errors.New("connect4: unknown player")
)
