package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Input errors. ErrQuit is not a failure: it signals the player asked to stop.
var (
	ErrQuit       = errors.New("console: quit requested")
	ErrEmptyInput = errors.New("console: no column given")
	ErrNotANumber = errors.New("console: not a column number")
	ErrOutOfRange = errors.New("console: column out of range")
)

// ParseColumn converts a typed column number into a zero-based column index.
// People count columns from 1, so "1" is column 0 and columns is the highest
// accepted number. The words q, quit and exit return ErrQuit.
func ParseColumn(text string, columns int) (int, error) {
	s := strings.ToLower(strings.TrimSpace(text))

	switch s {
	case "":
		return 0, ErrEmptyInput
	case "q", "quit", "exit":
		return 0, ErrQuit
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, strings.TrimSpace(text))
	}
	if n < 1 || n > columns {
		return 0, fmt.Errorf("%w: %d is not between 1 and %d", ErrOutOfRange, n, columns)
	}
	return n - 1, nil
}
