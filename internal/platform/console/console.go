// Package console drives a match over plain line-based text streams. It is
// used when stdin is not a terminal, and works over pipes.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dropfour/internal/config"
	"github.com/vovakirdan/dropfour/internal/core"
	"github.com/vovakirdan/dropfour/internal/games/connect4"
)

// Session runs one match over a reader and writer.
type Session struct {
	in     *bufio.Scanner
	out    io.Writer
	match  *connect4.Match
	cfg    config.Config
	glyphs Glyphs
	logger *log.Logger
}

// NewSession creates a console session for match.
func NewSession(in io.Reader, out io.Writer, match *connect4.Match, cfg config.Config, logger *log.Logger) *Session {
	glyphs := Glyphs{}
	for _, p := range match.Rotation() {
		glyphs[p] = cfg.Player(p).Glyph
	}
	return &Session{
		in:     bufio.NewScanner(in),
		out:    out,
		match:  match,
		cfg:    cfg,
		glyphs: glyphs,
		logger: logger,
	}
}

// Run prompts the active player for a column until the match ends, the input
// runs out or a player quits. Rejected input is reported and asked for again.
// It returns the state the match was left in.
func (s *Session) Run() (connect4.State, error) {
	s.logger.Info("match started", "first", s.name(s.match.ActivePlayer()))
	s.printBoard()

	for !s.match.State().Terminal() {
		player := s.match.ActivePlayer()
		s.printf("%s (%s), choose a column [1-%d]: ", s.name(player), s.glyphs[player], core.Columns)

		if !s.in.Scan() {
			if err := s.in.Err(); err != nil {
				return s.match.State(), fmt.Errorf("console: read input: %w", err)
			}
			s.printf("\n")
			s.logger.Info("match abandoned", "reason", "end of input", "moves", s.match.MoveCount())
			return s.match.State(), nil
		}

		column, err := ParseColumn(s.in.Text(), core.Columns)
		if errors.Is(err, ErrQuit) {
			s.logger.Info("match abandoned", "reason", "quit", "moves", s.match.MoveCount())
			return s.match.State(), nil
		}
		if err != nil {
			s.printf("%s\n", describe(err))
			s.logger.Debug("input rejected", "player", player, "error", err)
			continue
		}

		outcome, err := s.match.SubmitMove(column)
		if err != nil {
			s.printf("%s\n", describe(err))
			s.logger.Debug("move rejected", "player", player, "column", column, "error", err)
			continue
		}
		s.logger.Debug("move accepted", "player", player, "position", outcome.Position)
		s.printBoard()
	}

	s.announce()
	return s.match.State(), nil
}

func (s *Session) announce() {
	switch s.match.State() {
	case connect4.StateWon:
		winner := s.match.Winner()
		s.printf("%s (%s) wins!\n", s.name(winner), s.glyphs[winner])
		s.logger.Info("match finished", "result", "win", "winner", s.name(winner), "moves", s.match.MoveCount())
	case connect4.StateDrawn:
		s.printf("The board is full. It's a draw!\n")
		s.logger.Info("match finished", "result", "draw", "moves", s.match.MoveCount())
	}
}

func (s *Session) printBoard() {
	grid := s.match.Grid()
	s.printf("\n%s\n\n", RenderBoard(&grid, s.glyphs))
}

func (s *Session) name(p core.PlayerID) string {
	if name := s.cfg.Player(p).Name; name != "" {
		return name
	}
	return p.String()
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

// describe turns a rejection into a message for the player.
func describe(err error) string {
	switch {
	case errors.Is(err, ErrEmptyInput):
		return "Please type a column number."
	case errors.Is(err, ErrNotANumber):
		return fmt.Sprintf("Please type a number between 1 and %d.", core.Columns)
	case errors.Is(err, ErrOutOfRange):
		return fmt.Sprintf("Columns go from 1 to %d.", core.Columns)
	case errors.Is(err, connect4.ErrColumnFull):
		return "That column is full, pick another one."
	case errors.Is(err, connect4.ErrInvalidColumn):
		return "That column is not on the board."
	case errors.Is(err, connect4.ErrMatchOver):
		return "The match is already over."
	default:
		return err.Error()
	}
}
