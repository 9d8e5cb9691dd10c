package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dropfour/internal/core"
	"github.com/vovakirdan/dropfour/internal/games/connect4"
	"github.com/vovakirdan/dropfour/internal/platform/console"
	"github.com/vovakirdan/dropfour/internal/platform/tui"
)

var (
	flagPlain bool
	flagFirst string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a hot-seat match",
	Long: `Start a two-player match on this machine. Both players share the
keyboard and take turns.

Controls:
  Left/H, Right/L  - Move the cursor
  Enter/Space      - Drop a piece in the selected column
  1-7              - Drop a piece in that column
  R                - Rematch (after the match ends)
  ?                - Show all keys
  Q/Ctrl+C         - Quit

When stdin is not a terminal, or with --plain, the match is played over
plain text: type a column number and press enter.

Examples:
  dropfour play
  dropfour play --first b
  printf '1\n2\n1\n2\n1\n2\n1\n' | dropfour play`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagPlain, "plain", false, "Use the plain text driver even on a terminal")
	playCmd.Flags().StringVar(&flagFirst, "first", "a", "Player who moves first: a or b")
}

// parseFirst returns the turn order for the --first flag.
func parseFirst(value string) (core.Rotation, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "a", "1":
		return core.DefaultRotation(), nil
	case "b", "2":
		return core.Rotation{core.PlayerB, core.PlayerA}, nil
	default:
		return core.Rotation{}, fmt.Errorf("invalid --first %q: expected a or b", value)
	}
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := mustLoadConfig()
	logger := newLogger(cfg, "dropfour")

	rotation, err := parseFirst(flagFirst)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	match := connect4.NewMatch(connect4.WithRotation(rotation))

	interactive := term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))

	var state connect4.State
	if flagPlain || !interactive {
		state, err = console.NewSession(os.Stdin, os.Stdout, match, cfg, logger).Run()
	} else {
		state, err = tui.Run(match, cfg)
		logger.Debug("match closed", "state", state, "moves", match.MoveCount())
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running match: %v\n", err)
		os.Exit(1)
	}
}
