// Package config provides YAML-based configuration loading for the dropfour
// drivers. Board dimensions are fixed and deliberately absent here.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dropfour/internal/core"
)

// Config contains everything the CLI, TUI and SSH server read at startup.
type Config struct {
	Players []PlayerStyle `yaml:"players"`
	Log     LogConfig     `yaml:"log"`
	Server  ServerConfig  `yaml:"server"`
}

// PlayerStyle defines how one side is shown to people.
type PlayerStyle struct {
	Name  string `yaml:"name"`
	Glyph string `yaml:"glyph"` // Used by the console board
	Color string `yaml:"color"` // Used by the TUI board, see core.ParseColor
}

// LogConfig defines logging parameters.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// ServerConfig defines the SSH server parameters.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key_path"` // Empty means ~/.dropfour/host_key
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// Player returns the style for p. Unknown players get an empty style.
func (c Config) Player(p core.PlayerID) PlayerStyle {
	i := p.Index()
	if i < 0 || i >= len(c.Players) {
		return PlayerStyle{}
	}
	return c.Players[i]
}

// PlayerColor returns the parsed color for p, or core.ColorDefault.
func (c Config) PlayerColor(p core.PlayerID) core.Color {
	color, ok := core.ParseColor(c.Player(p).Color)
	if !ok {
		return core.ColorDefault
	}
	return color
}

// LogLevel returns the parsed log level, or info if it cannot be parsed.
func (c Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// Validate checks the configuration for values the drivers cannot use.
func (c Config) Validate() error {
	var errs []error

	if len(c.Players) != 2 {
		errs = append(errs, fmt.Errorf("players: expected 2 entries, got %d", len(c.Players)))
	} else {
		for i, p := range c.Players {
			if p.Glyph == "" {
				errs = append(errs, fmt.Errorf("players[%d]: glyph is empty", i))
			}
			if _, ok := core.ParseColor(p.Color); !ok {
				errs = append(errs, fmt.Errorf("players[%d]: unknown color %q", i, p.Color))
			}
		}
		if c.Players[0].Glyph != "" && c.Players[0].Glyph == c.Players[1].Glyph {
			errs = append(errs, fmt.Errorf("players: both players use glyph %q", c.Players[0].Glyph))
		}
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}

	if c.Server.IdleTimeout < 0 {
		errs = append(errs, fmt.Errorf("server.idle_timeout: must not be negative"))
	}

	return errors.Join(errs...)
}
