package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/dropfour.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches the embedded
// defaults/dropfour.yaml and is used if that file fails to parse.
func Default() Config {
	return Config{
		Players: []PlayerStyle{
			{Name: "Red", Glyph: "🔴", Color: "red"},
			{Name: "Blue", Glyph: "🔵", Color: "blue"},
		},
		Log: LogConfig{
			Level: "info",
		},
		Server: ServerConfig{
			Address:     ":23235",
			IdleTimeout: 30 * time.Minute,
		},
	}
}
