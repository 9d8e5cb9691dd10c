// dropfour is a two-player drop-four board game for the terminal.
//
// Usage:
//
//	dropfour play            - Play a hot-seat match in this terminal
//	dropfour serve           - Start SSH server for remote play
//	dropfour version         - Print the version
//
// Global flags:
//
//	--config <path>      - Path to a config YAML (default: ~/.dropfour/config.yaml)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dropfour/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dropfour",
	Short: "Drop Four - line up four pieces in your terminal",
	Long: `Drop Four is a two-player board game for the terminal. Players take
turns dropping pieces into a 7x6 grid; the first to line up four in a row,
column or diagonal wins.

Available commands:
  play     - Play a match on this machine
  serve    - Start SSH server for remote play
  version  - Print the version

Examples:
  dropfour play
  dropfour play --plain --first b
  dropfour serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig loads the configuration and applies the global flags to it.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagLogLevel != "" {
		if _, err := log.ParseLevel(flagLogLevel); err != nil {
			return config.Config{}, fmt.Errorf("invalid --log-level: %w", err)
		}
		cfg.Log.Level = flagLogLevel
	}
	return cfg, nil
}

// newLogger creates the stderr logger shared by all commands.
func newLogger(cfg config.Config, prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           cfg.LogLevel(),
	})
}

// mustLoadConfig loads the configuration or exits.
func mustLoadConfig() config.Config {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}
