// microtris is the rules engine of a two-button falling-blocks handheld,
// played in the terminal or driven headless.
//
// Usage:
//
//	microtris play        - Play in the terminal
//	microtris simulate    - Run a deterministic headless game
//	microtris scores      - Show saved results
//	microtris config      - Print the effective configuration
//
// Global flags:
//
//	--config <path> - Config file (.yaml or .toml)
//	--tps <rate>    - Timer ticks per second (default from config: 4)
//	--seed <value>  - Seed of the first game (0 = random based on time)
//	--db <path>     - Scores database (default: ~/.microtris/scores.db)
//	-v, --verbose   - Debug logging
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/microtris/internal/config"
)

var (
	// Global flags
	flagConfig  string
	flagTPS     int
	flagSeed    int64
	flagDBPath  string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "microtris",
	Short: "microtris - falling blocks on a 8x32 field with two buttons",
	Long: `microtris runs the rules of a tiny two-button falling-blocks console.

The field is 8 cells wide and 32 tall. One button rotates the falling piece,
the other nudges it one column, bouncing off the walls. Rows with at least 7
of 8 cells filled are cleared and score a point each.

Available commands:
  play      - Play in the terminal
  simulate  - Run a deterministic headless game
  scores    - Show saved results
  config    - Print the effective configuration

Examples:
  microtris play
  microtris play --seed 42 --tps 6
  microtris simulate --ticks 2000 --step-every 3 --rotate-every 11
  microtris scores --limit 5`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file (.yaml or .toml)")
	rootCmd.PersistentFlags().IntVar(&flagTPS, "tps", 0, "Timer ticks per second (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Seed of the first game (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (empty = from config)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the config file and applies command line overrides.
// Flags win over environment variables, which win over files.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("tps") {
		cfg.TickRate = flagTPS
	}
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("db") {
		cfg.DBPath = flagDBPath
	}
	if flagVerbose {
		cfg.LogLevel = "debug"
	}
	return cfg, cfg.Validate()
}

// newLogger creates the process logger.
func newLogger(w io.Writer, cfg config.Config) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "microtris",
		Level:           cfg.Level(),
	})
}

// mustLoadConfig is loadConfig for Run functions: errors end the process.
func mustLoadConfig(cmd *cobra.Command) config.Config {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}
