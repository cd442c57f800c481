package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/microtris/internal/config"
	"github.com/vovakirdan/microtris/internal/platform/tui"
	"github.com/vovakirdan/microtris/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the console in the terminal. The timer runs on its own; the two
buttons act immediately.

Controls (defaults, see 'microtris config'):
  Left/A/Z     - Rotate the falling piece
  Right/D/X    - Step the piece one column (bounces off walls)
  Ctrl+S       - Save a text screenshot
  ?            - Toggle help
  Q/Esc/Ctrl+C - Quit

After a game over, either button starts a new game.

Examples:
  microtris play
  microtris play --seed 42
  microtris play --tps 8 --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg := mustLoadConfig(cmd)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	if width < tui.MinWidth || height < tui.MinHeight {
		fmt.Fprintf(os.Stderr, "Error: terminal is %dx%d, need at least %dx%d\n", width, height, tui.MinWidth, tui.MinHeight)
		os.Exit(1)
	}

	logger, closeLog := openLogFile(cfg)

	// Open score storage
	var store *storage.Store
	if cfg.DBPath != "" {
		var err error
		store, err = storage.Open(cfg.DBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
			logger.Warn("scores disabled", "error", err)
			// Continue without storage - game still works
			store = nil
		}
	}

	runErr := tui.Run(tui.Options{
		Config:  cfg,
		Store:   store,
		Logger:  logger,
		Compact: tui.Compact(height),
	})

	// Close store and log before potential exit
	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// openLogFile sends logs to the configured file so they do not draw over the
// alt screen. Without a usable file, logs are discarded.
func openLogFile(cfg config.Config) (*log.Logger, func()) {
	if cfg.LogFile == "" {
		return newLogger(io.Discard, cfg), func() {}
	}

	path, err := config.ExpandHome(cfg.LogFile)
	if err == nil {
		err = os.MkdirAll(filepath.Dir(path), 0o755)
	}
	var f *os.File
	if err == nil {
		f, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		return newLogger(io.Discard, cfg), func() {}
	}

	//nolint:errcheck // Best-effort close on exit
	return newLogger(f, cfg), func() { f.Close() }
}
