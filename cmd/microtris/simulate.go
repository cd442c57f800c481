package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/microtris/internal/console"
	"github.com/vovakirdan/microtris/internal/display"
	"github.com/vovakirdan/microtris/internal/sim"
	"github.com/vovakirdan/microtris/internal/storage"
	"github.com/vovakirdan/microtris/internal/tetris"
)

var (
	flagTicks       int
	flagRotateEvery int
	flagStepEvery   int
	flagFrames      int
	flagScript      string
	flagUntilOver   bool
	flagBraille     bool
	flagGrid        bool
	flagSave        bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a deterministic headless game",
	Long: `Run the console without a terminal UI and print the final panel and
statistics. The same seed and presses always give the same result.

Presses come from --script (one comma-separated entry per tick: "-" for
nothing, or actions joined with "+": rotate/r, step/s, quit/q) and from the
--rotate-every / --step-every intervals.

Examples:
  microtris simulate --ticks 500
  microtris simulate --ticks 3000 --step-every 3 --rotate-every 11 --frames 100
  microtris simulate --script "-,s,s,r,r+s,q"
  microtris simulate --until-over --grid --save`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 1000, "Number of timer ticks to run")
	simulateCmd.Flags().IntVar(&flagRotateEvery, "rotate-every", 0, "Press rotate before every Nth tick (0 = never)")
	simulateCmd.Flags().IntVar(&flagStepEvery, "step-every", 0, "Press step before every Nth tick (0 = never)")
	simulateCmd.Flags().IntVar(&flagFrames, "frames", 0, "Print the panel every N ticks (0 = final frame only)")
	simulateCmd.Flags().StringVar(&flagScript, "script", "", "Per-tick presses, e.g. \"-,s,r+s,q\"")
	simulateCmd.Flags().BoolVar(&flagUntilOver, "until-over", false, "Stop at the first game over")
	simulateCmd.Flags().BoolVar(&flagBraille, "braille", false, "Render the panel with braille characters")
	simulateCmd.Flags().BoolVar(&flagGrid, "grid", false, "Also print the field as a cell grid")
	simulateCmd.Flags().BoolVar(&flagSave, "save", false, "Save finished games to the scores database")
}

func runSimulate(cmd *cobra.Command, _ []string) {
	cfg := mustLoadConfig(cmd)
	logger := newLogger(os.Stderr, cfg)

	script, err := sim.ParseScript(flagScript)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := []console.Option{console.WithLogger(logger)}
	var store *storage.Store
	if flagSave && cfg.DBPath != "" {
		store, err = storage.Open(cfg.DBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()
		opts = append(opts, console.WithGameOver(func(r console.Result) {
			if _, err := store.SaveScore(storage.Result{
				RunID:  r.RunID,
				Score:  int(r.Score),
				Lines:  r.Lines,
				Pieces: r.Pieces,
				Ticks:  r.Ticks,
				Seed:   r.Seed,
			}); err != nil {
				logger.Error("could not save score", "error", err)
			}
		}))
	}

	con := console.New(console.Config{Seed: cfg.Seed, TickRate: cfg.TickRate}, opts...)
	rep := sim.Run(con, sim.Plan{
		Ticks:       flagTicks,
		RotateEvery: flagRotateEvery,
		StepEvery:   flagStepEvery,
		Script:      script,
		StopOnOver:  flagUntilOver,
		FrameEvery:  flagFrames,
		OnFrame: func(s tetris.Snapshot) {
			fmt.Printf("tick %d\n%s\n\n", s.Tick, renderPanel(s))
		},
	})

	fmt.Println(renderPanel(rep.Final))
	if flagGrid {
		fmt.Println()
		fmt.Print(rep.Final.DebugState())
	}

	fmt.Println()
	fmt.Printf("ticks     %d\n", rep.Ticks)
	fmt.Printf("presses   %d\n", rep.Presses)
	fmt.Printf("seed      %d\n", con.Seed())
	fmt.Printf("score     %d\n", rep.Final.Score)
	fmt.Printf("pieces    %d\n", rep.Final.Pieces)
	fmt.Printf("game over %v\n", rep.Final.Ended)
	fmt.Printf("games     %d started, %d finished, best %d\n", rep.Stats.Games, rep.Stats.Finished, rep.Stats.Best)
}

func renderPanel(s tetris.Snapshot) string {
	fb := display.Render(s)
	if flagBraille {
		return strings.Join(fb.Braille(), "\n")
	}
	return fb.String()
}
