// Package sim drives a console without a terminal: a fixed number of ticks,
// with button presses from a script or at fixed intervals. Runs are fully
// deterministic for a given seed.
package sim

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/microtris/internal/console"
	"github.com/vovakirdan/microtris/internal/core"
	"github.com/vovakirdan/microtris/internal/tetris"
)

// Plan describes a headless run.
type Plan struct {
	Ticks       int               // timer periods to run
	RotateEvery int               // press rotate before every Nth tick; 0 never
	StepEvery   int               // press step before every Nth tick; 0 never
	Script      []core.InputFrame // presses before tick i, applied before the interval presses
	StopOnOver  bool              // stop at the first game over
	FrameEvery  int               // call OnFrame every Nth tick; 0 never
	OnFrame     func(tetris.Snapshot)
}

// Report summarises a run.
type Report struct {
	Ticks   int
	Presses int
	Final   tetris.Snapshot
	Stats   console.Stats
	Quit    bool // the script asked to stop
}

// Run executes plan against con. Presses after a game over restart the game
// exactly as the buttons do.
func Run(con *console.Console, plan Plan) Report {
	var rep Report
	frame := core.NewInputFrame()

	for i := 0; i < plan.Ticks; i++ {
		frame.Clear()
		if i < len(plan.Script) {
			for _, a := range plan.Script[i].Actions {
				frame.Set(a)
			}
		}
		n := i + 1
		if plan.RotateEvery > 0 && n%plan.RotateEvery == 0 {
			frame.Set(core.ActionRotate)
		}
		if plan.StepEvery > 0 && n%plan.StepEvery == 0 {
			frame.Set(core.ActionStep)
		}

		if frame.Has(core.ActionQuit) {
			rep.Quit = true
			break
		}
		for _, a := range frame.Actions {
			if con.Handle(a) {
				rep.Presses++
			}
		}

		res := con.Tick()
		rep.Ticks++

		if plan.FrameEvery > 0 && plan.OnFrame != nil && rep.Ticks%plan.FrameEvery == 0 {
			plan.OnFrame(con.Snapshot())
		}
		if res.Ended && plan.StopOnOver {
			break
		}
	}

	rep.Final = con.Snapshot()
	rep.Stats = con.Stats()
	return rep
}

// ParseScript reads a comma-separated list of tick entries. Each entry is
// "-" for no press or action names joined with "+", e.g. "s,s,r+s,-,q".
func ParseScript(s string) ([]core.InputFrame, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var frames []core.InputFrame
	for i, entry := range strings.Split(s, ",") {
		frame := core.NewInputFrame()
		entry = strings.TrimSpace(entry)
		if entry != "-" && entry != "" {
			for _, name := range strings.Split(entry, "+") {
				a, ok := core.ParseAction(strings.ToLower(strings.TrimSpace(name)))
				if !ok {
					return nil, fmt.Errorf("sim: entry %d: unknown action %q", i+1, name)
				}
				frame.Set(a)
			}
		}
		frames = append(frames, frame)
	}
	return frames, nil
}
