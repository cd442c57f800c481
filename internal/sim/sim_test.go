package sim

import (
	"testing"

	"github.com/vovakirdan/microtris/internal/console"
	"github.com/vovakirdan/microtris/internal/core"
	"github.com/vovakirdan/microtris/internal/tetris"
)

type squares struct{}

func (squares) Intn(int) int { return int(tetris.KindSquare) }

func TestParseScript(t *testing.T) {
	frames, err := ParseScript("s, step ,R+s,-,q")
	if err != nil {
		t.Fatalf("ParseScript() failed: %v", err)
	}
	if len(frames) != 5 {
		t.Fatalf("len = %d, expected 5", len(frames))
	}

	tests := []struct {
		i    int
		want []core.Action
	}{
		{0, []core.Action{core.ActionStep}},
		{1, []core.Action{core.ActionStep}},
		{2, []core.Action{core.ActionRotate, core.ActionStep}},
		{3, nil},
		{4, []core.Action{core.ActionQuit}},
	}
	for _, tt := range tests {
		got := frames[tt.i].Actions
		if len(got) != len(tt.want) {
			t.Errorf("entry %d = %v, expected %v", tt.i, got, tt.want)
			continue
		}
		for j := range got {
			if got[j] != tt.want[j] {
				t.Errorf("entry %d = %v, expected %v", tt.i, got, tt.want)
			}
		}
	}
}

func TestParseScriptErrors(t *testing.T) {
	if frames, err := ParseScript("  "); err != nil || frames != nil {
		t.Errorf("blank script = %v, %v", frames, err)
	}
	if _, err := ParseScript("s,jump"); err == nil {
		t.Error("unknown action should fail")
	}
}

func TestRunTicks(t *testing.T) {
	con := console.New(console.Config{Seed: 8})
	rep := Run(con, Plan{Ticks: 50})

	if rep.Ticks != 50 || rep.Final.Tick != 50 {
		t.Errorf("Ticks = %d, Final.Tick = %d, expected 50", rep.Ticks, rep.Final.Tick)
	}
	if rep.Presses != 0 {
		t.Errorf("Presses = %d, expected 0", rep.Presses)
	}
}

func TestRunIntervals(t *testing.T) {
	con := console.New(console.Config{Seed: 8})
	rep := Run(con, Plan{Ticks: 10, StepEvery: 2, RotateEvery: 5})

	if rep.Presses != 7 {
		t.Errorf("Presses = %d, expected 7", rep.Presses)
	}
}

func TestRunScriptQuit(t *testing.T) {
	script, err := ParseScript("-,s,q,s")
	if err != nil {
		t.Fatalf("ParseScript() failed: %v", err)
	}
	con := console.New(console.Config{Seed: 8})
	rep := Run(con, Plan{Ticks: 100, Script: script})

	if !rep.Quit || rep.Ticks != 2 {
		t.Errorf("Quit = %v after %d ticks, expected quit after 2", rep.Quit, rep.Ticks)
	}
	if rep.Presses != 1 {
		t.Errorf("Presses = %d, expected 1", rep.Presses)
	}
}

func TestRunStopOnOver(t *testing.T) {
	con := console.New(console.Config{Seed: 8}, console.WithRand(func(int64) tetris.Rand { return squares{} }))
	rep := Run(con, Plan{Ticks: 20000, StopOnOver: true})

	if !rep.Final.Ended {
		t.Fatal("run should stop on a finished game")
	}
	if rep.Stats.Finished != 1 || rep.Ticks >= 20000 {
		t.Errorf("Finished = %d after %d ticks", rep.Stats.Finished, rep.Ticks)
	}
}

func TestRunFrames(t *testing.T) {
	var ticks []uint64
	con := console.New(console.Config{Seed: 8})
	Run(con, Plan{
		Ticks:      35,
		FrameEvery: 10,
		OnFrame:    func(s tetris.Snapshot) { ticks = append(ticks, s.Tick) },
	})

	if len(ticks) != 3 || ticks[0] != 10 || ticks[2] != 30 {
		t.Errorf("frames at ticks %v, expected [10 20 30]", ticks)
	}
}

func TestRunDeterministic(t *testing.T) {
	plan := Plan{Ticks: 3000, RotateEvery: 7, StepEvery: 3}
	a := Run(console.New(console.Config{Seed: 21}), plan)
	b := Run(console.New(console.Config{Seed: 21}), plan)

	if a.Final != b.Final || a.Stats != b.Stats {
		t.Errorf("same seed diverged:\n%s\nvs\n%s", a.Final.DebugState(), b.Final.DebugState())
	}
}
