// Package console is the controller glue around a tetris game: it owns the
// game, serialises the timer and the two buttons behind one lock, redraws
// after every event and restarts the game on the first button press after a
// game over.
package console

import (
	"context"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/vovakirdan/microtris/internal/core"
	"github.com/vovakirdan/microtris/internal/tetris"
)

// Config holds the controller settings.
type Config struct {
	Seed     int64 // seed of the first game; 0 picks one from the clock
	TickRate int   // timer frequency in Hz
}

// Result describes a finished game.
type Result struct {
	RunID  uuid.UUID
	Seed   int64
	Score  uint32
	Lines  int
	Pieces int
	Ticks  uint64
}

// Stats are the totals of this console since it was created.
type Stats struct {
	Games    int    // games started, including the current one
	Finished int    // games that reached game over
	Best     uint32 // best final score
}

// Option configures a Console.
type Option func(*Console)

// WithRenderer sets the function called with a snapshot after every event.
// It runs while the console lock is held and must not call back into the
// console.
func WithRenderer(fn func(tetris.Snapshot)) Option {
	return func(c *Console) {
		c.render = fn
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(c *Console) {
		c.logger = l
	}
}

// WithRand replaces the random source factory. Each game gets a fresh source
// built from its seed.
func WithRand(fn func(seed int64) tetris.Rand) Option {
	return func(c *Console) {
		c.newRand = fn
	}
}

// WithGameOver sets the function called once per finished game. It runs
// after the console lock is released.
func WithGameOver(fn func(Result)) Option {
	return func(c *Console) {
		c.onGameOver = fn
	}
}

// Console runs one game at a time.
type Console struct {
	mu sync.Mutex

	cfg        Config
	game       *tetris.Tetris
	runID      uuid.UUID
	seed       int64
	lines      int
	newRand    func(seed int64) tetris.Rand
	render     func(tetris.Snapshot)
	onGameOver func(Result)
	logger     *log.Logger
	stats      Stats
}

// New creates a console and starts its first game.
func New(cfg Config, opts ...Option) *Console {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.TickRate = core.RuntimeConfig{TickRate: cfg.TickRate, Seed: cfg.Seed}.Normalize().TickRate

	c := &Console{
		cfg: cfg,
		newRand: func(seed int64) tetris.Rand {
			return rand.New(rand.NewSource(seed))
		},
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.restart()
	return c
}

// restart replaces the game. Game n uses seed+n so a fixed seed replays the
// same sequence of games.
func (c *Console) restart() {
	c.seed = c.cfg.Seed + int64(c.stats.Games)
	c.game = tetris.New(c.newRand(c.seed))
	c.runID = uuid.New()
	c.lines = 0
	c.stats.Games++
	c.logger.Info("new game", "game", c.stats.Games, "seed", c.seed)
}

// Tick advances the game by one timer period.
func (c *Console) Tick() tetris.TickResult {
	c.mu.Lock()
	res := c.game.Run()
	c.logTick(res)

	var finished *Result
	if res.Ended {
		r := c.result()
		finished = &r
		c.stats.Finished++
		if r.Score > c.stats.Best {
			c.stats.Best = r.Score
		}
	}
	c.draw()
	c.mu.Unlock()

	if finished != nil && c.onGameOver != nil {
		c.onGameOver(*finished)
	}
	return res
}

func (c *Console) logTick(res tetris.TickResult) {
	switch res.Event {
	case tetris.EventSpawn:
		if p, ok := c.game.Block(); ok {
			c.logger.Debug("spawn", "kind", p.Kind, "x", p.Pos.X, "y", p.Pos.Y)
		}
	case tetris.EventLock:
		c.logger.Debug("lock", "score", c.game.Score())
	}
	if res.Cleared > 0 {
		c.lines += res.Cleared
		c.logger.Debug("rows cleared", "rows", res.Cleared, "score", c.game.Score())
	}
	if res.Ended {
		c.logger.Info("game over", "score", c.game.Score(), "seed", c.seed)
	}
}

// Rotate handles the first button.
func (c *Console) Rotate() {
	c.press(core.ActionRotate)
}

// Step handles the second button.
func (c *Console) Step() {
	c.press(core.ActionStep)
}

// Handle dispatches a front-end action. It reports false for actions the
// console does not own, such as quitting.
func (c *Console) Handle(a core.Action) bool {
	switch a {
	case core.ActionRotate:
		c.Rotate()
	case core.ActionStep:
		c.Step()
	default:
		return false
	}
	return true
}

// press applies a button to the current game. A press after game over still
// reaches the finished game and is drawn, then a new game replaces it.
func (c *Console) press(a core.Action) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ended := c.game.HasEnded()
	switch a {
	case core.ActionRotate:
		c.game.RotateBlock()
	case core.ActionStep:
		c.game.MoveBlock()
	}
	c.draw()

	if ended {
		c.restart()
	}
}

func (c *Console) draw() {
	if c.render != nil {
		c.render(c.game.Snapshot())
	}
}

// result must be called with the lock held.
func (c *Console) result() Result {
	s := c.game.Snapshot()
	return Result{
		RunID:  c.runID,
		Seed:   c.seed,
		Score:  s.Score,
		Lines:  c.lines,
		Pieces: s.Pieces,
		Ticks:  s.Tick,
	}
}

// Snapshot returns the state of the current game.
func (c *Console) Snapshot() tetris.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.game.Snapshot()
}

// Stats returns the console totals.
func (c *Console) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// Seed returns the seed of the current game.
func (c *Console) Seed() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seed
}

// TickRate returns the timer frequency in Hz.
func (c *Console) TickRate() int {
	return c.cfg.TickRate
}

// Run drives Tick from a ticker until ctx is done.
func (c *Console) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(c.cfg.TickRate))
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.Tick()
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
